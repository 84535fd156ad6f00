// Package converter holds assets embedded into the converter binary.
package converter

import "embed"

// Migrations contains the goose SQL migrations for the PostgreSQL storage.
//
//go:embed migrations/*.sql
var Migrations embed.FS
