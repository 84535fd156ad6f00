package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClientID identifies the browser or device that owns history entries and
// favourites. It wraps uuid.UUID for type safety at the domain layer.
type ClientID uuid.UUID

// String returns the canonical uuid form.
func (c ClientID) String() string { return uuid.UUID(c).String() }

// HistoryID identifies a history entry.
type HistoryID uuid.UUID

// HistoryEntry is a conversion the client explicitly kept (e.g. by copying
// the result).
type HistoryEntry struct {
	ID        HistoryID `json:"id"`
	ClientID  ClientID  `json:"-"`
	Category  string    `json:"category"`
	FromValue float64   `json:"fromValue"`
	FromUnit  string    `json:"fromUnit"`
	ToValue   float64   `json:"toValue"`
	ToUnit    string    `json:"toUnit"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteID identifies a favourite unit pair.
type FavoriteID uuid.UUID

// Favorite is a unit pair the client pinned for quick access.
type Favorite struct {
	ID        FavoriteID `json:"id"`
	ClientID  ClientID   `json:"-"`
	Category  string     `json:"category"`
	FromUnit  string     `json:"fromUnit"`
	ToUnit    string     `json:"toUnit"`
	CreatedAt time.Time  `json:"createdAt"`
}
