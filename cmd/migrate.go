package main

import (
	"context"
	root "converter"
	"converter/internal/config"
	"converter/pkg/logger"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations (history, favorites,
// feature requests).
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	return nil
}

// migrateQueue brings the River job tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latestVersion := all[len(all)-1].Version

	currentVersion := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		currentVersion = existing[len(existing)-1].Version
	}
	if latestVersion <= currentVersion {
		logger.Info(ctx, "river queue schema is up to date", zap.Int("version", currentVersion))

		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	}); err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	logger.Info(ctx, "river queue migrated",
		zap.Int("from", currentVersion),
		zap.Int("to", latestVersion))

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// and job queue migrations to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			skipQueue, _ := cmd.Flags().GetBool("skip-queue")
			if skipQueue {
				return
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("skip-queue", false, "Only apply the application schema")

	return cmd
}
