package main

// Run database migrations:
//   go run ./cmd/migrate
//   go run ./cmd/migrate -status

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/storage/db"
	"resume-matcher/internal/shared/telemetry"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of migrating")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	err := db.With(ctx, cfg.DatabaseURL, db.DefaultOptions(), func(ctx context.Context, sqlDB *sql.DB) error {
		if *status {
			return db.MigrationStatus(ctx, sqlDB)
		}
		return db.RunMigrations(ctx, sqlDB)
	})
	if err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err, "status": *status})
		os.Exit(1)
	}
	if !*status {
		telemetry.Info("migrate.complete", nil)
	}
}
