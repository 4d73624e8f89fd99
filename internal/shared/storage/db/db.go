// Package db opens the Postgres pool behind the taxonomy tables. Every caller
// connects for one job (a taxonomy load, a seed or a migration run) and closes
// the pool when that job returns.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"resume-matcher/internal/shared/telemetry"
)

// Options controls pool size and the connectivity check.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// DefaultOptions suits the short sequential work done here: one query or one
// transaction at a time.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

var openDB = sql.Open

// Connect opens a pool for databaseURL and pings it. The caller owns the pool
// and must Close it.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	opts = withDefaults(opts)
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	telemetry.Info("db.connected", map[string]any{"max_open": opts.MaxOpenConns})
	return db, nil
}

// With connects, runs fn and closes the pool whatever fn returns.
func With(ctx context.Context, databaseURL string, opts Options, fn func(context.Context, *sql.DB) error) error {
	db, err := Connect(ctx, databaseURL, opts)
	if err != nil {
		return err
	}
	defer Close(db)
	return fn(ctx, db)
}

// Close closes db and logs a failure instead of returning it.
func Close(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		telemetry.Warn("db.close_failed", map[string]any{"error": err})
	}
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = def.MaxOpenConns
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = def.MaxIdleConns
	}
	if opts.ConnMaxLifetime <= 0 {
		opts.ConnMaxLifetime = def.ConnMaxLifetime
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = def.PingTimeout
	}
	return opts
}
