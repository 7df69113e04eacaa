// Package sqlite provides the SQLite-backed implementation of the
// repository interfaces defined in internal/domain.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/atstailor/resume-tailor/internal/repository/sqlite/migrations"
)

// DB wraps the underlying SQLite connection and hands out repositories.
type DB struct {
	sql *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single writer connection serializes all mutations, which is what
	// SQLite wants anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sql)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserRepository {
	return &UserRepository{db: db.sql}
}
