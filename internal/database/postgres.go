package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/jaym93/gtpower/internal/config"
)

// NewPostgresDB opens a pooled connection to Postgres and verifies it.
// The pool is the only cross-request shared state in this service; all
// acquisition and release goes through database/sql.
func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
