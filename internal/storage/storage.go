// Package storage is the Postgres adapter: connect, read the workforce
// and one week's pre-existing assignments, and write a generated
// manifest back inside a single delete-then-insert transaction.
package storage

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Store wraps a pooled *sql.DB configured for one fillshifts run.
type Store struct {
	db *sql.DB
}

// Connect opens a Postgres connection pool against dsn (already rewritten
// by config.RewritePostgresURL) and verifies it with a ping.
func Connect(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
