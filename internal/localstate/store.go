// Package localstate persists the CLI's backend session between runs.
package localstate

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps session cookies per backend origin in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path with WAL journaling.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveCookies replaces the cookies stored for origin.
func (s *Store) SaveCookies(ctx context.Context, origin string, cookies []*http.Cookie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM SessionCookies WHERE Origin = ?`, origin); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	now := time.Now().UTC()
	for _, c := range cookies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO SessionCookies (Origin, Name, Value, SavedTime) VALUES (?, ?, ?, ?)`,
			origin, c.Name, c.Value, now); err != nil {
			return fmt.Errorf("save cookie %s: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

// LoadCookies returns the cookies stored for origin, ordered by name.
func (s *Store) LoadCookies(ctx context.Context, origin string) ([]*http.Cookie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT Name, Value FROM SessionCookies WHERE Origin = ? ORDER BY Name`, origin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*http.Cookie
	for rows.Next() {
		c := &http.Cookie{Path: "/"}
		if err := rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ClearCookies forgets the session for origin.
func (s *Store) ClearCookies(ctx context.Context, origin string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM SessionCookies WHERE Origin = ?`, origin)
	return err
}
