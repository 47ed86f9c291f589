// Package cache stores converted HTML keyed by the content of the input
// file and the options that shaped the output.
//
// Entries live in a single SQLite database. A key is the hex SHA3-256 of the
// input bytes followed by the options fingerprint, so a changed file or a
// changed option misses.
package cache

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file created inside the cache directory.
const FileName = "cache.db"

// Store is a conversion cache backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	path := filepath.Join(dir, FileName)

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS conversions (
		key TEXT PRIMARY KEY,
		html TEXT NOT NULL,
		slides INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// Key derives the cache key for input converted with the given options
// fingerprint.
func Key(input []byte, fingerprint string) string {
	sum := sha3.Sum256(input)
	return hex.EncodeToString(sum[:]) + ":" + fingerprint
}

// Entry is a cached conversion.
type Entry struct {
	HTML      string
	Slides    int
	CreatedAt time.Time
}

// Get returns the entry stored under key. The second result is false on a
// miss.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT html, slides, created_at FROM conversions WHERE key = ?`, key,
	).Scan(&e.HTML, &e.Slides, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return &e, true, nil
}

// Put stores html under key, replacing any existing entry.
func (s *Store) Put(ctx context.Context, key, html string, slides int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO conversions (key, html, slides, created_at) VALUES (?, ?, ?, ?)`,
		key, html, slides, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Purge removes entries created before the given time and returns how many
// were removed.
func (s *Store) Purge(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE created_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}
