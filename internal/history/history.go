// Package history archives completed runs in a local SQLite database so
// earlier extractions can be listed, inspected, and diffed against later
// ones.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seerworks/styleseer/internal/schema"
)

// ErrNotFound reports that no archived run matched the requested ID.
var ErrNotFound = errors.New("run not found")

// Entry is one archived run. List leaves Schema nil; Get loads it.
type Entry struct {
	RunID     string
	SourceURL string
	SiteType  string
	Keywords  []string
	Schema    *schema.Schema
	CreatedAt time.Time
}

// Store is the SQLite-backed run archive.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the archive location used when no configuration
// overrides it.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".styleseer", "history.db"), nil
}

// Open opens the archive at path, creating the parent directory and the
// table on first use.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source_url TEXT NOT NULL,
			site_type TEXT NOT NULL,
			keywords TEXT NOT NULL,
			schema_json TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record archives one run. A zero CreatedAt is stamped with the current
// time; timestamps are stored in UTC so ordering stays stable.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RunID == "" {
		return fmt.Errorf("run id is required")
	}
	if e.Schema == nil {
		return fmt.Errorf("schema is required")
	}

	schemaJSON, err := json.Marshal(e.Schema)
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	keywordsJSON, err := json.Marshal(e.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, site_type, keywords, schema_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.RunID, e.SourceURL, e.SiteType, string(keywordsJSON), string(schemaJSON), createdAt.UTC())

	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns archived runs, newest first. A non-positive limit returns
// everything. Schemas are not loaded; use Get for the full document.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, site_type, keywords, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var keywordsJSON string
		var createdAt sql.NullTime
		if err := rows.Scan(&e.RunID, &e.SourceURL, &e.SiteType, &keywordsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(keywordsJSON), &e.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return entries, nil
}

// Get loads one archived run by ID or unique ID prefix.
func (s *Store) Get(ctx context.Context, idPrefix string) (*Entry, error) {
	if idPrefix == "" {
		return nil, fmt.Errorf("run id is required")
	}

	// Two rows are enough to tell unique from ambiguous.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, site_type, keywords, schema_json, created_at
		FROM runs
		WHERE id LIKE ? || '%'
		ORDER BY created_at DESC
		LIMIT 2
	`, idPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer rows.Close()

	var matches []Entry
	for rows.Next() {
		var e Entry
		var keywordsJSON, schemaJSON string
		var createdAt sql.NullTime
		if err := rows.Scan(&e.RunID, &e.SourceURL, &e.SiteType, &keywordsJSON, &schemaJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(keywordsJSON), &e.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
		var doc schema.Schema
		if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode schema: %w", err)
		}
		e.Schema = &doc
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time
		}
		matches = append(matches, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("run id %q is ambiguous", idPrefix)
	}
}
