// Package cache persists book and series statistics between runs in a
// sqlite file. The store is versioned by a literal schema string; any
// mismatch throws the whole cache away and recomputes from scratch.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"yomistat/internal/stats"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT
);

CREATE TABLE IF NOT EXISTS books (
    name TEXT PRIMARY KEY,
    record TEXT
);

CREATE TABLE IF NOT EXISTS series (
    name TEXT PRIMARY KEY,
    record TEXT
);
`

// Store is a stats.Store backed by sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache at path. A schema-version mismatch is
// not an error: the existing contents are dropped and the store comes back
// empty under the current version.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply cache schema: %w", err)
	}

	var version string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		version = ""
	case err != nil:
		return fmt.Errorf("read cache version: %w", err)
	}

	if version == stats.SchemaVersion {
		return nil
	}
	// wrong or missing version: wipe and restamp
	for _, stmt := range []string{`DELETE FROM books`, `DELETE FROM series`} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("reset cache: %w", err)
		}
	}
	if _, err := db.Exec(`INSERT INTO meta(key, value) VALUES('schema_version', ?)
	    ON CONFLICT(key) DO UPDATE SET value = excluded.value`, stats.SchemaVersion); err != nil {
		return fmt.Errorf("stamp cache version: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadBook(name string) (*stats.BookStats, error) {
	raw, err := s.load(`SELECT record FROM books WHERE name = ?`, name)
	if err != nil || raw == nil {
		return nil, err
	}
	var bs stats.BookStats
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil, fmt.Errorf("decode cached book %s: %w", name, err)
	}
	return &bs, nil
}

func (s *Store) SaveBook(bs stats.BookStats) error {
	return s.save(`INSERT INTO books(name, record) VALUES(?, ?)
	    ON CONFLICT(name) DO UPDATE SET record = excluded.record`, bs.Name, bs)
}

func (s *Store) LoadSeries(name string) (*stats.SeriesStats, error) {
	raw, err := s.load(`SELECT record FROM series WHERE name = ?`, name)
	if err != nil || raw == nil {
		return nil, err
	}
	var ss stats.SeriesStats
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, fmt.Errorf("decode cached series %s: %w", name, err)
	}
	return &ss, nil
}

func (s *Store) SaveSeries(ss stats.SeriesStats) error {
	return s.save(`INSERT INTO series(name, record) VALUES(?, ?)
	    ON CONFLICT(name) DO UPDATE SET record = excluded.record`, ss.Name, ss)
}

func (s *Store) load(query, name string) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRow(query, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache row %s: %w", name, err)
	}
	return raw, nil
}

func (s *Store) save(query, name string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode cache row %s: %w", name, err)
	}
	if _, err := s.db.Exec(query, name, string(raw)); err != nil {
		return fmt.Errorf("write cache row %s: %w", name, err)
	}
	return nil
}
