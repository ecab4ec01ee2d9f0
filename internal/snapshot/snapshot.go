// Package snapshot persists the last successful listing of each entity type
// to a local SQLite database, so offline listing and JSONL export work
// without the API.
package snapshot

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shopfront-io/shopfront/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

const dbFileName = "shopfront.db"

// ErrNoSnapshot is returned by Load when no listing of the entity type has
// been saved yet.
var ErrNoSnapshot = errors.New("no snapshot for entity")

// Store persists entity collections to SQLite in the data directory.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the data directory if needed, opens the snapshot database, and
// applies the schema. The caller must Close the store when done.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save replaces the stored listing for entity with records, preserving their
// order, and stamps the fetch time. The replacement is transactional: a
// failed save leaves the previous snapshot intact.
func (s *Store) Save(entity string, records []types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.New("snapshot store is closed")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE entity = ?`, entity); err != nil {
		return fmt.Errorf("clear %s: %w", entity, err)
	}
	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record %d: %w", i, err)
		}
		_, err = tx.Exec(
			`INSERT OR REPLACE INTO records (entity, id, position, payload) VALUES (?, ?, ?, ?)`,
			entity, rec.ID(), i, string(payload),
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", rec.ID(), err)
		}
	}
	_, err = tx.Exec(
		`INSERT OR REPLACE INTO fetches (entity, fetched_at, count) VALUES (?, ?, ?)`,
		entity, time.Now().UTC().Format(time.RFC3339Nano), len(records),
	)
	if err != nil {
		return fmt.Errorf("stamp fetch: %w", err)
	}

	return tx.Commit()
}

// Load returns the stored listing for entity in its saved order, with the
// time it was fetched. Returns ErrNoSnapshot when the entity has never been
// saved.
func (s *Store) Load(entity string) ([]types.Record, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, time.Time{}, errors.New("snapshot store is closed")
	}

	var stamp string
	var count int
	err := s.db.QueryRow(`SELECT fetched_at, count FROM fetches WHERE entity = ?`, entity).
		Scan(&stamp, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read fetch stamp: %w", err)
	}
	fetchedAt, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fetch stamp: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT payload FROM records WHERE entity = ? ORDER BY position`, entity)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]types.Record, 0, count)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan record: %w", err)
		}
		var rec types.Record
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			// A corrupt row is skipped rather than failing the whole load.
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate records: %w", err)
	}

	return records, fetchedAt, nil
}

// Entities lists the entity types that have a stored snapshot.
func (s *Store) Entities() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errors.New("snapshot store is closed")
	}

	rows, err := s.db.Query(`SELECT entity FROM fetches ORDER BY entity`)
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ExportJSONL writes the stored listing for entity to path as JSON Lines,
// one record per line, using an atomic replace.
func (s *Store) ExportJSONL(entity, path string) error {
	records, _, err := s.Load(entity)
	if err != nil {
		return err
	}

	lines := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record %s: %w", rec.ID(), err)
		}
		lines = append(lines, line)
	}
	return writeJSONL(path, lines)
}

// ImportJSONL replaces the stored listing for entity with the records read
// from a JSONL file. Lines without an id are skipped.
func (s *Store) ImportJSONL(entity, path string) (int, error) {
	lines, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	records := make([]types.Record, 0, len(lines))
	for _, line := range lines {
		var rec types.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.ID() == "" {
			continue
		}
		records = append(records, rec)
	}
	if err := s.Save(entity, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
