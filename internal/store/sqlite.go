package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements RecordStore using SQLite. Vectors are stored as
// little-endian float32 blobs.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS embedding_records (
		entry_id TEXT PRIMARY KEY,
		vector BLOB NOT NULL,
		content_hash TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_updated_at ON embedding_records(updated_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the record for entryID, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, entryID string) (*EmbeddingRecord, error) {
	rec := &EmbeddingRecord{EntryID: entryID}
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT vector, content_hash, updated_at FROM embedding_records WHERE entry_id = ?`,
		entryID,
	).Scan(&blob, &rec.ContentHash, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	rec.Vector = decodeVector(blob)
	return rec, nil
}

// Upsert inserts or overwrites the record for rec.EntryID.
func (s *SQLiteStore) Upsert(ctx context.Context, rec *EmbeddingRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO embedding_records (entry_id, vector, content_hash, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(entry_id) DO UPDATE SET
			vector = excluded.vector,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at`,
		rec.EntryID, encodeVector(rec.Vector), rec.ContentHash, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// List returns all records ordered by entry id.
func (s *SQLiteStore) List(ctx context.Context) ([]*EmbeddingRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, vector, content_hash, updated_at FROM embedding_records ORDER BY entry_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*EmbeddingRecord
	for rows.Next() {
		rec := &EmbeddingRecord{}
		var blob []byte
		var updatedAt time.Time
		if err := rows.Scan(&rec.EntryID, &blob, &rec.ContentHash, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Vector = decodeVector(blob)
		rec.UpdatedAt = updatedAt
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM embedding_records`).Scan(&count)
	return count, err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeVector(v []float32) []byte {
	const size = 4
	out := make([]byte, len(v)*size)
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*size:(i+1)*size], math.Float32bits(f))
	}
	return out
}

func decodeVector(b []byte) []float32 {
	const size = 4
	out := make([]float32, len(b)/size)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*size : (i+1)*size]))
	}
	return out
}
