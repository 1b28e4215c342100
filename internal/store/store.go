// Package store persists finished generations in SQLite: request
// metadata as queryable columns, the encoded schematic as a compressed
// blob.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no generation has the requested id.
var ErrNotFound = errors.New("store: generation not found")

// Record is one stored generation, schematic bytes included.
type Record struct {
	ID        string
	CreatedAt time.Time
	Structure string
	Style     string
	Seed      int64
	Width     int
	Height    int
	Length    int
	Blocks    int
	Entities  int
	OptsJSON  []byte
	Schematic []byte
}

// Summary is the blob-free projection of a Record used for listings.
type Summary struct {
	ID        string
	CreatedAt time.Time
	Structure string
	Style     string
	Seed      int64
	Width     int
	Height    int
	Length    int
	Blocks    int
}

// Store wraps a single-connection SQLite database. Reads run freely;
// writes serialize under a mutex, which is plenty for a request-rate
// workload.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open creates the database file (and its directory) if needed and
// prepares the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: zstd decoder: %w", err)
	}
	return &Store{db: db, enc: enc, dec: dec}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the append-heavy write pattern; NORMAL durability is
	// fine for an index that can be regenerated from options.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("store: pragma: %w", err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			structure TEXT NOT NULL,
			style TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			length INTEGER NOT NULL,
			blocks INTEGER NOT NULL,
			entities INTEGER NOT NULL,
			opts_json TEXT NOT NULL,
			schematic BLOB
		);`,
		`CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("store: schema: %w", err)
		}
	}
	return nil
}

// Put inserts one generation. A zero CreatedAt is stamped with the
// current UTC time; the schematic blob is zstd-compressed at rest.
func (s *Store) Put(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("store: record id must not be empty")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	blob := s.enc.EncodeAll(r.Schematic, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO generations
		 (id, created_at, structure, style, seed, width, height, length, blocks, entities, opts_json, schematic)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.Structure, r.Style, r.Seed,
		r.Width, r.Height, r.Length, r.Blocks, r.Entities, string(r.OptsJSON), blob,
	)
	if err != nil {
		return fmt.Errorf("store: put %s: %w", r.ID, err)
	}
	return nil
}

// Get returns one generation with the schematic decompressed.
func (s *Store) Get(id string) (Record, error) {
	var (
		r       Record
		created string
		opts    string
		blob    []byte
	)
	err := s.db.QueryRow(
		`SELECT id, created_at, structure, style, seed, width, height, length, blocks, entities, opts_json, schematic
		 FROM generations WHERE id = ?`, id,
	).Scan(&r.ID, &created, &r.Structure, &r.Style, &r.Seed,
		&r.Width, &r.Height, &r.Length, &r.Blocks, &r.Entities, &opts, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get %s: %w", id, err)
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, fmt.Errorf("store: get %s: bad timestamp %q: %w", id, created, err)
	}
	r.OptsJSON = []byte(opts)
	if len(blob) > 0 {
		r.Schematic, err = s.dec.DecodeAll(blob, nil)
		if err != nil {
			return Record{}, fmt.Errorf("store: get %s: decompress: %w", id, err)
		}
	}
	return r, nil
}

// Recent lists the newest generations, blob-free, newest first.
func (s *Store) Recent(n int) ([]Summary, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, structure, style, seed, width, height, length, blocks
		 FROM generations ORDER BY created_at DESC, rowid DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("store: recent: %w", err)
	}
	defer rows.Close()

	out := make([]Summary, 0, n)
	for rows.Next() {
		var (
			s       Summary
			created string
		)
		if err := rows.Scan(&s.ID, &created, &s.Structure, &s.Style, &s.Seed,
			&s.Width, &s.Height, &s.Length, &s.Blocks); err != nil {
			return nil, fmt.Errorf("store: recent: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("store: recent: bad timestamp %q: %w", created, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close releases the database and the compression contexts.
func (s *Store) Close() error {
	s.dec.Close()
	if err := s.enc.Close(); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}
