package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inventory-manager/internal/cache"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoSession is returned by SessionStore.Load when nothing was saved
var ErrNoSession = errors.New("no saved session")

// SessionStore persists the token pair and user between process restarts
type SessionStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

const sessionCacheKey = "inventory-manager:session"

// CacheSessionStore keeps the session in a cache.Cache (Redis or in-memory)
type CacheSessionStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCacheSessionStore(c cache.Cache, ttl time.Duration) *CacheSessionStore {
	return &CacheSessionStore{cache: c, ttl: ttl}
}

func (s *CacheSessionStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	if err := cache.GetJSON(ctx, s.cache, sessionCacheKey, &snap); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return Snapshot{}, ErrNoSession
		}
		return Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}
	return snap, nil
}

func (s *CacheSessionStore) Save(ctx context.Context, snap Snapshot) error {
	return cache.SetJSON(ctx, s.cache, sessionCacheKey, snap, s.ttl)
}

func (s *CacheSessionStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, sessionCacheKey)
}

// SQLiteSessionStore keeps the session in a single-row SQLite table
type SQLiteSessionStore struct {
	db *sql.DB
}

// NewSQLiteSessionStore opens (creating if needed) the database at path
func NewSQLiteSessionStore(path string) (*SQLiteSessionStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteSessionStore{db: db}, nil
}

func (s *SQLiteSessionStore) Load(ctx context.Context) (Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE id = 1`).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, ErrNoSession
		}
		return Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return snap, nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteSessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
