// Package session persists client-local state (credential token, user
// snapshot, theme preference) and decides route reachability from it.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Sharma7422/fintrack/internal/model"
)

// Keys under which local state is stored. All values are strings, like
// the browser storage this stands in for.
const (
	keyToken = "token"
	keyUser  = "user"
	keyTheme = "theme"
)

// Storage is a keyed-string store backed by a local SQLite file. No value
// expires; entries live until explicitly removed.
type Storage struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStorage opens (or creates) the local state database at path.
func NewStorage(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping state database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS local_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or "" when absent.
func (s *Storage) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM local_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read state key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Storage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO local_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write state key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Storage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM local_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove state key %q: %w", key, err)
	}
	return nil
}

// SaveSession persists a session wholesale, replacing any previous one.
func (s *Storage) SaveSession(sess model.Session) error {
	snapshot, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	if err := s.Set(keyToken, sess.Token); err != nil {
		return err
	}
	return s.Set(keyUser, string(snapshot))
}

// LoadSession returns the persisted session, or nil when none exists. A
// corrupt user snapshot degrades to a token-only session rather than an
// error: the guard only cares about the token.
func (s *Storage) LoadSession() (*model.Session, error) {
	token, err := s.Get(keyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	sess := model.Session{Token: token}
	snapshot, err := s.Get(keyUser)
	if err == nil && snapshot != "" {
		_ = json.Unmarshal([]byte(snapshot), &sess.User)
	}
	return &sess, nil
}

// ClearSession destroys the persisted session. Theme preference survives
// logout.
func (s *Storage) ClearSession() error {
	if err := s.Remove(keyToken); err != nil {
		return err
	}
	return s.Remove(keyUser)
}

// Token implements gateway.TokenSource. Failures read as "no session";
// the next request simply goes out unauthenticated.
func (s *Storage) Token() string {
	token, err := s.Get(keyToken)
	if err != nil {
		return ""
	}
	return token
}

// Theme returns the persisted theme preference, or "" when unset.
func (s *Storage) Theme() string {
	theme, err := s.Get(keyTheme)
	if err != nil {
		return ""
	}
	return theme
}

// SetTheme persists the theme preference.
func (s *Storage) SetTheme(theme string) error {
	return s.Set(keyTheme, theme)
}
