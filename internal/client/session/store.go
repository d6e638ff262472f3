// Package session holds the administrator's bearer token for the lifetime
// of the CLI and persists it between runs.
//
// The token is written once at login and read by every API call; logout
// clears the in-memory copy and the on-disk file wholesale. Components that
// need a token depend on the Source interface rather than on the Store, so
// tests can substitute a fixed token without touching shared state.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/rentadmin/internal/common"
)

// Source yields the credential attached to outbound requests.
type Source interface {
	// Token returns the current bearer token. When the operator has not
	// logged in it fails with common.ErrUnauthorized.
	Token() (string, error)
}

// StaticSource is a fixed-token Source for tests.
type StaticSource string

func (s StaticSource) Token() (string, error) {
	if s == "" {
		return "", common.ErrUnauthorized
	}
	return string(s), nil
}

// Store is a file-backed token holder. Safe for concurrent readers.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads a previously saved token from disk. A missing file just means
// the operator is logged out and is not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(data))
	s.mu.Unlock()
	return nil
}

func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", common.ErrUnauthorized
	}
	return s.token, nil
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Save stores the token in memory and on disk. The file is owner-readable
// only.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	s.token = token
	return nil
}

// Clear wipes the session: memory first, then the file. A file that never
// existed is fine.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
