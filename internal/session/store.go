package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/errors"
)

// Store is the persisted session slot: one token string and one cached role,
// surviving process restarts. It is the only shared mutable client state.
type Store struct {
	path string
}

// sessionFile mirrors the browser client's persisted keys
type sessionFile struct {
	Token string `json:"jwt-token"`
	Role  string `json:"user-role"`
}

// NewStore creates a Store persisting to the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

func (s *Store) read() sessionFile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sessionFile{}
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return sessionFile{}
	}
	return f
}

func (s *Store) write(f sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "create session directory", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "encode session", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "write session file", err)
	}
	return nil
}

// Set stores a freshly issued token. Any cached role from a previous
// session is dropped; the role is re-derived by the resolver.
func (s *Store) Set(token string) error {
	return s.write(sessionFile{Token: token})
}

// SetRole caches the resolved role next to the current token. This is a
// read optimization only; the server remains the source of truth.
func (s *Store) SetRole(role api.Role) error {
	f := s.read()
	f.Role = string(role)
	return s.write(f)
}

// Get returns the stored token, or empty when no session exists
func (s *Store) Get() string {
	return s.read().Token
}

// Role returns the cached role, or empty when none was resolved yet
func (s *Store) Role() api.Role {
	return api.Role(s.read().Role)
}

// Clear removes the token and the cached role together, so a stale role
// can never leak into a later unauthenticated session. Clearing an absent
// session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionWrite, "remove session file", err)
	}
	return nil
}
