package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const stateFile = "session.json"

type state struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"user,omitempty"`

	// Older releases persisted the token under a second key. It is read
	// once for migration and never written back.
	LegacyToken string `json:"authToken,omitempty"`
}

// Store keeps the session token and user profile in a single JSON file
// under the state directory. It implements api.TokenSource.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, stateFile)}
}

func (s *Store) load() (state, error) {
	var st state
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, err
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return state{}, err
	}
	if st.Token == "" && st.LegacyToken != "" {
		st.Token = st.LegacyToken
	}
	st.LegacyToken = ""
	return st, nil
}

func (s *Store) save(st state) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Token returns the current session token, or "" for guests.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return ""
	}
	return st.Token
}

// Save persists the token and profile after a successful login.
func (s *Store) Save(token string, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(state{Token: token, Profile: profile})
}

// Clear drops all local credentials. Called on logout and on 401.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Resolve builds the capability session from whatever is on disk.
func (s *Store) Resolve() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return &Session{Role: RoleGuest}
	}
	return &Session{
		Role:    resolveRole(st.Token, st.Profile),
		Token:   st.Token,
		Profile: st.Profile,
	}
}
