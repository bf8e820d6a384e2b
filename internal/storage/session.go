package storage

import (
	"os"
	"path/filepath"

	"github.com/bneiser/timetrack/internal/model"
)

// SessionStore persists the single live session in state.json.
// An absent file means no session is active.
type SessionStore struct {
	base string
}

// NewSessionStore returns a store rooted at the given data directory.
func NewSessionStore(base string) *SessionStore {
	return &SessionStore{base: base}
}

func (s *SessionStore) path() string {
	return filepath.Join(s.base, stateFile)
}

// Load reads the live session, or nil when none is active.
func (s *SessionStore) Load() (*model.Session, error) {
	var sess model.Session
	found, err := readJSON(s.path(), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the live session atomically.
func (s *SessionStore) Save(sess *model.Session) error {
	return writeJSON(s.path(), sess)
}

// Clear removes the persisted session. Clearing an already absent
// session is not an error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
