package storage

import (
	"path/filepath"

	"github.com/bneiser/timetrack/internal/model"
)

// LogStore persists all completed entries in timelog.json, keyed by
// YYYY-MM-DD day.
type LogStore struct {
	base string
}

// NewLogStore returns a store rooted at the given data directory.
func NewLogStore(base string) *LogStore {
	return &LogStore{base: base}
}

func (s *LogStore) path() string {
	return filepath.Join(s.base, logFile)
}

func (s *LogStore) read() (model.TimeLog, error) {
	log := model.TimeLog{Days: map[string][]model.TimeEntry{}}
	if _, err := readJSON(s.path(), &log); err != nil {
		return model.TimeLog{}, err
	}
	if log.Days == nil {
		log.Days = map[string][]model.TimeEntry{}
	}
	return log, nil
}

// Load returns one day's entries in storage order. A missing day is an
// empty slice, not an error.
func (s *LogStore) Load(day string) ([]model.TimeEntry, error) {
	log, err := s.read()
	if err != nil {
		return nil, err
	}
	return log.Days[day], nil
}

// Save replaces one day's entries, dropping the key when the day
// becomes empty.
func (s *LogStore) Save(day string, entries []model.TimeEntry) error {
	log, err := s.read()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		delete(log.Days, day)
	} else {
		log.Days[day] = entries
	}
	return writeJSON(s.path(), log)
}

// LoadAll returns the full history keyed by day.
func (s *LogStore) LoadAll() (map[string][]model.TimeEntry, error) {
	log, err := s.read()
	if err != nil {
		return nil, err
	}
	return log.Days, nil
}
