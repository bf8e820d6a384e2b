package storage

import (
	"path/filepath"

	"github.com/bneiser/timetrack/internal/model"
)

// ConfigStore persists the alias table in config.json.
type ConfigStore struct {
	base string
}

// NewConfigStore returns a store rooted at the given data directory.
func NewConfigStore(base string) *ConfigStore {
	return &ConfigStore{base: base}
}

func (s *ConfigStore) path() string {
	return filepath.Join(s.base, configFile)
}

// Load reads the config, filling zero-value fields so callers always
// get a usable Config.
func (s *ConfigStore) Load() (model.Config, error) {
	var cfg model.Config
	if _, err := readJSON(s.path(), &cfg); err != nil {
		return model.Config{}, err
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	return cfg, nil
}

// Save writes the config atomically.
func (s *ConfigStore) Save(cfg model.Config) error {
	return writeJSON(s.path(), cfg)
}

// MemoStore persists global memos in memos.json.
type MemoStore struct {
	base string
}

// NewMemoStore returns a store rooted at the given data directory.
func NewMemoStore(base string) *MemoStore {
	return &MemoStore{base: base}
}

func (s *MemoStore) path() string {
	return filepath.Join(s.base, memosFile)
}

// Load reads all memos in insertion order.
func (s *MemoStore) Load() (model.MemoList, error) {
	var memos model.MemoList
	if _, err := readJSON(s.path(), &memos); err != nil {
		return model.MemoList{}, err
	}
	return memos, nil
}

// Save writes the memo list atomically.
func (s *MemoStore) Save(memos model.MemoList) error {
	return writeJSON(s.path(), memos)
}
