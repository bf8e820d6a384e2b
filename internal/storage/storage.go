// Package storage persists all timetrack data as human-readable JSON files
// under a single base directory (~/.timetrack by default).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	stateFile  = "state.json"
	logFile    = "timelog.json"
	configFile = "config.json"
	memosFile  = "memos.json"
)

// BaseDir returns the root data directory. TIMETRACK_DIR overrides the
// default ~/.timetrack, which also keeps tests off the real data.
func BaseDir() (string, error) {
	if override, ok := os.LookupEnv("TIMETRACK_DIR"); ok {
		if dir := strings.TrimSpace(override); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".timetrack"), nil
}

// readJSON loads the file at path into v. A missing file reports
// (false, nil) and leaves v untouched. Corrupt JSON is backed up to
// path.corrupt and reported as an error.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return false, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return true, nil
}

// writeJSON atomically writes v as indented JSON: temp file then rename.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
