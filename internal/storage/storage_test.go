package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/storage"
)

func TestBaseDirOverride(t *testing.T) {
	t.Setenv("TIMETRACK_DIR", "/tmp/timetrack-test")
	base, err := storage.BaseDir()
	if err != nil {
		t.Fatalf("BaseDir: %v", err)
	}
	if base != "/tmp/timetrack-test" {
		t.Errorf("BaseDir = %q, want override", base)
	}

	t.Setenv("TIMETRACK_DIR", "")
	base, err = storage.BaseDir()
	if err != nil {
		t.Fatalf("BaseDir: %v", err)
	}
	if filepath.Base(base) != ".timetrack" {
		t.Errorf("BaseDir = %q, want ~/.timetrack", base)
	}
}

func TestSessionStoreAbsentMeansIdle(t *testing.T) {
	store := storage.NewSessionStore(t.TempDir())
	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if sess != nil {
		t.Errorf("Load = %+v, want nil", sess)
	}

	// Clearing an absent session is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing file: %v", err)
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := storage.NewSessionStore(t.TempDir())
	sess := &model.Session{
		Activity:           "deep work",
		StartedAt:          time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC),
		AccumulatedSeconds: 300,
		Notes:              []string{"first note"},
		Status:             model.StatusPaused,
	}

	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load = nil after Save")
	}
	if loaded.Activity != sess.Activity || loaded.Status != sess.Status {
		t.Errorf("loaded = %+v, want %+v", loaded, sess)
	}
	if loaded.Accumulated() != 5*time.Minute {
		t.Errorf("accumulated = %v, want 5m", loaded.Accumulated())
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load after Clear: %v", err)
	}
	if loaded != nil {
		t.Errorf("Load after Clear = %+v, want nil", loaded)
	}
}

func TestLogStoreRoundTrip(t *testing.T) {
	store := storage.NewLogStore(t.TempDir())

	entries, err := store.Load("2025-07-26")
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load = %d entries, want 0", len(entries))
	}

	entry := model.TimeEntry{
		Start:    time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC),
		Activity: "ECM",
		Notes:    []string{},
	}
	if err := store.Save("2025-07-26", []model.TimeEntry{entry}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("2025-07-26")
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Activity != "ECM" {
		t.Fatalf("loaded = %+v, want one ECM entry", loaded)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("LoadAll days = %d, want 1", len(all))
	}
}

func TestLogStoreDropsEmptyDay(t *testing.T) {
	store := storage.NewLogStore(t.TempDir())

	entry := model.TimeEntry{
		Start:    time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC),
		Activity: "a",
		Notes:    []string{},
	}
	if err := store.Save("2025-07-26", []model.TimeEntry{entry}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("2025-07-26", nil); err != nil {
		t.Fatalf("Save empty: %v", err)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("LoadAll after emptying day = %v, want no days", all)
	}
}

func TestCorruptFileBackedUp(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "timelog.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := storage.NewLogStore(base)
	if _, err := store.Load("2025-07-26"); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestConfigStoreDefaults(t *testing.T) {
	store := storage.NewConfigStore(t.TempDir())

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg.Aliases == nil {
		t.Fatal("Load: aliases map is nil")
	}

	cfg.Aliases["dw"] = "deep work"
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Resolve("dw") != "deep work" {
		t.Errorf("Resolve(dw) = %q, want %q", loaded.Resolve("dw"), "deep work")
	}
	if loaded.Resolve("unknown") != "unknown" {
		t.Errorf("Resolve(unknown) = %q, want pass-through", loaded.Resolve("unknown"))
	}
}

func TestMemoStoreRoundTrip(t *testing.T) {
	store := storage.NewMemoStore(t.TempDir())

	memos, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	memos.Memos = append(memos.Memos, model.Memo{
		Text:      "call the bank",
		CreatedAt: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC),
	})
	if err := store.Save(memos); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Memos) != 1 || loaded.Memos[0].Text != "call the bank" {
		t.Errorf("loaded = %+v, want one memo", loaded.Memos)
	}
}
