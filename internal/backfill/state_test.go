package backfill

import (
	"os"
	"path/filepath"
	"testing"
)

func TestState_NewAndSave(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")

	s := &State{path: statePath}
	s.MarkProcessed("lifelog-001.json")
	s.MarkProcessed("lifelog-002.json")
	s.AnalysesWritten = 2
	s.FlagsFound = 5

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Reload and verify round trip.
	loaded, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(loaded.FilesProcessed) != 2 {
		t.Errorf("expected 2 processed files, got %d", len(loaded.FilesProcessed))
	}
	if loaded.AnalysesWritten != 2 || loaded.FlagsFound != 5 {
		t.Errorf("counters not preserved: %+v", loaded)
	}
	if !loaded.IsProcessed("lifelog-001.json") {
		t.Error("lifelog-001.json should be processed after reload")
	}
}

func TestState_LoadMissing(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "missing.json")

	s, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState on missing file failed: %v", err)
	}
	if len(s.FilesProcessed) != 0 {
		t.Errorf("fresh state should have no processed files")
	}
	if s.StartedAt.IsZero() {
		t.Error("fresh state should have StartedAt set")
	}
}

func TestState_IsProcessed(t *testing.T) {
	s := &State{}

	if s.IsProcessed("lifelog-001.json") {
		t.Error("lifelog-001 should not be processed yet")
	}

	s.MarkProcessed("lifelog-001.json")

	if !s.IsProcessed("lifelog-001.json") {
		t.Error("lifelog-001 should be processed")
	}
	if s.IsProcessed("lifelog-002.json") {
		t.Error("lifelog-002 should not be processed")
	}
}

func TestState_AddError(t *testing.T) {
	s := &State{}
	s.AddError("something went wrong")
	s.AddError("another error")

	if len(s.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(s.Errors))
	}
	if s.Errors[0] != "something went wrong" {
		t.Errorf("error[0] = %q", s.Errors[0])
	}
}

func TestState_SaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "nested", "dir", "state.json")

	s := &State{path: statePath}
	if err := s.Save(); err != nil {
		t.Fatalf("Save with nested dir failed: %v", err)
	}
	if _, err := os.Stat(statePath); err != nil {
		t.Fatalf("state file not created in nested dir: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home dir")
	}

	got := expandHome("~/test/path")
	want := filepath.Join(home, "test/path")
	if got != want {
		t.Errorf("expandHome(~/test/path) = %q, want %q", got, want)
	}

	// Non-tilde paths should pass through.
	got = expandHome("/absolute/path")
	if got != "/absolute/path" {
		t.Errorf("expandHome(/absolute/path) = %q", got)
	}
}
