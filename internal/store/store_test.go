package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := InitStore(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("InitStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestDownloadDirRoundTrip tests set, read, overwrite and clear.
func TestDownloadDirRoundTrip(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	got, err := s.DownloadDir()
	if err != nil {
		t.Fatalf("DownloadDir: %v", err)
	}
	if got != "" {
		t.Errorf("fresh store returned %q, want empty", got)
	}

	if err := s.SetDownloadDir("/data/media"); err != nil {
		t.Fatalf("SetDownloadDir: %v", err)
	}
	if got, _ = s.DownloadDir(); got != "/data/media" {
		t.Errorf("DownloadDir = %q, want /data/media", got)
	}

	// Last writer wins.
	if err := s.SetDownloadDir("/data/other"); err != nil {
		t.Fatalf("SetDownloadDir: %v", err)
	}
	if got, _ = s.DownloadDir(); got != "/data/other" {
		t.Errorf("DownloadDir = %q, want /data/other", got)
	}

	if err := s.ClearDownloadDir(); err != nil {
		t.Fatalf("ClearDownloadDir: %v", err)
	}
	if got, _ = s.DownloadDir(); got != "" {
		t.Errorf("DownloadDir after clear = %q, want empty", got)
	}
}

// TestPreferenceSurvivesReopen verifies persistence across store
// instances.
func TestPreferenceSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := InitStore(path)
	if err != nil {
		t.Fatalf("InitStore: %v", err)
	}
	if err := s.SetDownloadDir("/keep/me"); err != nil {
		t.Fatalf("SetDownloadDir: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := InitStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.DownloadDir()
	if err != nil {
		t.Fatalf("DownloadDir: %v", err)
	}
	if got != "/keep/me" {
		t.Errorf("DownloadDir after reopen = %q, want /keep/me", got)
	}
}
