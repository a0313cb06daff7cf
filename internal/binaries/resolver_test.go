package binaries

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"ripper/internal/domain/consts"
)

// TestResolveDevProjectLocal verifies project-local binaries win during
// development runs.
func TestResolveDevProjectLocal(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	binDir := filepath.Join(project, "binaries", consts.PlatformLinux)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, tool := range []string{consts.FetchTool, consts.TranscodeTool} {
		if err := os.WriteFile(filepath.Join(binDir, tool), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	r := &Resolver{ProjectDir: project, goos: "linux", exists: fileExists}
	got := r.Resolve()

	if got.FetchToolPath != filepath.Join(binDir, consts.FetchTool) {
		t.Errorf("fetch path = %q, want project-local binary", got.FetchToolPath)
	}
	if got.TranscodeToolPath != filepath.Join(binDir, consts.TranscodeTool) {
		t.Errorf("transcode path = %q, want project-local binary", got.TranscodeToolPath)
	}
	if got.Packaged {
		t.Error("dev resolution marked as packaged")
	}
}

// TestResolveDevWellKnownDirs verifies the macOS package-manager
// locations are probed in order when no project binary exists.
func TestResolveDevWellKnownDirs(t *testing.T) {
	t.Parallel()

	r := &Resolver{
		goos: "darwin",
		exists: func(path string) bool {
			return path == filepath.Join("/usr/local/bin", consts.FetchTool) ||
				path == filepath.Join("/usr/local/bin", consts.TranscodeTool)
		},
	}
	got := r.Resolve()

	if got.FetchToolPath != filepath.Join("/usr/local/bin", consts.FetchTool) {
		t.Errorf("fetch path = %q, want /usr/local/bin candidate", got.FetchToolPath)
	}
}

// TestResolveNeverFails verifies an empty filesystem still yields a
// resolvable (bare command) value rather than an error or empty string.
func TestResolveNeverFails(t *testing.T) {
	t.Parallel()

	r := &Resolver{
		goos:   "linux",
		exists: func(string) bool { return false },
	}
	got := r.Resolve()

	if got.FetchToolPath != consts.FetchTool {
		t.Errorf("fetch path = %q, want bare command name", got.FetchToolPath)
	}
	if got.TranscodeToolPath != consts.TranscodeTool {
		t.Errorf("transcode path = %q, want bare command name", got.TranscodeToolPath)
	}
}

// TestResolvePackagedLayout verifies the fixed per-platform bundle path.
func TestResolvePackagedLayout(t *testing.T) {
	t.Parallel()

	r := &Resolver{
		Packaged:     true,
		ResourcesDir: filepath.Join("/opt", "app", "resources"),
		goos:         "windows",
		exists:       func(string) bool { return false },
	}
	got := r.Resolve()

	want := filepath.Join("/opt", "app", "resources", "bin", consts.PlatformWin, consts.FetchTool+".exe")
	if got.FetchToolPath != want {
		t.Errorf("fetch path = %q, want %q", got.FetchToolPath, want)
	}
	if !got.Packaged {
		t.Error("packaged resolution not marked as packaged")
	}
}

// TestResolveCached verifies resolution is computed once per resolver.
func TestResolveCached(t *testing.T) {
	t.Parallel()

	calls := 0
	r := &Resolver{
		ProjectDir: "/proj",
		goos:       "linux",
		exists: func(string) bool {
			calls++
			return false
		},
	}
	r.Resolve()
	before := calls
	r.Resolve()
	if calls != before {
		t.Errorf("second Resolve probed the filesystem again (%d -> %d calls)", before, calls)
	}
}

// TestStage tests the space-free staging workaround.
func TestStage(t *testing.T) {
	t.Parallel()

	t.Run("clean path passes through", func(t *testing.T) {
		if got := Stage("/usr/local/bin/yt-dlp"); got != "/usr/local/bin/yt-dlp" {
			t.Errorf("Stage altered a clean path: %q", got)
		}
	})

	t.Run("spaced path gets a link", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation needs privileges on windows")
		}
		dir := t.TempDir()
		spaced := filepath.Join(dir, "Install Dir")
		if err := os.MkdirAll(spaced, 0o755); err != nil {
			t.Fatal(err)
		}
		orig := filepath.Join(spaced, "yt-dlp")
		if err := os.WriteFile(orig, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}

		got := Stage(orig)
		if strings.Contains(got, " ") {
			t.Errorf("staged path still contains a space: %q", got)
		}
		if got == orig {
			t.Fatalf("spaced path was not staged")
		}
		target, err := os.Readlink(got)
		if err != nil {
			t.Fatalf("staged path is not a symlink: %v", err)
		}
		if target != orig {
			t.Errorf("link target = %q, want %q", target, orig)
		}
	})

	t.Run("failure falls back to original", func(t *testing.T) {
		// Nonexistent source: link creation may still succeed on unix
		// (dangling links are legal), so force failure via an absurd
		// temp dir is not portable. Instead verify the contract shape:
		// Stage never returns empty.
		if got := Stage("/no such/dir/yt-dlp"); got == "" {
			t.Error("Stage returned an empty path")
		}
	})
}
