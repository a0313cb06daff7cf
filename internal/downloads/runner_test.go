//go:build !windows

package downloads

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ripper/internal/models"
)

// writeFakeTool writes an executable shell script standing in for the
// fetch tool.
func writeFakeTool(t *testing.T, script string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func audioRequest(url string) models.DownloadRequest {
	return models.DownloadRequest{URL: url, MediaKind: models.MediaAudio, Quality: models.QualityStandard}
}

// TestRunSuccess tests a clean zero-exit invocation.
func TestRunSuccess(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	bins := models.ResolvedBinaries{FetchToolPath: writeFakeTool(t, "exit 0")}

	got := r.Run(context.Background(), audioRequest("https://a/1"), bins, "/out/%(title)s-%(id)s.%(ext)s")
	if !got.Succeeded {
		t.Fatalf("outcome = %+v, want success", got)
	}
}

// TestRunInvocationFailure tests stderr capture on non-zero exit.
func TestRunInvocationFailure(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	bins := models.ResolvedBinaries{FetchToolPath: writeFakeTool(t, `echo "ERROR: unsupported URL" >&2; exit 1`)}

	got := r.Run(context.Background(), audioRequest("https://a/1"), bins, "/out/%(title)s-%(id)s.%(ext)s")
	if got.Succeeded {
		t.Fatal("expected failure")
	}
	if got.Kind != models.InvocationFailure {
		t.Errorf("kind = %q, want invocation failure", got.Kind)
	}
	if got.ErrorMsg != "ERROR: unsupported URL" {
		t.Errorf("error message = %q, want the tool's own diagnostic text", got.ErrorMsg)
	}
}

// TestRunToolNotFound tests a resolved path that does not exist at
// invocation time.
func TestRunToolNotFound(t *testing.T) {
	t.Parallel()

	r := &Runner{}
	bins := models.ResolvedBinaries{FetchToolPath: filepath.Join(t.TempDir(), "missing", "yt-dlp")}

	got := r.Run(context.Background(), audioRequest("https://a/1"), bins, "/out/%(title)s-%(id)s.%(ext)s")
	if got.Succeeded {
		t.Fatal("expected failure")
	}
	if got.Kind != models.ToolNotFound {
		t.Errorf("kind = %q, want tool not found", got.Kind)
	}
}

// TestRunTimeout tests that a tool which never finishes is reported as
// a timeout no later than the budget plus scheduling slack.
func TestRunTimeout(t *testing.T) {
	t.Parallel()

	r := &Runner{AudioTimeout: 150 * time.Millisecond}
	bins := models.ResolvedBinaries{FetchToolPath: writeFakeTool(t, "sleep 30")}

	start := time.Now()
	got := r.Run(context.Background(), audioRequest("https://a/1"), bins, "/out/%(title)s-%(id)s.%(ext)s")
	elapsed := time.Since(start)

	if got.Succeeded {
		t.Fatal("expected failure")
	}
	if got.Kind != models.Timeout {
		t.Errorf("kind = %q, want timeout", got.Kind)
	}
	if elapsed > 2*time.Second {
		t.Errorf("timeout reported after %v, want within budget plus slack", elapsed)
	}
}

// TestRunUnderBudget tests that a tool finishing inside the budget
// reports its own result rather than a timeout.
func TestRunUnderBudget(t *testing.T) {
	t.Parallel()

	r := &Runner{AudioTimeout: 5 * time.Second}
	bins := models.ResolvedBinaries{FetchToolPath: writeFakeTool(t, "exit 0")}

	got := r.Run(context.Background(), audioRequest("https://a/1"), bins, "/out/%(title)s-%(id)s.%(ext)s")
	if !got.Succeeded || got.Kind != models.FailureNone {
		t.Fatalf("outcome = %+v, want success", got)
	}
}
