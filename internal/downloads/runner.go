// Package downloads executes single fetch-tool download jobs.
package downloads

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"ripper/internal/domain/consts"
	"ripper/internal/models"
	"ripper/internal/utils/logging"
)

// Runner executes one download per call by invoking the fetch tool as
// an external process. It performs no retries; retry policy belongs to
// the caller.
type Runner struct {
	// Timeout overrides for tests; zero values fall back to the fixed
	// per-kind budgets.
	AudioTimeout time.Duration
	VideoTimeout time.Duration
}

// Run invokes the fetch tool for one request and normalizes every
// possible ending into a JobOutcome. The invocation races a hard
// wall-clock budget; on timeout the outcome is reported immediately and
// the child process group is killed best-effort in the background.
func (r *Runner) Run(ctx context.Context, req models.DownloadRequest, bins models.ResolvedBinaries, outputTemplate string) models.JobOutcome {
	selector := selectorFor(req.MediaKind, req.Quality)
	args := buildFetchArgs(req.URL, selector, outputTemplate, bins)

	ctx, cancel := context.WithTimeout(ctx, r.timeoutFor(req.MediaKind))
	defer cancel()

	cmd := exec.CommandContext(ctx, bins.FetchToolPath, args...)
	setProcGroup(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logging.D("Built fetch command for URL %q:\n%v", req.URL, cmd.String())

	if err := cmd.Start(); err != nil {
		return startFailure(err)
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		go killProcGroup(cmd)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logging.E("Fetch of %q exceeded its time budget", req.URL)
			return models.JobOutcome{
				Kind:     models.Timeout,
				ErrorMsg: "download exceeded its time budget",
			}
		}
		return models.JobOutcome{
			Kind:     models.InvocationFailure,
			ErrorMsg: ctx.Err().Error(),
		}

	case err := <-waitCh:
		if err != nil {
			return waitFailure(err, stderr.String())
		}
	}

	logging.S("Download complete for URL %q", req.URL)
	return models.JobOutcome{Succeeded: true}
}

func (r *Runner) timeoutFor(kind models.MediaKind) time.Duration {
	if kind == models.MediaAudio {
		if r.AudioTimeout > 0 {
			return r.AudioTimeout
		}
		return consts.AudioTimeout
	}
	if r.VideoTimeout > 0 {
		return r.VideoTimeout
	}
	return consts.VideoTimeout
}

// startFailure classifies errors from launching the process. A missing
// binary surfaces here, deferred from resolution time.
func startFailure(err error) models.JobOutcome {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return models.JobOutcome{
			Kind:     models.ToolNotFound,
			ErrorMsg: err.Error(),
		}
	}
	if strings.Contains(err.Error(), "no such file or directory") ||
		strings.Contains(err.Error(), "executable file not found") {
		return models.JobOutcome{
			Kind:     models.ToolNotFound,
			ErrorMsg: err.Error(),
		}
	}
	return models.JobOutcome{
		Kind:     models.InvocationFailure,
		ErrorMsg: err.Error(),
	}
}

// waitFailure normalizes a non-zero exit, carrying the tool's own
// diagnostic text verbatim when any was written.
func waitFailure(err error, stderrText string) models.JobOutcome {
	msg := strings.TrimSpace(stderrText)
	if msg == "" {
		msg = err.Error()
	}
	return models.JobOutcome{
		Kind:     models.InvocationFailure,
		ErrorMsg: msg,
	}
}
