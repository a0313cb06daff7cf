// Package gateway is the request/response boundary of the download
// orchestration core. One method per channel; no transport assumptions.
package gateway

import (
	"context"
	"fmt"
	"os"

	"ripper/internal/contracts"
	"ripper/internal/domain/consts"
	"ripper/internal/models"
	"ripper/internal/paths"
	"ripper/internal/utils/logging"
)

// Request is the payload accepted on the audio and video channels.
// Exactly one of URL or File must be set.
type Request struct {
	URL         string
	File        string
	Directory   string
	BestQuality bool
}

// Response is the normalized reply for the download channels.
type Response struct {
	Message      string
	URLsRejected []string
	Err          string
}

// Success reports whether the request fully succeeded.
func (r Response) Success() bool {
	return r.Err == "" && len(r.URLsRejected) == 0
}

// Gateway dispatches structured requests to the job runner or the
// batch processor. All binary and directory state is read fresh at
// dispatch time, never embedded in queued requests.
type Gateway struct {
	Resolver contracts.BinaryResolver
	Store    contracts.PrefStore
	Runner   contracts.JobRunner
	Batch    contracts.BatchProcessor
	Updater  contracts.Updater
}

// Audio handles the audio-download channel.
func (g *Gateway) Audio(ctx context.Context, req Request) Response {
	return g.dispatch(ctx, req, models.MediaAudio, models.QualityStandard)
}

// Video handles the video-download channel.
func (g *Gateway) Video(ctx context.Context, req Request) Response {
	quality := models.QualityStandard
	if req.BestQuality {
		quality = models.QualityBest
	}
	return g.dispatch(ctx, req, models.MediaVideo, quality)
}

// SelectDirectory handles the select-directory channel. An empty path
// clears the persisted preference.
func (g *Gateway) SelectDirectory(path string) Response {
	if g.Store == nil {
		return Response{Err: "no preference store configured"}
	}
	if path == "" {
		if err := g.Store.ClearDownloadDir(); err != nil {
			return Response{Err: err.Error()}
		}
		return Response{Message: "success"}
	}
	if err := g.Store.SetDownloadDir(path); err != nil {
		return Response{Err: err.Error()}
	}
	return Response{Message: "success"}
}

// Lifecycle handles the lifecycle channel. Status updates stream
// through notify as the command progresses.
func (g *Gateway) Lifecycle(ctx context.Context, command string, notify func(status string)) error {
	if notify == nil {
		notify = func(string) {}
	}

	switch command {
	case "update":
		notify(consts.StatusStartingUpdate)
		info, err := g.Updater.Check(ctx)
		if err != nil {
			return err
		}
		if !info.UpdateAvailable {
			notify(consts.StatusUpdateComplete)
			return nil
		}
		if err := g.Updater.Apply(ctx, notify); err != nil {
			return err
		}
		notify(consts.StatusUpdateComplete)
		return nil

	case "restart":
		notify(consts.StatusRestarting)
		return nil

	default:
		return fmt.Errorf("unknown lifecycle command %q", command)
	}
}

// dispatch validates the request and routes it to single or bulk
// handling.
func (g *Gateway) dispatch(ctx context.Context, req Request, kind models.MediaKind, quality models.Quality) Response {
	if (req.URL == "") == (req.File == "") {
		return Response{Err: models.ErrInvalidRequest.Error()}
	}

	if req.URL != "" {
		return g.single(ctx, req, kind, quality)
	}
	return g.bulk(ctx, req, kind, quality)
}

func (g *Gateway) single(ctx context.Context, req Request, kind models.MediaKind, quality models.Quality) Response {
	bins := g.Resolver.Resolve()
	tmpl := paths.Build(g.targetDir(req.Directory), "")

	outcome := g.Runner.Run(ctx, models.DownloadRequest{
		URL:       req.URL,
		MediaKind: kind,
		Quality:   quality,
		TargetDir: req.Directory,
	}, bins, tmpl)

	if !outcome.Succeeded {
		return Response{Err: outcome.ErrorMsg}
	}
	return Response{Message: "success"}
}

func (g *Gateway) bulk(ctx context.Context, req Request, kind models.MediaKind, quality models.Quality) Response {
	f, err := os.Open(req.File)
	if err != nil {
		return Response{Err: fmt.Sprintf("could not open batch file: %v", err)}
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close batch file %q: %v", req.File, err)
		}
	}()

	label := consts.BatchLabelVideo
	if kind == models.MediaAudio {
		label = consts.BatchLabelAudio
	}

	bins := g.Resolver.Resolve()

	result, err := g.Batch.Process(ctx, f, func(ctx context.Context, url string) bool {
		// Directory preference is re-read per launched job, so a change
		// made mid-batch affects later launches without touching
		// already-running ones.
		tmpl := paths.Build(g.targetDir(req.Directory), label)
		outcome := g.Runner.Run(ctx, models.DownloadRequest{
			URL:       url,
			MediaKind: kind,
			Quality:   quality,
			TargetDir: req.Directory,
		}, bins, tmpl)
		return outcome.Succeeded
	})
	if err != nil {
		return Response{Err: err.Error()}
	}

	if !result.AllSucceeded {
		return Response{URLsRejected: result.RejectedSources}
	}
	return Response{Message: "success"}
}

// targetDir resolves the output root for one template build: request
// directory first, then the persisted preference, else empty (the
// templater falls back to the platform Downloads directory).
func (g *Gateway) targetDir(requestDir string) string {
	if requestDir != "" {
		return requestDir
	}
	if g.Store == nil {
		return ""
	}
	dir, err := g.Store.DownloadDir()
	if err != nil {
		logging.W("Could not read persisted download directory: %v", err)
		return ""
	}
	return dir
}
