// Package contracts defines interfaces that decouple the gateway from
// concrete runner, batch, store and updater implementations.
package contracts

import (
	"context"
	"io"

	"ripper/internal/batch"
	"ripper/internal/models"
)

// BinaryResolver locates the external tool executables.
type BinaryResolver interface {
	Resolve() models.ResolvedBinaries
}

// JobRunner executes one download job.
type JobRunner interface {
	Run(ctx context.Context, req models.DownloadRequest, bins models.ResolvedBinaries, outputTemplate string) models.JobOutcome
}

// BatchProcessor parses a URL list stream and fans out jobs.
type BatchProcessor interface {
	Process(ctx context.Context, r io.Reader, action batch.Action) (models.BatchResult, error)
}

// PrefStore persists user preferences.
type PrefStore interface {
	SetDownloadDir(dir string) error
	DownloadDir() (string, error)
	ClearDownloadDir() error
}

// Updater checks for and applies application updates.
type Updater interface {
	Check(ctx context.Context) (models.UpdateInfo, error)
	Apply(ctx context.Context, notify func(status string)) error
}
