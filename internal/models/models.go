// Package models holds shared data structures for download orchestration.
package models

import "github.com/Masterminds/semver/v3"

// MediaKind selects the kind of media a request targets.
type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// Quality selects the stream quality preference for video downloads.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityBest     Quality = "best"
)

// DownloadRequest describes one unit of requested work. Exactly one of
// URL or FilePath is set. A request never mutates after construction;
// binaries and target directories are resolved fresh at execution time.
type DownloadRequest struct {
	URL       string
	FilePath  string
	MediaKind MediaKind
	Quality   Quality
	TargetDir string
}

// ResolvedBinaries holds the resolved fetch/transcode tool locations
// for the current platform and deployment mode.
type ResolvedBinaries struct {
	FetchToolPath     string
	TranscodeToolPath string
	Packaged          bool
}

// JobOutcome is the terminal result of a single fetch-tool invocation.
type JobOutcome struct {
	Succeeded bool
	Kind      FailureKind
	ErrorMsg  string
}

// BatchResult aggregates the outcomes of a bulk download. It is
// finalized only after every launched job has settled.
type BatchResult struct {
	AllSucceeded    bool
	RejectedSources []string
}

// UpdateInfo is the result of one release check. Computed fresh on
// every check, never cached.
type UpdateInfo struct {
	LatestVersion   *semver.Version
	CurrentVersion  *semver.Version
	UpdateAvailable bool
}
