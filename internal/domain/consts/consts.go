// Package consts holds global, unchanging values.
package consts

import "time"

// External tool executable names.
const (
	FetchTool     = "yt-dlp"
	TranscodeTool = "ffmpeg"
)

// Platform keys used for binary directory layouts (matches the layout
// produced by the binary download scripts: bin/<platform>/<tool>).
const (
	PlatformWin    = "win32"
	PlatformDarwin = "darwin"
	PlatformLinux  = "linux"
)

// Format selectors passed to the fetch tool.
const (
	SelectorAudio         = "bestaudio[ext=m4a]/bestaudio"
	SelectorVideoStandard = "bestvideo[height<=1080][vcodec^=avc1]+bestaudio[ext=m4a]/best"
	SelectorVideoBest     = "bestvideo+bestaudio/best"
)

// Output filename template. The ID token disambiguates titles which
// collide after filename restriction, preventing silent overwrites.
const FilenameSyntax = "%(title)s-%(id)s.%(ext)s"

// Batch subdirectory labels for bulk downloads.
const (
	BatchLabelAudio = "audio"
	BatchLabelVideo = "video"
)

// Wall-clock budgets for a single fetch-tool invocation.
const (
	AudioTimeout = 5 * time.Minute
	VideoTimeout = 10 * time.Minute
)

// Request headers sent with every fetch-tool invocation. Some upstream
// hosts reject requests carrying no browser-looking identity.
const (
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	Referer   = "https://www.youtube.com"
)

// Release endpoints for self-update.
const (
	ReleaseOwner     = "AnthonyGress"
	ReleaseRepo      = "Youtube-Downloader"
	ReleaseAPIBase   = "https://api.github.com"
	InstallScriptURL = "https://raw.githubusercontent.com/AnthonyGress/Youtube-Downloader/main/install.sh"
)

// UpdateSubdir is the folder created inside the user's Downloads
// directory to hold a freshly downloaded Windows installer.
const UpdateSubdir = "Youtube-Downloader-Update"

// Lifecycle status strings reported to callers during self-update.
const (
	StatusStartingUpdate = "starting update"
	StatusUpdateComplete = "update complete"
	StatusWinDownloaded  = "win update downloaded"
	StatusRestarting     = "restarting"
)
