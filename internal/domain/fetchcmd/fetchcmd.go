// Package fetchcmd holds argument strings for fetch-tool invocations.
package fetchcmd

const (
	Format            = "-f"
	Output            = "-o"
	NoPlaylist        = "--no-playlist"
	RestrictFilenames = "--restrict-filenames"
	PreferFreeFormats = "--prefer-free-formats"
	UserAgent         = "--user-agent"
	Referer           = "--referer"
	FFmpegLocation    = "--ffmpeg-location"
)
