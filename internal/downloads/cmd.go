package downloads

import (
	"os"
	"path/filepath"

	"ripper/internal/domain/consts"
	"ripper/internal/domain/fetchcmd"
	"ripper/internal/models"
)

// selectorFor returns the fetch-tool format selector for a media kind
// and quality preference.
func selectorFor(kind models.MediaKind, quality models.Quality) string {
	if kind == models.MediaAudio {
		return consts.SelectorAudio
	}
	if quality == models.QualityBest {
		return consts.SelectorVideoBest
	}
	return consts.SelectorVideoStandard
}

// buildFetchArgs builds the argument list for one fetch-tool run. The
// transcode tool location is attached only when it is a real filesystem
// path that exists right now; a bare command name is left to the fetch
// tool's own default search.
func buildFetchArgs(url, selector, outputTemplate string, bins models.ResolvedBinaries) []string {
	args := make([]string, 0, 16)

	args = append(args,
		fetchcmd.Format, selector,
		fetchcmd.Output, outputTemplate)

	args = append(args,
		fetchcmd.NoPlaylist,
		fetchcmd.RestrictFilenames,
		fetchcmd.PreferFreeFormats)

	// Some hosts reject anonymous-looking requests.
	args = append(args,
		fetchcmd.UserAgent, consts.UserAgent,
		fetchcmd.Referer, consts.Referer)

	if p := bins.TranscodeToolPath; isRealPath(p) && fileExists(p) {
		args = append(args, fetchcmd.FFmpegLocation, p)
	}

	// Target URL goes last.
	args = append(args, url)

	return args
}

// isRealPath reports whether p is a filesystem path rather than a bare
// command name.
func isRealPath(p string) bool {
	return p != "" && filepath.Base(p) != p
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
