// Package binaries locates the external fetch and transcode tool
// executables for the current platform and deployment mode.
package binaries

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"ripper/internal/domain/consts"
	"ripper/internal/models"
	"ripper/internal/utils/logging"
)

// wellKnownDirs lists common package-manager install locations, probed
// in order during development runs. Only macOS has more than one
// conventional location worth probing.
var wellKnownDirs = map[string][]string{
	consts.PlatformDarwin: {"/opt/homebrew/bin", "/usr/local/bin"},
}

// Resolver locates tool binaries. Resolution is side-effect-free apart
// from read-only existence checks, and never fails: when no candidate
// exists the bare command name is returned and failure is deferred to
// invocation time.
type Resolver struct {
	Packaged     bool
	ResourcesDir string // resource bundle root of a packaged install
	ProjectDir   string // dev checkout root holding binaries/<platform>/

	goos   string
	exists func(string) bool

	once   sync.Once
	cached models.ResolvedBinaries
}

// New returns a resolver for the current process environment.
func New(packaged bool, resourcesDir, projectDir string) *Resolver {
	return &Resolver{
		Packaged:     packaged,
		ResourcesDir: resourcesDir,
		ProjectDir:   projectDir,
		goos:         runtime.GOOS,
		exists:       fileExists,
	}
}

// Resolve returns the tool locations, computing them once per resolver.
func (r *Resolver) Resolve() models.ResolvedBinaries {
	r.once.Do(func() {
		r.cached = models.ResolvedBinaries{
			FetchToolPath:     r.resolveTool(consts.FetchTool),
			TranscodeToolPath: r.resolveTool(consts.TranscodeTool),
			Packaged:          r.Packaged,
		}
		logging.D("Resolved binaries: fetch=%q transcode=%q packaged=%v",
			r.cached.FetchToolPath, r.cached.TranscodeToolPath, r.cached.Packaged)
	})
	return r.cached
}

// Available reports whether the resolved tool paths exist on disk.
// Purely diagnostic; absence is surfaced at invocation time, not here.
func (r *Resolver) Available() (fetch, transcode bool) {
	b := r.Resolve()
	return r.exists(b.FetchToolPath), r.exists(b.TranscodeToolPath)
}

func (r *Resolver) resolveTool(tool string) string {
	if r.exists == nil {
		r.exists = fileExists
	}
	if r.goos == "" {
		r.goos = runtime.GOOS
	}

	plat := platformKey(r.goos)
	exe := exeName(tool, r.goos)

	if r.Packaged {
		// The bundled path is authoritative; it is not probed before use.
		return Stage(filepath.Join(r.ResourcesDir, "bin", plat, exe))
	}

	// Project-local downloaded binaries.
	if r.ProjectDir != "" {
		local := filepath.Join(r.ProjectDir, "binaries", plat, exe)
		if r.exists(local) {
			return local
		}
	}

	// Well-known OS install locations.
	for _, dir := range wellKnownDirs[plat] {
		candidate := filepath.Join(dir, exe)
		if r.exists(candidate) {
			return candidate
		}
	}

	// Bare name, resolvable via the process search path.
	return exe
}

// platformKey maps a GOOS value onto the binary directory layout keys.
func platformKey(goos string) string {
	switch goos {
	case "windows":
		return consts.PlatformWin
	case "darwin":
		return consts.PlatformDarwin
	default:
		return consts.PlatformLinux
	}
}

func exeName(tool, goos string) string {
	if goos == "windows" {
		return tool + ".exe"
	}
	return tool
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
