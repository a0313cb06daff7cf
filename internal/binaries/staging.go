package binaries

import (
	"os"
	"path/filepath"
	"strings"

	"ripper/internal/utils/logging"

	"github.com/google/uuid"
)

// Stage returns a space-free alias for a binary path. Some install
// locations ("Application Support", "Program Files") embed spaces that
// downstream argument parsing mishandles, so a symbolic link with a
// clean name is created in a scratch directory and returned instead.
//
// Best-effort: any failure falls back to the original path.
func Stage(path string) string {
	if !strings.Contains(path, " ") {
		return path
	}

	dir := filepath.Join(os.TempDir(), "ripper-bin-"+uuid.NewString()[:8])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logging.W("Could not create staging dir for %q: %v", path, err)
		return path
	}

	link := filepath.Join(dir, filepath.Base(path))
	if err := os.Symlink(path, link); err != nil {
		logging.W("Could not stage binary %q: %v", path, err)
		return path
	}

	logging.D("Staged binary %q -> %q", path, link)
	return link
}
