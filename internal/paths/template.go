// Package paths builds output path templates for fetch-tool invocations.
package paths

import (
	"os"
	"path/filepath"

	"ripper/internal/domain/consts"
)

// Build returns an output path template rooted at targetDir, or at the
// user's default Downloads directory when targetDir is empty. A
// non-empty batchLabel is inserted as an immediate subdirectory of the
// root. The trailing template carries title, id and extension tokens;
// the id token is what keeps same-titled media from overwriting each
// other after filename restriction.
//
// No directory is created here; the fetch tool creates the final
// directory itself.
func Build(targetDir, batchLabel string) string {
	root := targetDir
	if root == "" {
		root = DefaultDownloadDir()
	}

	if batchLabel != "" {
		return filepath.Join(root, batchLabel, consts.FilenameSyntax)
	}
	return filepath.Join(root, consts.FilenameSyntax)
}

// DefaultDownloadDir returns the platform's user Downloads directory.
// Falls back to the working directory if no home directory resolves.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
