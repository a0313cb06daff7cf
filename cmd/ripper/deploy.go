package main

import (
	"os"
	"path/filepath"
)

// resourcesDirFor returns the resource bundle directory of a packaged
// install, or the empty string when the executable is not packaged.
// Packaged installs ship binaries under <exe dir>/resources/bin/.
func resourcesDirFor(exe string) string {
	resources := filepath.Join(filepath.Dir(exe), "resources")
	info, err := os.Stat(filepath.Join(resources, "bin"))
	if err != nil || !info.IsDir() {
		return ""
	}
	return resources
}
