// Package main is the entrypoint of Ripper.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ripper/internal/batch"
	"ripper/internal/binaries"
	"ripper/internal/cfg"
	"ripper/internal/domain/setup"
	"ripper/internal/downloads"
	"ripper/internal/gateway"
	"ripper/internal/store"
	"ripper/internal/update"
	"ripper/internal/utils/logging"
)

// version is overridden at build time via -ldflags.
var version = "0.0.0-dev"

// main is the main entrypoint of the program (duh!).
func main() {
	startTime := time.Now()

	if err := setup.InitCfgFilesDirs(); err != nil {
		fmt.Printf("Ripper exiting with error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.InitStore(setup.DBFilePath)
	if err != nil {
		fmt.Printf("Ripper exiting with error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.E("Failed to close preference store: %v", err)
		}
	}()

	resolver := newResolver()
	g := &gateway.Gateway{
		Resolver: resolver,
		Store:    st,
		Runner:   &downloads.Runner{},
		Batch:    &batch.Processor{},
		Updater:  update.New(version),
	}

	// Create cancellable context for shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cfg.InitCommands(g, version); err != nil {
		logging.E("Error: %v", err)
		os.Exit(1)
	}

	logBinaryDiagnostics(resolver)

	if err := cfg.Execute(ctx); err != nil {
		logging.E("Error: %v", err)
		os.Exit(1)
	}

	logging.D("Ripper finished in %.2f seconds", time.Since(startTime).Seconds())
}

// newResolver builds a binary resolver for the current deployment
// mode: packaged when a resource bundle sits next to the executable,
// development otherwise.
func newResolver() *binaries.Resolver {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return binaries.New(false, "", wd)
	}

	resources := resourcesDirFor(exe)
	if resources != "" {
		return binaries.New(true, resources, "")
	}

	wd, _ := os.Getwd()
	return binaries.New(false, "", wd)
}

// logBinaryDiagnostics reports tool availability at startup. Purely
// informational; a missing tool surfaces as a job failure later.
func logBinaryDiagnostics(r *binaries.Resolver) {
	fetch, transcode := r.Available()
	b := r.Resolve()
	if !fetch {
		logging.W("Fetch tool not found at %q; downloads will fail until it is installed", b.FetchToolPath)
	}
	if !transcode {
		logging.D("Transcode tool not found at %q; the fetch tool will use its own search", b.TranscodeToolPath)
	}
}
