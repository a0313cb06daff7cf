// Package keys holds Viper key names used across the program.
package keys

// Terminal keys
const (
	OutputDir   string = "directory"
	BatchFile   string = "file"
	BestQuality string = "best-quality"
	Concurrency string = "concurrency-limit"
)

// Logging
const (
	DebugLevel string = "debug-level"
)
