// Package constants provides shared constants used throughout the cinemap codebase.
// This includes record limits, file permissions, and the data file layout
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Record limits
const (
	// MinRating is the lowest accepted movie rating
	MinRating = 1

	// MaxRating is the highest accepted movie rating
	MaxRating = 10

	// MaxActors is the number of actor slots a record holds
	MaxActors = 3
)

// Data file layout
const (
	// DefaultDataFile is the data file used when none is configured
	DefaultDataFile = "myvideos.txt"

	// FieldSeparator separates fields within a record line
	FieldSeparator = ","

	// RecordFields is the number of fields in a record line:
	// title, director, three actor slots and the rating.
	RecordFields = 2 + MaxActors + 1
)

// Terminal constants
const (
	// ClearScreenSequence is the ANSI sequence that clears the terminal
	ClearScreenSequence = "\033[2J"

	// MenuSeparator is printed between a menu title and its options
	MenuSeparator = "============================"
)

// Timeout constants
const (
	// ShutdownTimeout bounds how long the CLI waits for a save after a signal
	ShutdownTimeout = 5 * time.Second
)

// Default config locations
const (
	// ConfigFileName is the config file name searched in home and working directories
	ConfigFileName = ".cinemap"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "CINEMAP"
)
