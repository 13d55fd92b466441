// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/pkg/catalogs"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/cinemap/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Catalog returns the catalog loaded from the data file, loading it
	// on first use. Every call returns the same instance.
	Catalog() (*catalogs.Catalog, error)

	// SaveCatalog writes the catalog back to the data file.
	SaveCatalog() error

	// DataFile returns the path of the data file.
	DataFile() string

	// ClearScreen reports whether interactive screens should be cleared.
	ClearScreen() bool

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
