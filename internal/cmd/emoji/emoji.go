// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added, deleted and exported movies.
	Success = "✓"

	// Error represents failures.
	Error = "✗"

	// Warning represents non-critical issues, such as skipped data file lines.
	Warning = "!"

	// Optional represents an empty value in a table cell.
	Optional = "-"

	// Info represents informational messages.
	Info = "i"

	// Favourite marks highly rated movies in wide output.
	Favourite = "★"
)
