package console

import (
	"io"

	"github.com/agentstation/cinemap/pkg/constants"
)

// ClearScreen writes the ANSI clear-screen sequence to w.
// The terminal behind w must understand ANSI escapes.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, constants.ClearScreenSequence)
	return err
}
