package catalogs

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// SaveToFile writes every movie to path in catalog order, creating or
// truncating the file. On failure the catalog is left untouched.
func (c *Catalog) SaveToFile(path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("movies", len(c.movies)).
		Msg("Saved catalog")

	return nil
}

// Encode writes one record line per movie to w.
func (c *Catalog) Encode(w io.Writer) error {
	for _, m := range c.movies {
		if _, err := io.WriteString(w, FormatLine(m)); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	return nil
}

// FormatLine encodes a movie as a record line terminated by a newline.
// Values are written verbatim; a comma inside a value will not survive
// a reload.
func FormatLine(m *Movie) string {
	var b strings.Builder
	b.WriteString(m.title)
	b.WriteString(constants.FieldSeparator)
	b.WriteString(m.director)
	b.WriteString(constants.FieldSeparator)
	for _, actor := range m.actors {
		b.WriteString(actor)
		b.WriteString(constants.FieldSeparator)
	}
	for i := 0; i < constants.MaxActors-len(m.actors); i++ {
		b.WriteString(constants.FieldSeparator)
	}
	b.WriteString(strconv.Itoa(m.rating))
	b.WriteString("\n")
	return b.String()
}
