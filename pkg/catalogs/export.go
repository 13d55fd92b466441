package catalogs

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/save"
)

// Records returns the exported snapshot of every movie in catalog order.
func (c *Catalog) Records() []MovieRecord {
	records := make([]MovieRecord, 0, len(c.movies))
	for _, m := range c.movies {
		records = append(records, m.Record())
	}
	return records
}

// Export writes the catalog in the configured format. A writer takes
// precedence over a path; one of them must be set.
func (c *Catalog) Export(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format().String(), "unsupported export format")
	}

	w := options.Writer()
	if w == nil {
		if options.Path() == "" {
			return &errors.ConfigError{
				Component: "export",
				Message:   "no writer or path configured",
			}
		}

		var buf bytes.Buffer
		if err := c.export(&buf, options.Format()); err != nil {
			return err
		}
		if err := os.WriteFile(options.Path(), buf.Bytes(), constants.FilePermissions); err != nil {
			return errors.WrapIO("write", options.Path(), err)
		}
		return nil
	}

	return c.export(w, options.Format())
}

func (c *Catalog) export(w io.Writer, format save.Format) error {
	switch format {
	case save.FormatJSON:
		return c.exportJSON(w)
	case save.FormatYAML:
		return c.exportYAML(w)
	case save.FormatMarkdown:
		return c.exportMarkdown(w)
	default:
		return c.Encode(w)
	}
}

func (c *Catalog) exportJSON(w io.Writer) error {
	data, err := json.MarshalIndent(c.Records(), "", "  ")
	if err != nil {
		return errors.WrapResource("export", "catalog", "json", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

func (c *Catalog) exportYAML(w io.Writer) error {
	data, err := yaml.MarshalWithOptions(c.Records(), yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return errors.WrapResource("export", "catalog", "yaml", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

func (c *Catalog) exportMarkdown(w io.Writer) error {
	doc := md.NewMarkdown(w).H1("Movies")

	if len(c.movies) == 0 {
		doc.PlainText("No movies.")
	} else {
		rows := make([][]string, 0, len(c.movies))
		for _, m := range c.movies {
			rows = append(rows, []string{
				m.title,
				m.director,
				strings.Join(m.actors, ", "),
				strconv.Itoa(m.rating),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Title", "Director", "Actors", "Rating"},
			Rows:   rows,
		})
	}

	if err := doc.Build(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}
