// Package export provides the command for writing the catalog in other formats.
package export

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/emoji"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/save"
)

// AppContext defines the interface that the export command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the export command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var outPath string

	formats := make([]string, 0, len(save.Formats))
	for _, f := range save.Formats {
		formats = append(formats, f.String())
	}

	cmd := &cobra.Command{
		Use:     "export [" + strings.Join(formats, "|") + "]",
		GroupID: "core",
		Short:   "Export the catalog as text, json, yaml or markdown",
		Long: `Export writes every movie to stdout, or to a file with --out.

The text format is the data file format itself.`,
		Example: `  cinemap export markdown > movies.md
  cinemap export json --out movies.json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: formats,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			format, err := save.ParseFormat(name)
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			opts := []save.Option{save.WithFormat(format)}
			if outPath != "" {
				opts = append(opts, save.WithPath(outPath))
			} else {
				opts = append(opts, save.WithWriter(cmd.OutOrStdout()))
			}
			if err := cat.Export(opts...); err != nil {
				return err
			}

			app.Logger().Debug().
				Str("format", format.String()).
				Str("path", outPath).
				Int("movies", cat.Len()).
				Msg("Catalog exported")

			if outPath != "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d movies to %s\n", emoji.Success, cat.Len(), outPath)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")

	return cmd
}
