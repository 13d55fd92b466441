// Package list provides the command for listing every movie in the catalog.
package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/output"
	"github.com/agentstation/cinemap/pkg/catalogs"
)

// AppContext defines the interface that the list command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	OutputFormat() string
	Logger() *zerolog.Logger
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List all movies in the catalog",
		Long: `List displays every movie in the data file in insertion order.

Use --format to choose between table, wide (adds actors), json and yaml.`,
		Example: `  cinemap list                 # Table of all movies
  cinemap list -o wide         # Include actors
  cinemap list -o json         # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			movies := cat.All()
			app.Logger().Debug().Int("movies", len(movies)).Msg("Listing catalog")

			if len(movies) == 0 && format.IsTable() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No movies found.")
				return err
			}
			return output.FormatMovies(cmd.OutOrStdout(), movies, format)
		},
	}
}
