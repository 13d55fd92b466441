// Package search provides the command for finding movies by title or director.
package search

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/output"
	"github.com/agentstation/cinemap/pkg/catalogs"
)

// AppContext defines the interface that the search command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	OutputFormat() string
	Logger() *zerolog.Logger
}

// NewCommand creates the search command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var title, director string

	cmd := &cobra.Command{
		Use:     "search",
		GroupID: "core",
		Aliases: []string{"find"},
		Short:   "Search movies by title or director",
		Long: `Search finds movies whose title or director equals the query,
ignoring case.`,
		Example: `  cinemap search --title "the matrix"
  cinemap search --director docter -o wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, query := catalogs.SearchTitle, title
			if cmd.Flags().Changed("director") {
				key, query = catalogs.SearchDirector, director
			}
			return run(cmd, app, key, strings.TrimSpace(query))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Match movies with this title")
	cmd.Flags().StringVar(&director, "director", "", "Match movies by this director")
	cmd.MarkFlagsMutuallyExclusive("title", "director")
	cmd.MarkFlagsOneRequired("title", "director")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, key catalogs.SearchKey, query string) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	found, err := cat.Search(query, key, 0)
	if err != nil {
		return err
	}

	app.Logger().Debug().
		Str("key", key.String()).
		Str("query", query).
		Int("matches", len(found)).
		Msg("Search complete")

	format := output.Format(app.OutputFormat())
	if len(found) == 0 && format.IsTable() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No movies found.")
		return err
	}
	return output.FormatMovies(cmd.OutOrStdout(), found, format)
}
