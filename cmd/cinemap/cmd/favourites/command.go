// Package favourites provides the command for listing movies at or above a rating.
package favourites

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/output"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// AppContext defines the interface that the favourites command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	OutputFormat() string
	Logger() *zerolog.Logger
}

// NewCommand creates the favourites command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var minRating int

	cmd := &cobra.Command{
		Use:     "favourites",
		GroupID: "core",
		Aliases: []string{"favorites", "fav"},
		Short:   "List movies rated at or above a minimum",
		Example: `  cinemap favourites --min-rating 8`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minRating < constants.MinRating || minRating > constants.MaxRating {
				return errors.NewValidationError("min-rating", minRating,
					fmt.Sprintf("must be between %d and %d", constants.MinRating, constants.MaxRating))
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			found, err := cat.Search("", catalogs.SearchFavourite, minRating)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			if len(found) == 0 && format.IsTable() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No movies found above or equal to that rating.")
				return err
			}
			return output.FormatMovies(cmd.OutOrStdout(), found, format)
		},
	}

	cmd.Flags().IntVarP(&minRating, "min-rating", "r", constants.MinRating, "Minimum rating (1-10)")

	return cmd
}
