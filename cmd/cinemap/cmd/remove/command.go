// Package remove provides the command for removing a movie by title.
package remove

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/emoji"
	"github.com/agentstation/cinemap/internal/console"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

// AppContext defines the interface that the delete command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	SaveCatalog() error
	ClearScreen() bool
	Logger() *zerolog.Logger
}

// NewCommand creates the delete command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <title>",
		GroupID: "management",
		Aliases: []string{"rm"},
		Short:   "Delete a movie by title",
		Long: `Delete removes the first movie whose title matches, ignoring case,
and saves the data file. You are asked to confirm unless --yes is given.`,
		Example: `  cinemap delete Matrix
  cinemap delete "inside out" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			movie, ok := cat.FindByTitle(args[0])
			if !ok {
				return errors.NewNotFoundError("movie", args[0])
			}

			if !yes {
				confirmed, err := confirm(cmd, app, movie)
				if err != nil {
					return err
				}
				if !confirmed {
					_, err := fmt.Fprint(cmd.OutOrStdout(), "\nOk. movie won't be deleted.\n")
					return err
				}
			}

			cat.Delete(movie)
			if err := app.SaveCatalog(); err != nil {
				return err
			}

			ctx := logging.WithFields(logging.WithLogger(cmd.Context(), app.Logger()), map[string]any{
				"movie":     movie.Title(),
				"confirmed": !yes,
			})
			logging.Ctx(ctx).Debug().Msg("Movie deleted")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", emoji.Success, movie)
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func confirm(cmd *cobra.Command, app AppContext, movie *catalogs.Movie) (bool, error) {
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithClearScreen(app.ClearScreen()))
	con.Print("\n" + movie.Describe())

	menu, err := console.NewMenu(fmt.Sprintf("Are you sure you want to delete: %s ?", movie.Title()), "Yes", "No")
	if err != nil {
		return false, err
	}
	choice, err := con.Select(menu, "Please choose an option between 1 and 2: ")
	if err != nil {
		return false, err
	}
	return choice == 1, nil
}
