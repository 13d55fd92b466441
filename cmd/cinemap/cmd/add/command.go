// Package add provides the command for adding a movie to the catalog.
package add

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/internal/cmd/emoji"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// AppContext defines the interface that the add command needs from the app.
type AppContext interface {
	Catalog() (*catalogs.Catalog, error)
	SaveCatalog() error
	Logger() *zerolog.Logger
}

// Flags holds the add command flags.
type Flags struct {
	Title    string
	Director string
	Actors   []string
	Rating   int
}

// NewCommand creates the add command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "management",
		Short:   "Add a movie to the catalog",
		Long: `Add validates a new movie, appends it to the catalog and saves
the data file. Titles must be unique, ignoring case.`,
		Example: `  cinemap add --title Matrix --director Wachowski --actor Neo --rating 9
  cinemap add --title Up --director Docter --rating 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Title, "title", "", "Movie title (required)")
	cmd.Flags().StringVar(&flags.Director, "director", "", "Movie director (required)")
	cmd.Flags().StringArrayVar(&flags.Actors, "actor", nil, "Actor name, repeat up to 3 times")
	cmd.Flags().IntVar(&flags.Rating, "rating", 0, "Rating from 1 to 10 (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("director")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *Flags) error {
	if len(flags.Actors) > constants.MaxActors {
		return errors.NewValidationError("actor", len(flags.Actors),
			fmt.Sprintf("at most %d actors are allowed", constants.MaxActors))
	}
	var actors [constants.MaxActors]string
	copy(actors[:], flags.Actors)

	movie, err := catalogs.NewMovie(flags.Title, flags.Director, actors[0], actors[1], actors[2], flags.Rating)
	if err != nil {
		return err
	}

	cat, err := app.Catalog()
	if err != nil {
		return err
	}
	if cat.HasTitle(movie.Title()) {
		return errors.NewAlreadyExistsError("movie", movie.Title())
	}

	if err := cat.Add(movie); err != nil {
		return err
	}
	if err := app.SaveCatalog(); err != nil {
		return err
	}

	app.Logger().Debug().Str("movie", movie.Title()).Msg("Movie added")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s\n", emoji.Success, movie)
	return err
}
