// Package driver runs the interactive movie database menu on top of a
// catalog and a console.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/internal/console"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

// Main menu options, numbered from 1.
const (
	optionSearch = iota + 1
	optionAdd
	optionDelete
	optionFavourites
	optionExit
)

// Output shown to the user.
const (
	msgNoMovies          = "\nNo movies found.\n\n"
	msgTitleExists       = "\nError a movie with that title already exists!.\n\n"
	msgNoTitleMatch      = "\nNo movies found matching that title.\n\n"
	msgDeleted           = "\nMovie successfully deleted.\n\n"
	msgNotDeleted        = "\nOk. movie won't be deleted.\n\n"
	msgNoFavourites      = "\nNo movies found above or equal to that rating.\n\n"
	msgFavouritesHeader  = "\nFavourite Movies:\n\n"
	msgNoSuchOption      = "\nError! That option does not exist!\n"
	promptMainMenu       = "Please choose an option between 1 and 5: "
	promptYesNo          = "Please choose an option between 1 and 2: "
	promptTitle          = "\nPlease enter the movie title: "
	promptDirector       = "\nPlease enter the movie director: "
	promptRating         = "Please enter the movie rating: "
	promptDeleteTitle    = "Enter movie title to delete: "
	promptFavouriteFloor = "Please choose a minimum favourite rating between 1 and 10: "
)

var actorPrompts = [constants.MaxActors]string{
	"\nPlease enter the first movie actor: ",
	"\nPlease enter the second movie actor: ",
	"\nPlease enter the third movie actor: ",
}

// Driver is the interactive controller.
type Driver struct {
	catalog  *catalogs.Catalog
	console  *console.Console
	dataFile string
	logger   *zerolog.Logger

	mainMenu   *console.Menu
	searchMenu *console.Menu
}

// Option configures a Driver.
type Option func(*Driver)

// WithDataFile sets the file the catalog is saved to on exit.
func WithDataFile(path string) Option {
	return func(d *Driver) {
		d.dataFile = path
	}
}

// WithLogger sets the logger for lifecycle messages. Without it, Run uses
// the logger carried by its context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Driver for the given catalog and console.
func New(catalog *catalogs.Catalog, con *console.Console, opts ...Option) (*Driver, error) {
	if catalog == nil {
		return nil, errors.NewInvalidArgumentError("driver", "catalog", "must not be nil")
	}
	if con == nil {
		return nil, errors.NewInvalidArgumentError("driver", "console", "must not be nil")
	}

	mainMenu, err := console.NewMenu("Movie Database",
		"Search movie",
		"Add a movie",
		"Delete movie",
		"Display Favourite Movies",
		"Exit",
	)
	if err != nil {
		return nil, err
	}
	searchMenu, err := console.NewMenu("Movie Search", "Search by title", "Search by director")
	if err != nil {
		return nil, err
	}

	d := &Driver{
		catalog:    catalog,
		console:    con,
		dataFile:   constants.DefaultDataFile,
		mainMenu:   mainMenu,
		searchMenu: searchMenu,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run shows the main menu until the user exits or input ends, then saves
// the catalog to the data file. If ctx is cancelled first, Run returns
// ctx.Err() without saving. Cancellation is checked between menu
// iterations and before the catalog is changed, so a pending read finishes
// first but its result is discarded.
func (d *Driver) Run(ctx context.Context) error {
	if d.logger == nil {
		d.logger = logging.FromContext(ctx)
	}
	ctx = logging.WithLogger(ctx, d.logger)

	err := d.loop(ctx)
	if ctx.Err() != nil {
		d.logger.Debug().Msg("Interactive session cancelled")
	}
	return err
}

func (d *Driver) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.console.Clear(); err != nil {
			return err
		}
		if err := d.mainMenu.Render(d.console.Out()); err != nil {
			return err
		}
		choice, err := d.console.ReadInt(d.mainMenu.Len(), promptMainMenu)
		if err != nil {
			return d.interrupted(ctx, err)
		}
		if err := d.console.Clear(); err != nil {
			return err
		}

		if !choice.Valid {
			d.console.Print(msgNoSuchOption)
			continue
		}

		switch choice.Value {
		case optionSearch:
			err = d.pause(d.search())
		case optionAdd:
			err = d.add(ctx)
		case optionDelete:
			err = d.pause(d.delete(ctx))
		case optionFavourites:
			err = d.pause(d.favourites())
		case optionExit:
			return d.exit(ctx)
		}
		if err != nil {
			return d.interrupted(ctx, err)
		}
	}
}

// interrupted treats end of input like choosing Exit.
func (d *Driver) interrupted(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		d.logger.Debug().Msg("End of input, saving and exiting")
		return d.exit(ctx)
	}
	return err
}

// pause waits for enter after a successful action.
func (d *Driver) pause(err error) error {
	if err != nil {
		return err
	}
	return d.console.PressEnterToContinue()
}

func (d *Driver) exit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := d.catalog.SaveToFile(d.dataFile); err != nil {
		logging.Ctx(logging.WithError(logging.WithPath(ctx, d.dataFile), err)).
			Error().Msg("Failed to save catalog")
		d.console.Printf("\nError saving movies to %s: %v\n", d.dataFile, err)
		return err
	}

	d.logger.Info().
		Str("path", d.dataFile).
		Int("movies", d.catalog.Len()).
		Msg("Catalog saved")

	d.catalog.ClearAll()
	return nil
}

func (d *Driver) printMovies(movies []*catalogs.Movie) {
	for _, m := range movies {
		d.console.Print(m.Describe())
	}
}

func (d *Driver) search() error {
	option, err := d.console.Select(d.searchMenu, promptYesNo)
	if err != nil {
		return err
	}

	key := catalogs.SearchTitle
	if option == 2 {
		key = catalogs.SearchDirector
	}

	query, err := d.console.ReadString(fmt.Sprintf("Enter %s to search for: ", key), false)
	if err != nil {
		return err
	}

	found, err := d.catalog.Search(query, key, 0)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		d.console.Print(msgNoMovies)
		return nil
	}

	d.console.Print("\n")
	d.printMovies(found)
	return nil
}

func (d *Driver) add(ctx context.Context) error {
	var title string
	for {
		if err := d.console.Clear(); err != nil {
			return err
		}
		var err error
		if title, err = d.console.ReadString(promptTitle, false); err != nil {
			return err
		}
		if !d.catalog.HasTitle(title) {
			break
		}
		d.console.Print(msgTitleExists)
		if err := d.console.PressEnterToContinue(); err != nil {
			return err
		}
	}

	director, err := d.console.ReadString(promptDirector, false)
	if err != nil {
		return err
	}

	var actors [constants.MaxActors]string
	for i, prompt := range actorPrompts {
		if actors[i], err = d.console.ReadString(prompt, true); err != nil {
			return err
		}
	}

	var rating console.IntInput
	for !rating.Valid {
		if rating, err = d.console.ReadInt(constants.MaxRating, promptRating); err != nil {
			return err
		}
	}

	movie, err := catalogs.NewMovie(title, director, actors[0], actors[1], actors[2], rating.Value)
	if err != nil {
		d.console.Printf("\n%v\n\n", err)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.catalog.Add(movie); err != nil {
		return err
	}

	logging.Ctx(logging.WithMovie(ctx, movie.Title())).Debug().Msg("Movie added")
	return nil
}

func (d *Driver) delete(ctx context.Context) error {
	title, err := d.console.ReadString(promptDeleteTitle, false)
	if err != nil {
		return err
	}

	movie, ok := d.catalog.FindByTitle(title)
	if !ok {
		d.console.Print(msgNoTitleMatch)
		return nil
	}

	d.console.Print("\n" + movie.Describe())

	confirm, err := console.NewMenu(
		fmt.Sprintf("Are you sure you want to delete: %s ?", movie.Title()),
		"Yes", "No",
	)
	if err != nil {
		return err
	}
	option, err := d.console.Select(confirm, promptYesNo)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if option == 1 && d.catalog.Delete(movie) {
		logging.Ctx(logging.WithMovie(ctx, movie.Title())).Debug().Msg("Movie deleted")
		d.console.Print(msgDeleted)
		return nil
	}
	d.console.Print(msgNotDeleted)
	return nil
}

func (d *Driver) favourites() error {
	var floor console.IntInput
	for !floor.Valid {
		if err := d.console.Clear(); err != nil {
			return err
		}
		var err error
		if floor, err = d.console.ReadInt(constants.MaxRating, promptFavouriteFloor); err != nil {
			return err
		}
	}

	found, err := d.catalog.Search("", catalogs.SearchFavourite, floor.Value)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		d.console.Print(msgNoFavourites)
		return nil
	}

	d.console.Print(msgFavouritesHeader)
	d.printMovies(found)
	return nil
}
