// Package catalogs provides the in-memory movie catalog and its flat-file
// persistence. A Catalog is an ordered list of validated Movie records:
// insertion order is display order, and every record is written back in
// that order when the catalog is saved.
//
// Example usage:
//
//	cat := catalogs.New()
//	report, err := cat.LoadFromFile("myvideos.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d movies\n", report.Loaded)
//
//	favourites, _ := cat.Search("", catalogs.SearchFavourite, 8)
//	for _, m := range favourites {
//	    fmt.Print(m.Describe())
//	}
//
// A Catalog is not safe for concurrent use.
package catalogs

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/pkg/errors"
)

// Catalog is an ordered collection of movies.
type Catalog struct {
	movies []*Movie
	logger *zerolog.Logger
	hooks  hooks
}

// New creates a catalog with the given options.
func New(opts ...Option) *Catalog {
	options := catalogDefaults().apply(opts...)

	movies := make([]*Movie, 0, max(options.capacity, len(options.movies)))
	movies = append(movies, options.movies...)

	return &Catalog{
		movies: movies,
		logger: options.logger,
	}
}

// Add appends a movie to the end of the catalog.
func (c *Catalog) Add(m *Movie) error {
	if m == nil {
		return errors.NewInvalidArgumentError("add", "movie", "must not be nil")
	}
	c.movies = append(c.movies, m)
	c.hooks.triggerAdded(m)
	return nil
}

// Delete removes the first movie with the same identifier as m.
// It reports whether a movie was removed.
func (c *Catalog) Delete(m *Movie) bool {
	if m == nil {
		return false
	}
	i := slices.IndexFunc(c.movies, func(x *Movie) bool { return x.id == m.id })
	if i < 0 {
		return false
	}
	removed := c.movies[i]
	c.movies = slices.Delete(c.movies, i, i+1)
	c.hooks.triggerRemoved(removed)
	return true
}

// ClearAll removes every movie.
func (c *Catalog) ClearAll() {
	removed := c.movies
	c.movies = make([]*Movie, 0, cap(removed))
	for _, m := range removed {
		c.hooks.triggerRemoved(m)
	}
}

// All returns the movies in insertion order. The slice is a fresh copy;
// the records are shared with the catalog.
func (c *Catalog) All() []*Movie {
	return slices.Clone(c.movies)
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}
