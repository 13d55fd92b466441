package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/pkg/logging"
)

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	movies   []*Movie
	capacity int
	logger   *zerolog.Logger
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		logger: logging.Default(),
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithMovies seeds the catalog with the given movies in order.
// Nil entries are ignored.
func WithMovies(movies ...*Movie) Option {
	return func(c *catalogOptions) {
		for _, m := range movies {
			if m != nil {
				c.movies = append(c.movies, m)
			}
		}
	}
}

// WithCapacity preallocates room for n movies.
func WithCapacity(n int) Option {
	return func(c *catalogOptions) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger sets the logger used for warnings about skipped lines and misuse.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *catalogOptions) {
		if logger != nil {
			c.logger = logger
		}
	}
}
