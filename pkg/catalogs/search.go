package catalogs

import (
	"strings"

	"github.com/agentstation/cinemap/pkg/errors"
)

// SearchKey selects the field a search matches on.
type SearchKey string

// Search keys.
const (
	SearchTitle     SearchKey = "title"
	SearchDirector  SearchKey = "director"
	SearchFavourite SearchKey = "favourite"
)

// SearchKeys lists the supported keys.
var SearchKeys = []SearchKey{SearchTitle, SearchDirector, SearchFavourite}

// String returns the key name.
func (k SearchKey) String() string {
	return string(k)
}

// IsValid reports whether k is a supported key.
func (k SearchKey) IsValid() bool {
	switch k {
	case SearchTitle, SearchDirector, SearchFavourite:
		return true
	}
	return false
}

// ParseSearchKey converts a key name into a SearchKey. "favorite" is
// accepted as an alias of "favourite".
func ParseSearchKey(s string) (SearchKey, error) {
	switch key := SearchKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SearchTitle, SearchDirector, SearchFavourite:
		return key, nil
	case "favorite":
		return SearchFavourite, nil
	}
	return "", errors.NewUsageError("search", s, "unknown search key")
}

// Search scans the catalog in order and returns the matching movies.
// Title and director keys compare the query case-insensitively for equality.
// The favourite key ignores the query and matches ratings >= minRating.
// An unknown key is logged and yields an empty result with a UsageError.
func (c *Catalog) Search(query string, key SearchKey, minRating int) ([]*Movie, error) {
	var match func(m *Movie) bool
	switch key {
	case SearchTitle:
		match = func(m *Movie) bool { return strings.EqualFold(m.title, query) }
	case SearchDirector:
		match = func(m *Movie) bool { return strings.EqualFold(m.director, query) }
	case SearchFavourite:
		match = func(m *Movie) bool { return m.rating >= minRating }
	default:
		c.logger.Warn().
			Str("key", string(key)).
			Msg("Unknown search key")
		return []*Movie{}, errors.NewUsageError("search", string(key), "unknown search key")
	}

	results := []*Movie{}
	for _, m := range c.movies {
		if match(m) {
			results = append(results, m)
		}
	}
	return results, nil
}

// HasTitle reports whether a movie with the given title exists,
// ignoring case and surrounding whitespace.
func (c *Catalog) HasTitle(title string) bool {
	_, ok := c.FindByTitle(title)
	return ok
}

// FindByTitle returns the first movie whose title matches, ignoring case
// and surrounding whitespace.
func (c *Catalog) FindByTitle(title string) (*Movie, bool) {
	title = strings.TrimSpace(title)
	for _, m := range c.movies {
		if strings.EqualFold(m.title, title) {
			return m, true
		}
	}
	return nil, false
}
