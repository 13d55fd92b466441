package catalogs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// Movie is a single catalog record. A Movie is always valid: construction
// and every setter reject values that would break its invariants.
type Movie struct {
	id       string
	title    string
	director string
	actors   []string
	rating   int
}

// MovieRecord is the exported snapshot of a Movie used for structured output.
type MovieRecord struct {
	Title    string   `json:"title" yaml:"title"`
	Director string   `json:"director" yaml:"director"`
	Actors   []string `json:"actors,omitempty" yaml:"actors,omitempty"`
	Rating   int      `json:"rating" yaml:"rating"`
}

// NewMovie creates a validated movie. Blank actor slots are dropped.
func NewMovie(title, director, actor1, actor2, actor3 string, rating int) (*Movie, error) {
	title = strings.TrimSpace(title)
	director = strings.TrimSpace(director)

	var errs []error
	if err := validateRequired("title", title); err != nil {
		errs = append(errs, err)
	}
	if err := validateRequired("director", director); err != nil {
		errs = append(errs, err)
	}
	if err := validateRating(rating); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Movie{
		id:       uuid.NewString(),
		title:    title,
		director: director,
		actors:   compactActors(actor1, actor2, actor3),
		rating:   rating,
	}, nil
}

// MustNewMovie is like NewMovie but panics on invalid input.
// It is intended for tests and fixtures.
func MustNewMovie(title, director, actor1, actor2, actor3 string, rating int) *Movie {
	m, err := NewMovie(title, director, actor1, actor2, actor3, rating)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the movie's generated identifier. It is not persisted.
func (m *Movie) ID() string { return m.id }

// Title returns the movie title.
func (m *Movie) Title() string { return m.title }

// Director returns the movie director.
func (m *Movie) Director() string { return m.director }

// Rating returns the movie rating.
func (m *Movie) Rating() int { return m.rating }

// Actors returns a copy of the actor names in order.
func (m *Movie) Actors() []string {
	return slices.Clone(m.actors)
}

// SetTitle replaces the title.
func (m *Movie) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if err := validateRequired("title", title); err != nil {
		return err
	}
	m.title = title
	return nil
}

// SetDirector replaces the director.
func (m *Movie) SetDirector(director string) error {
	director = strings.TrimSpace(director)
	if err := validateRequired("director", director); err != nil {
		return err
	}
	m.director = director
	return nil
}

// SetRating replaces the rating.
func (m *Movie) SetRating(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	m.rating = rating
	return nil
}

// SetActors replaces the actors with the non-blank names in order.
// At least one name must be non-blank.
func (m *Movie) SetActors(actor1, actor2, actor3 string) error {
	actors := compactActors(actor1, actor2, actor3)
	if len(actors) == 0 {
		return errors.NewValidationError("actors", nil, "at least one actor must be non-blank")
	}
	m.actors = actors
	return nil
}

// Describe renders the multi-line description shown by the interactive menu.
func (m *Movie) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Movie title: %s\n", m.title)
	fmt.Fprintf(&b, "Movie director: %s\n", m.director)
	if len(m.actors) == 0 {
		b.WriteString("No movie actors\n")
	}
	for i, actor := range m.actors {
		fmt.Fprintf(&b, "Movie actor %d: %s\n", i+1, actor)
	}
	fmt.Fprintf(&b, "Movie rating: %d\n\n", m.rating)
	return b.String()
}

// String returns a short one-line form of the movie.
func (m *Movie) String() string {
	return fmt.Sprintf("%s (%s) %d/%d", m.title, m.director, m.rating, constants.MaxRating)
}

// Equal reports whether both movies hold the same field values.
// The generated identifier is ignored.
func (m *Movie) Equal(other *Movie) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.title == other.title &&
		m.director == other.director &&
		m.rating == other.rating &&
		slices.Equal(m.actors, other.actors)
}

// Record returns the exported snapshot of the movie.
func (m *Movie) Record() MovieRecord {
	record := MovieRecord{
		Title:    m.title,
		Director: m.director,
		Rating:   m.rating,
	}
	if len(m.actors) > 0 {
		record.Actors = m.Actors()
	}
	return record
}

// clone returns a detached copy sharing the identifier.
func (m *Movie) clone() Movie {
	c := *m
	c.actors = slices.Clone(m.actors)
	return c
}

func validateRequired(field, value string) error {
	if value == "" {
		return errors.NewValidationError(field, value, "must not be blank")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < constants.MinRating || rating > constants.MaxRating {
		return errors.NewValidationError("rating", rating,
			fmt.Sprintf("must be between %d and %d", constants.MinRating, constants.MaxRating))
	}
	return nil
}

func compactActors(names ...string) []string {
	actors := make([]string, 0, constants.MaxActors)
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			actors = append(actors, name)
		}
	}
	return actors
}
