package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
)

func TestNewMovie(t *testing.T) {
	t.Run("valid with all actors", func(t *testing.T) {
		m, err := catalogs.NewMovie("Matrix", "Wachowski", "Neo", "Trinity", "Morpheus", 9)
		require.NoError(t, err)

		assert.Equal(t, "Matrix", m.Title())
		assert.Equal(t, "Wachowski", m.Director())
		assert.Equal(t, []string{"Neo", "Trinity", "Morpheus"}, m.Actors())
		assert.Equal(t, 9, m.Rating())
		assert.NotEmpty(t, m.ID())
	})

	t.Run("blank actors are dropped in order", func(t *testing.T) {
		m, err := catalogs.NewMovie("Up", "Docter", "", "  ", "Ed Asner", 8)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ed Asner"}, m.Actors())
	})

	t.Run("no actors", func(t *testing.T) {
		m, err := catalogs.NewMovie("Up", "Docter", "", "", "", 8)
		require.NoError(t, err)
		assert.Empty(t, m.Actors())
	})

	t.Run("values are trimmed", func(t *testing.T) {
		m, err := catalogs.NewMovie("  Up ", " Docter", " Ed ", "", "", 8)
		require.NoError(t, err)
		assert.Equal(t, "Up", m.Title())
		assert.Equal(t, "Docter", m.Director())
		assert.Equal(t, []string{"Ed"}, m.Actors())
	})

	t.Run("rating bounds", func(t *testing.T) {
		_, err := catalogs.NewMovie("A", "B", "", "", "", 1)
		assert.NoError(t, err)
		_, err = catalogs.NewMovie("A", "B", "", "", "", 10)
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		title    string
		director string
		rating   int
		field    string
	}{
		{name: "blank title", title: "  ", director: "Docter", rating: 8, field: "title"},
		{name: "blank director", title: "Up", director: "", rating: 8, field: "director"},
		{name: "rating zero", title: "Up", director: "Docter", rating: 0, field: "rating"},
		{name: "rating eleven", title: "Up", director: "Docter", rating: 11, field: "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := catalogs.NewMovie(tt.title, tt.director, "", "", "", tt.rating)
			assert.Nil(t, m)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var vErr *errors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	t.Run("several failures are joined", func(t *testing.T) {
		_, err := catalogs.NewMovie("", "", "", "", "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "director")
		assert.Contains(t, err.Error(), "rating")
	})
}

func TestMovieSetters(t *testing.T) {
	m := catalogs.MustNewMovie("Up", "Docter", "", "", "", 8)

	require.NoError(t, m.SetTitle(" Up 2 "))
	assert.Equal(t, "Up 2", m.Title())
	assert.True(t, errors.IsValidationError(m.SetTitle(" ")))
	assert.Equal(t, "Up 2", m.Title())

	require.NoError(t, m.SetDirector("Pete Docter"))
	assert.True(t, errors.IsValidationError(m.SetDirector("")))
	assert.Equal(t, "Pete Docter", m.Director())

	require.NoError(t, m.SetRating(10))
	assert.True(t, errors.IsValidationError(m.SetRating(11)))
	assert.True(t, errors.IsValidationError(m.SetRating(0)))
	assert.Equal(t, 10, m.Rating())

	require.NoError(t, m.SetActors("", "Ed Asner", ""))
	assert.Equal(t, []string{"Ed Asner"}, m.Actors())
	assert.True(t, errors.IsValidationError(m.SetActors("", " ", "")))
	assert.Equal(t, []string{"Ed Asner"}, m.Actors())
}

func TestMovieActorsIsCopy(t *testing.T) {
	m := catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9)
	actors := m.Actors()
	actors[0] = "Smith"
	assert.Equal(t, []string{"Neo"}, m.Actors())
}

func TestMovieDescribe(t *testing.T) {
	t.Run("with actors", func(t *testing.T) {
		m := catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "Trinity", "", 9)
		want := "Movie title: Matrix\n" +
			"Movie director: Wachowski\n" +
			"Movie actor 1: Neo\n" +
			"Movie actor 2: Trinity\n" +
			"Movie rating: 9\n\n"
		assert.Equal(t, want, m.Describe())
	})

	t.Run("without actors", func(t *testing.T) {
		m := catalogs.MustNewMovie("Up", "Docter", "", "", "", 8)
		want := "Movie title: Up\n" +
			"Movie director: Docter\n" +
			"No movie actors\n" +
			"Movie rating: 8\n\n"
		assert.Equal(t, want, m.Describe())
	})
}

func TestMovieEqual(t *testing.T) {
	a := catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9)
	b := catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9)
	c := catalogs.MustNewMovie("Matrix", "Wachowski", "", "Neo", "", 8)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestMovieRecordAndString(t *testing.T) {
	m := catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9)

	assert.Equal(t, catalogs.MovieRecord{
		Title:    "Matrix",
		Director: "Wachowski",
		Actors:   []string{"Neo"},
		Rating:   9,
	}, m.Record())
	assert.Equal(t, "Matrix (Wachowski) 9/10", m.String())
}

func TestMustNewMoviePanics(t *testing.T) {
	assert.Panics(t, func() {
		catalogs.MustNewMovie("", "", "", "", "", 0)
	})
}
