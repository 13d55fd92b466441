package favourites_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/cmd/cinemap/cmd/favourites"
	"github.com/agentstation/cinemap/internal/appcontext"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cat := catalogs.New(catalogs.WithMovies(
		catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9),
		catalogs.MustNewMovie("Up", "Docter", "", "", "", 8),
		catalogs.MustNewMovie("Inside Out", "Docter", "", "", "", 7),
	))

	cmd := favourites.NewCommand(appcontext.NewMockWithCatalog(cat, nil))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFavouritesCommand(t *testing.T) {
	t.Run("default lists everything", func(t *testing.T) {
		out, err := execute(t)
		require.NoError(t, err)
		assert.Contains(t, out, "Inside Out")
	})

	t.Run("at or above rating", func(t *testing.T) {
		out, err := execute(t, "--min-rating", "8")
		require.NoError(t, err)
		assert.Contains(t, out, "Matrix")
		assert.Contains(t, out, "Up")
		assert.NotContains(t, out, "Inside Out")
	})

	t.Run("none", func(t *testing.T) {
		out, err := execute(t, "-r", "10")
		require.NoError(t, err)
		assert.Equal(t, "No movies found above or equal to that rating.\n", out)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := execute(t, "--min-rating", "11")
		assert.True(t, errors.IsValidationError(err))
	})
}
