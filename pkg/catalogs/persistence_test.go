package catalogs_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
	"github.com/agentstation/cinemap/pkg/logging"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "myvideos.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name  string
		movie *catalogs.Movie
		want  string
	}{
		{
			name:  "one actor",
			movie: catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9),
			want:  "Matrix,Wachowski,Neo,,,9\n",
		},
		{
			name:  "no actors",
			movie: catalogs.MustNewMovie("Up", "Docter", "", "", "", 8),
			want:  "Up,Docter,,,,8\n",
		},
		{
			name:  "three actors",
			movie: catalogs.MustNewMovie("Heat", "Mann", "Pacino", "De Niro", "Kilmer", 10),
			want:  "Heat,Mann,Pacino,De Niro,Kilmer,10\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalogs.FormatLine(tt.movie))
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := catalogs.ParseLine("Matrix,Wachowski,Neo,,,9")
		require.NoError(t, err)
		assert.True(t, m.Equal(catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9)))
	})

	t.Run("rating is trimmed", func(t *testing.T) {
		m, err := catalogs.ParseLine("Up,Docter,,,, 8 ")
		require.NoError(t, err)
		assert.Equal(t, 8, m.Rating())
	})

	tests := []struct {
		name       string
		line       string
		validation bool
	}{
		{name: "too few fields", line: "Up,Docter,8"},
		{name: "comma inside value", line: "Up, the movie,Docter,,,,8"},
		{name: "rating not a number", line: "Up,Docter,,,,eight"},
		{name: "empty rating", line: "Up,Docter,,,,"},
		{name: "rating out of range", line: "Up,Docter,,,,11", validation: true},
		{name: "blank title", line: ",Docter,,,,8", validation: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := catalogs.ParseLine(tt.line)
			assert.Nil(t, m)
			require.Error(t, err)
			if tt.validation {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			var parseErr *errors.ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestDecode(t *testing.T) {
	input := "Matrix,Wachowski,Neo,,,9\r\n\n   \nbroken line\nUp,Docter,,,,8"
	movies, skipped, err := catalogs.Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Matrix", "Up"}, titles(movies))
	require.Len(t, skipped, 1)
	assert.Equal(t, 4, skipped[0].Line)
	assert.Equal(t, "broken line", skipped[0].Text)
	assert.Contains(t, skipped[0].Error(), "line 4")

	var parseErr *errors.ParseError
	require.True(t, errors.As(skipped[0], &parseErr))
	assert.Equal(t, 4, parseErr.Line)
}

func TestDecodeLongLines(t *testing.T) {
	t.Run("over-long junk line is skipped", func(t *testing.T) {
		junk := strings.Repeat("x", 70_000)
		input := "Matrix,Wachowski,Neo,,,9\n" + junk + "\nUp,Docter,,,,8\n"

		movies, skipped, err := catalogs.Decode(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"Matrix", "Up"}, titles(movies))
		require.Len(t, skipped, 1)
		assert.Equal(t, 2, skipped[0].Line)
		assert.Len(t, skipped[0].Text, 70_000)
	})

	t.Run("long valid record loads", func(t *testing.T) {
		title := strings.Repeat("T", 70_000)
		movies, skipped, err := catalogs.Decode(strings.NewReader(title + ",Director,,,,5\n"))
		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, movies, 1)
		assert.Equal(t, title, movies[0].Title())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("over-long line keeps the rest", func(t *testing.T) {
		path := writeFile(t, "Matrix,Wachowski,Neo,,,9\n"+strings.Repeat("x", 70_000)+"\nUp,Docter,,,,8\n")

		cat := catalogs.New(catalogs.WithLogger(logging.NewNopLogger()))
		report, err := cat.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Loaded)
		assert.Equal(t, 3, report.Lines)
		assert.Len(t, report.Skipped, 1)
	})

	t.Run("two valid lines", func(t *testing.T) {
		path := writeFile(t, "Matrix,Wachowski,Neo,,,9\nUp,Docter,,,,8\n")

		cat := catalogs.New()
		report, err := cat.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Loaded)
		assert.Equal(t, 2, report.Lines)
		assert.Empty(t, report.Skipped)
		assert.Equal(t, path, report.Path)

		all := cat.All()
		require.Len(t, all, 2)
		assert.Equal(t, []string{"Neo"}, all[0].Actors())
		assert.Empty(t, all[1].Actors())
	})

	t.Run("invalid lines are skipped with a warning", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		path := writeFile(t, "Matrix,Wachowski,Neo,,,9\nBad,Row,,,,99\nUp,Docter,,,,8\n")

		cat := catalogs.New(catalogs.WithLogger(testLogger.Logger))
		report, err := cat.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Loaded)
		require.Len(t, report.Skipped, 1)
		assert.Equal(t, 2, report.Skipped[0].Line)
		assert.Equal(t, []string{"Matrix", "Up"}, titles(cat.All()))

		testLogger.AssertContains(t, `"level":"warn"`)
		testLogger.AssertContains(t, `"line":2`)
	})

	t.Run("appends to existing records", func(t *testing.T) {
		path := writeFile(t, "Up,Docter,,,,8\n")
		cat := catalogs.New(catalogs.WithMovies(catalogs.MustNewMovie("Heat", "Mann", "", "", "", 9)))

		_, err := cat.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Heat", "Up"}, titles(cat.All()))
	})

	t.Run("missing file", func(t *testing.T) {
		cat := catalogs.New()
		report, err := cat.LoadFromFile(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Nil(t, report)
		require.Error(t, err)
		assert.True(t, errors.IsIOError(err))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Equal(t, 0, cat.Len())
	})

	t.Run("empty file", func(t *testing.T) {
		cat := catalogs.New()
		report, err := cat.LoadFromFile(writeFile(t, ""))
		require.NoError(t, err)
		assert.Equal(t, 0, report.Loaded)
		assert.Equal(t, 0, cat.Len())
	})
}

func TestSaveToFile(t *testing.T) {
	t.Run("writes catalog order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		cat := catalogs.New(catalogs.WithMovies(fixtureMovies()...))

		require.NoError(t, cat.SaveToFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"Matrix,Wachowski,Neo,,,9\nUp,Docter,,,,8\nInside Out,Docter,Amy Poehler,,,7\n",
			string(data))
	})

	t.Run("empty catalog truncates the file", func(t *testing.T) {
		path := writeFile(t, "Up,Docter,,,,8\n")
		require.NoError(t, catalogs.New().SaveToFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("unwritable path", func(t *testing.T) {
		cat := catalogs.New(catalogs.WithMovies(fixtureMovies()...))
		err := cat.SaveToFile(filepath.Join(t.TempDir(), "missing", "dir", "out.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsIOError(err))
		assert.Equal(t, 3, cat.Len())
	})
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.txt")
	movies := append(fixtureMovies(),
		catalogs.MustNewMovie("Heat", "Mann", "Pacino", "De Niro", "Kilmer", 10),
		catalogs.MustNewMovie("Alien", "Scott", "", "Weaver", "", 1),
	)
	original := catalogs.New(catalogs.WithMovies(movies...))
	require.NoError(t, original.SaveToFile(path))

	reloaded := catalogs.New()
	_, err := reloaded.LoadFromFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(original.Records(), reloaded.Records()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	cat := catalogs.New(catalogs.WithMovies(fixtureMovies()[:2]...))
	require.NoError(t, cat.Encode(&buf))
	assert.Equal(t, "Matrix,Wachowski,Neo,,,9\nUp,Docter,,,,8\n", buf.String())
}
