package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/internal/cmd/table"
	"github.com/agentstation/cinemap/pkg/catalogs"
)

func TestMoviesToTableData(t *testing.T) {
	movies := []*catalogs.Movie{
		catalogs.MustNewMovie("Matrix", "Wachowski", "Neo", "", "", 9),
		catalogs.MustNewMovie("Up", "Docter", "", "", "", 8),
	}

	t.Run("narrow", func(t *testing.T) {
		data := table.MoviesToTableData(movies, false)
		assert.Equal(t, []string{"#", "title", "director", "rating"}, data.Headers)
		require.Len(t, data.Rows, 2)
		assert.Equal(t, []string{"1", "Matrix", "Wachowski", "9/10"}, data.Rows[0])
		assert.Len(t, data.ColumnAlignment, len(data.Headers))
	})

	t.Run("wide", func(t *testing.T) {
		data := table.MoviesToTableData(movies, true)
		assert.Equal(t, "actors", data.Headers[4])
		assert.Equal(t, []string{"1", "Matrix", "Wachowski", "★ 9/10", "Neo"}, data.Rows[0])
		assert.Equal(t, []string{"2", "Up", "Docter", "8/10", "-"}, data.Rows[1])
	})

	t.Run("empty", func(t *testing.T) {
		data := table.MoviesToTableData(nil, false)
		assert.Empty(t, data.Rows)
	})
}

func TestFormatActors(t *testing.T) {
	assert.Equal(t, "-", table.FormatActors(nil))
	assert.Equal(t, "A, B", table.FormatActors([]string{"A", "B"}))
}
