package output

import (
	"io"

	"github.com/agentstation/cinemap/internal/cmd/table"
	"github.com/agentstation/cinemap/pkg/catalogs"
)

// FormatMovies writes movies in the given format. Table formats render
// one row per movie; structured formats emit movie records.
func FormatMovies(w io.Writer, movies []*catalogs.Movie, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	if format.IsTable() {
		outputData = table.MoviesToTableData(movies, format == FormatWide)
	} else {
		records := make([]catalogs.MovieRecord, 0, len(movies))
		for _, m := range movies {
			records = append(records, m.Record())
		}
		outputData = records
	}

	return formatter.Format(w, outputData)
}
