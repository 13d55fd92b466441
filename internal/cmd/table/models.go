// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/cinemap/internal/cmd/emoji"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// favouriteThreshold marks ratings shown with a star in wide output.
const favouriteThreshold = 9

// MoviesToTableData converts movies to table format. Wide output adds
// the actors and marks top-rated movies.
func MoviesToTableData(movies []*catalogs.Movie, wide bool) Data {
	headers := []string{"#", "title", "director", "rating"}
	alignment := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "actors")
		alignment = append(alignment, AlignLeft)
	}

	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		row := []string{
			strconv.Itoa(i + 1),
			m.Title(),
			m.Director(),
			FormatRating(m.Rating(), wide),
		}
		if wide {
			row = append(row, FormatActors(m.Actors()))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// FormatRating renders a rating out of the maximum, e.g. "9/10".
func FormatRating(rating int, mark bool) string {
	s := fmt.Sprintf("%d/%d", rating, constants.MaxRating)
	if mark && rating >= favouriteThreshold {
		s = emoji.Favourite + " " + s
	}
	return s
}

// FormatActors joins actor names, or returns "-" when there are none.
func FormatActors(actors []string) string {
	if len(actors) == 0 {
		return emoji.Optional
	}
	return strings.Join(actors, ", ")
}
