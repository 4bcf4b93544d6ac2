package catalog

import (
	"fmt"
	"strings"

	"github.com/vadimtrunov/MovieSearch/internal/core"
)

// DetailMarkdown renders a detail record as markdown. Title, year, genre,
// director, actors, rating and plot are always present; the remaining OMDb
// fields are listed only when the API provided a value.
func DetailMarkdown(m *core.MovieDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", m.Title, m.Year)

	fields := []struct {
		label, value string
		always       bool
	}{
		{"Genre", m.Genre, true},
		{"Director", m.Director, true},
		{"Actors", m.Actors, true},
		{"IMDb rating", m.Rating, true},
		{"Writer", m.Writer, false},
		{"Rated", m.Rated, false},
		{"Released", m.Released, false},
		{"Runtime", m.Runtime, false},
		{"Language", m.Language, false},
		{"Country", m.Country, false},
		{"Awards", m.Awards, false},
	}
	for _, f := range fields {
		if !f.always && (f.value == "" || f.value == core.NoPoster) {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", f.label, f.value)
	}

	fmt.Fprintf(&b, "\n## Plot\n\n%s\n", m.Plot)

	if m.HasPoster() {
		fmt.Fprintf(&b, "\nPoster: %s\n", m.Poster)
	}
	return b.String()
}
