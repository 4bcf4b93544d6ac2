package catalog

import "github.com/vadimtrunov/MovieSearch/internal/core"

// Card is one rendered result tile.
type Card struct {
	ID     string
	Title  string
	Year   string
	Poster string // empty when the title has no poster
	Href   string
}

// Cards maps summaries to cards, preserving order.
func Cards(movies []core.MovieSummary) []Card {
	cards := make([]Card, 0, len(movies))
	for _, m := range movies {
		c := Card{
			ID:    m.ID,
			Title: m.Title,
			Year:  m.Year,
			Href:  MoviePath(m.ID),
		}
		if m.HasPoster() {
			c.Poster = m.Poster
		}
		cards = append(cards, c)
	}
	return cards
}

// PosterLabel returns the poster reference or a placeholder.
func (c Card) PosterLabel() string {
	if c.Poster == "" {
		return "no poster"
	}
	return c.Poster
}
