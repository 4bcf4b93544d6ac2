package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"", CategoryAll, true},
		{"all", CategoryAll, true},
		{"movie", CategoryMovie, true},
		{"series", CategorySeries, true},
		{"episode", CategoryEpisode, true},
		{"game", Category("game"), false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
	}
}

func TestCategoryLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "All", CategoryAll.Option())
	assert.Equal(t, "Movies", CategoryMovie.Option())
	assert.Equal(t, "Episodes", CategoryEpisode.Option())

	assert.Equal(t, "All Movies", CategoryAll.Heading())
	assert.Equal(t, "Movie List", CategoryMovie.Heading())
	assert.Equal(t, "Series List", CategorySeries.Heading())
	assert.Equal(t, "Episode List", CategoryEpisode.Heading())
	assert.Equal(t, "Search Results", Category("whatever").Heading())
}

func TestCategoryCycle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CategoryMovie, CategoryAll.Next())
	assert.Equal(t, CategoryAll, CategoryEpisode.Next())
	assert.Equal(t, CategoryEpisode, CategoryAll.Prev())
	assert.Equal(t, CategoryMovie, Category("bogus").Next())
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(&TransportError{Op: "search", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "search: connection refused", err.Error())

	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestHasPoster(t *testing.T) {
	t.Parallel()

	assert.False(t, MovieSummary{Poster: "N/A"}.HasPoster())
	assert.False(t, MovieSummary{}.HasPoster())
	assert.True(t, MovieDetail{Poster: "https://img/p.jpg"}.HasPoster())
}
