// Package catalogtest provides an in-memory movie source for tests.
package catalogtest

import (
	"context"
	"sync"

	"github.com/vadimtrunov/MovieSearch/internal/core"
)

// Source is a scripted core.MovieSource that records every call.
type Source struct {
	mu sync.Mutex

	Movies    []core.MovieSummary
	SearchErr error
	Detail    *core.MovieDetail
	DetailErr error

	Searches []core.SearchRequest
	Lookups  []string
}

var _ core.MovieSource = (*Source)(nil)

// Search records req and returns the scripted movies or error.
func (s *Source) Search(_ context.Context, req core.SearchRequest) ([]core.MovieSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Searches = append(s.Searches, req)
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.Movies, nil
}

// Details records id and returns the scripted detail or error.
func (s *Source) Details(_ context.Context, id string) (*core.MovieDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lookups = append(s.Lookups, id)
	if s.DetailErr != nil {
		return nil, s.DetailErr
	}
	return s.Detail, nil
}

// Name returns "fake".
func (s *Source) Name() string { return "fake" }

// SearchCalls returns a copy of the recorded search requests.
func (s *Source) SearchCalls() []core.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.SearchRequest(nil), s.Searches...)
}

// LookupCalls returns a copy of the recorded detail identifiers.
func (s *Source) LookupCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Lookups...)
}

// BatmanResults returns three summaries used across frontend tests.
func BatmanResults() []core.MovieSummary {
	return []core.MovieSummary{
		{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Type: "movie", Poster: "https://img/bb.jpg"},
		{ID: "tt1877830", Title: "The Batman", Year: "2022", Type: "movie", Poster: "https://img/tb.jpg"},
		{ID: "tt0096895", Title: "Batman", Year: "1989", Type: "movie", Poster: core.NoPoster},
	}
}

// DarkKnight returns the detail record for tt0468569.
func DarkKnight() *core.MovieDetail {
	return &core.MovieDetail{
		ID:       "tt0468569",
		Title:    "The Dark Knight",
		Year:     "2008",
		Genre:    "Action, Crime, Drama",
		Director: "Christopher Nolan",
		Actors:   "Christian Bale, Heath Ledger, Aaron Eckhart",
		Plot:     "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
		Rating:   "9.0",
		Poster:   "https://img/dk.jpg",
	}
}
