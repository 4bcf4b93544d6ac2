// Package catalog holds the fetch operations and per-view state records that
// every frontend renders.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/vadimtrunov/MovieSearch/internal/core"
)

const (
	// DefaultFallbackTerm is searched when the query is empty.
	DefaultFallbackTerm = "Avengers"

	// GenericErrorMessage is shown for transport failures.
	GenericErrorMessage = "Something went wrong. Please try again later."
)

// MoviesResult is the outcome of one search fetch. On failure Movies is nil
// and Err holds the user-facing message.
type MoviesResult struct {
	Movies []core.MovieSummary
	Err    string
}

// Failed reports whether the fetch produced an error message.
func (r MoviesResult) Failed() bool { return r.Err != "" }

// DetailResult is the outcome of one detail fetch.
type DetailResult struct {
	Movie *core.MovieDetail
	Err   string
}

// Service runs fetch operations against a movie source. It holds no
// per-call state.
type Service struct {
	source   core.MovieSource
	fallback string
	logger   *slog.Logger
}

// NewService creates a Service. An empty fallback selects DefaultFallbackTerm.
func NewService(source core.MovieSource, fallback string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallbackTerm
	}
	return &Service{
		source:   source,
		fallback: fallback,
		logger:   logger,
	}
}

// FallbackTerm returns the term searched for empty queries.
func (s *Service) FallbackTerm() string { return s.fallback }

// Term returns the search term actually sent for query.
func (s *Service) Term(query string) string {
	if strings.TrimSpace(query) == "" {
		return s.fallback
	}
	return query
}

// FetchMovies performs one search call.
func (s *Service) FetchMovies(ctx context.Context, query string, page int, category core.Category) MoviesResult {
	if page < 1 {
		page = 1
	}
	movies, err := s.source.Search(ctx, core.SearchRequest{
		Term:     s.Term(query),
		Page:     page,
		Category: category,
	})
	if err != nil {
		return MoviesResult{Err: s.message("search", err)}
	}
	return MoviesResult{Movies: movies}
}

// Search performs the fetch described by a view request.
func (s *Service) Search(ctx context.Context, req SearchRequest) MoviesResult {
	return s.FetchMovies(ctx, req.Query, req.Page, req.Category)
}

// FetchMovieDetails performs one detail call.
func (s *Service) FetchMovieDetails(ctx context.Context, id string) DetailResult {
	movie, err := s.source.Details(ctx, id)
	if err != nil {
		return DetailResult{Err: s.message("details", err)}
	}
	return DetailResult{Movie: movie}
}

// message maps a source error to the text shown to users. Upstream messages
// pass through verbatim; everything else becomes the generic message and the
// cause is logged.
func (s *Service) message(op string, err error) string {
	var upstream *core.UpstreamError
	if errors.As(err, &upstream) {
		s.logger.Debug("upstream reported failure",
			slog.String("op", op),
			slog.String("message", upstream.Message),
		)
		return upstream.Message
	}

	s.logger.Error("fetch failed",
		slog.String("op", op),
		slog.String("source", s.source.Name()),
		slog.String("error", err.Error()),
	)
	return GenericErrorMessage
}
