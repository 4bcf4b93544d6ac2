package core

import "context"

// MovieSource defines the interface for movie metadata providers (OMDb)
type MovieSource interface {
	// Search returns one page of summaries matching the query, in provider order
	Search(ctx context.Context, req SearchRequest) ([]MovieSummary, error)

	// Details returns the full record for a single identifier
	Details(ctx context.Context, id string) (*MovieDetail, error)

	// Name returns the provider name (e.g., "omdb")
	Name() string
}

// Frontend defines the interface for long-running user-facing frontends (web, Telegram)
type Frontend interface {
	// Start runs the frontend until ctx is canceled
	Start(ctx context.Context) error

	// Name returns the frontend name (e.g., "web", "telegram")
	Name() string
}

// SearchRequest holds the parameters of a single search call
type SearchRequest struct {
	Term     string   // Search term sent as-is; callers substitute the fallback
	Page     int      // 1-based page number
	Category Category // Empty means all types
}

// MovieSummary is the abbreviated record shown in result grids
type MovieSummary struct {
	ID     string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type,omitempty"`
	Poster string `json:"Poster"`
}

// MovieDetail is the full record shown on a detail page
type MovieDetail struct {
	ID       string `json:"imdbID"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated,omitempty"`
	Released string `json:"Released,omitempty"`
	Runtime  string `json:"Runtime,omitempty"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Writer   string `json:"Writer,omitempty"`
	Actors   string `json:"Actors"`
	Plot     string `json:"Plot"`
	Language string `json:"Language,omitempty"`
	Country  string `json:"Country,omitempty"`
	Awards   string `json:"Awards,omitempty"`
	Poster   string `json:"Poster"`
	Rating   string `json:"imdbRating"`
	Type     string `json:"Type,omitempty"`
}

// HasPoster reports whether the summary carries a usable poster reference.
func (m MovieSummary) HasPoster() bool {
	return m.Poster != "" && m.Poster != NoPoster
}

// HasPoster reports whether the detail carries a usable poster reference.
func (m MovieDetail) HasPoster() bool {
	return m.Poster != "" && m.Poster != NoPoster
}

// NoPoster is the placeholder OMDb returns when a title has no poster.
const NoPoster = "N/A"
