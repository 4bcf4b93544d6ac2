package catalog

import "github.com/vadimtrunov/MovieSearch/internal/core"

// SearchRequest describes one fetch issued by a view. Seq identifies the
// request within its owning state record.
type SearchRequest struct {
	Query    string
	Page     int
	Category core.Category
	Seq      uint64
}

// SearchState is the state owned by one search view instance.
//
// Query and Category are the editable fields. Submit commits them; page
// changes reuse the committed values, so edits made after a submit do not
// leak into pagination.
type SearchState struct {
	Query    string
	Category core.Category

	committedQuery    string
	committedCategory core.Category
	page              int
	movies            []core.MovieSummary
	err               string
	seq               uint64
	pending           bool
	submitted         bool
}

// NewSearchState returns an empty search state on page 1.
func NewSearchState() *SearchState {
	return &SearchState{page: 1}
}

// Submit commits the editable fields and returns a page 1 request.
func (s *SearchState) Submit() SearchRequest {
	s.committedQuery = s.Query
	s.committedCategory = s.Category
	s.submitted = true
	return s.request(1)
}

// ChangePage returns a request for page using the committed query and category.
func (s *SearchState) ChangePage(page int) SearchRequest {
	if page < 1 {
		page = 1
	}
	return s.request(page)
}

// Next returns a request for the following page.
func (s *SearchState) Next() SearchRequest {
	return s.ChangePage(s.page + 1)
}

// Previous returns a request for the preceding page. ok is false on page 1.
func (s *SearchState) Previous() (req SearchRequest, ok bool) {
	if s.page <= 1 {
		return SearchRequest{}, false
	}
	return s.ChangePage(s.page - 1), true
}

// Resume restores committed fields from an external source (URL parameters,
// a chat session) and returns the request for that page.
func (s *SearchState) Resume(query string, category core.Category, page int) SearchRequest {
	s.Query = query
	s.Category = category
	s.committedQuery = query
	s.committedCategory = category
	s.submitted = true
	return s.ChangePage(page)
}

func (s *SearchState) request(page int) SearchRequest {
	s.page = page
	s.seq++
	s.pending = true
	return SearchRequest{
		Query:    s.committedQuery,
		Page:     page,
		Category: s.committedCategory,
		Seq:      s.seq,
	}
}

// Apply stores a fetch result. Results for superseded requests are dropped
// and Apply reports false.
func (s *SearchState) Apply(seq uint64, res MoviesResult) bool {
	if seq != s.seq {
		return false
	}
	s.pending = false
	if res.Failed() {
		s.movies = nil
		s.err = res.Err
		return true
	}
	s.movies = res.Movies
	s.err = ""
	return true
}

// Page returns the current 1-based page.
func (s *SearchState) Page() int { return s.page }

// Movies returns the current result list in provider order.
func (s *SearchState) Movies() []core.MovieSummary { return s.movies }

// Err returns the current error message, if any.
func (s *SearchState) Err() string { return s.err }

// Pending reports whether the latest request has not resolved yet.
func (s *SearchState) Pending() bool { return s.pending }

// Submitted reports whether a search has been committed at least once.
func (s *SearchState) Submitted() bool { return s.submitted }

// CommittedQuery returns the query of the last submit.
func (s *SearchState) CommittedQuery() string { return s.committedQuery }

// CommittedCategory returns the category of the last submit.
func (s *SearchState) CommittedCategory() core.Category { return s.committedCategory }

// ShowPrevious reports whether the Previous control is rendered.
func (s *SearchState) ShowPrevious() bool {
	return len(s.movies) > 0 && s.page > 1
}

// ShowNext reports whether the Next control is rendered. The total page
// count is unknown, so Next is offered whenever results are present.
func (s *SearchState) ShowNext() bool {
	return len(s.movies) > 0
}

// ListState is the state owned by one list view instance.
type ListState struct {
	category core.Category
	movies   []core.MovieSummary
	err      string
	seq      uint64
	pending  bool
}

// NewListState returns a list state for category.
func NewListState(category core.Category) *ListState {
	return &ListState{category: category}
}

// Request returns the list fetch: empty query, page 1, the route category.
func (l *ListState) Request() SearchRequest {
	l.seq++
	l.pending = true
	return SearchRequest{Page: 1, Category: l.category, Seq: l.seq}
}

// Apply stores a fetch result, dropping superseded ones.
func (l *ListState) Apply(seq uint64, res MoviesResult) bool {
	if seq != l.seq {
		return false
	}
	l.pending = false
	if res.Failed() {
		l.movies = nil
		l.err = res.Err
		return true
	}
	l.movies = res.Movies
	l.err = ""
	return true
}

// Category returns the route category.
func (l *ListState) Category() core.Category { return l.category }

// Heading returns the list heading for the category.
func (l *ListState) Heading() string { return l.category.Heading() }

// Movies returns the current result list.
func (l *ListState) Movies() []core.MovieSummary { return l.movies }

// Err returns the current error message, if any.
func (l *ListState) Err() string { return l.err }

// Pending reports whether the fetch has not resolved yet.
func (l *ListState) Pending() bool { return l.pending }

// DetailStatus is the render state of a detail view.
type DetailStatus int

const (
	DetailLoading DetailStatus = iota
	DetailError
	DetailReady
)

func (s DetailStatus) String() string {
	switch s {
	case DetailError:
		return "error"
	case DetailReady:
		return "ready"
	default:
		return "loading"
	}
}

// DetailState is the state owned by one detail view instance. It moves from
// loading to either error or ready exactly once.
type DetailState struct {
	id    string
	movie *core.MovieDetail
	err   string
}

// NewDetailState returns a loading detail state for id.
func NewDetailState(id string) *DetailState {
	return &DetailState{id: id}
}

// Apply stores the fetch result. It reports false once the state is terminal.
func (d *DetailState) Apply(res DetailResult) bool {
	if d.Status() != DetailLoading {
		return false
	}
	if res.Err != "" || res.Movie == nil {
		d.err = res.Err
		if d.err == "" {
			d.err = GenericErrorMessage
		}
		return true
	}
	d.movie = res.Movie
	return true
}

// Status returns loading, error or ready.
func (d *DetailState) Status() DetailStatus {
	switch {
	case d.err != "":
		return DetailError
	case d.movie != nil:
		return DetailReady
	default:
		return DetailLoading
	}
}

// ID returns the route identifier.
func (d *DetailState) ID() string { return d.id }

// Movie returns the record once ready.
func (d *DetailState) Movie() *core.MovieDetail { return d.movie }

// Err returns the error message once failed.
func (d *DetailState) Err() string { return d.err }
