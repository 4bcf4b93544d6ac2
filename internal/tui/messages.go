package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

// moviesLoadedMsg delivers a search result to the view that issued it.
type moviesLoadedMsg struct {
	viewID int
	seq    uint64
	result catalog.MoviesResult
}

// detailLoadedMsg delivers a detail result to the view that issued it.
type detailLoadedMsg struct {
	viewID int
	result catalog.DetailResult
}

// navigateMsg pushes the view for path onto the history.
type navigateMsg struct {
	path string
}

// backMsg pops the current view.
type backMsg struct{}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func back() tea.Msg { return backMsg{} }

// fetchMovies runs one search fetch off the event loop.
func fetchMovies(ctx context.Context, svc *catalog.Service, viewID int, req catalog.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		return moviesLoadedMsg{
			viewID: viewID,
			seq:    req.Seq,
			result: svc.Search(ctx, req),
		}
	}
}

// fetchDetail runs one detail fetch off the event loop.
func fetchDetail(ctx context.Context, svc *catalog.Service, viewID int, id string) tea.Cmd {
	return func() tea.Msg {
		return detailLoadedMsg{
			viewID: viewID,
			result: svc.FetchMovieDetails(ctx, id),
		}
	}
}
