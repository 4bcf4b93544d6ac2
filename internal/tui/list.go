package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

// listView shows the fallback-term results for the route category, without
// pagination.
type listView struct {
	id     int
	route  catalog.Route
	ctx    context.Context
	svc    *catalog.Service
	keys   keyMap
	state  *catalog.ListState
	grid   grid
	width  int
	height int
}

func newListView(ctx context.Context, svc *catalog.Service, keys keyMap, id int, route catalog.Route) *listView {
	return &listView{
		id:    id,
		route: route,
		ctx:   ctx,
		svc:   svc,
		keys:  keys,
		state: catalog.NewListState(route.Category),
	}
}

func (v *listView) viewID() int     { return v.id }
func (v *listView) path() string    { return v.route.Path }
func (v *listView) capturing() bool { return false }

func (v *listView) resize(width, height int) { v.width, v.height = width, height }

// init issues the single fetch made on mount.
func (v *listView) init() tea.Cmd {
	return fetchMovies(v.ctx, v.svc, v.id, v.state.Request())
}

func (v *listView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case moviesLoadedMsg:
		if v.state.Apply(msg.seq, msg.result) {
			v.grid.reset()
		}
	case tea.KeyMsg:
		cards := catalog.Cards(v.state.Movies())
		if key.Matches(msg, v.keys.Enter) {
			if c, ok := v.grid.selected(cards); ok {
				return navigate(c.Href)
			}
			return nil
		}
		v.grid.move(msg, v.keys, len(cards), columns(v.width))
	}
	return nil
}

func (v *listView) view() string {
	var b strings.Builder
	b.WriteString(styleHeading.Render(v.state.Heading()) + "\n")

	switch {
	case v.state.Pending():
		b.WriteString(styleDim.Render("Loading..."))
	case v.state.Err() != "":
		b.WriteString(styleError.Render(v.state.Err()))
	case len(v.state.Movies()) == 0:
		b.WriteString(styleDim.Render("No results."))
	default:
		b.WriteString(v.grid.render(catalog.Cards(v.state.Movies()), v.width, v.height-2, true))
	}
	return b.String()
}

func (v *listView) help() string {
	return helpLine(v.keys.Enter, v.keys.Back, v.keys.Prompt, v.keys.Quit)
}
