package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

type focus int

const (
	focusInput focus = iota
	focusCategory
	focusGrid
)

// searchView renders the landing page: query input, category selector,
// result grid and pagination controls.
type searchView struct {
	id     int
	route  catalog.Route
	ctx    context.Context
	svc    *catalog.Service
	keys   keyMap
	state  *catalog.SearchState
	input  textinput.Model
	focus  focus
	grid   grid
	width  int
	height int
}

func newSearchView(ctx context.Context, svc *catalog.Service, keys keyMap, id int, route catalog.Route) *searchView {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 200
	ti.Focus()

	return &searchView{
		id:    id,
		route: route,
		ctx:   ctx,
		svc:   svc,
		keys:  keys,
		state: catalog.NewSearchState(),
		input: ti,
	}
}

func (v *searchView) viewID() int     { return v.id }
func (v *searchView) path() string    { return v.route.Path }
func (v *searchView) capturing() bool { return v.focus == focusInput }
func (v *searchView) init() tea.Cmd   { return textinput.Blink }

func (v *searchView) resize(width, height int) {
	v.width, v.height = width, height
	v.input.Width = max(width-12, 10)
}

func (v *searchView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case moviesLoadedMsg:
		if v.state.Apply(msg.seq, msg.result) {
			v.grid.reset()
		}
		return nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.focus == focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}
	return nil
}

func (v *searchView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, v.keys.Focus) {
		v.setFocus((v.focus + 1) % 3)
		return nil
	}

	switch v.focus {
	case focusInput:
		switch {
		case key.Matches(msg, v.keys.Enter):
			return v.submit()
		case key.Matches(msg, v.keys.Back):
			v.setFocus(focusGrid)
			return nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.state.Query = v.input.Value()
		return cmd

	case focusCategory:
		switch {
		case key.Matches(msg, v.keys.Left):
			v.state.Category = v.state.Category.Prev()
		case key.Matches(msg, v.keys.Right):
			v.state.Category = v.state.Category.Next()
		case key.Matches(msg, v.keys.Enter):
			return v.submit()
		case key.Matches(msg, v.keys.NextPage):
			return v.nextPage()
		case key.Matches(msg, v.keys.PrevPage):
			return v.prevPage()
		}
		return nil

	default:
		cards := catalog.Cards(v.state.Movies())
		switch {
		case key.Matches(msg, v.keys.Enter):
			if c, ok := v.grid.selected(cards); ok {
				return navigate(c.Href)
			}
		case key.Matches(msg, v.keys.NextPage):
			return v.nextPage()
		case key.Matches(msg, v.keys.PrevPage):
			return v.prevPage()
		default:
			v.grid.move(msg, v.keys, len(cards), columns(v.width))
		}
		return nil
	}
}

func (v *searchView) setFocus(f focus) {
	v.focus = f
	if f == focusInput {
		v.input.Focus()
		return
	}
	v.input.Blur()
}

// submit commits the editable fields and fetches page 1.
func (v *searchView) submit() tea.Cmd {
	v.setFocus(focusGrid)
	return fetchMovies(v.ctx, v.svc, v.id, v.state.Submit())
}

func (v *searchView) nextPage() tea.Cmd {
	if !v.state.ShowNext() {
		return nil
	}
	return fetchMovies(v.ctx, v.svc, v.id, v.state.Next())
}

func (v *searchView) prevPage() tea.Cmd {
	if !v.state.ShowPrevious() {
		return nil
	}
	req, ok := v.state.Previous()
	if !ok {
		return nil
	}
	return fetchMovies(v.ctx, v.svc, v.id, req)
}

func (v *searchView) view() string {
	var b strings.Builder

	label := styleDim
	if v.focus == focusInput {
		label = styleInfo
	}
	b.WriteString(label.Render("Search ") + v.input.View() + "\n")
	b.WriteString(v.renderCategories() + "\n\n")

	used := 3
	switch {
	case v.state.Pending():
		b.WriteString(styleDim.Render("Loading..."))
	case v.state.Err() != "":
		b.WriteString(styleError.Render(v.state.Err()))
	case len(v.state.Movies()) > 0:
		b.WriteString(v.grid.render(catalog.Cards(v.state.Movies()), v.width, v.height-used-2, v.focus == focusGrid))
		b.WriteString("\n" + v.renderPager())
	case v.state.Submitted():
		b.WriteString(styleDim.Render("No results."))
	default:
		b.WriteString(styleDim.Render("Type a title and press enter. An empty search shows " + v.svc.FallbackTerm() + "."))
	}
	return b.String()
}

func (v *searchView) renderCategories() string {
	label := styleDim
	if v.focus == focusCategory {
		label = styleInfo
	}
	opts := []string{label.Render("Type  ")}
	for _, c := range core.Categories {
		if c == v.state.Category {
			opts = append(opts, styleSelected.Render(c.Option()))
			continue
		}
		opts = append(opts, styleOption.Render(c.Option()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

// renderPager shows the page number with Previous only past page 1 and Next
// whenever results are present.
func (v *searchView) renderPager() string {
	parts := []string{styleDim.Render(fmt.Sprintf("Page %d", v.state.Page()))}
	if v.state.ShowPrevious() {
		parts = append(parts, styleKey.Render("p")+" Previous")
	}
	if v.state.ShowNext() {
		parts = append(parts, styleKey.Render("n")+" Next")
	}
	return strings.Join(parts, "   ")
}

func (v *searchView) help() string {
	return helpLine(v.keys.Focus, v.keys.Enter, v.keys.NextPage, v.keys.PrevPage, v.keys.Prompt, v.keys.Quit)
}
