package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

// detailView shows one record rendered through glamour in a scrollable
// viewport.
type detailView struct {
	id       int
	route    catalog.Route
	ctx      context.Context
	svc      *catalog.Service
	keys     keyMap
	style    string
	state    *catalog.DetailState
	viewport viewport.Model
	renderer *glamour.TermRenderer
	wrap     int
	content  string
}

func newDetailView(ctx context.Context, svc *catalog.Service, keys keyMap, style string, id int, route catalog.Route) *detailView {
	return &detailView{
		id:       id,
		route:    route,
		ctx:      ctx,
		svc:      svc,
		keys:     keys,
		style:    style,
		state:    catalog.NewDetailState(route.ID),
		viewport: viewport.New(0, 0),
	}
}

func (v *detailView) viewID() int     { return v.id }
func (v *detailView) path() string    { return v.route.Path }
func (v *detailView) capturing() bool { return false }

func (v *detailView) init() tea.Cmd {
	return fetchDetail(v.ctx, v.svc, v.id, v.state.ID())
}

func (v *detailView) resize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
}

func (v *detailView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if v.state.Apply(msg.result) {
			v.refresh()
		}
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.BackAlt) {
			return back
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// refresh re-renders the record at the current width.
func (v *detailView) refresh() {
	if v.state.Status() != catalog.DetailReady {
		return
	}
	md := catalog.DetailMarkdown(v.state.Movie())
	v.content = md

	if r := v.termRenderer(); r != nil {
		if out, err := r.Render(md); err == nil {
			v.content = out
		} else {
			slog.Debug("glamour render failed", slog.String("error", err.Error()))
		}
	}
	v.viewport.SetContent(v.content)
	v.viewport.GotoTop()
}

// termRenderer returns a renderer wrapping at the viewport width, rebuilding
// it when the width changes.
func (v *detailView) termRenderer() *glamour.TermRenderer {
	wrap := max(v.viewport.Width-2, 20)
	if v.renderer != nil && v.wrap == wrap {
		return v.renderer
	}

	styleOpt := glamour.WithAutoStyle()
	if v.style != "" {
		styleOpt = glamour.WithStandardStyle(v.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		slog.Debug("glamour renderer unavailable", slog.String("error", err.Error()))
		return nil
	}
	v.renderer, v.wrap = r, wrap
	return r
}

func (v *detailView) view() string {
	switch v.state.Status() {
	case catalog.DetailLoading:
		return styleDim.Render("Loading " + v.state.ID() + "...")
	case catalog.DetailError:
		return styleError.Render(v.state.Err())
	default:
		return v.viewport.View()
	}
}

func (v *detailView) help() string {
	return helpLine(v.keys.Up, v.keys.BackAlt, v.keys.Prompt, v.keys.Quit)
}
