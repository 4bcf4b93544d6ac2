// Package tui implements the terminal movie browser. A history stack of
// views plays the role of the router: navigating pushes the view for a path,
// going back pops it and the previous view reappears with its state intact.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

// screen is one mounted view in the history.
type screen interface {
	viewID() int
	path() string
	// capturing reports whether key presses belong to a text input.
	capturing() bool
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	resize(width, height int)
	view() string
	help() string
}

// Option customizes a Model.
type Option func(*Model)

// WithGlamourStyle selects a glamour standard style ("dark", "light",
// "notty") instead of detecting one from the terminal.
func WithGlamourStyle(style string) Option {
	return func(m *Model) { m.glamourStyle = style }
}

// Model is the root bubbletea model.
type Model struct {
	ctx          context.Context
	svc          *catalog.Service
	keys         keyMap
	glamourStyle string

	history []screen
	nextID  int

	prompt    textinput.Model
	prompting bool

	width  int
	height int
}

// New returns a browser starting at path.
func New(ctx context.Context, svc *catalog.Service, path string, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "/movies, /series, /movie/tt0468569"
	ti.CharLimit = 200

	m := Model{
		ctx:    ctx,
		svc:    svc,
		keys:   defaultKeyMap(),
		prompt: ti,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.history = []screen{m.mount(path)}
	return m
}

// Init starts the first view.
func (m Model) Init() tea.Cmd {
	return m.top().init()
}

// Update routes messages to the root handlers, the prompt or the views.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prompt.Width = max(m.width-4, 10)
		for _, s := range m.history {
			s.resize(m.width, m.bodyHeight())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		return m.push(msg.path)

	case backMsg:
		return m.back(), nil

	case moviesLoadedMsg:
		if s := m.find(msg.viewID); s != nil {
			return m, s.update(msg)
		}
		return m, nil

	case detailLoadedMsg:
		if s := m.find(msg.viewID); s != nil {
			return m, s.update(msg)
		}
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, m.top().update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	top := m.top()
	if top.capturing() {
		return m, top.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prompt):
		m.prompting = true
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	case key.Matches(msg, m.keys.Back):
		return m.back(), nil
	}
	return m, top.update(msg)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		path := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if path == "" {
			return m, nil
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return m.push(path)
	case key.Matches(msg, m.keys.Back):
		m.closePrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// push mounts the view for path on top of the history.
func (m Model) push(path string) (tea.Model, tea.Cmd) {
	s := m.mount(path)
	m.history = append(m.history, s)
	return m, s.init()
}

// back pops the current view. The first view is never popped.
func (m Model) back() Model {
	if len(m.history) > 1 {
		m.history = m.history[:len(m.history)-1]
	}
	return m
}

// mount builds a fresh view for path. Every mount gets a new id so results
// addressed to a popped view are discarded.
func (m *Model) mount(path string) screen {
	m.nextID++
	route := catalog.ParseRoute(path)

	var s screen
	switch route.View {
	case catalog.ViewSearch:
		s = newSearchView(m.ctx, m.svc, m.keys, m.nextID, route)
	case catalog.ViewList:
		s = newListView(m.ctx, m.svc, m.keys, m.nextID, route)
	case catalog.ViewDetail:
		s = newDetailView(m.ctx, m.svc, m.keys, m.glamourStyle, m.nextID, route)
	default:
		s = newNotFoundView(m.keys, m.nextID, route)
	}
	if m.width > 0 {
		s.resize(m.width, m.bodyHeight())
	}
	return s
}

func (m Model) top() screen {
	return m.history[len(m.history)-1]
}

func (m Model) find(id int) screen {
	for _, s := range m.history {
		if s.viewID() == id {
			return s
		}
	}
	return nil
}

// Path returns the route of the visible view.
func (m Model) Path() string {
	return m.top().path()
}

// Depth returns the number of views in the history.
func (m Model) Depth() int {
	return len(m.history)
}

// bodyHeight is the space left for a view below the title and above the
// footer.
func (m Model) bodyHeight() int {
	return max(m.height-4, 1)
}

// View renders the title bar, the visible view and the footer.
func (m Model) View() string {
	top := m.top()

	header := styleTitle.Render("MovieSearch") + "  " + styleDim.Render(top.path())

	footer := top.help()
	if m.prompting {
		footer = m.prompt.View()
	} else if len(m.history) > 1 {
		footer += "  " + helpLine(m.keys.Back)
	}

	return header + "\n\n" + top.view() + "\n\n" + footer
}

// notFoundView is shown for paths no route matches.
type notFoundView struct {
	id    int
	route catalog.Route
	keys  keyMap
}

func newNotFoundView(keys keyMap, id int, route catalog.Route) *notFoundView {
	return &notFoundView{id: id, route: route, keys: keys}
}

func (v *notFoundView) viewID() int            { return v.id }
func (v *notFoundView) path() string           { return v.route.Path }
func (v *notFoundView) capturing() bool        { return false }
func (v *notFoundView) init() tea.Cmd          { return nil }
func (v *notFoundView) update(tea.Msg) tea.Cmd { return nil }
func (v *notFoundView) resize(int, int)        {}
func (v *notFoundView) help() string           { return helpLine(v.keys.Prompt, v.keys.Quit) }

func (v *notFoundView) view() string {
	return styleError.Render("Nothing lives at "+v.route.Path) + "\n" +
		styleDim.Render("Press : and enter a path such as / or /movies.")
}
