package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the browser reacts to.
type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Prompt    key.Binding
	Back      key.Binding
	BackAlt   key.Binding
	Focus     key.Binding
	Enter     key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Prompt:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to path")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		BackAlt:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		NextPage:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous page")),
	}
}

// helpLine renders "key desc" pairs for the footer.
func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		h := b.Help()
		if i > 0 {
			out += "  "
		}
		out += styleKey.Render(h.Key) + " " + styleDim.Render(h.Desc)
	}
	return out
}
