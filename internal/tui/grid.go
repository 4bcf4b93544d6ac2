package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
)

const (
	cardWidth  = 26 // including border
	cardHeight = 5  // three content lines plus border
	cardGap    = 1
)

// grid tracks the selected card of a result grid.
type grid struct {
	cursor int
}

func (g *grid) reset() { g.cursor = 0 }

// columns returns how many cards fit side by side in width.
func columns(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// move handles arrow keys. It reports whether the key was consumed.
func (g *grid) move(msg tea.KeyMsg, keys keyMap, count, cols int) bool {
	if count == 0 {
		return false
	}
	next := g.cursor
	switch {
	case key.Matches(msg, keys.Left):
		next--
	case key.Matches(msg, keys.Right):
		next++
	case key.Matches(msg, keys.Up):
		next -= cols
	case key.Matches(msg, keys.Down):
		next += cols
	default:
		return false
	}
	if next >= 0 && next < count {
		g.cursor = next
	}
	return true
}

// selected returns the card under the cursor.
func (g *grid) selected(cards []catalog.Card) (catalog.Card, bool) {
	if g.cursor < 0 || g.cursor >= len(cards) {
		return catalog.Card{}, false
	}
	return cards[g.cursor], true
}

// render draws the cards in rows, scrolled so the cursor row stays visible
// within height lines.
func (g *grid) render(cards []catalog.Card, width, height int, focused bool) string {
	if len(cards) == 0 {
		return ""
	}
	cols := columns(width)
	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}

	first := 0
	if row := g.cursor / cols; row >= visible {
		first = row - visible + 1
	}

	var rows []string
	for start := first * cols; start < len(cards) && len(rows) < visible; start += cols {
		end := min(start+cols, len(cards))
		var tiles []string
		for i := start; i < end; i++ {
			if i > start {
				tiles = append(tiles, " ")
			}
			tiles = append(tiles, renderCard(cards[i], focused && i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c catalog.Card, active bool) string {
	style := styleCard
	if active {
		style = styleCardActive
	}
	inner := cardWidth - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(truncate(c.Title, inner)),
		truncate(c.Year, inner),
		styleDim.Render(truncate(c.PosterLabel(), inner)),
	)
	return style.Width(cardWidth - 2).Render(body)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
