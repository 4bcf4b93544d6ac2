package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/config"
	"github.com/vadimtrunov/MovieSearch/internal/core"
	"github.com/vadimtrunov/MovieSearch/internal/omdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray

	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// newService wires the OMDb client into a catalog service.
func newService(cfg *config.Config, logger *slog.Logger) *catalog.Service {
	client := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, logger)
	logger.Debug("OMDb client initialized", slog.String("url", sanitizeURL(cfg.OMDb.BaseURL)))
	return catalog.NewService(client, cfg.Search.FallbackTerm, logger)
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeCards prints a result list in plain text, one card per line.
func writeCards(w io.Writer, heading string, res catalog.MoviesResult, page int) {
	fmt.Fprintln(w, styleHeader.Render(heading))
	if res.Failed() {
		fmt.Fprintln(w, styleError.Render(res.Err))
		return
	}
	if len(res.Movies) == 0 {
		fmt.Fprintln(w, styleDim.Render("No results."))
		return
	}
	for _, c := range catalog.Cards(res.Movies) {
		fmt.Fprintf(w, "%s  %s %s\n",
			styleDim.Render(c.ID),
			styleTitle.Render(c.Title),
			styleDim.Render("("+c.Year+")"),
		)
	}
	if page > 0 {
		fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("Page %d", page)))
	}
}

// searchHeading names a search result list.
func searchHeading(term string, category core.Category) string {
	heading := "Results for " + term
	if category != core.CategoryAll {
		heading += " (" + category.Option() + ")"
	}
	return heading
}

// sanitizeURL strips credentials, query params, and fragment from a URL for safe logging.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || u.Scheme == "" {
		return "<redacted>"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/")
}
