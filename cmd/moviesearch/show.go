package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/config"
)

const showWrap = 80

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <imdb id>",
		Short:   "Print the full record of one title",
		Example: `  moviesearch show tt0468569`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
}

func runShow(id string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := config.SetupLogger(cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return err
	}
	svc := newService(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	state := catalog.NewDetailState(id)
	state.Apply(svc.FetchMovieDetails(ctx, id))
	if state.Status() == catalog.DetailError {
		return errors.New(state.Err())
	}

	out, err := renderDetail(state, isTerminal(os.Stdout))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// renderDetail returns the record as markdown, rendered through glamour
// when writing to a terminal.
func renderDetail(state *catalog.DetailState, tty bool) (string, error) {
	md := catalog.DetailMarkdown(state.Movie())
	if !tty {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(showWrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render detail: %w", err)
	}
	return out, nil
}
