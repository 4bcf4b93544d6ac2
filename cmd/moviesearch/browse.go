package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/config"
	"github.com/vadimtrunov/MovieSearch/internal/tui"
)

// newBrowseCmd returns the "browse" subcommand for the interactive TUI.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Browse OMDb in the terminal",
		Long: "Open the interactive browser. The optional path selects the first view:\n" +
			"/ (search), /movies, /<type> or /movie/<imdb id>.\n" +
			"Press : to jump to another path, esc to go back, q to quit.",
		Example: `  moviesearch browse
  moviesearch browse /series
  moviesearch browse /movie/tt0468569`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := catalog.SearchPath
			if len(args) == 1 {
				path = args[0]
			}
			return runBrowse(path)
		},
	}
}

// runBrowse starts the Bubble Tea browser at path.
func runBrowse(path string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// The alternate screen owns stderr; log only when a file is configured.
	logger := config.DiscardLogger()
	if cfg.App.LogFile != "" {
		if logger, err = config.SetupLogger(cfg.App.LogLevel, cfg.App.LogFile); err != nil {
			return err
		}
	}
	svc := newService(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var opts []tui.Option
	if !isTerminal(os.Stdout) {
		opts = append(opts, tui.WithGlamourStyle("notty"))
	}

	p := tea.NewProgram(tui.New(ctx, svc, path, opts...), tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	if final, ok := m.(tui.Model); ok {
		logger.Debug("browser closed", slog.String("path", final.Path()))
	}
	return nil
}
