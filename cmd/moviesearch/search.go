package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/config"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

func newSearchCmd() *cobra.Command {
	var (
		page     int
		typeFlag string
	)
	cmd := &cobra.Command{
		Use:   "search [title]",
		Short: "Run a one-shot search and print the results",
		Long:  "Search OMDb once and print one page of results. An empty title searches the configured default.",
		Example: `  moviesearch search Batman
  moviesearch search --type series --page 2 "Star Trek"`,
		RunE: func(_ *cobra.Command, args []string) error {
			category, ok := core.ParseCategory(strings.ToLower(typeFlag))
			if !ok {
				return fmt.Errorf("unknown type %q: use all, movie, series or episode", typeFlag)
			}
			return runSearch(strings.Join(args, " "), max(page, 1), category)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "all", "media type: all, movie, series or episode")
	return cmd
}

func runSearch(query string, page int, category core.Category) error {
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

	req := searchRequest{query: query, page: page, category: category}

	// Piped output gets no spinner.
	if !isTerminal(os.Stdout) {
		res := svc.FetchMovies(ctx, query, page, category)
		writeCards(os.Stdout, searchHeading(svc.Term(query), category), res, page)
		return resultErr(res)
	}

	p := tea.NewProgram(newSearchModel(ctx, svc, req))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run search: %w", err)
	}

	sm, ok := m.(searchModel)
	if !ok {
		return fmt.Errorf("unexpected model type from tea program")
	}
	if !sm.done {
		return nil
	}
	printResult(os.Stdout, sm)
	return resultErr(sm.result)
}

// resultErr turns a failed fetch into the command's exit error.
func resultErr(res catalog.MoviesResult) error {
	if res.Failed() {
		return errors.New("search failed")
	}
	return nil
}

type searchRequest struct {
	query    string
	page     int
	category core.Category
}

// searchResultMsg carries the fetch result back to the spinner model.
type searchResultMsg struct {
	result catalog.MoviesResult
}

// searchModel shows a spinner while one search is in flight.
type searchModel struct {
	ctx     context.Context
	svc     *catalog.Service
	req     searchRequest
	spinner spinner.Model
	result  catalog.MoviesResult
	done    bool
}

func newSearchModel(ctx context.Context, svc *catalog.Service, req searchRequest) searchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return searchModel{
		ctx:     ctx,
		svc:     svc,
		req:     req,
		spinner: s,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case searchResultMsg:
		m.result = msg.result
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders only the spinner; results are printed after the program exits.
func (m searchModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + styleDim.Render(" Searching "+m.svc.Term(m.req.query)+"...") + "\n"
}

func (m searchModel) fetch() tea.Cmd {
	return func() tea.Msg {
		res := m.svc.FetchMovies(m.ctx, m.req.query, m.req.page, m.req.category)
		return searchResultMsg{result: res}
	}
}

// printResult writes the finished search below the cleared spinner.
func printResult(w io.Writer, m searchModel) {
	writeCards(w, searchHeading(m.svc.Term(m.req.query), m.req.category), m.result, m.req.page)
}
