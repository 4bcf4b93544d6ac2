// Package mcp exposes the movie catalog as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

// Server wraps an MCP SDK server with the catalog tool handlers.
type Server struct {
	server *mcpsdk.Server
	svc    *catalog.Service
	logger *slog.Logger
}

// NewServer creates an MCP server with all catalog tools registered.
func NewServer(svc *catalog.Service, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "moviesearch",
			Version: version,
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, svc: svc, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(searchMoviesTool(), s.handleSearchMovies)
	s.server.AddTool(listMoviesTool(), s.handleListMovies)
	s.server.AddTool(getMovieDetailsTool(), s.handleGetMovieDetails)
}

func searchMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name: "search_movies",
		Description: "Search OMDb by title. Returns one page of matches with IMDb IDs, titles, years and poster URLs. " +
			"An empty query searches the configured default title.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The title to search for",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "1-based result page (default 1)",
				},
				"type": typeProperty(),
			},
		},
	}
}

func listMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_movies",
		Description: "List the first page of titles for a media type, using the default search title.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type": typeProperty(),
			},
		},
	}
}

func getMovieDetailsTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_movie_details",
		Description: "Get the full OMDb record for an IMDb ID: genre, director, actors, plot and rating.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The IMDb ID, e.g. tt0468569",
				},
			},
			"required": []any{"id"},
		},
	}
}

func typeProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Optional media type filter: all, movie, series or episode",
	}
}

// resultPage is the JSON shape returned by the list tools.
type resultPage struct {
	Query  string              `json:"query"`
	Page   int                 `json:"page"`
	Type   string              `json:"type,omitempty"`
	Movies []core.MovieSummary `json:"movies"`
}

func (s *Server) handleSearchMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
		Page  any    `json:"page"`
		Type  string `json:"type"`
	}
	if err := unmarshalArgs(req.Params.Arguments, &args); err != nil {
		return toolError(err.Error()), nil
	}

	page := 1
	if args.Page != nil {
		n, err := toInt(args.Page, "page")
		if err != nil {
			return toolError(err.Error()), nil
		}
		page = max(n, 1)
	}

	category, err := parseType(args.Type)
	if err != nil {
		return toolError(err.Error()), nil
	}

	res := s.svc.FetchMovies(ctx, args.Query, page, category)
	if res.Failed() {
		return toolError(res.Err), nil
	}
	return toolJSON(resultPage{
		Query:  s.svc.Term(args.Query),
		Page:   page,
		Type:   string(category),
		Movies: nonNil(res.Movies),
	})
}

func (s *Server) handleListMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Type string `json:"type"`
	}
	if err := unmarshalArgs(req.Params.Arguments, &args); err != nil {
		return toolError(err.Error()), nil
	}
	category, err := parseType(args.Type)
	if err != nil {
		return toolError(err.Error()), nil
	}

	state := catalog.NewListState(category)
	r := state.Request()
	state.Apply(r.Seq, s.svc.Search(ctx, r))
	if state.Err() != "" {
		return toolError(state.Err()), nil
	}
	return toolJSON(resultPage{
		Query:  s.svc.FallbackTerm(),
		Page:   1,
		Type:   string(category),
		Movies: nonNil(state.Movies()),
	})
}

func (s *Server) handleGetMovieDetails(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := unmarshalArgs(req.Params.Arguments, &args); err != nil {
		return toolError(err.Error()), nil
	}
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return toolError("get_movie_details requires an 'id' string argument"), nil
	}

	state := catalog.NewDetailState(id)
	state.Apply(s.svc.FetchMovieDetails(ctx, id))
	if state.Status() == catalog.DetailError {
		return toolError(state.Err()), nil
	}
	return toolJSON(state.Movie())
}

// Helper functions.

func unmarshalArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// parseType maps the optional type argument; empty means all types.
func parseType(s string) (core.Category, error) {
	if s == "" {
		return core.CategoryAll, nil
	}
	c, ok := core.ParseCategory(strings.ToLower(s))
	if !ok {
		return "", fmt.Errorf("type must be one of all, movie, series, episode; got %q", s)
	}
	return c, nil
}

// toInt accepts JSON numbers and numeric strings.
func toInt(val any, key string) (int, error) {
	switch v := val.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}

func nonNil(m []core.MovieSummary) []core.MovieSummary {
	if m == nil {
		return []core.MovieSummary{}
	}
	return m
}

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}
