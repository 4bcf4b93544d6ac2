package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/catalog/catalogtest"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestServer(src *catalogtest.Source) *Server {
	return NewServer(catalog.NewService(src, "", discardLogger), "test", discardLogger)
}

func callTool(t *testing.T, srv *Server, toolName string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	_, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("call tool %s: %v", toolName, err)
	}
	return result
}

func resultText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return text.Text
}

func TestSearchMovies(t *testing.T) {
	t.Parallel()
	src := &catalogtest.Source{Movies: catalogtest.BatmanResults()}
	srv := newTestServer(src)

	result := callTool(t, srv, "search_movies", map[string]any{
		"query": "Batman",
		"page":  2,
		"type":  "movie",
	})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result))
	}

	var got resultPage
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if got.Page != 2 || got.Query != "Batman" || got.Type != "movie" {
		t.Errorf("unexpected page header: %+v", got)
	}
	if len(got.Movies) != 3 || got.Movies[0].ID != "tt0372784" {
		t.Errorf("unexpected movies: %+v", got.Movies)
	}

	calls := src.SearchCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 search call, got %d", len(calls))
	}
	want := core.SearchRequest{Term: "Batman", Page: 2, Category: core.CategoryMovie}
	if calls[0] != want {
		t.Errorf("search request = %+v, want %+v", calls[0], want)
	}
}

func TestSearchMovies_Defaults(t *testing.T) {
	t.Parallel()
	src := &catalogtest.Source{}
	srv := newTestServer(src)

	result := callTool(t, srv, "search_movies", map[string]any{})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result))
	}
	var got resultPage
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Query != catalog.DefaultFallbackTerm || got.Page != 1 {
		t.Errorf("unexpected defaults: %+v", got)
	}
	if got.Movies == nil {
		t.Error("expected an empty movies array, got null")
	}
}

func TestSearchMovies_UpstreamError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(&catalogtest.Source{
		SearchErr: &core.UpstreamError{Message: "Movie not found!"},
	})

	result := callTool(t, srv, "search_movies", map[string]any{"query": "zzzz"})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != "Movie not found!" {
		t.Errorf("error text = %q", got)
	}
}

func TestSearchMovies_TransportError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(&catalogtest.Source{
		SearchErr: &core.TransportError{Op: "search", Err: errors.New("dial tcp: refused")},
	})

	result := callTool(t, srv, "search_movies", map[string]any{"query": "Batman"})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != catalog.GenericErrorMessage {
		t.Errorf("error text = %q", got)
	}
}

func TestSearchMovies_BadType(t *testing.T) {
	t.Parallel()
	src := &catalogtest.Source{}
	srv := newTestServer(src)

	result := callTool(t, srv, "search_movies", map[string]any{"query": "Batman", "type": "game"})

	if !result.IsError {
		t.Fatal("expected error for unknown type")
	}
	if len(src.SearchCalls()) != 0 {
		t.Error("expected no search for an invalid type")
	}
}

func TestListMovies(t *testing.T) {
	t.Parallel()
	src := &catalogtest.Source{Movies: catalogtest.BatmanResults()}
	srv := newTestServer(src)

	result := callTool(t, srv, "list_movies", map[string]any{"type": "series"})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result))
	}
	calls := src.SearchCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 search call, got %d", len(calls))
	}
	want := core.SearchRequest{Term: catalog.DefaultFallbackTerm, Page: 1, Category: core.CategorySeries}
	if calls[0] != want {
		t.Errorf("search request = %+v, want %+v", calls[0], want)
	}
}

func TestGetMovieDetails(t *testing.T) {
	t.Parallel()
	src := &catalogtest.Source{Detail: catalogtest.DarkKnight()}
	srv := newTestServer(src)

	result := callTool(t, srv, "get_movie_details", map[string]any{"id": "tt0468569"})

	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result))
	}

	var got core.MovieDetail
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Director != "Christopher Nolan" || got.Rating != "9.0" {
		t.Errorf("unexpected detail: %+v", got)
	}
	if ids := src.LookupCalls(); len(ids) != 1 || ids[0] != "tt0468569" {
		t.Errorf("lookups = %v", ids)
	}
}

func TestGetMovieDetails_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  *catalogtest.Source
		args map[string]any
		want string
	}{
		{
			name: "missing id",
			src:  &catalogtest.Source{},
			args: map[string]any{},
			want: "get_movie_details requires an 'id' string argument",
		},
		{
			name: "upstream",
			src:  &catalogtest.Source{DetailErr: &core.UpstreamError{Message: "Incorrect IMDb ID."}},
			args: map[string]any{"id": "tt0"},
			want: "Incorrect IMDb ID.",
		},
		{
			name: "empty record",
			src:  &catalogtest.Source{},
			args: map[string]any{"id": "tt1"},
			want: catalog.GenericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := callTool(t, newTestServer(tt.src), "get_movie_details", tt.args)
			if !result.IsError {
				t.Fatal("expected error result")
			}
			if got := resultText(t, result); got != tt.want {
				t.Errorf("error text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    core.Category
		wantErr bool
	}{
		{"", core.CategoryAll, false},
		{"all", core.CategoryAll, false},
		{"Series", core.CategorySeries, false},
		{"episode", core.CategoryEpisode, false},
		{"game", "", true},
	}
	for _, tt := range tests {
		got, err := parseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
