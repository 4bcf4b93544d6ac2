package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vadimtrunov/MovieSearch/internal/core"
	"github.com/vadimtrunov/MovieSearch/internal/httpclient"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Client is an OMDb API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
	logger  *slog.Logger
}

// compile-time check.
var _ core.MovieSource = (*Client)(nil)

// New creates a new OMDb client. An empty baseURL selects DefaultBaseURL.
func New(apiKey, baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpclient.New(httpclient.DefaultConfig(), logger),
		logger:  logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string { return "omdb" }

// Search returns one page of title summaries. The term is sent as given;
// an empty category omits the type filter.
func (c *Client) Search(ctx context.Context, req core.SearchRequest) ([]core.MovieSummary, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{
		"s":    {req.Term},
		"page": {strconv.Itoa(page)},
	}
	if req.Category != core.CategoryAll {
		params.Set("type", string(req.Category))
	}

	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	if resp.Response != responseTrue {
		return nil, &core.UpstreamError{Message: resp.Error}
	}

	c.logger.Debug("omdb search",
		slog.String("term", req.Term),
		slog.Int("page", page),
		slog.String("type", string(req.Category)),
		slog.Int("results", len(resp.Search)),
	)
	return resp.Search, nil
}

// Details retrieves the full record for an IMDb identifier with the full plot.
func (c *Client) Details(ctx context.Context, id string) (*core.MovieDetail, error) {
	params := url.Values{
		"i":    {id},
		"plot": {"full"},
	}

	var resp detailResponse
	if err := c.get(ctx, "details", params, &resp); err != nil {
		return nil, err
	}
	if resp.Response != responseTrue {
		return nil, &core.UpstreamError{Message: resp.Error}
	}

	detail := resp.MovieDetail
	return &detail, nil
}

// get performs an authenticated GET against the OMDb endpoint and decodes the
// JSON body. Anything short of a decoded 200 response is a TransportError.
func (c *Client) get(ctx context.Context, op string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return &core.TransportError{Op: op, Err: fmt.Errorf("invalid base URL: %w", err)}
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return &core.TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &core.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &core.TransportError{Op: op, Err: fmt.Errorf("omdb API status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &core.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
