// Package web serves the movie browser as server-rendered HTML pages.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handler routes browser requests to the search, list and detail pages.
type Handler struct {
	svc    *catalog.Service
	logger *slog.Logger
	engine *gin.Engine
}

// NewHandler builds the gin engine. Callers choose the gin mode.
func NewHandler(svc *catalog.Service, logger *slog.Logger) *Handler {
	if svc == nil {
		panic("web.NewHandler: service must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{svc: svc, logger: logger}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	engine.SetHTMLTemplate(pageTemplates)

	engine.GET("/", h.search)
	engine.GET("/health", health)
	// Every other path goes through the catalog router so that /movies,
	// /:type and /movie/:id resolve exactly as in the other frontends.
	engine.NoRoute(h.route)

	h.engine = engine
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.engine.ServeHTTP(w, r)
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

func health(c *gin.Context) {
	c.String(http.StatusOK, "ok\n")
}

func (h *Handler) route(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusMethodNotAllowed, "method not allowed\n")
		return
	}

	route := catalog.ParseRoute(c.Request.URL.EscapedPath())
	switch route.View {
	case catalog.ViewSearch:
		h.search(c)
	case catalog.ViewList:
		h.list(c, route)
	case catalog.ViewDetail:
		h.detail(c, route)
	default:
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"Title": "Not found",
			"Path":  route.Path,
		})
	}
}

type categoryOption struct {
	Value    string
	Label    string
	Selected bool
}

type searchPage struct {
	Title        string
	Query        string
	Categories   []categoryOption
	Cards        []catalog.Card
	Err          string
	Page         int
	ShowPrevious bool
	ShowNext     bool
	PreviousURL  string
	NextURL      string
}

// search renders the form and, when the URL carries q, type or page, the
// results for those committed parameters.
func (h *Handler) search(c *gin.Context) {
	q := c.Request.URL.Query()
	state := catalog.NewSearchState()

	if q.Has("q") || q.Has("type") || q.Has("page") {
		category := core.Category(q.Get("type"))
		if parsed, ok := core.ParseCategory(q.Get("type")); ok {
			category = parsed
		}
		req := state.Resume(q.Get("q"), category, parsePage(q.Get("page")))
		state.Apply(req.Seq, h.svc.Search(c.Request.Context(), req))
	}

	page := searchPage{
		Title:        "Search",
		Query:        state.Query,
		Cards:        catalog.Cards(state.Movies()),
		Err:          state.Err(),
		Page:         state.Page(),
		ShowPrevious: state.ShowPrevious(),
		ShowNext:     state.ShowNext(),
	}
	for _, cat := range core.Categories {
		page.Categories = append(page.Categories, categoryOption{
			Value:    string(cat),
			Label:    cat.Option(),
			Selected: cat == state.Category,
		})
	}
	if page.ShowPrevious {
		page.PreviousURL = searchURL(state.CommittedQuery(), state.CommittedCategory(), state.Page()-1)
	}
	if page.ShowNext {
		page.NextURL = searchURL(state.CommittedQuery(), state.CommittedCategory(), state.Page()+1)
	}

	c.HTML(http.StatusOK, "search.html", page)
}

func (h *Handler) list(c *gin.Context, route catalog.Route) {
	state := catalog.NewListState(route.Category)
	req := state.Request()
	state.Apply(req.Seq, h.svc.Search(c.Request.Context(), req))

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Title": state.Heading(),
		"Cards": catalog.Cards(state.Movies()),
		"Err":   state.Err(),
	})
}

func (h *Handler) detail(c *gin.Context, route catalog.Route) {
	state := catalog.NewDetailState(route.ID)
	state.Apply(h.svc.FetchMovieDetails(c.Request.Context(), state.ID()))

	title := "Movie"
	if m := state.Movie(); m != nil {
		title = m.Title
	}
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Title": title,
		"Movie": state.Movie(),
		"Err":   state.Err(),
	})
}

// searchURL builds the landing-page link for a committed search.
func searchURL(query string, category core.Category, page int) string {
	v := url.Values{}
	v.Set("q", query)
	if category != core.CategoryAll {
		v.Set("type", string(category))
	}
	v.Set("page", strconv.Itoa(page))
	return "/?" + v.Encode()
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
