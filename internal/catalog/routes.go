package catalog

import (
	"net/url"
	"strings"

	"github.com/vadimtrunov/MovieSearch/internal/core"
)

// View identifies which view a route renders.
type View int

const (
	ViewNotFound View = iota
	ViewSearch
	ViewList
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	default:
		return "not-found"
	}
}

// SearchPath is the landing route.
const SearchPath = "/"

// Route is a parsed client path.
type Route struct {
	Path     string
	View     View
	Category core.Category // list routes
	ID       string        // detail routes
}

// ParseRoute maps a path onto a view:
//
//	/            search
//	/movies      unfiltered list
//	/:type       list filtered by type (any other single segment)
//	/movie/:id   detail
//
// Query strings and fragments are ignored.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = "/" + strings.Trim(path, "/")

	if path == "/" {
		return Route{Path: SearchPath, View: ViewSearch}
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch len(segments) {
	case 1:
		if segments[0] == "movies" {
			return Route{Path: path, View: ViewList, Category: core.CategoryAll}
		}
		seg, err := url.PathUnescape(segments[0])
		if err != nil {
			return Route{Path: path, View: ViewNotFound}
		}
		return Route{Path: path, View: ViewList, Category: core.Category(seg)}
	case 2:
		if segments[0] != "movie" || segments[1] == "" {
			break
		}
		id, err := url.PathUnescape(segments[1])
		if err != nil {
			break
		}
		return Route{Path: path, View: ViewDetail, ID: id}
	}
	return Route{Path: path, View: ViewNotFound}
}

// MoviePath returns the detail route for an identifier.
func MoviePath(id string) string {
	return "/movie/" + url.PathEscape(id)
}

// ListPath returns the list route for a category.
func ListPath(category core.Category) string {
	if category == core.CategoryAll {
		return "/movies"
	}
	return "/" + url.PathEscape(string(category))
}
