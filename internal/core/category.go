package core

// Category restricts results to one media kind. The zero value means all kinds.
type Category string

// Known categories, matching the OMDb "type" parameter.
const (
	CategoryAll     Category = ""
	CategoryMovie   Category = "movie"
	CategorySeries  Category = "series"
	CategoryEpisode Category = "episode"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryAll, CategoryMovie, CategorySeries, CategoryEpisode}

var categoryOptions = map[Category]string{
	CategoryAll:     "All",
	CategoryMovie:   "Movies",
	CategorySeries:  "Series",
	CategoryEpisode: "Episodes",
}

var categoryHeadings = map[Category]string{
	CategoryAll:     "All Movies",
	CategoryMovie:   "Movie List",
	CategorySeries:  "Series List",
	CategoryEpisode: "Episode List",
}

// ParseCategory maps a user-supplied value to a known category.
// "all" is accepted as an alias for the unfiltered category.
func ParseCategory(s string) (Category, bool) {
	if s == "all" {
		return CategoryAll, true
	}
	c := Category(s)
	_, ok := categoryOptions[c]
	return c, ok
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	_, ok := categoryOptions[c]
	return ok
}

// Option returns the filter selector label, e.g. "Movies".
func (c Category) Option() string {
	if label, ok := categoryOptions[c]; ok {
		return label
	}
	return string(c)
}

// Heading returns the list view heading, e.g. "Series List".
func (c Category) Heading() string {
	if heading, ok := categoryHeadings[c]; ok {
		return heading
	}
	return "Search Results"
}

// Next returns the following selectable category, wrapping around.
func (c Category) Next() Category {
	return Categories[(c.index()+1)%len(Categories)]
}

// Prev returns the preceding selectable category, wrapping around.
func (c Category) Prev() Category {
	return Categories[(c.index()+len(Categories)-1)%len(Categories)]
}

func (c Category) index() int {
	for i, v := range Categories {
		if v == c {
			return i
		}
	}
	return 0
}
