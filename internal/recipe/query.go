package recipe

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

type SortOrder string

const (
	SortNameAsc     SortOrder = "name-asc"
	SortNameDesc    SortOrder = "name-desc"
	SortCuisineAsc  SortOrder = "cuisine-asc"
	SortCuisineDesc SortOrder = "cuisine-desc"
)

// ParseSortOrder accepts the textual form used on the command line.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortNameAsc, SortNameDesc, SortCuisineAsc, SortCuisineDesc:
		return order, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// Search keeps recipes whose name or cuisine contains text, ignoring case.
// Empty text keeps everything.
func Search(recipes []*Recipe, text string) []*Recipe {
	if strings.TrimSpace(text) == "" {
		return slices.Clone(recipes)
	}
	// a Caser holds state, so each call gets its own
	fold := cases.Fold()
	needle := fold.String(text)

	matched := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(fold.String(r.name), needle) ||
			strings.Contains(fold.String(r.cuisine), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Sort returns a new slice ordered by order. Ties keep their input order.
func Sort(recipes []*Recipe, order SortOrder) []*Recipe {
	sorted := slices.Clone(recipes)
	var key func(*Recipe) string
	desc := false

	switch order {
	case SortNameAsc:
		key = (*Recipe).Name
	case SortNameDesc:
		key, desc = (*Recipe).Name, true
	case SortCuisineAsc:
		key = (*Recipe).Cuisine
	case SortCuisineDesc:
		key, desc = (*Recipe).Cuisine, true
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b *Recipe) int {
		c := strings.Compare(key(a), key(b))
		if desc {
			return -c
		}
		return c
	})
	return sorted
}

func Favorites(recipes []*Recipe) []*Recipe {
	favorites := make([]*Recipe, 0)
	for _, r := range recipes {
		if r.IsFavorite() {
			favorites = append(favorites, r)
		}
	}
	return favorites
}

// YouTubeVideoID extracts the v parameter from a youtube.com watch URL.
func YouTubeVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != "youtube.com" && !strings.HasSuffix(host, ".youtube.com") {
		return "", false
	}
	id := u.Query().Get("v")
	return id, id != ""
}
