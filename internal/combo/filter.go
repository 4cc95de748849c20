package combo

import (
	"strings"

	"droplist/internal/domain"
)

// FilterFunc is a caller-supplied predicate that replaces the built-in
// text matching entirely. It receives the candidate set (already
// stripped of committed items in multi mode) and the current query.
type FilterFunc func(candidates []domain.Item, query string) []domain.Item

// Filtered is the derived candidate view. Projections is populated in
// non-search mode only and holds the lower-cased display string of each
// candidate, parallel to Items, for type-ahead scanning.
type Filtered struct {
	Items       []domain.Item
	Projections []string
}

// Visible recomputes the candidate list from scratch. Order of the
// source collection is preserved; the result never aliases it.
func Visible(items, selected []domain.Item, multiple bool, query string, custom FilterFunc, toString domain.ItemToString) Filtered {
	if toString == nil {
		toString = domain.DefaultItemToString
	}

	candidates := make([]domain.Item, 0, len(items))
	if multiple && len(selected) > 0 {
		// An item already committed as a chip cannot be picked twice.
		for _, it := range items {
			if domain.IndexOf(selected, it) == -1 {
				candidates = append(candidates, it)
			}
		}
	} else {
		candidates = append(candidates, items...)
	}

	if custom != nil {
		return Filtered{Items: custom(candidates, query)}
	}

	if query != "" {
		needle := strings.ToLower(query)
		matched := make([]domain.Item, 0, len(candidates))
		for _, it := range candidates {
			if strings.Contains(strings.ToLower(toString(it)), needle) {
				matched = append(matched, it)
			}
		}
		return Filtered{Items: matched}
	}

	projections := make([]string, len(candidates))
	for i, it := range candidates {
		projections[i] = strings.ToLower(toString(it))
	}
	return Filtered{Items: candidates, Projections: projections}
}
