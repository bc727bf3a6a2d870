package app

import (
	"sort"

	"event_recommender/internal/domain"
)

// AggregateCategories merges per-item category sets into the user's interest
// set. The provider's "Undefined" placeholder is dropped, and when nothing
// usable remains the single empty-string keyword is returned so that the
// downstream search still has one term to query (an empty keyword asks the
// provider for unfiltered nearby results).
//
// The result is sorted so callers fan out in a deterministic term order.
func AggregateCategories(perItem [][]string) []string {
	union := make(map[string]struct{})
	for _, cats := range perItem {
		for _, c := range cats {
			union[c] = struct{}{}
		}
	}
	delete(union, domain.UndefinedCategory)

	if len(union) == 0 {
		return []string{""}
	}
	out := make([]string, 0, len(union))
	for c := range union {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
