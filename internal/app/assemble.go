package app

import (
	"sort"

	"event_recommender/internal/domain"
)

// Assemble turns raw search candidates into the final ranking: dedup by item
// ID (last snapshot wins when providers disagree on attributes), drop items
// the user already favorited, and sort ascending by great-circle distance
// from the origin. The sort is stable, so equal-distance items keep the
// order their queries returned them in.
//
// Zero-value candidates (no ID) are skipped rather than treated as errors.
func Assemble(candidates []domain.Item, excludeIDs map[string]bool, origin domain.Coordinate) []domain.Item {
	byID := make(map[string]domain.Item, len(candidates))
	order := make([]string, 0, len(candidates))

	for _, it := range candidates {
		if it.ID == "" {
			continue
		}
		if excludeIDs[it.ID] {
			continue
		}
		if _, seen := byID[it.ID]; !seen {
			order = append(order, it.ID)
		}
		byID[it.ID] = it
	}

	type ranked struct {
		item domain.Item
		dist float64
	}
	rs := make([]ranked, 0, len(order))
	for _, id := range order {
		it := byID[id]
		rs = append(rs, ranked{item: it, dist: domain.Distance(it.Lat, it.Lon, origin.Lat, origin.Lon)})
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].dist < rs[j].dist })

	out := make([]domain.Item, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.item)
	}
	return out
}
