package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"event_recommender/internal/domain"
)

// RecommendService derives a user's interest categories from their favorited
// events, fans out one provider search per category, and returns candidates
// ranked by distance from the caller's location.
//
// The service holds no per-request state; collaborators must be safe for
// concurrent use.
type RecommendService struct {
	profiles      domain.ProfileStore
	provider      domain.EventSearchProvider
	cache         domain.Cache
	cacheTTL      time.Duration
	searchTimeout time.Duration
}

func NewRecommendService(p domain.ProfileStore, sp domain.EventSearchProvider, c domain.Cache, cacheTTL, searchTimeout time.Duration) *RecommendService {
	if searchTimeout <= 0 {
		searchTimeout = 10 * time.Second
	}
	return &RecommendService{profiles: p, provider: sp, cache: c, cacheTTL: cacheTTL, searchTimeout: searchTimeout}
}

// Recommend returns events near (lat, lon) matching the user's interests,
// ascending by distance. A user with no favorites gets an empty list without
// any provider call. Store or provider failures fail the whole request; a
// partial ranking is never presented as complete.
func (s *RecommendService) Recommend(ctx context.Context, userID string, lat, lon float64) ([]domain.Item, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	favorites, err := s.profiles.GetFavoriteItemIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorites for %s: %w", userID, err)
	}
	if len(favorites) == 0 {
		log.Debug().Str("user_id", userID).Msg("no favorites, skipping search")
		return []domain.Item{}, nil
	}

	perItem := make([][]string, 0, len(favorites))
	for itemID := range favorites {
		cats, err := s.profiles.GetCategories(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("load categories for %s: %w", itemID, err)
		}
		perItem = append(perItem, cats)
	}
	terms := AggregateCategories(perItem)

	// Fan out one search per term; each goroutine owns its result slot so the
	// join needs no locking and merge order stays deterministic.
	results := make([][]domain.Item, len(terms))
	g, gctx := errgroup.WithContext(ctx)
	for i, term := range terms {
		i, term := i, term
		g.Go(func() error {
			items, err := s.searchTerm(gctx, lat, lon, term)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	var candidates []domain.Item
	for _, r := range results {
		candidates = append(candidates, r...)
	}

	out := Assemble(candidates, favorites, domain.Coordinate{Lat: lat, Lon: lon})
	log.Info().
		Str("user_id", userID).
		Int("terms", len(terms)).
		Int("candidates", len(candidates)).
		Int("returned", len(out)).
		Msg("recommendation built")
	return out, nil
}

// searchTerm runs one provider query under its own timeout. A query that
// times out or returns nothing contributes zero candidates; other terms
// still count. Any other provider error fails the request.
func (s *RecommendService) searchTerm(ctx context.Context, lat, lon float64, term string) ([]domain.Item, error) {
	key := searchCacheKey(lat, lon, term)
	if s.cache != nil {
		var cached []domain.Item
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	items, err := s.provider.SearchByKeyword(callCtx, lat, lon, term)
	if err != nil {
		// Per-call timeout degrades to an empty result; only propagate when
		// the caller's own context is done or the provider truly failed.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			log.Warn().Str("term", term).Msg("search timed out, treating as empty")
			return nil, nil
		}
		return nil, err
	}
	if items == nil {
		return nil, nil
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
	}
	return items, nil
}

func searchCacheKey(lat, lon float64, term string) string {
	return fmt.Sprintf("search:%.4f:%.4f:%s", lat, lon, term)
}
