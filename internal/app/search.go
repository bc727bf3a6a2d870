package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"event_recommender/internal/domain"
)

// FlaggedItem is an item plus the caller-facing favorite flag. The flag is
// response decoration for the search/history surfaces; the recommendation
// pipeline excludes favorites outright instead of flagging them.
type FlaggedItem struct {
	domain.Item
	Favorite bool `json:"favorite"`
}

// SearchService serves the plain nearby-events search: no profile involved,
// just discovery around a point. Items the provider returns are persisted so
// later category lookups (and therefore recommendations) have data.
type SearchService struct {
	store    domain.FavoriteStore
	items    domain.ItemStore
	provider domain.EventSearchProvider
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(store domain.FavoriteStore, items domain.ItemStore, p domain.EventSearchProvider, c domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{store: store, items: items, provider: p, cache: c, cacheTTL: ttl}
}

// SearchNearby returns events near (lat, lon). When userID is non-empty each
// result carries whether that user already favorited it.
func (s *SearchService) SearchNearby(ctx context.Context, userID string, lat, lon float64) ([]FlaggedItem, error) {
	key := fmt.Sprintf("nearby:%.4f:%.4f", lat, lon)

	var items []domain.Item
	hit := false
	if s.cache != nil {
		hit, _ = s.cache.Get(ctx, key, &items)
	}
	if !hit {
		found, err := s.provider.NearbyEvents(ctx, lat, lon)
		if err != nil {
			return nil, fmt.Errorf("nearby search: %w", err)
		}
		items = found

		// Persist best-effort; a failed write must not fail the search.
		if s.items != nil && len(items) > 0 {
			if err := s.items.SaveItems(ctx, items); err != nil {
				log.Warn().Err(err).Int("count", len(items)).Msg("saving search results failed")
			}
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
		}
	}

	favorites := map[string]bool{}
	if userID != "" {
		var err error
		favorites, err = s.store.GetFavoriteItemIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load favorites for %s: %w", userID, err)
		}
	}

	out := make([]FlaggedItem, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		out = append(out, FlaggedItem{Item: it, Favorite: favorites[it.ID]})
	}
	return out, nil
}

// FavoriteService manages a user's favorites history.
type FavoriteService struct {
	store domain.FavoriteStore
}

func NewFavoriteService(store domain.FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// List returns the user's favorited items, each flagged favorite=true.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]FlaggedItem, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	items, err := s.store.GetFavoriteItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorite items for %s: %w", userID, err)
	}
	out := make([]FlaggedItem, 0, len(items))
	for _, it := range items {
		out = append(out, FlaggedItem{Item: it, Favorite: true})
	}
	return out, nil
}

func (s *FavoriteService) Add(ctx context.Context, userID string, itemIDs []string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if len(itemIDs) == 0 {
		return nil
	}
	return s.store.SetFavorites(ctx, userID, itemIDs)
}

func (s *FavoriteService) Remove(ctx context.Context, userID string, itemIDs []string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if len(itemIDs) == 0 {
		return nil
	}
	return s.store.UnsetFavorites(ctx, userID, itemIDs)
}
