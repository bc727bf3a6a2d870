package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("collaborator unavailable")
)

// ProfileStore is the read side of the user/item store the recommendation
// pipeline depends on. Implementations must be safe for concurrent use.
type ProfileStore interface {
	// GetFavoriteItemIDs returns the IDs of the user's favorited items.
	// Unknown user or no favorites yields an empty map, not an error.
	GetFavoriteItemIDs(ctx context.Context, userID string) (map[string]bool, error)
	// GetCategories returns the category tags of an item. Unknown or
	// untagged items yield an empty slice, not an error.
	GetCategories(ctx context.Context, itemID string) ([]string, error)
}

// FavoriteStore extends ProfileStore with the write paths and the
// full-item read used by the history API.
type FavoriteStore interface {
	ProfileStore
	GetFavoriteItems(ctx context.Context, userID string) ([]Item, error)
	SetFavorites(ctx context.Context, userID string, itemIDs []string) error
	UnsetFavorites(ctx context.Context, userID string, itemIDs []string) error
}

// ItemStore persists items discovered through provider searches so that
// category lookups have data to serve.
type ItemStore interface {
	SaveItems(ctx context.Context, items []Item) error
}

// EventSearchProvider is the external search API. A nil item slice with a
// nil error is a legal "no results" answer and must be tolerated.
type EventSearchProvider interface {
	// SearchByKeyword returns events near (lat, lon) matching keyword.
	// An empty keyword asks the provider for unfiltered nearby results.
	SearchByKeyword(ctx context.Context, lat, lon float64, keyword string) ([]Item, error)
	// NearbyEvents returns events near (lat, lon) without a keyword filter.
	NearbyEvents(ctx context.Context, lat, lon float64) ([]Item, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
