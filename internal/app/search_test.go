package app_test

import (
	"context"
	"testing"
	"time"

	"event_recommender/internal/app"
	"event_recommender/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	fakeProfiles
	items map[string]domain.Item
	saved []domain.Item
}

func (f *fakeStore) GetFavoriteItems(ctx context.Context, userID string) ([]domain.Item, error) {
	var out []domain.Item
	for id := range f.favorites[userID] {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStore) SetFavorites(ctx context.Context, userID string, itemIDs []string) error {
	if f.favorites == nil {
		f.favorites = map[string]map[string]bool{}
	}
	if f.favorites[userID] == nil {
		f.favorites[userID] = map[string]bool{}
	}
	for _, id := range itemIDs {
		f.favorites[userID][id] = true
	}
	return nil
}

func (f *fakeStore) UnsetFavorites(ctx context.Context, userID string, itemIDs []string) error {
	for _, id := range itemIDs {
		delete(f.favorites[userID], id)
	}
	return nil
}

func (f *fakeStore) SaveItems(ctx context.Context, items []domain.Item) error {
	f.saved = append(f.saved, items...)
	return nil
}

type fakeCache struct {
	store map[string][]domain.Item
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*[]domain.Item); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]domain.Item{}
	}
	if items, ok := v.([]domain.Item); ok {
		c.store[key] = items
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

// ---- tests ----

func TestSearchNearby_FlagsFavoritesAndSavesItems(t *testing.T) {
	store := &fakeStore{
		fakeProfiles: fakeProfiles{favorites: map[string]map[string]bool{"1111": {"E1": true}}},
	}
	provider := &fakeProvider{byTerm: map[string][]domain.Item{
		"": {itemAtMiles("E1", 1), itemAtMiles("E2", 2)},
	}}
	svc := app.NewSearchService(store, store, provider, nil, time.Minute)

	got, err := svc.SearchNearby(context.Background(), "1111", 40.7128, -74.0060)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	flags := map[string]bool{}
	for _, r := range got {
		flags[r.ID] = r.Favorite
	}
	if !flags["E1"] || flags["E2"] {
		t.Fatalf("unexpected favorite flags: %+v", flags)
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected search results to be persisted, saved=%d", len(store.saved))
	}
}

func TestSearchNearby_CacheHitSkipsProvider(t *testing.T) {
	store := &fakeStore{}
	provider := &fakeProvider{byTerm: map[string][]domain.Item{
		"": {itemAtMiles("E1", 1)},
	}}
	cache := &fakeCache{}
	svc := app.NewSearchService(store, store, provider, cache, time.Minute)

	if _, err := svc.SearchNearby(context.Background(), "", 40.7128, -74.0060); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := svc.SearchNearby(context.Background(), "", 40.7128, -74.0060); err != nil {
		t.Fatalf("err: %v", err)
	}
	if provider.callCount() != 1 {
		t.Fatalf("expected one provider call, got %d", provider.callCount())
	}
}

func TestFavoriteService_RoundTrip(t *testing.T) {
	e1 := itemAtMiles("E1", 1)
	store := &fakeStore{items: map[string]domain.Item{"E1": e1}}
	svc := app.NewFavoriteService(store)
	ctx := context.Background()

	if err := svc.Add(ctx, "1111", []string{"E1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.List(ctx, "1111")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "E1" || !got[0].Favorite {
		t.Fatalf("unexpected history: %+v", got)
	}

	if err := svc.Remove(ctx, "1111", []string{"E1"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err = svc.List(ctx, "1111")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestFavoriteService_RequiresUserID(t *testing.T) {
	svc := app.NewFavoriteService(&fakeStore{})
	if _, err := svc.List(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty user id")
	}
	if err := svc.Add(context.Background(), "", []string{"E1"}); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
