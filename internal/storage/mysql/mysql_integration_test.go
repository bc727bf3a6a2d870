//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"event_recommender/internal/domain"
	mysqlrepo "event_recommender/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=eventrec",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/eventrec?parseTime=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_FavoritesAndItems(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	// Idempotent: second run must not fail.
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema (again): %v", err)
	}

	items := []domain.Item{
		{
			ID: "E1", Name: "Jazz Night", Description: "late show",
			Categories: []string{"Music", "Jazz"},
			Lat:        40.7484, Lon: -73.9857,
			Date: "2026-09-01", PriceRange: "$25-80",
			ImageURL: "https://img.example.com/e1.jpg", URL: "https://example.com/e1",
			Address: "350 5th Ave", City: "New York", State: "New York",
			Country: "United States Of America", Zip: "10001",
		},
		{ID: "E2", Name: "Street Fair", Categories: []string{"Undefined"}, Lat: 40.71, Lon: -74.0},
		{ID: ""}, // skipped
	}
	if err := repo.SaveItems(ctx, items); err != nil {
		t.Fatalf("save items: %v", err)
	}

	// Upsert: a fresher snapshot overwrites attributes.
	items[0].Name = "Jazz Night (moved)"
	if err := repo.SaveItems(ctx, items[:1]); err != nil {
		t.Fatalf("save items again: %v", err)
	}

	cats, err := repo.GetCategories(ctx, "E1")
	if err != nil {
		t.Fatalf("get categories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %v", cats)
	}

	// Unknown item: empty, not an error.
	cats, err = repo.GetCategories(ctx, "nope")
	if err != nil || len(cats) != 0 {
		t.Fatalf("expected empty categories for unknown item, got %v / %v", cats, err)
	}

	// Favorites round-trip for the seed user.
	if err := repo.SetFavorites(ctx, "1111", []string{"E1", "E2"}); err != nil {
		t.Fatalf("set favorites: %v", err)
	}
	// Duplicate add is a no-op.
	if err := repo.SetFavorites(ctx, "1111", []string{"E1"}); err != nil {
		t.Fatalf("set favorites (dup): %v", err)
	}

	ids, err := repo.GetFavoriteItemIDs(ctx, "1111")
	if err != nil {
		t.Fatalf("get favorite ids: %v", err)
	}
	if len(ids) != 2 || !ids["E1"] || !ids["E2"] {
		t.Fatalf("unexpected favorite ids: %v", ids)
	}

	favs, err := repo.GetFavoriteItems(ctx, "1111")
	if err != nil {
		t.Fatalf("get favorite items: %v", err)
	}
	if len(favs) != 2 {
		t.Fatalf("expected 2 favorite items, got %d", len(favs))
	}
	byID := map[string]domain.Item{}
	for _, it := range favs {
		byID[it.ID] = it
	}
	if byID["E1"].Name != "Jazz Night (moved)" {
		t.Fatalf("expected upserted name, got %q", byID["E1"].Name)
	}
	if len(byID["E1"].Categories) != 2 {
		t.Fatalf("expected categories on favorite item, got %v", byID["E1"].Categories)
	}

	if err := repo.UnsetFavorites(ctx, "1111", []string{"E1"}); err != nil {
		t.Fatalf("unset favorites: %v", err)
	}
	ids, err = repo.GetFavoriteItemIDs(ctx, "1111")
	if err != nil {
		t.Fatalf("get favorite ids: %v", err)
	}
	if len(ids) != 1 || ids["E1"] {
		t.Fatalf("expected only E2 to remain, got %v", ids)
	}

	// Unknown user: empty map, not an error.
	ids, err = repo.GetFavoriteItemIDs(ctx, "9999")
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected empty favorites for unknown user, got %v / %v", ids, err)
	}
}
