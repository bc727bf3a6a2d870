package app_test

import (
	"testing"

	"event_recommender/internal/app"
	"event_recommender/internal/domain"
)

var origin = domain.Coordinate{Lat: 40.7128, Lon: -74.0060}

func TestAssemble_SortsAscendingByDistance(t *testing.T) {
	out := app.Assemble([]domain.Item{
		itemAtMiles("far", 10),
		itemAtMiles("near", 0.2),
		itemAtMiles("mid", 3),
	}, nil, origin)

	if len(out) != 3 || out[0].ID != "near" || out[1].ID != "mid" || out[2].ID != "far" {
		t.Fatalf("unexpected order: %+v", out)
	}
	for i := 1; i < len(out); i++ {
		a := domain.Distance(out[i-1].Lat, out[i-1].Lon, origin.Lat, origin.Lon)
		b := domain.Distance(out[i].Lat, out[i].Lon, origin.Lat, origin.Lon)
		if a > b {
			t.Fatalf("not sorted at %d: %f > %f", i, a, b)
		}
	}
}

func TestAssemble_StableForEqualDistances(t *testing.T) {
	// Same coordinates, so equal distance; provider order must survive.
	a := itemAtMiles("a", 1)
	b := itemAtMiles("b", 1)
	c := itemAtMiles("c", 1)

	out := app.Assemble([]domain.Item{a, b, c}, nil, origin)
	if out[0].ID != "a" || out[1].ID != "b" || out[2].ID != "c" {
		t.Fatalf("equal-distance order not stable: %+v", out)
	}
}

func TestAssemble_LastSnapshotWinsOnDuplicateID(t *testing.T) {
	first := itemAtMiles("E1", 1)
	first.Name = "old name"
	second := itemAtMiles("E1", 1)
	second.Name = "new name"

	out := app.Assemble([]domain.Item{first, second}, nil, origin)
	if len(out) != 1 {
		t.Fatalf("expected one item, got %d", len(out))
	}
	if out[0].Name != "new name" {
		t.Fatalf("expected last snapshot to win, got %q", out[0].Name)
	}
}

func TestAssemble_ExcludesAndSkipsZeroValues(t *testing.T) {
	out := app.Assemble([]domain.Item{
		itemAtMiles("keep", 1),
		itemAtMiles("fav", 2),
		{}, // zero-value candidate is silently skipped
	}, map[string]bool{"fav": true}, origin)

	if len(out) != 1 || out[0].ID != "keep" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestAssemble_EmptyInput(t *testing.T) {
	out := app.Assemble(nil, nil, origin)
	if len(out) != 0 {
		t.Fatalf("expected empty, got %+v", out)
	}
}
