package services

import (
	"math"
	"testing"

	"coffee-app/internal/models"
)

func TestDistance(t *testing.T) {
	// Центр Кампинаса → аэропорт Виракопус, примерно 14 км.
	got := Distance(-22.9056, -47.0608, -23.0074, -47.1345)
	if got < 13 || got > 15 {
		t.Errorf("Distance = %.2f km, want ~14 km", got)
	}

	if got := Distance(-22.9056, -47.0608, -22.9056, -47.0608); got != 0 {
		t.Errorf("Distance to self = %f, want 0", got)
	}
}

func TestOptimizeByProximity(t *testing.T) {
	visits := []models.Visit{
		{ID: "far", Client: models.Client{Location: models.GeoPoint{Latitude: 0, Longitude: 10}}},
		{ID: "mid", Client: models.Client{Location: models.GeoPoint{Latitude: 0, Longitude: 5}}},
		{ID: "near", Client: models.Client{Location: models.GeoPoint{Latitude: 0, Longitude: 1}}},
	}

	ordered := OptimizeByProximity(visits, models.GeoPoint{Latitude: 0, Longitude: 0})

	wantOrder := []string{"near", "mid", "far"}
	for i, id := range wantOrder {
		if ordered[i].ID != id {
			t.Fatalf("ordered[%d] = %s, want %s", i, ordered[i].ID, id)
		}
	}

	// Вход не должен измениться.
	if visits[0].ID != "far" || visits[2].ID != "near" {
		t.Error("OptimizeByProximity mutated input slice")
	}
}

func TestOptimizeByProximityStable(t *testing.T) {
	// Одинаковые расстояния сохраняют исходный порядок.
	visits := []models.Visit{
		{ID: "a", Client: models.Client{Location: models.GeoPoint{Latitude: 0, Longitude: 2}}},
		{ID: "b", Client: models.Client{Location: models.GeoPoint{Latitude: 0, Longitude: 2}}},
	}

	ordered := OptimizeByProximity(visits, models.GeoPoint{})
	if ordered[0].ID != "a" || ordered[1].ID != "b" {
		t.Errorf("equal distances reordered: got %s, %s", ordered[0].ID, ordered[1].ID)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(-22.90, -47.06, -22.95, -47.10)
	d2 := Distance(-22.95, -47.10, -22.90, -47.06)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Distance is not symmetric: %f vs %f", d1, d2)
	}
}
