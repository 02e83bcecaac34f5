package services

import (
	"context"
	"testing"
	"time"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

func newTestTrackingService(st store.Store, now time.Time) *trackingService {
	return &trackingService{
		store: st,
		now:   func() time.Time { return now },
	}
}

func TestLoadTechniciansSeeds(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestTrackingService(ms, time.Now())

	techs, err := svc.LoadTechnicians(context.Background())
	if err != nil {
		t.Fatalf("LoadTechnicians: %v", err)
	}
	if len(techs) != 3 {
		t.Fatalf("seeded technicians = %d, want 3", len(techs))
	}
}

func TestUpdateTechnicianLocation(t *testing.T) {
	ms := store.NewMemoryStore()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc := newTestTrackingService(ms, now)
	ctx := context.Background()

	techs, _ := svc.LoadTechnicians(ctx)
	id := techs[0].ID

	err := svc.UpdateTechnicianLocation(ctx, id, -22.91, -47.06, "Av. Norte-Sul, Campinas")
	if err != nil {
		t.Fatalf("UpdateTechnicianLocation: %v", err)
	}

	techs, _ = svc.LoadTechnicians(ctx)
	loc := techs[0].Location
	if loc.Latitude != -22.91 || loc.Longitude != -47.06 {
		t.Errorf("location = %+v", loc)
	}
	if loc.Address != "Av. Norte-Sul, Campinas" {
		t.Errorf("address = %q", loc.Address)
	}
	if loc.LastUpdate != now.Format(time.RFC3339) {
		t.Errorf("lastUpdate = %q", loc.LastUpdate)
	}
}

func TestUpdateTechnicianStatus(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestTrackingService(ms, time.Now())
	ctx := context.Background()

	techs, _ := svc.LoadTechnicians(ctx)
	id := techs[0].ID

	if err := svc.UpdateTechnicianStatus(ctx, id, models.TechBusy); err != nil {
		t.Fatalf("UpdateTechnicianStatus: %v", err)
	}
	techs, _ = svc.LoadTechnicians(ctx)
	if techs[0].Status != models.TechBusy {
		t.Errorf("status = %s, want busy", techs[0].Status)
	}
}

func TestAddTechnician(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestTrackingService(ms, time.Now())
	ctx := context.Background()

	created, err := svc.AddTechnician(ctx, models.Technician{
		Name:       "Novo Técnico",
		Status:     models.TechActive,
		TodayStats: models.TodayStats{Completed: 99},
	})
	if err != nil {
		t.Fatalf("AddTechnician: %v", err)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}
	// Статистика нового техника обнуляется.
	if created.TodayStats != (models.TodayStats{}) {
		t.Errorf("todayStats = %+v, want zeroed", created.TodayStats)
	}

	techs, _ := svc.LoadTechnicians(ctx)
	if len(techs) != 4 {
		t.Errorf("technicians = %d, want 4", len(techs))
	}
}

func TestHeartbeatTouchesAll(t *testing.T) {
	ms := store.NewMemoryStore()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc := newTestTrackingService(ms, now)
	ctx := context.Background()

	before, _ := svc.LoadTechnicians(ctx)

	later := now.Add(heartbeatInterval)
	svc.now = func() time.Time { return later }
	if err := svc.touchAll(ctx); err != nil {
		t.Fatalf("touchAll: %v", err)
	}

	after, _ := svc.LoadTechnicians(ctx)
	want := later.Format(time.RFC3339)
	for i, tech := range after {
		if tech.Location.LastUpdate != want {
			t.Errorf("technician %s lastUpdate = %q, want %q", tech.ID, tech.Location.LastUpdate, want)
		}
		// Координаты не меняются.
		if tech.Location.Latitude != before[i].Location.Latitude {
			t.Errorf("technician %s latitude changed", tech.ID)
		}
	}
}
