package services

import (
	"context"
	"testing"
	"time"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

func newTestVisitService(st store.Store, now time.Time) *visitService {
	return &visitService{
		store:    st,
		notifier: NewNotifier(st),
		now:      func() time.Time { return now },
	}
}

func TestLoadVisitsSeedsOnFirstRun(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestVisitService(ms, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))

	visits, err := svc.LoadVisits(context.Background())
	if err != nil {
		t.Fatalf("LoadVisits: %v", err)
	}
	if len(visits) == 0 {
		t.Fatal("expected seeded visits on first run")
	}

	// Повторная загрузка отдаёт то же, что записано.
	again, err := svc.LoadVisits(context.Background())
	if err != nil {
		t.Fatalf("LoadVisits: %v", err)
	}
	if len(again) != len(visits) {
		t.Errorf("second load returned %d visits, want %d", len(again), len(visits))
	}
}

func TestUpdateVisitStatusTransitions(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestVisitService(ms, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if err := svc.AddVisit(ctx, models.Visit{ID: "v1", Status: models.VisitPending}); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}

	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitInProgress); err != nil {
		t.Fatalf("pending -> in_progress: %v", err)
	}
	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitCompleted); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}

	// Обратный переход запрещён.
	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitInProgress); err != models.ErrInvalidTransition {
		t.Errorf("completed -> in_progress: got %v, want ErrInvalidTransition", err)
	}

	// Отмена возможна из любого статуса, кроме cancelled.
	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitCancelled); err != nil {
		t.Fatalf("completed -> cancelled: %v", err)
	}
	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitCancelled); err != models.ErrInvalidTransition {
		t.Errorf("cancelled -> cancelled: got %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateVisitStatusValidation(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestVisitService(ms, time.Now())
	ctx := context.Background()

	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitStatus("unknown")); err != models.ErrInvalidStatus {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}

	// Неизвестный id — no-op без ошибки.
	if err := svc.UpdateVisitStatus(ctx, "no-such-visit", models.VisitCancelled); err != nil {
		t.Errorf("unknown visit id: got %v, want nil", err)
	}
}

func TestGenerateNextVisitsIdempotent(t *testing.T) {
	ms := store.NewMemoryStore()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc := newTestVisitService(ms, now)
	ctx := context.Background()

	if _, err := svc.LoadVisits(ctx); err != nil {
		t.Fatalf("LoadVisits: %v", err)
	}

	if err := svc.GenerateNextVisits(ctx); err != nil {
		t.Fatalf("GenerateNextVisits: %v", err)
	}
	first, _ := svc.LoadVisits(ctx)

	// Повторный вызов в тот же день ничего не добавляет.
	if err := svc.GenerateNextVisits(ctx); err != nil {
		t.Fatalf("GenerateNextVisits (repeat): %v", err)
	}
	second, _ := svc.LoadVisits(ctx)

	if len(second) != len(first) {
		t.Errorf("repeated generation added visits: %d -> %d", len(first), len(second))
	}

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := now.AddDate(0, 0, 2).Format("2006-01-02")
	hasTomorrow, hasDayAfter := false, false
	for _, v := range second {
		if v.ScheduledDate == tomorrow {
			hasTomorrow = true
		}
		if v.ScheduledDate == dayAfter {
			hasDayAfter = true
		}
	}
	if !hasTomorrow || !hasDayAfter {
		t.Errorf("missing generated visits: tomorrow=%v dayAfter=%v", hasTomorrow, hasDayAfter)
	}
}

func TestTodaysAndUpcomingVisits(t *testing.T) {
	ms := store.NewMemoryStore()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc := newTestVisitService(ms, now)
	ctx := context.Background()

	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	// Пишем расписание напрямую, чтобы первый доступ не подмешал сид.
	fixture := []models.Visit{
		{ID: "t1", TechnicianID: "1", ScheduledDate: today, Status: models.VisitPending},
		{ID: "t2", TechnicianID: "1", ScheduledDate: tomorrow, Status: models.VisitPending},
		{ID: "t3", TechnicianID: "2", ScheduledDate: today, Status: models.VisitPending},
	}
	if err := setJSON(ctx, ms, store.KeyVisits, fixture); err != nil {
		t.Fatalf("seed visits: %v", err)
	}

	todays, err := svc.TodaysVisits(ctx, "1")
	if err != nil {
		t.Fatalf("TodaysVisits: %v", err)
	}
	if len(todays) != 1 || todays[0].ID != "t1" {
		t.Errorf("TodaysVisits = %v, want [t1]", todays)
	}

	upcoming, err := svc.UpcomingVisits(ctx, "1", 3)
	if err != nil {
		t.Fatalf("UpcomingVisits: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "t2" {
		t.Errorf("UpcomingVisits = %v, want [t2]", upcoming)
	}
}

func TestVisitStatusChangeNotifiesAdmin(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := newTestVisitService(ms, time.Now())
	ctx := context.Background()

	visit := models.Visit{
		ID:     "v1",
		Status: models.VisitPending,
		Client: models.Client{Name: "Café Central"},
	}
	if err := svc.AddVisit(ctx, visit); err != nil {
		t.Fatalf("AddVisit: %v", err)
	}
	if err := svc.UpdateVisitStatus(ctx, "v1", models.VisitInProgress); err != nil {
		t.Fatalf("UpdateVisitStatus: %v", err)
	}

	list, err := svc.notifier.List(ctx, "admin")
	if err != nil {
		t.Fatalf("List notifications: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("admin notifications = %d, want 1", len(list))
	}
	if list[0].Message != "Técnico iniciou visita em Café Central" {
		t.Errorf("notification message = %q", list[0].Message)
	}
}
