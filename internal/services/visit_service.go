package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

type VisitService interface {
	LoadVisits(ctx context.Context) ([]models.Visit, error)
	// UpdateVisitStatus применяет переход статуса с проверкой графа
	// pending→in_progress→completed, любой→cancelled.
	// Неизвестный id — no-op без ошибки.
	UpdateVisitStatus(ctx context.Context, visitID string, status models.VisitStatus) error
	AddVisit(ctx context.Context, visit models.Visit) error
	GenerateNextVisits(ctx context.Context) error
	VisitsForTechnician(ctx context.Context, technicianID string) ([]models.Visit, error)
	TodaysVisits(ctx context.Context, technicianID string) ([]models.Visit, error)
	UpcomingVisits(ctx context.Context, technicianID string, limit int) ([]models.Visit, error)
}

type visitService struct {
	store    store.Store
	notifier *Notifier
	mu       sync.Mutex
	now      func() time.Time
}

func NewVisitService(st store.Store, notifier *Notifier) VisitService {
	return &visitService{store: st, notifier: notifier, now: time.Now}
}

func (s *visitService) loadLocked(ctx context.Context) ([]models.Visit, error) {
	var visits []models.Visit
	ok, err := getJSON(ctx, s.store, store.KeyVisits, &visits)
	if err != nil {
		return nil, err
	}
	if !ok {
		visits = defaultVisits(s.now())
		if err := setJSON(ctx, s.store, store.KeyVisits, visits); err != nil {
			return nil, err
		}
	}
	return visits, nil
}

func (s *visitService) LoadVisits(ctx context.Context) ([]models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *visitService) UpdateVisitStatus(ctx context.Context, visitID string, status models.VisitStatus) error {
	switch status {
	case models.VisitPending, models.VisitInProgress, models.VisitCompleted, models.VisitCancelled:
	default:
		return models.ErrInvalidStatus
	}

	s.mu.Lock()
	visits, err := s.loadLocked(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	var updated *models.Visit
	for i := range visits {
		if visits[i].ID == visitID {
			if !visits[i].Status.CanTransition(status) {
				s.mu.Unlock()
				return models.ErrInvalidTransition
			}
			visits[i].Status = status
			updated = &visits[i]
			break
		}
	}

	if updated == nil {
		s.mu.Unlock()
		return nil
	}

	if err := setJSON(ctx, s.store, store.KeyVisits, visits); err != nil {
		s.mu.Unlock()
		return err
	}
	visit := *updated
	s.mu.Unlock()

	// Уведомление админа не откатывает смену статуса.
	s.notifier.NotifyStatusChange(ctx, visit, status)
	return nil
}

func (s *visitService) AddVisit(ctx context.Context, visit models.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	visits, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	visits = append(visits, visit)
	return setJSON(ctx, s.store, store.KeyVisits, visits)
}

// GenerateNextVisits дозаполняет расписание на завтра и послезавтра.
// Проверка по scheduledDate делает операцию идемпотентной в пределах дня.
func (s *visitService) GenerateNextVisits(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	visits, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := now.AddDate(0, 0, 2).Format("2006-01-02")

	hasTomorrow, hasDayAfter := false, false
	for _, v := range visits {
		if v.ScheduledDate == tomorrow {
			hasTomorrow = true
		}
		if v.ScheduledDate == dayAfter {
			hasDayAfter = true
		}
	}

	var added bool
	if !hasTomorrow {
		visits = append(visits, autoVisitTomorrow("auto_"+uuid.NewString(), tomorrow))
		added = true
	}
	if !hasDayAfter {
		visits = append(visits, autoVisitDayAfter("auto_"+uuid.NewString(), dayAfter))
		added = true
	}

	if !added {
		return nil
	}
	return setJSON(ctx, s.store, store.KeyVisits, visits)
}

func (s *visitService) VisitsForTechnician(ctx context.Context, technicianID string) ([]models.Visit, error) {
	visits, err := s.LoadVisits(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Visit, 0)
	for _, v := range visits {
		if v.TechnicianID == technicianID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (s *visitService) TodaysVisits(ctx context.Context, technicianID string) ([]models.Visit, error) {
	visits, err := s.VisitsForTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	today := s.now().Format("2006-01-02")
	result := make([]models.Visit, 0)
	for _, v := range visits {
		if v.ScheduledDate == today {
			result = append(result, v)
		}
	}
	return result, nil
}

func (s *visitService) UpcomingVisits(ctx context.Context, technicianID string, limit int) ([]models.Visit, error) {
	visits, err := s.VisitsForTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	today := s.now().Format("2006-01-02")
	result := make([]models.Visit, 0)
	for _, v := range visits {
		if v.ScheduledDate > today {
			result = append(result, v)
			if limit > 0 && len(result) == limit {
				break
			}
		}
	}
	return result, nil
}
