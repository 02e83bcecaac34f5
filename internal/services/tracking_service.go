package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
	"coffee-app/internal/utils"
)

// Период «пульса» присутствия техников.
const heartbeatInterval = 30 * time.Second

type TrackingService interface {
	LoadTechnicians(ctx context.Context) ([]models.Technician, error)
	UpdateTechnicianLocation(ctx context.Context, technicianID string, lat, lon float64, address string) error
	UpdateTechnicianStatus(ctx context.Context, technicianID string, status models.TechnicianStatus) error
	AddTechnician(ctx context.Context, tech models.Technician) (*models.Technician, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) string
	// StartHeartbeat раз в 30 секунд обновляет lastUpdate всех техников,
	// не трогая координаты: имитация живого трекинга, не реальный GPS.
	StartHeartbeat(ctx context.Context)
}

type trackingService struct {
	store   store.Store
	geocode *utils.GeocodeClient
	mu      sync.Mutex
	now     func() time.Time
}

func NewTrackingService(st store.Store, geocode *utils.GeocodeClient) TrackingService {
	return &trackingService{store: st, geocode: geocode, now: time.Now}
}

func (s *trackingService) loadLocked(ctx context.Context) ([]models.Technician, error) {
	var techs []models.Technician
	ok, err := getJSON(ctx, s.store, store.KeyTechnicians, &techs)
	if err != nil {
		return nil, err
	}
	if !ok {
		techs = defaultTechnicians(s.now())
		if err := setJSON(ctx, s.store, store.KeyTechnicians, techs); err != nil {
			return nil, err
		}
	}
	return techs, nil
}

func (s *trackingService) LoadTechnicians(ctx context.Context) ([]models.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *trackingService) UpdateTechnicianLocation(ctx context.Context, technicianID string, lat, lon float64, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	for i := range techs {
		if techs[i].ID == technicianID {
			techs[i].Location = models.TechnicianLocation{
				Latitude:   lat,
				Longitude:  lon,
				Address:    address,
				LastUpdate: s.now().Format(time.RFC3339),
			}
		}
	}
	return setJSON(ctx, s.store, store.KeyTechnicians, techs)
}

func (s *trackingService) UpdateTechnicianStatus(ctx context.Context, technicianID string, status models.TechnicianStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	for i := range techs {
		if techs[i].ID == technicianID {
			techs[i].Status = status
		}
	}
	return setJSON(ctx, s.store, store.KeyTechnicians, techs)
}

func (s *trackingService) AddTechnician(ctx context.Context, tech models.Technician) (*models.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	tech.ID = uuid.NewString()
	tech.TodayStats = models.TodayStats{}
	techs = append(techs, tech)

	if err := setJSON(ctx, s.store, store.KeyTechnicians, techs); err != nil {
		return nil, err
	}
	return &tech, nil
}

func (s *trackingService) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	return s.geocode.ReverseGeocode(ctx, lat, lon)
}

func (s *trackingService) StartHeartbeat(ctx context.Context) {
	ticker := time.NewTicker(heartbeatInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.touchAll(ctx); err != nil {
					log.Printf("[TRACKING] Heartbeat failed: %v", err)
				}
			case <-ctx.Done():
				log.Println("[TRACKING] Stopping heartbeat")
				ticker.Stop()
				return
			}
		}
	}()
}

func (s *trackingService) touchAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	techs, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	ts := s.now().Format(time.RFC3339)
	for i := range techs {
		techs[i].Location.LastUpdate = ts
	}
	return setJSON(ctx, s.store, store.KeyTechnicians, techs)
}
