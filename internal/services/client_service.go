package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

type ClientService interface {
	// LoadClients возвращает каталог; при первом запуске пишет сид.
	LoadClients(ctx context.Context) ([]models.Client, error)
	AddClient(ctx context.Context, client models.Client) (*models.Client, bool)
	UpdateClient(ctx context.Context, client models.Client) bool
	DeleteClient(ctx context.Context, clientID string) bool
}

type clientService struct {
	store store.Store
	mu    sync.Mutex
}

func NewClientService(st store.Store) ClientService {
	return &clientService{store: st}
}

func (s *clientService) loadLocked(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	ok, err := getJSON(ctx, s.store, store.KeyClients, &clients)
	if err != nil {
		return nil, err
	}
	if !ok {
		clients = defaultClients()
		if err := setJSON(ctx, s.store, store.KeyClients, clients); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

func (s *clientService) LoadClients(ctx context.Context) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *clientService) AddClient(ctx context.Context, client models.Client) (*models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.loadLocked(ctx)
	if err != nil {
		log.Printf("[CLIENTS] Error adding client: %v", err)
		return nil, false
	}

	client.ID = uuid.NewString()
	clients = append(clients, client)

	if err := setJSON(ctx, s.store, store.KeyClients, clients); err != nil {
		log.Printf("[CLIENTS] Error adding client: %v", err)
		return nil, false
	}
	return &client, true
}

// UpdateClient заменяет запись по id; отсутствующий id — no-op.
func (s *clientService) UpdateClient(ctx context.Context, client models.Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.loadLocked(ctx)
	if err != nil {
		log.Printf("[CLIENTS] Error updating client: %v", err)
		return false
	}

	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
		}
	}

	if err := setJSON(ctx, s.store, store.KeyClients, clients); err != nil {
		log.Printf("[CLIENTS] Error updating client: %v", err)
		return false
	}
	return true
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.loadLocked(ctx)
	if err != nil {
		log.Printf("[CLIENTS] Error deleting client: %v", err)
		return false
	}

	filtered := clients[:0]
	for _, c := range clients {
		if c.ID != clientID {
			filtered = append(filtered, c)
		}
	}

	if err := setJSON(ctx, s.store, store.KeyClients, filtered); err != nil {
		log.Printf("[CLIENTS] Error deleting client: %v", err)
		return false
	}
	return true
}
