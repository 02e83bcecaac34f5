package services

import (
	"context"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"coffee-app/internal/models"
	"coffee-app/internal/repository"
	"coffee-app/internal/store"
)

const (
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

type credential struct {
	Email        string
	PasswordHash []byte
	Name         string
	ID           string
	Role         string
}

type AuthService interface {
	// Login сверяет данные со статическим списком. Несовпадение —
	// не ошибка: просто (nil, false), без различения email/пароль.
	Login(ctx context.Context, email, password string) (*models.User, bool)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	Loading() bool
}

type authService struct {
	store   store.Store
	msgRepo repository.MessageRepository

	mu      sync.RWMutex
	user    *models.User
	loading bool

	credentials []credential
}

// NewAuthService восстанавливает сессию из хранилища (checkAuthState).
func NewAuthService(ctx context.Context, st store.Store, msgRepo repository.MessageRepository) AuthService {
	s := &authService{
		store:       st,
		msgRepo:     msgRepo,
		loading:     true,
		credentials: staticCredentials(),
	}
	s.checkAuthState(ctx)
	return s
}

// Статический список учёток. Пароли хэшируются при старте,
// чтобы в памяти не лежал открытый текст.
func staticCredentials() []credential {
	plain := []struct {
		email, password, name, id, role string
	}{
		{"klaus@coffee.com", "123456", "Klaus Silva", "2", RoleTechnician},
		{"joao@coffee.com", "123456", "João Santos", "3", RoleTechnician},
		{"edison@coffee.com", "123456", "Edison Lima", "4", RoleTechnician},
		{"tecnico@coffee.com", "123456", "João Silva", "1", RoleTechnician},
		{"admin@coffee.com", "admin123", "Administrador", "admin", RoleAdmin},
	}

	creds := make([]credential, 0, len(plain))
	for _, p := range plain {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash static credential: %v", err)
		}
		creds = append(creds, credential{
			Email:        p.email,
			PasswordHash: hash,
			Name:         p.name,
			ID:           p.id,
			Role:         p.role,
		})
	}
	return creds
}

func (s *authService) checkAuthState(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	// Сессии техника и админа лежат под разными ключами.
	for _, key := range []string{store.KeyUser, store.KeyAdminSession} {
		var user models.User
		ok, err := getJSON(ctx, s.store, key, &user)
		if err != nil {
			log.Printf("[AUTH] Error checking auth state: %v", err)
			return
		}
		if ok {
			s.mu.Lock()
			s.user = &user
			s.mu.Unlock()
			return
		}
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, bool) {
	for _, cred := range s.credentials {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)) != nil {
			return nil, false
		}

		user := &models.User{
			ID:    cred.ID,
			Name:  cred.Name,
			Email: email,
			Role:  cred.Role,
		}

		key := store.KeyUser
		if cred.Role == RoleAdmin {
			key = store.KeyAdminSession
		}
		if err := setJSON(ctx, s.store, key, user); err != nil {
			log.Printf("[AUTH] Login error: %v", err)
			return nil, false
		}

		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
		return user, true
	}
	return nil, false
}

// Logout чистит сессию и производные ключи пользователя.
// Ошибки хранилища не выходят наружу: состояние сбрасывается всегда.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.mu.Unlock()

	if user == nil {
		return nil
	}

	if user.Role == RoleAdmin {
		if err := s.store.Delete(ctx, store.KeyAdminSession, store.KeyAdminNotifications); err != nil {
			log.Printf("[AUTH] Admin logout error: %v", err)
		}
		return nil
	}

	keys := []string{
		store.KeyUser,
		store.KeyVisits,
		store.KeyServiceOrders,
		store.KeyTechnicians,
	}
	if err := s.store.Delete(ctx, keys...); err != nil {
		log.Printf("[AUTH] Logout error: %v", err)
	}
	// Состояние прочитанности живёт в хранилище сообщений, не в KV.
	if err := s.msgRepo.DeleteAllForUser(ctx, user.ID); err != nil {
		log.Printf("[AUTH] Failed to clear message state: %v", err)
	}
	return nil
}

func (s *authService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *authService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
