package services

import (
	"context"
	"testing"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

func TestLogin(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewAuthService(context.Background(), ms, newFakeMessageRepo())
	ctx := context.Background()

	user, ok := svc.Login(ctx, "klaus@coffee.com", "123456")
	if !ok {
		t.Fatal("valid credentials rejected")
	}
	if user.ID != "2" || user.Name != "Klaus Silva" || user.Role != RoleTechnician {
		t.Errorf("user = %+v", user)
	}

	// Сессия техника сохраняется под @user.
	if _, found, _ := ms.Get(ctx, store.KeyUser); !found {
		t.Error("technician session not persisted")
	}

	if _, ok := svc.Login(ctx, "klaus@coffee.com", "wrong"); ok {
		t.Error("wrong password accepted")
	}
	if _, ok := svc.Login(ctx, "nobody@coffee.com", "123456"); ok {
		t.Error("unknown email accepted")
	}
}

func TestAdminLoginUsesSeparateSession(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewAuthService(context.Background(), ms, newFakeMessageRepo())
	ctx := context.Background()

	user, ok := svc.Login(ctx, "admin@coffee.com", "admin123")
	if !ok {
		t.Fatal("admin credentials rejected")
	}
	if user.Role != RoleAdmin {
		t.Errorf("role = %s, want admin", user.Role)
	}

	if _, found, _ := ms.Get(ctx, store.KeyAdminSession); !found {
		t.Error("admin session not persisted")
	}
	if _, found, _ := ms.Get(ctx, store.KeyUser); found {
		t.Error("admin login wrote technician session key")
	}
}

func TestLogoutClearsTechnicianState(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewAuthService(context.Background(), ms, newFakeMessageRepo())
	ctx := context.Background()

	if _, ok := svc.Login(ctx, "tecnico@coffee.com", "123456"); !ok {
		t.Fatal("login failed")
	}
	// Производные ключи, которые должен снести logout.
	ms.Set(ctx, store.KeyVisits, []byte("[]"))
	ms.Set(ctx, store.KeyServiceOrders, []byte("[]"))
	ms.Set(ctx, store.KeyTechnicians, []byte("[]"))
	ms.Set(ctx, store.KeyClients, []byte("[]"))

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	for _, key := range []string{
		store.KeyUser,
		store.KeyVisits,
		store.KeyServiceOrders,
		store.KeyTechnicians,
	} {
		if _, found, _ := ms.Get(ctx, key); found {
			t.Errorf("key %s survived logout", key)
		}
	}
	if svc.CurrentUser() != nil {
		t.Error("CurrentUser not nil after logout")
	}
	// Каталог клиентов не относится к сессии и переживает выход.
	if _, found, _ := ms.Get(ctx, store.KeyClients); !found {
		t.Error("client catalog cleared by logout")
	}
}

func TestCheckAuthStateRestoresSession(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()

	saved := models.User{ID: "2", Name: "Klaus Silva", Email: "klaus@coffee.com", Role: RoleTechnician}
	if err := setJSON(ctx, ms, store.KeyUser, saved); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	svc := NewAuthService(ctx, ms, newFakeMessageRepo())
	if svc.Loading() {
		t.Error("still loading after construction")
	}
	user := svc.CurrentUser()
	if user == nil || user.ID != "2" {
		t.Errorf("restored user = %+v", user)
	}
}

func TestCheckAuthStateRestoresAdminSession(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()

	saved := models.User{ID: "admin", Name: "Administrador", Email: "admin@coffee.com", Role: RoleAdmin}
	if err := setJSON(ctx, ms, store.KeyAdminSession, saved); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	svc := NewAuthService(ctx, ms, newFakeMessageRepo())
	user := svc.CurrentUser()
	if user == nil || user.Role != RoleAdmin {
		t.Errorf("restored admin = %+v", user)
	}
}
