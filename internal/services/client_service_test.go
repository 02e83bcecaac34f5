package services

import (
	"context"
	"reflect"
	"testing"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

func TestLoadClientsSeedsCatalog(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewClientService(ms)
	ctx := context.Background()

	clients, err := svc.LoadClients(ctx)
	if err != nil {
		t.Fatalf("LoadClients: %v", err)
	}
	if len(clients) != 30 {
		t.Fatalf("seeded clients = %d, want 30", len(clients))
	}

	again, err := svc.LoadClients(ctx)
	if err != nil {
		t.Fatalf("LoadClients: %v", err)
	}
	if !reflect.DeepEqual(clients, again) {
		t.Error("second load differs from the seeded catalog")
	}
}

func TestAddClientOnFreshStoreKeepsSeed(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewClientService(ms)
	ctx := context.Background()

	// Мутация без предварительной загрузки не должна терять сид-каталог.
	created, ok := svc.AddClient(ctx, models.Client{
		Name:    "Café Sem Carga",
		Address: "Rua Direta, 10",
		City:    "Campinas",
	})
	if !ok {
		t.Fatal("AddClient returned false")
	}

	clients, err := svc.LoadClients(ctx)
	if err != nil {
		t.Fatalf("LoadClients: %v", err)
	}
	if len(clients) != 31 {
		t.Fatalf("catalog after add-then-load = %d clients, want 31", len(clients))
	}
	if clients[len(clients)-1].ID != created.ID {
		t.Errorf("added client not appended after seed")
	}
}

func TestAddUpdateDeleteClient(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewClientService(ms)
	ctx := context.Background()

	if _, err := svc.LoadClients(ctx); err != nil {
		t.Fatalf("LoadClients: %v", err)
	}

	created, ok := svc.AddClient(ctx, models.Client{
		Name:    "Café Novo",
		Address: "Rua Nova, 1",
		City:    "Campinas",
	})
	if !ok || created.ID == "" {
		t.Fatalf("AddClient: ok=%v, created=%+v", ok, created)
	}

	created.Contact = "(19) 99999-0000"
	if ok := svc.UpdateClient(ctx, *created); !ok {
		t.Fatal("UpdateClient returned false")
	}

	clients, _ := svc.LoadClients(ctx)
	var found *models.Client
	for i := range clients {
		if clients[i].ID == created.ID {
			found = &clients[i]
		}
	}
	if found == nil {
		t.Fatal("added client not in catalog")
	}
	if found.Contact != "(19) 99999-0000" {
		t.Errorf("contact = %q", found.Contact)
	}

	if ok := svc.DeleteClient(ctx, created.ID); !ok {
		t.Fatal("DeleteClient returned false")
	}
	clients, _ = svc.LoadClients(ctx)
	for _, c := range clients {
		if c.ID == created.ID {
			t.Error("client still present after delete")
		}
	}
	if len(clients) != 30 {
		t.Errorf("catalog size after delete = %d, want 30", len(clients))
	}
}

func TestClientValidate(t *testing.T) {
	valid := models.Client{Name: "Café", Address: "Rua A", City: "Campinas"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid client rejected: %v", err)
	}

	missing := models.Client{Name: "Café"}
	if err := missing.Validate(); err == nil {
		t.Error("client without address accepted")
	}
}
