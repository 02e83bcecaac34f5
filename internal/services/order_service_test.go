package services

import (
	"context"
	"strings"
	"testing"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

type fakeMediaStore struct {
	saved map[string][]byte
}

func (f *fakeMediaStore) Save(_ context.Context, objectName string, data []byte, _ string) (string, error) {
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[objectName] = data
	return "test-bucket/" + objectName, nil
}

func validOrder() models.ServiceOrder {
	return models.ServiceOrder{
		TechnicianID:    "1",
		ClientID:        "5",
		Client:          models.Client{Name: "Café Jardim Camburi"},
		VisitType:       models.VisitPreventive,
		Date:            "2025-06-02",
		ResponsibleName: "Maria",
	}
}

func TestSaveServiceOrder(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewOrderService(ms, &fakeMediaStore{}, NewNotifier(ms))
	ctx := context.Background()

	order := validOrder()
	if err := svc.SaveServiceOrder(ctx, &order); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}
	if order.ID == "" || order.CreatedAt == "" || order.UpdatedAt == "" {
		t.Errorf("order not stamped: %+v", order)
	}
	if order.Status != models.OrderCompleted {
		t.Errorf("default status = %s, want completed", order.Status)
	}

	// Append-only: второй ордер не трогает первый.
	second := validOrder()
	if err := svc.SaveServiceOrder(ctx, &second); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}
	orders, _ := svc.LoadServiceOrders(ctx)
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	if orders[0].ID != order.ID {
		t.Error("existing order modified by subsequent save")
	}
}

func TestSaveServiceOrderValidation(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewOrderService(ms, &fakeMediaStore{}, NewNotifier(ms))

	order := validOrder()
	order.ResponsibleName = ""
	if err := svc.SaveServiceOrder(context.Background(), &order); err == nil {
		t.Error("order without responsible name accepted")
	}
}

func TestUpdateServiceOrderMergesFields(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewOrderService(ms, &fakeMediaStore{}, NewNotifier(ms))
	ctx := context.Background()

	order := validOrder()
	order.ReportedProblems = "vazamento"
	if err := svc.SaveServiceOrder(ctx, &order); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}

	executed := "troca da válvula"
	if err := svc.UpdateServiceOrder(ctx, order.ID, models.ServiceOrderUpdate{ServiceExecuted: &executed}); err != nil {
		t.Fatalf("UpdateServiceOrder: %v", err)
	}

	orders, _ := svc.LoadServiceOrders(ctx)
	if orders[0].ServiceExecuted != executed {
		t.Errorf("serviceExecuted = %q", orders[0].ServiceExecuted)
	}
	// Незаданные поля не затираются.
	if orders[0].ReportedProblems != "vazamento" {
		t.Errorf("reportedProblems = %q", orders[0].ReportedProblems)
	}

	// Неизвестный id — no-op без ошибки.
	if err := svc.UpdateServiceOrder(ctx, "no-such-order", models.ServiceOrderUpdate{ServiceExecuted: &executed}); err != nil {
		t.Errorf("unknown order id: %v", err)
	}
}

func TestSyncServiceOrder(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewOrderService(ms, &fakeMediaStore{}, NewNotifier(ms))
	ctx := context.Background()

	order := validOrder()
	if err := svc.SaveServiceOrder(ctx, &order); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}
	if err := svc.SyncServiceOrder(ctx, order.ID); err != nil {
		t.Fatalf("SyncServiceOrder: %v", err)
	}

	orders, _ := svc.LoadServiceOrders(ctx)
	if orders[0].Status != models.OrderSynced {
		t.Errorf("status = %s, want synced", orders[0].Status)
	}
}

func TestOrdersForTechnician(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewOrderService(ms, &fakeMediaStore{}, NewNotifier(ms))
	ctx := context.Background()

	mine := validOrder()
	other := validOrder()
	other.TechnicianID = "2"
	svc.SaveServiceOrder(ctx, &mine)
	svc.SaveServiceOrder(ctx, &other)

	orders, err := svc.OrdersForTechnician(ctx, "1")
	if err != nil {
		t.Fatalf("OrdersForTechnician: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != mine.ID {
		t.Errorf("orders = %+v, want only %s", orders, mine.ID)
	}
}

func TestAttachMedia(t *testing.T) {
	ms := store.NewMemoryStore()
	media := &fakeMediaStore{}
	svc := NewOrderService(ms, media, NewNotifier(ms))
	ctx := context.Background()

	order := validOrder()
	if err := svc.SaveServiceOrder(ctx, &order); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}

	ref, err := svc.AttachMedia(ctx, order.ID, AttachmentClientSignature, []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("AttachMedia: %v", err)
	}
	if !strings.HasPrefix(ref, "test-bucket/orders/"+order.ID+"/") {
		t.Errorf("reference = %q", ref)
	}

	orders, _ := svc.LoadServiceOrders(ctx)
	if orders[0].ClientSignature != ref {
		t.Errorf("clientSignature = %q, want %q", orders[0].ClientSignature, ref)
	}
	if len(media.saved) != 1 {
		t.Errorf("media objects saved = %d, want 1", len(media.saved))
	}
}

func TestNewOrderNotifiesAdmin(t *testing.T) {
	ms := store.NewMemoryStore()
	notifier := NewNotifier(ms)
	svc := NewOrderService(ms, &fakeMediaStore{}, notifier)
	ctx := context.Background()

	order := validOrder()
	if err := svc.SaveServiceOrder(ctx, &order); err != nil {
		t.Fatalf("SaveServiceOrder: %v", err)
	}

	list, err := notifier.List(ctx, "admin")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Nova Ordem de Serviço" {
		t.Errorf("notifications = %+v", list)
	}
	if !strings.Contains(list[0].Message, "Café Jardim Camburi") {
		t.Errorf("message = %q", list[0].Message)
	}
}
