package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
	"coffee-app/internal/utils"
)

// Вид вложения ордера.
const (
	AttachmentPhoto               = "photo"
	AttachmentTechnicianSignature = "technicianSignature"
	AttachmentClientSignature     = "clientSignature"
)

type OrderService interface {
	LoadServiceOrders(ctx context.Context) ([]models.ServiceOrder, error)
	// SaveServiceOrder — append-only: существующие записи не трогаются.
	SaveServiceOrder(ctx context.Context, order *models.ServiceOrder) error
	UpdateServiceOrder(ctx context.Context, orderID string, updates models.ServiceOrderUpdate) error
	SyncServiceOrder(ctx context.Context, orderID string) error
	OrdersForTechnician(ctx context.Context, technicianID string) ([]models.ServiceOrder, error)
	AttachMedia(ctx context.Context, orderID, kind string, data []byte, contentType string) (string, error)
}

type orderService struct {
	store    store.Store
	media    MediaStore
	notifier *Notifier
	mu       sync.Mutex
	now      func() time.Time
}

func NewOrderService(st store.Store, media MediaStore, notifier *Notifier) OrderService {
	return &orderService{store: st, media: media, notifier: notifier, now: time.Now}
}

func (s *orderService) LoadServiceOrders(ctx context.Context) ([]models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.ServiceOrder
	if _, err := getJSON(ctx, s.store, store.KeyServiceOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.ServiceOrder{}
	}
	return orders, nil
}

func (s *orderService) SaveServiceOrder(ctx context.Context, order *models.ServiceOrder) error {
	if err := utils.GetValidator().Struct(order); err != nil {
		return err
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := s.now().Format(time.RFC3339)
	if order.CreatedAt == "" {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	if order.Status == "" {
		// Поток сохранения не проходит через draft: форма сдаётся целиком.
		order.Status = models.OrderCompleted
	}

	s.mu.Lock()
	var orders []models.ServiceOrder
	if _, err := getJSON(ctx, s.store, store.KeyServiceOrders, &orders); err != nil {
		s.mu.Unlock()
		return err
	}
	orders = append(orders, *order)
	if err := setJSON(ctx, s.store, store.KeyServiceOrders, orders); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.NotifyNewOrder(ctx, *order)
	return nil
}

// UpdateServiceOrder сливает частичные поля в запись; неизвестный id — no-op.
func (s *orderService) UpdateServiceOrder(ctx context.Context, orderID string, updates models.ServiceOrderUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.ServiceOrder
	if _, err := getJSON(ctx, s.store, store.KeyServiceOrders, &orders); err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		applyOrderUpdate(&orders[i], updates)
		orders[i].UpdatedAt = s.now().Format(time.RFC3339)
		return setJSON(ctx, s.store, store.KeyServiceOrders, orders)
	}
	return nil
}

func (s *orderService) SyncServiceOrder(ctx context.Context, orderID string) error {
	synced := models.OrderSynced
	return s.UpdateServiceOrder(ctx, orderID, models.ServiceOrderUpdate{Status: &synced})
}

func (s *orderService) OrdersForTechnician(ctx context.Context, technicianID string) ([]models.ServiceOrder, error) {
	orders, err := s.LoadServiceOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.ServiceOrder, 0)
	for _, o := range orders {
		if o.TechnicianID == technicianID {
			result = append(result, o)
		}
	}
	return result, nil
}

// AttachMedia кладёт вложение в объектное хранилище и
// записывает ссылку в соответствующее поле ордера.
func (s *orderService) AttachMedia(ctx context.Context, orderID, kind string, data []byte, contentType string) (string, error) {
	objectName := fmt.Sprintf("orders/%s/%s-%s", orderID, kind, uuid.NewString())
	ref, err := s.media.Save(ctx, objectName, data, contentType)
	if err != nil {
		return "", err
	}

	updates := models.ServiceOrderUpdate{}
	switch kind {
	case AttachmentTechnicianSignature:
		updates.TechnicianSignature = &ref
	case AttachmentClientSignature:
		updates.ClientSignature = &ref
	default:
		updates.MachinePhoto = &ref
	}
	if err := s.UpdateServiceOrder(ctx, orderID, updates); err != nil {
		return "", err
	}
	return ref, nil
}

func applyOrderUpdate(order *models.ServiceOrder, u models.ServiceOrderUpdate) {
	if u.ArrivalTime != nil {
		order.ArrivalTime = *u.ArrivalTime
	}
	if u.DepartureTime != nil {
		order.DepartureTime = *u.DepartureTime
	}
	if u.ResponsibleName != nil {
		order.ResponsibleName = *u.ResponsibleName
	}
	if u.ReportedProblems != nil {
		order.ReportedProblems = *u.ReportedProblems
	}
	if u.ServiceExecuted != nil {
		order.ServiceExecuted = *u.ServiceExecuted
	}
	if u.ReplacedParts != nil {
		order.ReplacedParts = *u.ReplacedParts
	}
	if u.GeneralObservations != nil {
		order.GeneralObservations = *u.GeneralObservations
	}
	if u.Statistics != nil {
		order.Statistics = *u.Statistics
	}
	if u.MachinePhoto != nil {
		order.MachinePhoto = *u.MachinePhoto
	}
	if u.TechnicianSignature != nil {
		order.TechnicianSignature = *u.TechnicianSignature
	}
	if u.ClientSignature != nil {
		order.ClientSignature = *u.ClientSignature
	}
	if u.Status != nil {
		order.Status = *u.Status
	}
}
