package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"coffee-app/internal/models"
	"coffee-app/internal/store"
)

// Notifier ведёт ящики уведомлений в KV-хранилище.
// Все Notify* вызовы best-effort: ошибка логируется и не
// влияет на результат вызвавшей операции.
type Notifier struct {
	store store.Store
	mu    sync.Mutex
}

func NewNotifier(st store.Store) *Notifier {
	return &Notifier{store: st}
}

func (n *Notifier) append(ctx context.Context, key string, notif models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var list []models.Notification
	if _, err := getJSON(ctx, n.store, key, &list); err != nil {
		return err
	}
	list = append(list, notif)
	return setJSON(ctx, n.store, key, list)
}

// NotifyNewMessage уведомляет получателя о новом сообщении.
func (n *Notifier) NotifyNewMessage(ctx context.Context, recipientID string, msg models.Message) {
	sender := "Técnico"
	if msg.From == "admin" {
		sender = "Administrador"
	}
	preview := msg.Content
	if len([]rune(preview)) > 50 {
		preview = string([]rune(preview)[:50]) + "..."
	}

	notif := models.Notification{
		ID:        uuid.NewString(),
		Type:      models.NotifNewMessage,
		Title:     "Nova Mensagem",
		Message:   fmt.Sprintf("%s: %s", sender, preview),
		Timestamp: time.Now().Format(time.RFC3339),
		Read:      false,
		Data:      map[string]string{"messageId": msg.ID, "fromId": msg.FromID},
	}
	if err := n.append(ctx, store.KeyNotifications(recipientID), notif); err != nil {
		log.Printf("[NOTIFY] Failed to create message notification: %v", err)
	}
}

// NotifyStatusChange уведомляет админа об изменении статуса визита.
// Статусы вне карты сообщений уведомления не порождают.
func (n *Notifier) NotifyStatusChange(ctx context.Context, visit models.Visit, status models.VisitStatus) {
	statusMessages := map[models.VisitStatus]string{
		models.VisitInProgress: "iniciou",
		models.VisitCompleted:  "concluiu",
		models.VisitCancelled:  "cancelou",
	}
	verb, ok := statusMessages[status]
	if !ok {
		return
	}

	notif := models.Notification{
		ID:        uuid.NewString(),
		Type:      models.NotifStatusChange,
		Title:     "Status da Visita Atualizado",
		Message:   fmt.Sprintf("Técnico %s visita em %s", verb, visit.Client.Name),
		Timestamp: time.Now().Format(time.RFC3339),
		Read:      false,
		Data:      map[string]string{"visitId": visit.ID, "status": string(status)},
	}
	if err := n.append(ctx, store.KeyAdminNotifications, notif); err != nil {
		log.Printf("[NOTIFY] Failed to notify status change: %v", err)
	}
}

// NotifyNewOrder уведомляет админа о новой O.S.
func (n *Notifier) NotifyNewOrder(ctx context.Context, order models.ServiceOrder) {
	short := order.ID
	if len(short) > 6 {
		short = short[len(short)-6:]
	}

	notif := models.Notification{
		ID:        uuid.NewString(),
		Type:      models.NotifNewOrder,
		Title:     "Nova Ordem de Serviço",
		Message:   fmt.Sprintf("O.S. #%s criada por %s", short, order.Client.Name),
		Timestamp: time.Now().Format(time.RFC3339),
		Read:      false,
		Data:      map[string]string{"orderId": order.ID},
	}
	if err := n.append(ctx, store.KeyAdminNotifications, notif); err != nil {
		log.Printf("[NOTIFY] Failed to notify new order: %v", err)
	}
}

func (n *Notifier) List(ctx context.Context, userID string) ([]models.Notification, error) {
	key := store.KeyNotifications(userID)
	if userID == "admin" {
		key = store.KeyAdminNotifications
	}
	var list []models.Notification
	if _, err := getJSON(ctx, n.store, key, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

func (n *Notifier) MarkRead(ctx context.Context, userID, notifID string) error {
	key := store.KeyNotifications(userID)
	if userID == "admin" {
		key = store.KeyAdminNotifications
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var list []models.Notification
	if _, err := getJSON(ctx, n.store, key, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == notifID {
			list[i].Read = true
		}
	}
	return setJSON(ctx, n.store, key, list)
}
