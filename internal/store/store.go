// Package store реализует key-value хранилище приложения:
// строковый ключ → сериализованный JSON. Ключи совместимы с
// форматом мобильного клиента (@user, @clients, @visits и т.д.).
package store

import "context"

const (
	KeyUser               = "@user"
	KeyClients            = "@clients"
	KeyVisits             = "@visits"
	KeyServiceOrders      = "@serviceOrders"
	KeyTechnicians        = "@technicians"
	KeyAdminSession       = "@admin_session"
	KeyAdminNotifications = "@admin_notifications"
)

// KeyNotifications — ящик уведомлений пользователя.
func KeyNotifications(userID string) string { return "@notifications_" + userID }

// Store — плоское хранилище без транзакций; сериализацию
// read-modify-write обеспечивают сервисы (один писатель на коллекцию).
type Store interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
