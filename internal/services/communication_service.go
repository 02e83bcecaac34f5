package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"coffee-app/internal/models"
	"coffee-app/internal/repository"
)

// Канонированные быстрые сообщения мобильного клиента.
var quickMessages = map[string]string{
	"whereAreYou": "📍 Onde você está?",
	"needHelp":    "🆘 Precisa de ajuda?",
	"urgent":      "🚨 URGENTE: Entre em contato imediatamente!",
	"onMyWay":     "🚗 Estou a caminho",
	"completed":   "✅ Serviço concluído",
}

type CommunicationService interface {
	// SendMessage возвращает false только при отказе хранилища;
	// уведомление получателя — best-effort и на результат не влияет.
	SendMessage(ctx context.Context, from models.User, to, content string, msgType models.MessageType, metadata *models.MessageMetadata) bool
	SendQuickMessage(ctx context.Context, from models.User, to, presetKey string) bool
	SendLocationUpdate(ctx context.Context, from models.User, to string, loc models.MessageLocationMeta) bool
	SendRouteOptimization(ctx context.Context, from models.User, to string, routeData interface{}) bool
	LogCall(ctx context.Context, from models.User, to string, durationSeconds int) bool

	Messages(ctx context.Context, userID string) ([]models.Message, error)
	MarkAsRead(ctx context.Context, userID, messageID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	DeleteMessage(ctx context.Context, userID, messageID string) error
	GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error)
	GetAllConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	// RefreshUnread пересчитывает счётчик из хранилища и обновляет кэш.
	RefreshUnread(ctx context.Context, userID string) error
}

type communicationService struct {
	repo     repository.MessageRepository
	redis    *redis.Client
	notifier *Notifier
	now      func() time.Time
}

func NewCommunicationService(repo repository.MessageRepository, rdb *redis.Client, notifier *Notifier) CommunicationService {
	return &communicationService{repo: repo, redis: rdb, notifier: notifier, now: time.Now}
}

func userKind(u models.User) string {
	if u.Role == RoleAdmin {
		return "admin"
	}
	return "technician"
}

func (s *communicationService) SendMessage(ctx context.Context, from models.User, to, content string, msgType models.MessageType, metadata *models.MessageMetadata) bool {
	if msgType == "" {
		msgType = models.MessageText
	}

	msg := &models.Message{
		ID:        uuid.NewString(),
		From:      userKind(from),
		FromID:    from.ID,
		To:        to,
		Content:   content,
		Timestamp: s.now().Format(time.RFC3339Nano),
		Type:      msgType,
		Metadata:  metadata,
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		log.Printf("[COMM] Error sending message: %v", err)
		return false
	}

	s.invalidateUnread(ctx, to)
	s.notifier.NotifyNewMessage(ctx, to, *msg)
	return true
}

func (s *communicationService) SendQuickMessage(ctx context.Context, from models.User, to, presetKey string) bool {
	content, ok := quickMessages[presetKey]
	if !ok {
		return false
	}
	msgType := models.MessageText
	if presetKey == "urgent" {
		msgType = models.MessageAlert
	}
	return s.SendMessage(ctx, from, to, content, msgType, nil)
}

func (s *communicationService) SendLocationUpdate(ctx context.Context, from models.User, to string, loc models.MessageLocationMeta) bool {
	content := fmt.Sprintf("📍 Localização atualizada: %s", loc.Address)
	return s.SendMessage(ctx, from, to, content, models.MessageLocation, &models.MessageMetadata{Location: &loc})
}

func (s *communicationService) SendRouteOptimization(ctx context.Context, from models.User, to string, routeData interface{}) bool {
	return s.SendMessage(ctx, from, to, "🗺️ Nova rota otimizada enviada", models.MessageRoute, &models.MessageMetadata{RouteData: routeData})
}

func (s *communicationService) LogCall(ctx context.Context, from models.User, to string, durationSeconds int) bool {
	content := fmt.Sprintf("📞 Ligação realizada (%d:%02d)", durationSeconds/60, durationSeconds%60)
	return s.SendMessage(ctx, from, to, content, models.MessageCall, &models.MessageMetadata{CallDuration: &durationSeconds})
}

func (s *communicationService) Messages(ctx context.Context, userID string) ([]models.Message, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *communicationService) MarkAsRead(ctx context.Context, userID, messageID string) error {
	if err := s.repo.SetRead(ctx, userID, messageID); err != nil {
		log.Printf("[COMM] Error marking message as read: %v", err)
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

func (s *communicationService) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := s.repo.SetAllRead(ctx, userID); err != nil {
		log.Printf("[COMM] Error marking all messages as read: %v", err)
		return err
	}
	s.invalidateUnread(ctx, userID)
	return nil
}

// DeleteMessage скрывает сообщение только из ящика вызывающего;
// у собеседника запись остаётся.
func (s *communicationService) DeleteMessage(ctx context.Context, userID, messageID string) error {
	return s.repo.Hide(ctx, userID, messageID)
}

func (s *communicationService) GetConversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	messages, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]models.Message, 0)
	for _, m := range messages {
		if (m.FromID == userID && m.To == otherUserID) || (m.To == userID && m.FromID == otherUserID) {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})
	return result, nil
}

func (s *communicationService) GetAllConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	messages, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*models.Conversation)
	for _, m := range messages {
		otherID := m.To
		if m.FromID != userID {
			otherID = m.FromID
		}

		conv, ok := byUser[otherID]
		if !ok {
			conv = &models.Conversation{UserID: otherID, LastMessage: m}
			byUser[otherID] = conv
		} else if m.Timestamp > conv.LastMessage.Timestamp {
			conv.LastMessage = m
		}

		if !m.Read && m.To == userID {
			conv.UnreadCount++
		}
	}

	result := make([]models.Conversation, 0, len(byUser))
	for _, conv := range byUser {
		result = append(result, *conv)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastMessage.Timestamp > result[j].LastMessage.Timestamp
	})
	return result, nil
}

// UnreadCount читает кэш, при промахе пересчитывает из хранилища.
func (s *communicationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	cacheKey := unreadCacheKey(userID)
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			if count, convErr := strconv.Atoi(val); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.countUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.cacheUnread(ctx, userID, count)
	return count, nil
}

func (s *communicationService) RefreshUnread(ctx context.Context, userID string) error {
	count, err := s.countUnread(ctx, userID)
	if err != nil {
		return err
	}
	s.cacheUnread(ctx, userID, count)
	return nil
}

func (s *communicationService) countUnread(ctx context.Context, userID string) (int, error) {
	messages, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range messages {
		if !m.Read && m.To == userID {
			count++
		}
	}
	return count, nil
}

func (s *communicationService) cacheUnread(ctx context.Context, userID string, count int) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, unreadCacheKey(userID), strconv.Itoa(count), time.Minute).Err(); err != nil {
		log.Printf("[COMM] Failed to cache unread count: %v", err)
	}
}

func (s *communicationService) invalidateUnread(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, unreadCacheKey(userID)).Err(); err != nil {
		log.Printf("[COMM] Failed to invalidate unread cache: %v", err)
	}
}

func unreadCacheKey(userID string) string {
	return fmt.Sprintf("unread_count:%s", userID)
}
