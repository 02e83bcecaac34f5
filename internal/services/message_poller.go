package services

import (
	"context"
	"log"
	"time"
)

// Период опроса новых сообщений — единственный механизм,
// которым получатель узнаёт о входящих (push нет).
const pollInterval = 5 * time.Second

// MessagePoller периодически пересчитывает счётчики непрочитанных
// и прогревает кэш для всех известных пользователей.
type MessagePoller struct {
	comm     CommunicationService
	tracking TrackingService
}

func NewMessagePoller(comm CommunicationService, tracking TrackingService) *MessagePoller {
	return &MessagePoller{comm: comm, tracking: tracking}
}

func (p *MessagePoller) Start(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				p.refresh(ctx)
			case <-ctx.Done():
				log.Println("[POLL] Stopping message poller")
				ticker.Stop()
				return
			}
		}
	}()
}

func (p *MessagePoller) refresh(ctx context.Context) {
	techs, err := p.tracking.LoadTechnicians(ctx)
	if err != nil {
		log.Printf("[POLL] Failed to load technicians: %v", err)
		return
	}

	userIDs := []string{"admin"}
	for _, t := range techs {
		userIDs = append(userIDs, t.ID)
	}

	for _, id := range userIDs {
		if err := p.comm.RefreshUnread(ctx, id); err != nil {
			log.Printf("[POLL] Failed to refresh unread count for %s: %v", id, err)
		}
	}
}
