package dbo

import (
	"time"

	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
)

type Notification struct {
	ID         int64
	ChatID     string
	Kind       string
	Text       string
	Checkpoint int64
	CreatedAt  time.Time
}

func NotificationFromDomain(notification *domain.Notification) *Notification {
	return &Notification{
		ID:         notification.ID,
		ChatID:     notification.ChatID,
		Kind:       string(notification.Kind),
		Text:       notification.Text,
		Checkpoint: notification.Checkpoint,
		CreatedAt:  notification.CreatedAt,
	}
}
