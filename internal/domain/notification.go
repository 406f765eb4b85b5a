package domain

import "time"

type NotificationKind string

const (
	NotificationKindStatus  NotificationKind = "status"
	NotificationKindFailure NotificationKind = "failure"
)

type Notification struct {
	ID         int64
	ChatID     string
	Kind       NotificationKind
	Text       string
	Checkpoint int64
	CreatedAt  time.Time
}
