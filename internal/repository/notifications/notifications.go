package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/ilyadubrovsky/homework-tracker/internal/database"
	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
	"github.com/ilyadubrovsky/homework-tracker/internal/repository/notifications/dbo"
)

type repo struct {
	db database.PG
}

func NewRepository(db database.PG) *repo {
	return &repo{db: db}
}

func (r *repo) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS notifications (
			id BIGSERIAL PRIMARY KEY,
			chat_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			text TEXT NOT NULL,
			checkpoint BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}

// Save fills notification ID, CreatedAt is set to now when empty.
func (r *repo) Save(ctx context.Context, notification *domain.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	dboNotification := dbo.NotificationFromDomain(notification)

	query := `
		INSERT INTO notifications (
			chat_id,
			kind,
			text,
			checkpoint,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		dboNotification.ChatID,
		dboNotification.Kind,
		dboNotification.Text,
		dboNotification.Checkpoint,
		dboNotification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		return fmt.Errorf("db.QueryRow: %w", err)
	}

	return nil
}
