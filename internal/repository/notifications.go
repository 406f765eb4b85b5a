package repository

import (
	"context"

	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
)

type Notifications interface {
	Save(ctx context.Context, notification *domain.Notification) error
}
