package service

import "context"

type Telegram interface {
	Notify(ctx context.Context, text string) bool
}
