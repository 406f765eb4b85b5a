package telegram

import (
	"context"
	"fmt"

	"github.com/ilyadubrovsky/homework-tracker/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type svc struct {
	bot       sender
	recipient tele.Recipient
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	return newService(bot, cfg.ChatID), nil
}

func newService(bot sender, chatID string) *svc {
	return &svc{
		bot:       bot,
		recipient: parseRecipient(chatID),
	}
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		Token: cfg.BotToken,
		// no getMe on start, Telegram being unreachable only fails single sends
		Offline: true,
		OnError: func(err error, c tele.Context) {
			log.Error().Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

// Notify sends text to the configured chat once. A failure is logged and reported as false.
func (s *svc) Notify(ctx context.Context, text string) bool {
	if err := ctx.Err(); err != nil {
		log.Error().Str("chat", s.recipient.Recipient()).Msgf("Notify: %v", err)
		return false
	}

	if err := s.send(text); err != nil {
		log.Error().Str("chat", s.recipient.Recipient()).Msgf("Notify: %v", err)
		return false
	}

	log.Debug().Str("chat", s.recipient.Recipient()).Msgf("message sent: %s", text)
	return true
}

func (s *svc) send(text string) error {
	if _, err := s.bot.Send(s.recipient, text); err != nil {
		return &ierrors.DeliveryError{Recipient: s.recipient.Recipient(), Err: err}
	}

	return nil
}
