package homework_tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ilyadubrovsky/homework-tracker/internal/config"
	"github.com/ilyadubrovsky/homework-tracker/internal/config/answers"
	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
	"github.com/ilyadubrovsky/homework-tracker/internal/repository"
	"github.com/ilyadubrovsky/homework-tracker/internal/service"
	"github.com/ilyadubrovsky/homework-tracker/internal/service/homework"
	"github.com/ilyadubrovsky/homework-tracker/pkg/practicum"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const journalTimeout = 5 * time.Second

type svc struct {
	practicumClient   practicum.Client
	telegramSvc       service.Telegram
	notificationsRepo repository.Notifications
	failuresCache     *ttlcache.Cache[string, int]
	cfg               config.Tracker
	chatID            string
	now               func() time.Time

	mu       sync.Mutex
	stopFunc func()
}

// NewService accepts a nil notificationsRepo, the journal is skipped then.
func NewService(
	practicumClient practicum.Client,
	telegramSvc service.Telegram,
	notificationsRepo repository.Notifications,
	failuresCache *ttlcache.Cache[string, int],
	cfg config.Tracker,
	chatID string,
) *svc {
	return &svc{
		practicumClient:   practicumClient,
		telegramSvc:       telegramSvc,
		notificationsRepo: notificationsRepo,
		failuresCache:     failuresCache,
		cfg:               cfg,
		chatID:            chatID,
		now:               time.Now,
	}
}

// Start polls until ctx is done or Stop is called. Every cycle is followed by a full
// RetryPeriod wait, whatever the cycle outcome was.
func (s *svc) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.stopFunc = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.stopFunc = nil
		s.mu.Unlock()
	}()

	state := &domain.PollState{Timestamp: s.now().Unix()}

	log.Info().Msgf("start homework tracker, retry period %s", s.cfg.RetryPeriod)
	for {
		s.cycle(ctx, state)

		select {
		case <-time.After(s.cfg.RetryPeriod):
		case <-ctx.Done():
			log.Info().Msg("homework tracker stopped")
			return
		}
	}
}

func (s *svc) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopFunc == nil {
		return errors.New("service is not started")
	}

	s.stopFunc()
	return nil
}

func (s *svc) cycle(ctx context.Context, state *domain.PollState) {
	err := s.checkHomework(ctx, state)
	if err == nil {
		s.failuresCache.DeleteAll()
		return
	}

	if ctx.Err() != nil {
		log.Info().Msgf("cycle interrupted: %v", err)
		return
	}

	s.reportFailure(ctx, state, err)
}

func (s *svc) checkHomework(ctx context.Context, state *domain.PollState) error {
	log.Info().Int64("from_date", state.Timestamp).Msg("requesting homework statuses")

	payload, err := s.practicumClient.HomeworkStatuses(ctx, state.Timestamp)
	if err != nil {
		return fmt.Errorf("practicumClient.HomeworkStatuses: %w", err)
	}

	homeworks, err := homework.CheckResponse(payload)
	if err != nil {
		return fmt.Errorf("homework.CheckResponse: %w", err)
	}

	if len(homeworks) == 0 {
		log.Debug().Msg("no homework updates")
		return nil
	}

	message, err := homework.ParseStatus(homeworks[0])
	if err != nil {
		return fmt.Errorf("homework.ParseStatus: %w", err)
	}

	if message == state.LastMessage {
		log.Debug().Msg("homework status is not changed")
		return nil
	}

	// an undelivered message keeps the state, the next cycle sends it again
	if !s.telegramSvc.Notify(ctx, message) {
		return nil
	}

	state.LastMessage = message
	if checkpoint, ok := homework.CurrentTime(payload); ok {
		state.Timestamp = checkpoint
	}

	s.saveNotification(ctx, domain.NotificationKindStatus, message, state.Timestamp)

	return nil
}

func (s *svc) reportFailure(ctx context.Context, state *domain.PollState, err error) {
	cause := errors.Unwrap(err)
	if cause == nil {
		cause = err
	}

	event := log.Error().Int("repeats", s.countFailure(cause.Error()))
	addFailureFields(event, err)
	event.Msgf("checkHomework: %v", err)

	message := fmt.Sprintf(answers.ProgramFailure, cause)
	if message == state.LastMessage {
		return
	}

	if !s.telegramSvc.Notify(ctx, message) {
		return
	}

	state.LastMessage = message
	s.saveNotification(ctx, domain.NotificationKindFailure, message, state.Timestamp)
}

func addFailureFields(event *zerolog.Event, err error) {
	var (
		transportErr       *ierrors.TransportError
		invalidResponseErr *ierrors.InvalidResponseError
		shapeErr           *ierrors.ShapeError
		missingFieldErr    *ierrors.MissingFieldError
		unknownStatusErr   *ierrors.UnknownStatusError
	)

	switch {
	case errors.As(err, &transportErr):
		event.Str("kind", "transport").Str("endpoint", transportErr.Endpoint)
	case errors.As(err, &invalidResponseErr):
		event.Str("kind", "invalid_response").Int("status_code", invalidResponseErr.StatusCode)
	case errors.Is(err, ierrors.ErrResponseDecoding):
		event.Str("kind", "decoding")
	case errors.As(err, &shapeErr):
		event.Str("kind", "shape")
	case errors.As(err, &missingFieldErr):
		event.Str("kind", "missing_field").Str("field", missingFieldErr.Field)
	case errors.As(err, &unknownStatusErr):
		event.Str("kind", "unknown_status").Str("status", unknownStatusErr.Status)
	}
}

// countFailure returns how many cycles in a row failed with the same error.
// A streak ends when the same error has not repeated within the cache TTL.
func (s *svc) countFailure(key string) int {
	s.failuresCache.DeleteExpired()

	count := 1
	if item := s.failuresCache.Get(key, ttlcache.WithDisableTouchOnHit[string, int]()); item != nil {
		count = item.Value() + 1
	}

	s.failuresCache.Set(key, count, ttlcache.DefaultTTL)
	return count
}

func (s *svc) saveNotification(ctx context.Context, kind domain.NotificationKind, text string, checkpoint int64) {
	if s.notificationsRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, journalTimeout)
	defer cancel()

	err := s.notificationsRepo.Save(ctx, &domain.Notification{
		ChatID:     s.chatID,
		Kind:       kind,
		Text:       text,
		Checkpoint: checkpoint,
		CreatedAt:  s.now(),
	})
	if err != nil {
		log.Error().Str("kind", string(kind)).Msgf("notificationsRepo.Save: %v", err)
	}
}
