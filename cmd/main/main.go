package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyadubrovsky/homework-tracker/internal/config"
	"github.com/ilyadubrovsky/homework-tracker/internal/database/pg"
	"github.com/ilyadubrovsky/homework-tracker/internal/repository"
	"github.com/ilyadubrovsky/homework-tracker/internal/repository/notifications"
	"github.com/ilyadubrovsky/homework-tracker/internal/service/homework_tracker"
	"github.com/ilyadubrovsky/homework-tracker/internal/service/telegram"
	"github.com/ilyadubrovsky/homework-tracker/pkg/practicum"
	"github.com/jellydator/ttlcache/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if err := run(ctx); err != nil {
		stop()
		log.Fatal().Msgf("cant start bot: %v", err)
	}
	stop()
}

// run returns an error only when the bot cannot start, otherwise it blocks until ctx is done.
func run(ctx context.Context) error {
	dotenvErr := godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		initLogger(config.Logging{Level: "debug"})
		return fmt.Errorf("config.NewConfig: %w", err)
	}

	initLogger(cfg.Logging)
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		log.Warn().Msgf("godotenv.Load: %v", dotenvErr)
	}

	notificationsRepo, closeJournal := openJournal(ctx, cfg.Postgres)
	defer closeJournal()

	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("telegram.NewService: %w", err)
	}

	failuresCache := ttlcache.New[string, int](
		ttlcache.WithTTL[string, int](cfg.Tracker.FailureStreakTTL),
	)

	trackerSvc := homework_tracker.NewService(
		practicum.NewClient(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.RequestTimeout),
		telegramSvc,
		notificationsRepo,
		failuresCache,
		cfg.Tracker,
		cfg.Telegram.ChatID,
	)

	log.Info().Msg("bot started")
	trackerSvc.Start(ctx)

	return nil
}

// openJournal never fails the start, the bot works without the journal.
func openJournal(ctx context.Context, cfg config.Postgres) (repository.Notifications, func()) {
	if cfg.DSN == "" {
		return nil, func() {}
	}

	db, err := pg.New(ctx, cfg.DSN)
	if err != nil {
		log.Error().Msgf("notifications journal disabled: pg.New: %v", err)
		return nil, func() {}
	}
	closeDB := func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error().Msgf("db.Close: %v", err)
		}
	}

	repo := notifications.NewRepository(db)
	if err = repo.Migrate(ctx); err != nil {
		log.Error().Msgf("notifications journal disabled: repo.Migrate: %v", err)
		closeDB()
		return nil, func() {}
	}

	log.Info().Msg("notifications journal enabled")
	return repo, closeDB
}
