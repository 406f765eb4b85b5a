package config

import (
	"fmt"
	"time"

	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Practicum Practicum
	Telegram  Telegram
	Tracker   Tracker
	Logging   Logging
	Postgres  Postgres
}

type Practicum struct {
	Token          string        `env:"TOKEN_PRACTICUM"`
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RequestTimeout time.Duration `env:"PRACTICUM_REQUEST_TIMEOUT" env-default:"30s"`
}

type Telegram struct {
	BotToken string `env:"TOKEN_TELEGRAM"`
	ChatID   string `env:"CHAT_ID"`
}

type Tracker struct {
	RetryPeriod      time.Duration `env:"RETRY_PERIOD" env-default:"600s"`
	FailureStreakTTL time.Duration `env:"FAILURE_STREAK_TTL" env-default:"1h"`
}

type Logging struct {
	Level          string `env:"LOG_LEVEL" env-default:"debug"`
	File           string `env:"LOG_FILE" env-default:"logs/homework-bot.log"`
	FileMaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" env-default:"10"`
	FileMaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" env-default:"3"`
}

// Postgres.DSN is optional, the notifications journal is disabled without it.
type Postgres struct {
	DSN string `env:"POSTGRES_DSN"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every missing credential at once. Credentials are not tagged
// env-required because cleanenv stops at the first unset one and accepts empty values.
func (c *Config) Validate() error {
	missing := make([]string, 0, 3)
	if c.Practicum.Token == "" {
		missing = append(missing, "TOKEN_PRACTICUM")
	}
	if c.Telegram.BotToken == "" {
		missing = append(missing, "TOKEN_TELEGRAM")
	}
	if c.Telegram.ChatID == "" {
		missing = append(missing, "CHAT_ID")
	}

	if len(missing) != 0 {
		return ierrors.MissingEnv(missing...)
	}

	if c.Tracker.RetryPeriod <= 0 {
		return fmt.Errorf("RETRY_PERIOD must be positive, got %s", c.Tracker.RetryPeriod)
	}

	return nil
}
