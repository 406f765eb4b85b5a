package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

func setEnv(t *testing.T, endpoint, practicumToken, telegramToken, chatID string) {
	t.Helper()
	t.Setenv("TOKEN_PRACTICUM", practicumToken)
	t.Setenv("TOKEN_TELEGRAM", telegramToken)
	t.Setenv("CHAT_ID", chatID)
	t.Setenv("PRACTICUM_ENDPOINT", endpoint)
	t.Setenv("RETRY_PERIOD", "600s")
	t.Setenv("LOG_FILE", "")
	t.Setenv("POSTGRES_DSN", "")
}

func TestRunMissingCredentialNeverPolls(t *testing.T) {
	tests := []struct {
		name           string
		practicumToken string
		telegramToken  string
		chatID         string
	}{
		{name: "practicum token", telegramToken: "123:abc", chatID: "1"},
		{name: "telegram token", practicumToken: "secret", chatID: "1"},
		{name: "chat id", practicumToken: "secret", telegramToken: "123:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				_, _ = w.Write([]byte(`{"homeworks": []}`))
			}))
			defer server.Close()

			setEnv(t, server.URL, tt.practicumToken, tt.telegramToken, tt.chatID)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := run(ctx)
			if !errors.Is(err, ierrors.ErrMissingEnv) {
				t.Fatalf("run error = %v, want ErrMissingEnv", err)
			}
			if requests.Load() != 0 {
				t.Fatalf("requests = %d, want 0", requests.Load())
			}
		})
	}
}

func TestRunPollsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		cancel()
		_, _ = w.Write([]byte(`{"homeworks": []}`))
	}))
	defer server.Close()

	setEnv(t, server.URL, "secret", "123:abc", "1")

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	if requests.Load() != 1 {
		t.Fatalf("requests = %d, want 1", requests.Load())
	}
}
