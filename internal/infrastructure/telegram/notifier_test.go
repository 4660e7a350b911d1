package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inqboard/internal/shared/config"
	"inqboard/internal/shared/logger"
)

func TestNotifyDisabledWithoutCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelegramConfig
	}{
		{"no token", config.TelegramConfig{ChatID: "123"}},
		{"no chat id", config.TelegramConfig{BotToken: "token"}},
		{"nothing", config.TelegramConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(tt.cfg, logger.NewLogger())
			assert.False(t, n.Notify("hello"))
		})
	}
}

func TestNotifySendsMessage(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(config.TelegramConfig{BotToken: "token", ChatID: "6105"}, logger.NewLogger())
	n.baseURL = srv.URL

	assert.True(t, n.Notify("새 문의가 등록되었습니다"))
	assert.Equal(t, "6105", received["chat_id"])
	assert.Equal(t, "새 문의가 등록되었습니다", received["text"])
	assert.Equal(t, "HTML", received["parse_mode"])
}

func TestNotifyDeliveredEvenOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewNotifier(config.TelegramConfig{BotToken: "token", ChatID: "6105"}, logger.NewLogger())
	n.baseURL = srv.URL

	// The board treats any API response as delivered; only transport
	// failures report false.
	assert.True(t, n.Notify("message"))
}

func TestNotifyTransportFailure(t *testing.T) {
	n := NewNotifier(config.TelegramConfig{BotToken: "token", ChatID: "6105"}, logger.NewLogger())
	n.baseURL = "http://127.0.0.1:1"

	assert.False(t, n.Notify("message"))
}
