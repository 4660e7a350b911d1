// Package telegram pushes board events to the operators' Telegram chat.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inqboard/internal/shared/config"
	"inqboard/internal/shared/logger"
)

// Notifier sends one-way alerts. Notification failures never block the
// pipeline, so Notify reports success as a bool instead of an error.
type Notifier struct {
	cfg        config.TelegramConfig
	httpClient *http.Client
	baseURL    string
	log        logger.Interface
}

func NewNotifier(cfg config.TelegramConfig, log logger.Interface) *Notifier {
	return &Notifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", cfg.BotToken),
		log:     log,
	}
}

// Notify posts text to the configured chat. Returns false when notifications
// are disabled (missing token or chat id) or the transport fails; any HTTP
// response from the API counts as delivered.
func (n *Notifier) Notify(text string) bool {
	if !n.cfg.Enabled() {
		return false
	}

	payload, err := json.Marshal(map[string]any{
		"chat_id":    n.cfg.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		n.log.Warnw("failed to marshal telegram payload", "error", err)
		return false
	}

	resp, err := n.httpClient.Post(n.baseURL+"/sendMessage", "application/json", bytes.NewReader(payload))
	if err != nil {
		n.log.Warnw("telegram notification failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	return true
}
