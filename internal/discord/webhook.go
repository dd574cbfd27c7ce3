// internal/discord/webhook.go
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"notion-relay/internal/common/config"
	commonhttp "notion-relay/internal/common/http"
	"notion-relay/internal/common/logger"
)

// Webhook delivers messages to a single preconfigured Discord channel.
// Delivery is a single best-effort attempt; the caller decides what a
// failure means.
type Webhook struct {
	webhookURL string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewWebhook(cfg config.DiscordConfig, log logger.Logger) *Webhook {
	return &Webhook{
		webhookURL: cfg.WebhookURL,
		httpClient: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		logger:     log.WithFields(map[string]interface{}{"component": "discord"}),
	}
}

// Send posts the message content to the configured webhook URL. An
// unconfigured URL is a warning-level no-op, not an error: the pipeline
// should keep running in environments without a channel wired up.
func (w *Webhook) Send(ctx context.Context, content string) error {
	if w.webhookURL == "" {
		w.logger.Warn("discord webhook URL not configured, dropping message", nil)
		return nil
	}

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}
