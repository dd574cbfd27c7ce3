// internal/discord/webhook_test.go
package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-relay/internal/common/config"
	"notion-relay/internal/common/logger"
)

func TestSendPostsContentPayload(t *testing.T) {
	var capturedContentType string
	var capturedBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&capturedBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	hook := NewWebhook(config.DiscordConfig{WebhookURL: ts.URL, Timeout: 2000}, logger.NewTestLogger(t))

	err := hook.Send(context.Background(), "🆕 **Issue Created**\n**Name:** Fix bug")
	require.NoError(t, err)

	assert.Equal(t, "application/json", capturedContentType)
	assert.Equal(t, "🆕 **Issue Created**\n**Name:** Fix bug", capturedBody["content"])
}

func TestSendUnconfiguredURLIsNoOp(t *testing.T) {
	hook := NewWebhook(config.DiscordConfig{Timeout: 2000}, logger.NewTestLogger(t))

	err := hook.Send(context.Background(), "dropped")
	assert.NoError(t, err)
}

func TestSendRemoteRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	hook := NewWebhook(config.DiscordConfig{WebhookURL: ts.URL, Timeout: 2000}, logger.NewTestLogger(t))

	err := hook.Send(context.Background(), "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
