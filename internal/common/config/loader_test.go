// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("NOTION_WEBHOOK_SECRET", "secret_abc")

	path := writeConfigFile(t, `
app:
  name: notion-relay
  environment: test
notion:
  token: ${NOTION_WEBHOOK_SECRET}
  issues_database_id: db-issues
database:
  redis:
    address: localhost:6379
properties:
  required:
    - name: Name
      type: title
    - name: Assignee
      type: people
  optional:
    - name: Status
      type: status
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "secret_abc", cfg.Notion.Token)
	assert.Equal(t, "db-issues", cfg.Notion.IssuesDatabaseID)
	require.Len(t, cfg.Properties.Required, 2)
	assert.Equal(t, PropertyRef{Name: "Assignee", Type: "people"}, cfg.Properties.Required[1])
	require.Len(t, cfg.Properties.Optional, 1)

	// Defaults kick in for everything the file leaves out.
	assert.Equal(t, "https://api.notion.com", cfg.Notion.BaseURL)
	assert.Equal(t, "2022-06-28", cfg.Notion.APIVersion)
	assert.Equal(t, 10000, cfg.Notion.Timeout)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "issue_", cfg.Dedup.KeyPrefix)
	assert.Equal(t, 7*24, cfg.Dedup.TTLHours)
	assert.Equal(t, 7*24*time.Hour, cfg.Dedup.DedupTTL())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFileMissingRedis(t *testing.T) {
	path := writeConfigFile(t, `
notion:
  token: tok
  issues_database_id: db-issues
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.redis.address is required")
}

func TestLoadFromFileMissingToken(t *testing.T) {
	// Make sure the env fallback does not mask the failure.
	t.Setenv("NOTION_WEBHOOK_SECRET", "")

	path := writeConfigFile(t, `
notion:
  issues_database_id: db-issues
database:
  redis:
    address: localhost:6379
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notion.token is required")
}

func TestLoadFromFileInvalidPropertyEntry(t *testing.T) {
	path := writeConfigFile(t, `
notion:
  token: tok
  issues_database_id: db-issues
database:
  redis:
    address: localhost:6379
properties:
  required:
    - name: Name
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name and type")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, GetDuration(10000))
}
