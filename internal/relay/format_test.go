// internal/relay/format_test.go
package relay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-relay/internal/notion"
)

func TestBuildMessage(t *testing.T) {
	page := issuePage()
	page.Properties["Status"] = notion.Property{
		Type:   "status",
		Status: &notion.SelectOption{Name: "In Progress"},
	}

	msg := BuildMessage(page, requiredProps(), optionalProps())

	lines := strings.Split(msg, "\n")
	require.Equal(t, []string{
		"🆕 **Issue Created**",
		"**Name:** Fix bug",
		"**Assignee:** Alice",
		"**Priority:** High",
		"**Status:** In Progress",
		"🔗 [Open in Notion](https://www.notion.so/p1)",
	}, lines)
}

func TestBuildMessageOmitsAbsentOptional(t *testing.T) {
	msg := BuildMessage(issuePage(), requiredProps(), optionalProps())

	assert.NotContains(t, msg, "Status")
	assert.NotContains(t, msg, "Due Date")
	assert.Contains(t, msg, "**Priority:** High")
	assert.Contains(t, msg, "https://www.notion.so/p1")
}

func TestBuildMessageOrderFollowsConfig(t *testing.T) {
	page := issuePage()
	page.Properties["Due Date"] = notion.Property{
		Type: "date",
		Date: &notion.DateValue{Start: "2025-03-10"},
	}
	page.Properties["Status"] = notion.Property{
		Type:   "status",
		Status: &notion.SelectOption{Name: "Open"},
	}

	msg := BuildMessage(page, requiredProps(), optionalProps())

	// Required properties precede optional ones, each group in config order.
	assert.Less(t, strings.Index(msg, "**Name:**"), strings.Index(msg, "**Assignee:**"))
	assert.Less(t, strings.Index(msg, "**Priority:**"), strings.Index(msg, "**Status:**"))
	assert.Less(t, strings.Index(msg, "**Status:**"), strings.Index(msg, "**Due Date:**"))
	assert.True(t, strings.HasSuffix(msg, "🔗 [Open in Notion](https://www.notion.so/p1)"))
}
