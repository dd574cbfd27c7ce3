// internal/relay/format.go
package relay

import (
	"fmt"
	"strings"

	"notion-relay/internal/common/config"
	"notion-relay/internal/notion"
)

const messageHeader = "🆕 **Issue Created**"

// BuildMessage renders the Discord notification for a page: a fixed header,
// one "**name:** value" line per property that extracts to a value (required
// first, then optional, each in configured order), and a trailing link line.
// Absent properties are silently omitted; the validator has already
// guaranteed that required ones are present.
func BuildMessage(page *notion.Page, required, optional []config.PropertyRef) string {
	var b strings.Builder
	b.WriteString(messageHeader)
	b.WriteString("\n")

	for _, prop := range required {
		if value, ok := notion.ExtractPropertyValue(page, prop.Name, prop.Type); ok {
			fmt.Fprintf(&b, "**%s:** %s\n", prop.Name, value)
		}
	}
	for _, prop := range optional {
		if value, ok := notion.ExtractPropertyValue(page, prop.Name, prop.Type); ok {
			fmt.Fprintf(&b, "**%s:** %s\n", prop.Name, value)
		}
	}

	fmt.Fprintf(&b, "🔗 [Open in Notion](%s)", page.URL)
	return b.String()
}
