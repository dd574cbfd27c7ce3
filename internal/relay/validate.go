// internal/relay/validate.go
package relay

import (
	"notion-relay/internal/common/config"
	"notion-relay/internal/notion"
)

// AllRequiredPresent reports whether every configured required property
// extracts to a value on the page. The check short-circuits on the first
// absent property and has no side effects.
func AllRequiredPresent(page *notion.Page, required []config.PropertyRef) bool {
	for _, prop := range required {
		if _, ok := notion.ExtractPropertyValue(page, prop.Name, prop.Type); !ok {
			return false
		}
	}
	return true
}

// MissingRequired returns the names of required properties that are absent,
// for logging.
func MissingRequired(page *notion.Page, required []config.PropertyRef) []string {
	var missing []string
	for _, prop := range required {
		if _, ok := notion.ExtractPropertyValue(page, prop.Name, prop.Type); !ok {
			missing = append(missing, prop.Name)
		}
	}
	return missing
}
