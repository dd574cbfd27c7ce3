// internal/notion/extract.go
package notion

import (
	"strconv"
	"strings"
)

// ExtractPropertyValue looks up the named property on the page and interprets
// its payload according to the declared type. The second return value is false
// when the property is missing, empty, or of an unsupported type; absence is
// the only negative signal, never an error. An empty extracted string counts
// as absent, so a title with a blank first segment does not satisfy a
// required property.
func ExtractPropertyValue(page *Page, propertyName, propertyType string) (string, bool) {
	if page == nil {
		return "", false
	}
	prop, ok := page.Properties[propertyName]
	if !ok {
		return "", false
	}

	value := ""
	present := false

	switch propertyType {
	case "title":
		value, present = firstTextContent(prop.Title)
	case "rich_text":
		value, present = firstTextContent(prop.RichText)
	case "people":
		value, present = joinPeopleNames(prop.People)
	case "select":
		if prop.Select != nil {
			value, present = prop.Select.Name, true
		}
	case "status":
		if prop.Status != nil {
			value, present = prop.Status.Name, true
		}
	case "date":
		if prop.Date != nil {
			value, present = prop.Date.Start, true
		}
	case "created_time":
		value, present = prop.CreatedTime, prop.CreatedTime != ""
	case "number":
		// Zero is a value, only a missing payload is absent.
		if prop.Number != nil {
			value, present = strconv.FormatFloat(*prop.Number, 'f', -1, 64), true
		}
	case "checkbox":
		// Same for false.
		if prop.Checkbox != nil {
			value, present = strconv.FormatBool(*prop.Checkbox), true
		}
	}

	if !present || value == "" {
		return "", false
	}
	return value, true
}

func firstTextContent(segments []RichText) (string, bool) {
	if len(segments) == 0 {
		return "", false
	}
	return segments[0].Text.Content, true
}

// joinPeopleNames comma-joins the names of people entries; entries without a
// name are skipped. A list with no named entries is absent.
func joinPeopleNames(people []User) (string, bool) {
	if len(people) == 0 {
		return "", false
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, ", "), true
}
