// internal/notion/extract_test.go
package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func pageWithProperty(name string, prop Property) *Page {
	return &Page{
		ID:         "page-1",
		Properties: map[string]Property{name: prop},
	}
}

func TestExtractPropertyValue(t *testing.T) {
	tests := []struct {
		name         string
		page         *Page
		propertyName string
		propertyType string
		wantValue    string
		wantPresent  bool
	}{
		{
			name:         "title first segment",
			page:         pageWithProperty("Name", Property{Type: "title", Title: []RichText{{Text: TextContent{Content: "Fix bug"}}, {Text: TextContent{Content: " now"}}}}),
			propertyName: "Name",
			propertyType: "title",
			wantValue:    "Fix bug",
			wantPresent:  true,
		},
		{
			name:         "title with empty segment list",
			page:         pageWithProperty("Name", Property{Type: "title"}),
			propertyName: "Name",
			propertyType: "title",
			wantPresent:  false,
		},
		{
			name:         "title with blank first segment is absent",
			page:         pageWithProperty("Name", Property{Type: "title", Title: []RichText{{Text: TextContent{Content: ""}}}}),
			propertyName: "Name",
			propertyType: "title",
			wantPresent:  false,
		},
		{
			name:         "rich text first segment",
			page:         pageWithProperty("Description", Property{Type: "rich_text", RichText: []RichText{{Text: TextContent{Content: "details here"}}}}),
			propertyName: "Description",
			propertyType: "rich_text",
			wantValue:    "details here",
			wantPresent:  true,
		},
		{
			name:         "people comma joined",
			page:         pageWithProperty("Assignee", Property{Type: "people", People: []User{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}}}),
			propertyName: "Assignee",
			propertyType: "people",
			wantValue:    "Alice, Bob",
			wantPresent:  true,
		},
		{
			name:         "people skips nameless entries",
			page:         pageWithProperty("Assignee", Property{Type: "people", People: []User{{ID: "u1"}, {ID: "u2", Name: "Bob"}}}),
			propertyName: "Assignee",
			propertyType: "people",
			wantValue:    "Bob",
			wantPresent:  true,
		},
		{
			name:         "people with no entries is absent",
			page:         pageWithProperty("Assignee", Property{Type: "people"}),
			propertyName: "Assignee",
			propertyType: "people",
			wantPresent:  false,
		},
		{
			name:         "people with only nameless entries is absent",
			page:         pageWithProperty("Assignee", Property{Type: "people", People: []User{{ID: "u1"}}}),
			propertyName: "Assignee",
			propertyType: "people",
			wantPresent:  false,
		},
		{
			name:         "select option name",
			page:         pageWithProperty("Priority", Property{Type: "select", Select: &SelectOption{Name: "High"}}),
			propertyName: "Priority",
			propertyType: "select",
			wantValue:    "High",
			wantPresent:  true,
		},
		{
			name:         "status option name",
			page:         pageWithProperty("Status", Property{Type: "status", Status: &SelectOption{Name: "In Progress"}}),
			propertyName: "Status",
			propertyType: "status",
			wantValue:    "In Progress",
			wantPresent:  true,
		},
		{
			name:         "date start",
			page:         pageWithProperty("Due Date", Property{Type: "date", Date: &DateValue{Start: "2025-03-01"}}),
			propertyName: "Due Date",
			propertyType: "date",
			wantValue:    "2025-03-01",
			wantPresent:  true,
		},
		{
			name:         "created time raw",
			page:         pageWithProperty("Created", Property{Type: "created_time", CreatedTime: "2025-03-01T12:00:00.000Z"}),
			propertyName: "Created",
			propertyType: "created_time",
			wantValue:    "2025-03-01T12:00:00.000Z",
			wantPresent:  true,
		},
		{
			name:         "number",
			page:         pageWithProperty("Estimate", Property{Type: "number", Number: floatPtr(3.5)}),
			propertyName: "Estimate",
			propertyType: "number",
			wantValue:    "3.5",
			wantPresent:  true,
		},
		{
			name:         "number zero is not absent",
			page:         pageWithProperty("Estimate", Property{Type: "number", Number: floatPtr(0)}),
			propertyName: "Estimate",
			propertyType: "number",
			wantValue:    "0",
			wantPresent:  true,
		},
		{
			name:         "number missing payload",
			page:         pageWithProperty("Estimate", Property{Type: "number"}),
			propertyName: "Estimate",
			propertyType: "number",
			wantPresent:  false,
		},
		{
			name:         "checkbox true",
			page:         pageWithProperty("Urgent", Property{Type: "checkbox", Checkbox: boolPtr(true)}),
			propertyName: "Urgent",
			propertyType: "checkbox",
			wantValue:    "true",
			wantPresent:  true,
		},
		{
			name:         "checkbox false is not absent",
			page:         pageWithProperty("Urgent", Property{Type: "checkbox", Checkbox: boolPtr(false)}),
			propertyName: "Urgent",
			propertyType: "checkbox",
			wantValue:    "false",
			wantPresent:  true,
		},
		{
			name:         "unknown declared type",
			page:         pageWithProperty("Files", Property{Type: "files"}),
			propertyName: "Files",
			propertyType: "files",
			wantPresent:  false,
		},
		{
			name:         "property missing from page",
			page:         pageWithProperty("Name", Property{Type: "title", Title: []RichText{{Text: TextContent{Content: "x"}}}}),
			propertyName: "Nope",
			propertyType: "title",
			wantPresent:  false,
		},
		{
			name:         "declared type does not match payload",
			page:         pageWithProperty("Name", Property{Type: "title", Title: []RichText{{Text: TextContent{Content: "x"}}}}),
			propertyName: "Name",
			propertyType: "select",
			wantPresent:  false,
		},
		{
			name:         "nil page",
			page:         nil,
			propertyName: "Name",
			propertyType: "title",
			wantPresent:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, present := ExtractPropertyValue(tt.page, tt.propertyName, tt.propertyType)
			assert.Equal(t, tt.wantPresent, present)
			if tt.wantPresent {
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}
