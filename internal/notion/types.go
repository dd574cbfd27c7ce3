// internal/notion/types.go
package notion

// Event types forwarded by the relay. Everything else is ignored.
const (
	EntityTypePage             = "page"
	EventPageCreated           = "page.created"
	EventPagePropertiesUpdated = "page.properties_updated"
)

// Entity is the webhook's reference to the object that triggered the event.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// WebhookEnvelope is the payload Notion delivers for a subscribed event.
type WebhookEnvelope struct {
	ID             string                   `json:"id"`
	Timestamp      string                   `json:"timestamp"`
	WorkspaceID    string                   `json:"workspace_id"`
	WorkspaceName  string                   `json:"workspace_name,omitempty"`
	SubscriptionID string                   `json:"subscription_id,omitempty"`
	IntegrationID  string                   `json:"integration_id,omitempty"`
	Authors        []map[string]interface{} `json:"authors,omitempty"`
	AttemptNumber  int                      `json:"attempt_number,omitempty"`
	Type           string                   `json:"type"`
	Entity         Entity                   `json:"entity"`
	Data           map[string]interface{}   `json:"data,omitempty"`
}

// VerificationPayload is the one-time subscription handshake. It carries only
// a token and never an event id, so a request is either this or an envelope.
type VerificationPayload struct {
	VerificationToken string `json:"verification_token"`
}

// User is a Notion person or bot reference.
type User struct {
	Object    string `json:"object,omitempty"`
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Type      string `json:"type,omitempty"`
}

// SelectOption is the payload of select and status properties.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TextContent is the inner text of a rich text segment.
type TextContent struct {
	Content string  `json:"content"`
	Link    *string `json:"link,omitempty"`
}

// RichText is one segment of a title or rich_text property.
type RichText struct {
	Type      string      `json:"type,omitempty"`
	Text      TextContent `json:"text"`
	PlainText string      `json:"plain_text,omitempty"`
	Href      *string     `json:"href,omitempty"`
}

// DateValue is the payload of a date property.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// Property is a tagged union over the page property kinds the relay can
// extract. The Type field names the variant; exactly one payload field is
// populated for a well-formed value.
type Property struct {
	ID          string        `json:"id,omitempty"`
	Type        string        `json:"type,omitempty"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	People      []User        `json:"people,omitempty"`
	Select      *SelectOption `json:"select,omitempty"`
	Status      *SelectOption `json:"status,omitempty"`
	Date        *DateValue    `json:"date,omitempty"`
	CreatedTime string        `json:"created_time,omitempty"`
	Number      *float64      `json:"number,omitempty"`
	Checkbox    *bool         `json:"checkbox,omitempty"`
}

// Parent identifies the container a page belongs to.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
}

// Page is the full record fetched from the Notion API.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	CreatedBy      *User               `json:"created_by,omitempty"`
	LastEditedBy   *User               `json:"last_edited_by,omitempty"`
	Parent         Parent              `json:"parent"`
	Archived       bool                `json:"archived"`
	InTrash        bool                `json:"in_trash"`
	Properties     map[string]Property `json:"properties"`
	URL            string              `json:"url"`
	PublicURL      *string             `json:"public_url,omitempty"`
}
