// internal/notion/schema.go
package notion

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema is the strict shape a payload must match once it has an
// event id and is not a verification handshake.
const envelopeSchema = `{
	"type": "object",
	"required": ["id", "timestamp", "workspace_id", "type", "entity"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"timestamp": {"type": "string", "minLength": 1},
		"workspace_id": {"type": "string", "minLength": 1},
		"type": {"type": "string", "minLength": 1},
		"entity": {
			"type": "object",
			"required": ["id", "type"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"type": {"type": "string", "minLength": 1}
			}
		}
	}
}`

var compiledEnvelopeSchema = gojsonschema.NewStringLoader(envelopeSchema)

// ValidateEnvelope checks a raw webhook body against the envelope schema and
// returns a descriptive error when it does not conform.
func ValidateEnvelope(raw []byte) error {
	result, err := gojsonschema.Validate(compiledEnvelopeSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("webhook envelope invalid: %s", strings.Join(msgs, "; "))
}
