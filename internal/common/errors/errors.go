// Package errors provides standardized error handling for the webhook pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Client-facing input errors: these are the only codes that map to a 400.
	ErrCodeMalformedPayload     ErrorCode = "MALFORMED_PAYLOAD"
	ErrCodeWebhookSchemaInvalid ErrorCode = "WEBHOOK_SCHEMA_INVALID"

	// Log-and-stop pipeline outcomes: the webhook sender still gets a 200.
	ErrCodePageFetchFailed   ErrorCode = "PAGE_FETCH_FAILED"
	ErrCodeNotTargetDatabase ErrorCode = "NOT_TARGET_DATABASE"
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeAlreadyNotified   ErrorCode = "ALREADY_NOTIFIED"
	ErrCodeDedupCheckFailed  ErrorCode = "DEDUP_CHECK_FAILED"
	ErrCodeDispatchFailed    ErrorCode = "DISPATCH_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewMalformedPayloadError creates a non-retryable bad-JSON error.
func NewMalformedPayloadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedPayload,
		Message:   "Invalid JSON payload",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWebhookSchemaInvalidError creates a non-retryable schema mismatch error.
func NewWebhookSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWebhookSchemaInvalid,
		Message:   "Invalid webhook payload",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPageFetchFailedError creates an upstream fetch error. Not retryable by
// the pipeline: the page will simply be refetched on the next event.
func NewPageFetchFailedError(pageID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePageFetchFailed,
		Message:   "Failed to retrieve page from Notion",
		Details:   fmt.Sprintf("pageId: %s, error: %s", pageID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotTargetDatabaseError marks a page outside the issues database.
func NewNotTargetDatabaseError(pageID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotTargetDatabase,
		Message:   "Page does not belong to the issues database",
		Details:   fmt.Sprintf("pageId: %s", pageID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError marks a page missing required properties.
func NewValidationFailedError(pageID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Page is missing required properties",
		Details:   fmt.Sprintf("pageId: %s", pageID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyNotifiedError marks a page whose dedup marker is still live.
func NewAlreadyNotifiedError(key string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadyNotified,
		Message:   "Notification already sent for this page",
		Details:   fmt.Sprintf("key: %s", key),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDedupCheckFailedError wraps a Redis failure during the marker lookup.
func NewDedupCheckFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDedupCheckFailed,
		Message:   "Dedup store lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDispatchFailedError wraps a Discord delivery failure. Delivery is
// best-effort, so callers log this instead of failing the pipeline.
func NewDispatchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDispatchFailed,
		Message:   "Notification delivery failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsClientError reports whether the code should surface as a 400 response.
func IsClientError(code ErrorCode) bool {
	return code == ErrCodeMalformedPayload || code == ErrCodeWebhookSchemaInvalid
}
