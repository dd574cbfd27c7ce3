// internal/relay/pipeline.go
package relay

import (
	"context"
	"encoding/json"
	"time"

	"notion-relay/internal/common/config"
	"notion-relay/internal/common/errors"
	"notion-relay/internal/common/logger"
	"notion-relay/internal/common/metrics"
	"notion-relay/internal/common/observability"
	"notion-relay/internal/notion"
)

// Outcome classifies how a webhook request was handled.
type Outcome string

const (
	// OutcomeVerified: the request was a subscription verification handshake.
	OutcomeVerified Outcome = "verified"
	// OutcomeIgnored: parsed fine but not an event the relay forwards.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeSkipped: a relevant event stopped by a pipeline gate.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDispatched: a notification was sent (or at least attempted)
	// and the dedup marker written.
	OutcomeDispatched Outcome = "dispatched"
	// OutcomeRejected: malformed input, the only outcome that maps to a 400.
	OutcomeRejected Outcome = "rejected"
)

// Result is what a pipeline run reports back to the HTTP layer.
type Result struct {
	Outcome Outcome
	Err     *errors.StandardError
}

// PageFetcher retrieves full pages from the record service.
type PageFetcher interface {
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
}

// Notifier delivers a formatted message to the chat channel.
type Notifier interface {
	Send(ctx context.Context, content string) error
}

// Pipeline orchestrates one webhook request: handshake vs event, entity and
// event-type filtering, page fetch, validation, dedup guard, format and
// dispatch. One instance serves all requests; per-request state stays on the
// stack.
type Pipeline struct {
	cfg      *config.Config
	pages    PageFetcher
	notifier Notifier
	dedup    DedupStore
	logger   logger.Logger
	obs      *observability.Observability
}

func NewPipeline(cfg *config.Config, pages PageFetcher, notifier Notifier, dedup DedupStore, log logger.Logger, obs *observability.Observability) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		pages:    pages,
		notifier: notifier,
		dedup:    dedup,
		logger:   log.WithFields(map[string]interface{}{"component": "pipeline"}),
		obs:      obs,
	}
}

// Process runs the full intake state machine over a raw request body.
func (p *Pipeline) Process(ctx context.Context, body []byte) Result {
	start := time.Now()
	result := p.process(ctx, body)

	metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	metrics.WebhooksReceived.WithLabelValues(string(result.Outcome)).Inc()
	if p.obs != nil {
		p.obs.RecordEventProcessed(ctx, string(result.Outcome))
		p.obs.RecordEventDuration(ctx, time.Since(start), string(result.Outcome))
	}
	return result
}

func (p *Pipeline) process(ctx context.Context, body []byte) Result {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		p.logger.Error("invalid JSON payload", map[string]interface{}{"error": err.Error()})
		return Result{Outcome: OutcomeRejected, Err: errors.NewMalformedPayloadError(err.Error())}
	}

	// A handshake carries only a verification token, never an event id.
	if rawToken, ok := probe["verification_token"]; ok {
		if _, hasEvent := probe["id"]; !hasEvent {
			var verification notion.VerificationPayload
			_ = json.Unmarshal(rawToken, &verification.VerificationToken)
			p.logger.Info("notion verification token received", map[string]interface{}{
				"verificationToken": verification.VerificationToken,
			})
			return Result{Outcome: OutcomeVerified}
		}
	}

	if _, ok := probe["id"]; !ok {
		p.logger.Info("payload has no event id, ignoring", nil)
		return Result{Outcome: OutcomeIgnored}
	}

	if err := notion.ValidateEnvelope(body); err != nil {
		p.logger.Error("invalid webhook payload", map[string]interface{}{"error": err.Error()})
		return Result{Outcome: OutcomeRejected, Err: errors.NewWebhookSchemaInvalidError(err.Error())}
	}

	var envelope notion.WebhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		p.logger.Error("invalid webhook payload", map[string]interface{}{"error": err.Error()})
		return Result{Outcome: OutcomeRejected, Err: errors.NewWebhookSchemaInvalidError(err.Error())}
	}

	return p.handleEvent(ctx, &envelope)
}

// handleEvent runs the event half of the pipeline. Every stop past this point
// is a silent no-op from the webhook sender's perspective.
func (p *Pipeline) handleEvent(ctx context.Context, envelope *notion.WebhookEnvelope) Result {
	log := p.logger.WithFields(map[string]interface{}{
		"eventId":   envelope.ID,
		"eventType": envelope.Type,
		"entityId":  envelope.Entity.ID,
	})

	if envelope.Entity.Type != notion.EntityTypePage ||
		(envelope.Type != notion.EventPageCreated && envelope.Type != notion.EventPagePropertiesUpdated) {
		log.Info("webhook type not relevant, skipping", nil)
		return Result{Outcome: OutcomeIgnored}
	}

	page, err := p.pages.GetPage(ctx, envelope.Entity.ID)
	if err != nil {
		metrics.PageFetchFailures.Inc()
		stdErr := errors.NewPageFetchFailedError(envelope.Entity.ID, err)
		log.Error("failed to retrieve page", map[string]interface{}{"error": stdErr.Details})
		return Result{Outcome: OutcomeSkipped, Err: stdErr}
	}

	if page.Parent.DatabaseID != p.cfg.Notion.IssuesDatabaseID {
		log.Info("page not from issues database, skipping", map[string]interface{}{
			"parentDatabaseId": page.Parent.DatabaseID,
		})
		return Result{Outcome: OutcomeSkipped, Err: errors.NewNotTargetDatabaseError(page.ID)}
	}

	if !AllRequiredPresent(page, p.cfg.Properties.Required) {
		log.Info("page missing required fields, skipping", map[string]interface{}{
			"missing": MissingRequired(page, p.cfg.Properties.Required),
		})
		return Result{Outcome: OutcomeSkipped, Err: errors.NewValidationFailedError(page.ID)}
	}

	key := p.cfg.Dedup.KeyPrefix + page.ID
	exists, err := p.dedup.Exists(ctx, key)
	if err != nil {
		stdErr := errors.NewDedupCheckFailedError(err)
		log.Error("dedup store lookup failed", map[string]interface{}{"error": err.Error()})
		return Result{Outcome: OutcomeSkipped, Err: stdErr}
	}
	if exists {
		metrics.DedupHits.Inc()
		log.Info("issue already sent, skipping", map[string]interface{}{"key": key})
		return Result{Outcome: OutcomeSkipped, Err: errors.NewAlreadyNotifiedError(key)}
	}

	message := BuildMessage(page, p.cfg.Properties.Required, p.cfg.Properties.Optional)

	// Best-effort delivery: a failed send is logged and the marker is still
	// written, matching the accepted at-most-once-per-marker semantics.
	if err := p.notifier.Send(ctx, message); err != nil {
		metrics.NotificationsDispatched.WithLabelValues("failed").Inc()
		log.Error("notification delivery failed", map[string]interface{}{
			"error": errors.NewDispatchFailedError(err).Details,
		})
	} else {
		metrics.NotificationsDispatched.WithLabelValues("sent").Inc()
		log.Info("notification dispatched", map[string]interface{}{"pageId": page.ID})
	}

	if err := p.dedup.MarkSent(ctx, key, p.cfg.Dedup.DedupTTL()); err != nil {
		log.Error("failed to write dedup marker", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	return Result{Outcome: OutcomeDispatched}
}
