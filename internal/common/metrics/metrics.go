// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhooksReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_webhooks_received_total",
			Help: "Total number of inbound webhook requests by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_notifications_dispatched_total",
			Help: "Total number of Discord dispatch attempts by status",
		},
		[]string{"status"},
	)

	DedupHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_dedup_hits_total",
			Help: "Total number of pages skipped because a marker already existed",
		},
	)

	PageFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_page_fetch_failures_total",
			Help: "Total number of non-success Notion page fetches",
		},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "relay_pipeline_duration_seconds",
			Help: "Duration of a full webhook pipeline run in seconds",
		},
	)
)

// OutcomeInternalFail labels requests that died in a recovered panic; the
// other outcome labels come from the pipeline result.
const OutcomeInternalFail = "internal_failure"
