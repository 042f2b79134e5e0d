package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookEvents counts processed webhook deliveries by event type
	// and outcome (processed, duplicate, acknowledged, rejected, error).
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Payment webhook deliveries by event type and outcome",
		},
		[]string{"type", "outcome"},
	)

	// WebhookDuration tracks end-to-end webhook handling latency.
	WebhookDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_webhook_duration_seconds",
			Help:    "Duration of payment webhook handling in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// CampaignSubmissions counts campaign submissions by campaign type
	// and status (accepted, invalid, failed).
	CampaignSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_submissions_total",
			Help: "Campaign submissions by campaign type and status",
		},
		[]string{"type", "status"},
	)
)

// RecordWebhookEvent increments the webhook event counter.
func RecordWebhookEvent(eventType, outcome string) {
	WebhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// RecordCampaignSubmission increments the submission counter.
func RecordCampaignSubmission(campaignType, status string) {
	CampaignSubmissions.WithLabelValues(campaignType, status).Inc()
}
