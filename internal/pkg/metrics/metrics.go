// Package metrics defines and registers all custom Prometheus metrics of the
// gigs platform. It is the single source of truth for metric names, labels and
// help strings. Metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigs"

// ── Onboarding metrics ────────────────────────────────────────────────────────

// OnboardingSubmissionsTotal counts section submissions.
// Labels:
//   - section: "personal", "experience" or "kyc"
//   - result: "saved", "invalid" or "error"
var OnboardingSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_submissions_total",
		Help:      "Total number of onboarding section submissions, by section and result.",
	},
	[]string{"section", "result"},
)

// OnboardingCompletion observes the completion percentage each time it is evaluated.
var OnboardingCompletion = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "onboarding_completion_percentage",
		Help:      "Distribution of evaluated onboarding completion percentages.",
		Buckets:   []float64{0, 25, 50, 75, 90, 99, 100},
	},
)

// GateDecisionsTotal counts access gate evaluations.
// Label:
//   - result: "open" or "blocked"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by result.",
	},
	[]string{"result"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// AuthEventsTotal counts authentication outcomes.
// Labels:
//   - action: "register", "login", "verify_otp", "resend_otp", "reset_password"
//   - result: "ok" or the short failure reason
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication operations, by action and result.",
	},
	[]string{"action", "result"},
)

// ModerationTotal counts admin status transitions.
// Label:
//   - status: "approved" or "disapproved"
var ModerationTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_total",
		Help:      "Total number of account moderation decisions, by status.",
	},
	[]string{"status"},
)

// GigApplicationsTotal counts applications submitted to gigs.
var GigApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gig_applications_total",
		Help:      "Total number of gig applications accepted.",
	},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailQueueDepth tracks the number of messages waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of messages pending in each mail worker channel.",
	},
	[]string{"worker_id"},
)

// MailDeliveriesTotal counts delivery attempts.
// Label:
//   - result: "sent", "failed" or "dropped"
var MailDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_deliveries_total",
		Help:      "Total number of outbound mail delivery attempts, by result.",
	},
	[]string{"result"},
)

// MailDeliveryDuration measures SMTP delivery time.
var MailDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_delivery_duration_seconds",
		Help:      "Duration of a single SMTP delivery.",
		Buckets:   prometheus.DefBuckets,
	},
)
