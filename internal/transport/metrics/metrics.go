// Package metrics defines and registers the Prometheus metrics for the
// gross-profit calculator. It is the single source of truth for metric
// names, labels, and help strings; everything registers against the default
// registry through promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gpcalc"

// ApprovalDecisionsTotal counts terminal and intermediate review decisions.
// Labels:
//   - entity: "timesheet" or "expense"
//   - decision: the status the entry was moved to (e.g. "approved", "rejected")
var ApprovalDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_decisions_total",
		Help:      "Total number of approval chain decisions, by entity and decision.",
	},
	[]string{"entity", "decision"},
)

// LifecycleTransitionsTotal counts successful project status advances.
// Labels:
//   - from, to: lifecycle status names (e.g. "not_started" -> "in_progress")
var LifecycleTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_transitions_total",
		Help:      "Total number of project lifecycle advances, by from and to status.",
	},
	[]string{"from", "to"},
)

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method, path, status
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route pattern, and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path", "status"},
)

func RecordApprovalDecision(entity, decision string) {
	ApprovalDecisionsTotal.WithLabelValues(entity, decision).Inc()
}

func RecordLifecycleTransition(from, to string) {
	LifecycleTransitionsTotal.WithLabelValues(from, to).Inc()
}
