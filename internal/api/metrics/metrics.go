// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts completed FiveM logins.
// Label:
//   - new_user: "true" when the callback created a fresh account, "false" on
//     repeat login
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of completed FiveM logins.",
	},
	[]string{"new_user"},
)

// LoginErrorsTotal counts failed callback invocations.
// Label:
//   - reason: "code_missing", "token_exchange", "userinfo", or "store"
var LoginErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_errors_total",
		Help:      "Total number of failed FiveM login callbacks.",
	},
	[]string{"reason"},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsSubmittedTotal counts accepted review submissions.
// Label:
//   - rating: the submitted star rating ("1" … "5")
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of accepted review submissions, by rating.",
	},
	[]string{"rating"},
)

// RatingRecomputeDuration measures how long a single rating recompute takes,
// from dequeue to script update.
var RatingRecomputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Duration of script rating recomputation.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RatingRecomputeErrorsTotal counts failed rating recomputes.
// Label:
//   - reason: "aggregate_failed" or "update_failed"
var RatingRecomputeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_recompute_errors_total",
		Help:      "Total number of failed script rating recomputes.",
	},
	[]string{"reason"},
)

// RatingQueueDepth tracks the number of recompute jobs waiting per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RatingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rating_queue_depth",
		Help:      "Current number of recompute jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheRequestsTotal counts listing cache lookups.
// Labels:
//   - key: the cache key (e.g. "listing:scripts")
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of listing cache lookups, by key and result.",
	},
	[]string{"key", "result"},
)
