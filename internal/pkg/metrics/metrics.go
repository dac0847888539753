// Package metrics defines and registers all custom Prometheus metrics for the
// album API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "album_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts credential operations by outcome.
// Labels:
//   - operation: "register" or "login"
//   - outcome: "success", "conflict", "not_found", "disabled", "bad_credential"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// AuthRejectionsTotal counts requests stopped by the authentication gate.
// Label:
//   - reason: "missing_header", "bad_scheme", "expired", "malformed"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication.",
	},
	[]string{"reason"},
)

// LoginQueueDropsTotal counts last-login updates dropped because the worker
// channel was full.
var LoginQueueDropsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_queue_drops_total",
		Help:      "Total number of last-login updates dropped on a full queue.",
	},
)

// ── Profile generator metrics ─────────────────────────────────────────────────

// ProviderRequestsTotal counts upstream provider calls.
// Labels:
//   - provider: e.g. "random_user", "joke"
//   - outcome: "ok" or "fallback"
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_provider_requests_total",
		Help:      "Total number of profile provider calls, by outcome.",
	},
	[]string{"provider", "outcome"},
)

// ProviderDuration measures each upstream provider call, fallbacks included.
var ProviderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_provider_duration_seconds",
		Help:      "Duration of profile provider calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)

// ── Rate limiting metrics ─────────────────────────────────────────────────────

// RateLimitRejectionsTotal counts requests answered with 429.
// Label:
//   - limiter: "api" or "auth"
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by a rate limiter.",
	},
	[]string{"limiter"},
)
