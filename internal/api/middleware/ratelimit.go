package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
	"github.com/albumhub/album-api/internal/pkg/metrics"
)

// RateLimitConfig describes one named limiter applied per client IP.
type RateLimitConfig struct {
	Name   string
	Limit  int
	Window time.Duration
}

// RateLimit counts requests per client IP in fixed windows and rejects with
// 429 once the limit is spent. When the backing store fails the request is
// let through and the failure is logged.
func RateLimit(limiter ports.RateLimiter, cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || cfg.Limit <= 0 {
				return next(c)
			}

			key := cfg.Name + ":" + c.RealIP()
			decision, err := limiter.Allow(c.Request().Context(), key, cfg.Limit, cfg.Window)
			if err != nil {
				log.Warn().Err(err).Str("limiter", cfg.Name).Msg("rate limiter unavailable")
				return next(c)
			}

			writeRateLimitHeaders(c.Response().Header(), decision)
			if !decision.Allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(cfg.Name).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}

func writeRateLimitHeaders(h http.Header, decision domain.RateLimitDecision) {
	if decision.Limit > 0 {
		h.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		h.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if decision.ResetAt.IsZero() {
		return
	}
	reset := strconv.FormatInt(secondsUntil(decision.ResetAt), 10)
	h.Set("RateLimit-Reset", reset)
	if !decision.Allowed {
		h.Set("Retry-After", reset)
	}
}

// secondsUntil rounds up so clients never retry before the window closes.
func secondsUntil(t time.Time) int64 {
	d := time.Until(t)
	if d <= 0 {
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}
