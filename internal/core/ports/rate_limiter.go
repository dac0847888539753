package ports

import (
	"context"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

// RateLimiter counts hits per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (domain.RateLimitDecision, error)
}
