// Package ratelimit holds the in-process fixed-window limiter used when no
// Redis address is configured.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

const defaultMaxKeys = 10000

type bucket struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiter counts hits per key in fixed windows. Counters are local to
// the process.
type MemoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*bucket
	maxKeys int
}

// NewMemoryLimiter returns a limiter tracking at most maxKeys keys. When the
// table is full of live windows, the window closest to expiry is dropped.
func NewMemoryLimiter(maxKeys int) *MemoryLimiter {
	if maxKeys <= 0 {
		maxKeys = defaultMaxKeys
	}
	return &MemoryLimiter{now: time.Now, buckets: make(map[string]*bucket), maxKeys: maxKeys}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok || !now.Before(b.windowEnd) {
		if !ok && len(m.buckets) >= m.maxKeys {
			m.gc(now)
			if len(m.buckets) >= m.maxKeys {
				m.evictOldest()
			}
		}
		b = &bucket{windowEnd: now.Add(window)}
		m.buckets[key] = b
	}

	if b.count >= limit {
		return domain.RateLimitDecision{Allowed: false, Limit: limit, Remaining: 0, ResetAt: b.windowEnd}, nil
	}
	b.count++
	return domain.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - b.count,
		ResetAt:   b.windowEnd,
	}, nil
}

// gc drops expired buckets. Callers hold mu.
func (m *MemoryLimiter) gc(now time.Time) {
	for k, b := range m.buckets {
		if !now.Before(b.windowEnd) {
			delete(m.buckets, k)
		}
	}
}

// evictOldest drops the bucket whose window ends first. Callers hold mu.
func (m *MemoryLimiter) evictOldest() {
	var (
		oldestKey string
		oldestEnd time.Time
	)
	for k, b := range m.buckets {
		if oldestKey == "" || b.windowEnd.Before(oldestEnd) {
			oldestKey, oldestEnd = k, b.windowEnd
		}
	}
	delete(m.buckets, oldestKey)
}
