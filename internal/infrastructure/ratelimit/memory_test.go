package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(0)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		d, err := l.Allow(ctx, "k", 2, time.Minute)
		if err != nil || !d.Allowed {
			t.Fatalf("hit #%d should pass: %+v %v", i, d, err)
		}
	}

	d, _ := l.Allow(ctx, "k", 2, time.Minute)
	if d.Allowed {
		t.Fatalf("third hit should be rejected")
	}
	if !d.ResetAt.Equal(now.Add(time.Minute)) {
		t.Errorf("reset: expected %v, got %v", now.Add(time.Minute), d.ResetAt)
	}

	now = now.Add(time.Minute)
	d, _ = l.Allow(ctx, "k", 2, time.Minute)
	if !d.Allowed || d.Remaining != 1 {
		t.Fatalf("new window should allow, got %+v", d)
	}
}

func TestMemoryLimiter_FullTableEvictsOldest(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	if d, _ := l.Allow(ctx, "a", 1, time.Minute); !d.Allowed {
		t.Fatalf("first hit for a should pass")
	}
	now = now.Add(time.Second)
	if d, _ := l.Allow(ctx, "b", 1, time.Minute); !d.Allowed {
		t.Fatalf("first hit for b should pass")
	}

	// A third key must not switch limiting off for the keys still tracked.
	d, err := l.Allow(ctx, "c", 1, time.Minute)
	if err != nil || !d.Allowed {
		t.Fatalf("new key should be admitted: %+v %v", d, err)
	}
	if len(l.buckets) != 2 {
		t.Fatalf("expected 2 tracked keys, got %d", len(l.buckets))
	}
	if _, ok := l.buckets["a"]; ok {
		t.Fatalf("oldest key a should have been evicted")
	}
	if d, err := l.Allow(ctx, "b", 1, time.Minute); err != nil || d.Allowed {
		t.Fatalf("b is still limited, got %+v %v", d, err)
	}
	if d, err := l.Allow(ctx, "c", 1, time.Minute); err != nil || d.Allowed {
		t.Fatalf("c is still limited, got %+v %v", d, err)
	}

	now = now.Add(2 * time.Minute)
	if d, err := l.Allow(ctx, "d", 1, time.Minute); err != nil || !d.Allowed || len(l.buckets) != 1 {
		t.Fatalf("expired keys should be collected: %+v %v (%d keys)", d, err, len(l.buckets))
	}
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	l := NewMemoryLimiter(0)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Allow(ctx, "shared", 10, time.Hour)
			if err == nil && d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 10 {
		t.Fatalf("expected exactly 10 allowed hits, got %d", allowed)
	}
}
