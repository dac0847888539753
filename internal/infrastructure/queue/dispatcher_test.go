package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubLoginStore struct {
	mu      sync.Mutex
	touched map[string]time.Time
	err     error
	done    chan string
}

func newStubLoginStore() *stubLoginStore {
	return &stubLoginStore{touched: make(map[string]time.Time), done: make(chan string, 16)}
}

func (s *stubLoginStore) TouchLastLogin(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	if s.err == nil {
		s.touched[userID] = at
	}
	err := s.err
	s.mu.Unlock()
	s.done <- userID
	return err
}

func waitFor(t *testing.T, ch <-chan string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for write %d/%d", i+1, n)
		}
	}
}

func TestLoginDispatcher_RecordsWrites(t *testing.T) {
	store := newStubLoginStore()
	d := NewLoginDispatcher(2, store, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d.Record("u1", at)
	d.Record("u2", at.Add(time.Second))
	waitFor(t, store.done, 2)

	store.mu.Lock()
	defer store.mu.Unlock()
	if !store.touched["u1"].Equal(at) || !store.touched["u2"].Equal(at.Add(time.Second)) {
		t.Fatalf("unexpected writes: %+v", store.touched)
	}
}

func TestLoginDispatcher_StoreErrorDoesNotStopWorker(t *testing.T) {
	store := newStubLoginStore()
	store.err = errors.New("primary stepped down")
	d := NewLoginDispatcher(1, store, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record("u1", time.Now())
	d.Record("u1", time.Now())
	waitFor(t, store.done, 2)
}

func TestLoginDispatcher_RecordNeverBlocks(t *testing.T) {
	store := newStubLoginStore()
	d := NewLoginDispatcher(1, store, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record("u1", time.Now())
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}

func TestLoginDispatcher_ShardIsStable(t *testing.T) {
	d := NewLoginDispatcher(8, newStubLoginStore(), zerolog.Nop())
	first := d.shardIndex("65f0c0ffee")
	for i := 0; i < 10; i++ {
		if d.shardIndex("65f0c0ffee") != first {
			t.Fatal("shard index must be deterministic")
		}
	}
}
