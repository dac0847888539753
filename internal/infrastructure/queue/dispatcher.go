package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// LastLoginStore persists a last-login timestamp.
type LastLoginStore interface {
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

type loginEvent struct {
	userID string
	at     time.Time
}

// LoginDispatcher routes last-login writes to a fixed set of workers using
// consistent hashing on the user id, so writes for one account stay ordered.
// It satisfies ports.LoginRecorder.
type LoginDispatcher struct {
	workers []chan loginEvent
	store   LastLoginStore
	log     zerolog.Logger
}

// NewLoginDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewLoginDispatcher(numWorkers int, store LastLoginStore, log zerolog.Logger) *LoginDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &LoginDispatcher{
		workers: make([]chan loginEvent, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan loginEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *LoginDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record queues a last-login write. It never blocks: when the worker's
// channel is full the write is dropped and counted.
func (d *LoginDispatcher) Record(userID string, at time.Time) {
	select {
	case d.workers[d.shardIndex(userID)] <- loginEvent{userID: userID, at: at}:
	default:
		metrics.LoginQueueDropsTotal.Inc()
		d.log.Warn().Str("user_id", userID).Msg("login queue full, last-login update dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *LoginDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *LoginDispatcher) runWorker(ctx context.Context, id int, ch <-chan loginEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ch:
			writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
			if err := d.store.TouchLastLogin(writeCtx, ev.userID, ev.at); err != nil {
				d.log.Warn().Err(err).
					Str("user_id", ev.userID).
					Int("worker_id", id).
					Msg("last-login update failed")
			}
			cancel()
		}
	}
}
