package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamreal/property-system/internal/api/metrics"
	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Deduper abstracts the delivery-idempotency store (Redis). A nil Deduper
// disables the check.
type Deduper interface {
	IsDispatched(ctx context.Context, r domain.Reminder) (bool, error)
	MarkDispatched(ctx context.Context, r domain.Reminder) error
}

// Dispatcher fans committed rent reminders out to delivery workers,
// sharding by tenant so one tenant's reminders keep their creation order.
type Dispatcher struct {
	workers  []chan domain.Reminder
	notifier ports.Notifier
	dedup    Deduper
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, dedup Deduper, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Reminder, numWorkers),
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Reminder, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a committed reminder to the worker responsible for its
// tenant. Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(r domain.Reminder) {
	i := d.shardIndex(r.Tenant)
	d.workers[i] <- r
	metrics.ReminderQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a tenant deterministically to a worker index.
func (d *Dispatcher) shardIndex(tenant string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tenant))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Reminder) {
	gauge := metrics.ReminderQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, r)
			gauge.Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, r domain.Reminder) {
	start := time.Now()

	if d.dedup != nil {
		dup, err := d.dedup.IsDispatched(ctx, r)
		if err != nil {
			d.log.Warn().Err(err).Str("id", r.ID).Msg("dispatch dedup check failed, delivering anyway")
		} else if dup {
			d.log.Debug().Str("id", r.ID).Msg("reminder already dispatched, skipped")
			metrics.ReminderDispatchTotal.WithLabelValues("duplicate").Inc()
			return
		}
	}

	if err := d.notifier.Send(ctx, r); err != nil {
		d.log.Error().Err(err).
			Str("id", r.ID).
			Str("channel", string(r.Channel)).
			Int("worker_id", workerID).
			Msg("reminder delivery failed")
		metrics.ReminderDispatchTotal.WithLabelValues("failed").Inc()
		return
	}

	if d.dedup != nil {
		if err := d.dedup.MarkDispatched(ctx, r); err != nil {
			d.log.Warn().Err(err).Str("id", r.ID).Msg("failed to set dispatch dedup key")
		}
	}

	metrics.ReminderDispatchTotal.WithLabelValues("delivered").Inc()
	metrics.ReminderDispatchDuration.Observe(time.Since(start).Seconds())
}
