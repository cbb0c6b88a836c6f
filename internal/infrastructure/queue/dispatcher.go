package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/api/metrics"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes rating recompute jobs to a fixed set of workers using
// consistent hashing on the script ID, so recomputes for the same script
// never run concurrently or out of order.
type Dispatcher struct {
	workers []chan ports.RatingRecomputeInput
	service ports.RatingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.RatingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RatingRecomputeInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RatingRecomputeInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its script.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.RatingRecomputeInput) {
	idx := d.shardIndex(job.ScriptID)
	d.workers[idx] <- job
	metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a script ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(scriptID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scriptID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RatingRecomputeInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Recompute(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("script_id", job.ScriptID).
					Int("worker_id", id).
					Msg("rating recompute failed")
			}
		}
	}
}
