package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/parallelkit/parfor/internal/cpu"
)

// Task is a unit of work. The argument is the identity of the worker
// executing it, in [0, Workers()); pools without workers pass 0.
type Task func(worker int) error

// Pool is a fixed-size worker pool sharing a single FIFO task queue.
//
// A pool resolved to zero workers runs every submission synchronously in
// the submitting goroutine. One resolved to W >= 1 starts W goroutines at
// construction; they drain the queue until Close, which also runs any
// tasks still queued when it is called.
type Pool struct {
	mu      sync.Mutex
	queue   []func(worker int)
	work    *sync.Cond // work available, or stopping
	drained *sync.Cond // queue empty and nothing in flight
	stop    bool
	done    chan struct{}

	// Updated lock-free so workers don't contend under the queue mutex.
	busy      atomic.Int64
	processed atomic.Int64
	submitted atomic.Int64

	wg      sync.WaitGroup
	workers int

	limiter  *rate.Limiter
	affinity bool
}

// PoolStats is a point-in-time snapshot of pool activity.
type PoolStats struct {
	Submitted  int64 // tasks accepted so far
	Processed  int64 // tasks finished
	Busy       int64 // tasks currently executing
	QueueDepth int   // tasks waiting in the queue
	Workers    int   // worker count, fixed at creation
}

// New creates a pool with the worker count resolved from n. Workers start
// immediately and process tasks until Close.
func New(n ThreadCount, opts ...Option) *Pool {
	cfg := poolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		queue:    make([]func(int), 0, cfg.queueCapacity),
		done:     make(chan struct{}),
		workers:  n.Resolve(),
		limiter:  cfg.limiter,
		affinity: cfg.affinity,
	}
	p.work = sync.NewCond(&p.mu)
	p.drained = sync.NewCond(&p.mu)

	p.wg.Add(p.workers)
	for id := range p.workers {
		go p.worker(id)
	}

	if cfg.onMetrics != nil {
		go p.metricsLoop(cfg.metricsInterval, cfg.onMetrics)
	}

	return p
}

// worker is the run loop of a single worker goroutine. The queue check
// comes before the stop check so that work queued before Close is still
// executed; stop only prevents new submissions, not drainage.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	if p.affinity {
		release := cpu.Pin(id)
		defer release()
	}
	debugLog("worker %d started", id)

	for {
		p.mu.Lock()
		for !p.stop && len(p.queue) == 0 {
			p.work.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			debugLog("worker %d exiting", id)
			return
		}

		run := p.queue[0]
		p.queue = p.queue[1:]
		p.busy.Add(1)
		p.mu.Unlock()

		if p.limiter != nil {
			// The pool has no cancellation; Background is deliberate.
			_ = p.limiter.Wait(context.Background())
		}
		run(id)
		p.processed.Add(1)
		p.busy.Add(-1)

		p.mu.Lock()
		if len(p.queue) == 0 && p.busy.Load() == 0 {
			p.drained.Broadcast()
		}
		p.mu.Unlock()
	}
}

// Submit queues fn for execution and returns its completion handle.
// Submit never blocks: with zero workers fn runs synchronously before
// Submit returns, its outcome already captured in the handle; otherwise
// the task is appended to the queue and one waiting worker is woken.
// Returns ErrPoolClosed once Close has been called.
func (p *Pool) Submit(fn Task) (*Handle, error) {
	f := newFuture[struct{}]()
	run := func(worker int) {
		f.complete(struct{}{}, runTask(worker, fn))
	}
	if err := p.dispatch(run); err != nil {
		return nil, err
	}
	return f, nil
}

// SubmitResult queues fn like Pool.Submit and additionally forwards its
// return value into the future on success. It is a package-level function
// because Go methods cannot introduce type parameters.
func SubmitResult[R any](p *Pool, fn func(worker int) (R, error)) (*Future[R], error) {
	f := newFuture[R]()
	run := func(worker int) {
		var val R
		err := runTask(worker, func(id int) error {
			var ferr error
			val, ferr = fn(id)
			return ferr
		})
		f.complete(val, err)
	}
	if err := p.dispatch(run); err != nil {
		return nil, err
	}
	return f, nil
}

// runTask executes fn and converts a panic into a *PanicError so the
// worker loop survives.
func runTask(worker int, fn Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return fn(worker)
}

// dispatch hands the wrapped task to a worker, or runs it in place when
// the pool has no workers.
func (p *Pool) dispatch(run func(worker int)) error {
	if p.workers == 0 {
		p.submitted.Add(1)
		run(0)
		p.processed.Add(1)
		return nil
	}

	p.mu.Lock()
	if p.stop {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.queue = append(p.queue, run)
	p.submitted.Add(1)
	p.mu.Unlock()

	p.work.Signal()
	return nil
}

// WaitDrained blocks until the queue is empty and no task is executing.
// The condition is a snapshot: a concurrent submitter can make the queue
// non-empty again right after WaitDrained returns. Callers needing a
// strict barrier must stop submitting before calling it.
func (p *Pool) WaitDrained() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) > 0 || p.busy.Load() > 0 {
		p.drained.Wait()
	}
}

// Close stops accepting new tasks, wakes every worker, and joins them.
// Tasks queued before Close still run; Close blocks until they have
// finished. Safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.stop {
		p.stop = true
		close(p.done)
	}
	p.mu.Unlock()

	p.work.Broadcast()
	p.wg.Wait()
	debugLog("pool closed, processed %d tasks", p.processed.Load())
}

// Workers returns the worker count, fixed at construction.
func (p *Pool) Workers() int { return p.workers }

// Processed returns the number of tasks that have finished, including
// ones that failed.
func (p *Pool) Processed() int64 { return p.processed.Load() }

// Stats returns a snapshot of pool activity. Safe to call concurrently.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	depth := len(p.queue)
	p.mu.Unlock()

	return PoolStats{
		Submitted:  p.submitted.Load(),
		Processed:  p.processed.Load(),
		Busy:       p.busy.Load(),
		QueueDepth: depth,
		Workers:    p.workers,
	}
}

func (p *Pool) metricsLoop(interval time.Duration, fn func(PoolStats)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn(p.Stats())
		case <-p.done:
			return
		}
	}
}
