package pool

import (
	"time"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a Pool.
type Option func(*poolConfig)

type poolConfig struct {
	queueCapacity   int
	limiter         *rate.Limiter
	affinity        bool
	onMetrics       func(PoolStats)
	metricsInterval time.Duration
}

// WithQueueCapacity preallocates the task queue for n pending tasks.
// The queue still grows past n when needed; this only avoids early
// reallocations under bursty submission.
func WithQueueCapacity(n int) Option {
	return func(cfg *poolConfig) {
		if n > 0 {
			cfg.queueCapacity = n
		}
	}
}

// WithRateLimit throttles task starts to perSecond with the given burst.
// The limit applies where tasks begin executing, never to submission, so
// Submit stays non-blocking. Useful when tasks hit an external service.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if perSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithAffinity locks each worker to an OS thread and pins that thread to
// the CPU core matching the worker identity, where the platform supports
// it. Only worthwhile for long-lived, CPU-bound pools.
func WithAffinity() Option {
	return func(cfg *poolConfig) {
		cfg.affinity = true
	}
}

// WithMetrics registers a callback that receives a PoolStats snapshot
// every interval until the pool is closed. Ignored unless interval > 0
// and fn is non-nil.
func WithMetrics(interval time.Duration, fn func(PoolStats)) Option {
	return func(cfg *poolConfig) {
		if interval > 0 && fn != nil {
			cfg.onMetrics = fn
			cfg.metricsInterval = interval
		}
	}
}
