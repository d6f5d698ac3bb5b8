// Package pool provides a fixed-size worker pool with a shared FIFO task
// queue, plus a parallel for-each primitive built on top of it.
//
// The primary type is Pool: a set of worker goroutines created once at
// construction, fed from a single queue, each task receiving the identity
// of the worker that runs it. Submissions return a future-like handle that
// blocks until the task's outcome (value, error, or recovered panic) is
// available.
//
// # Basic Usage
//
//	p := pool.New(pool.Auto)
//	defer p.Close()
//
//	h, err := p.Submit(func(worker int) error {
//	    // do work
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	if err := h.Wait(); err != nil {
//	    // task failed
//	}
//
// Tasks with a return value go through the package-level SubmitResult:
//
//	f, _ := pool.SubmitResult(p, func(worker int) (int, error) {
//	    return expensiveCalc(), nil
//	})
//	v, err := f.Get()
//
// # Thread-Count Policy
//
// New takes a ThreadCount selector rather than a raw worker count. Literal
// non-negative values request exactly that many workers; the sentinels
// None, Auto and Half resolve against detected hardware concurrency. A
// pool resolved to zero workers executes every submission synchronously in
// the submitting goroutine, which is the supported way to disable
// parallelism without changing call sites. Builds tagged "singlethread"
// force every pool into this mode.
//
// # Parallel For-Each
//
// ForEach fans the elements of a Sequence out across the pool's workers
// and returns once every element has been processed:
//
//	items := []string{"a", "b", "c"}
//	err := pool.ForEachSlice(p, items, func(worker int, s string) error {
//	    return process(worker, s)
//	})
//
// How a sequence is split into tasks depends on its capability kind:
//
//   - FromSlice: length known in O(1); consecutive subslices of roughly
//     total/workers/3 elements, one task each.
//   - FromSeq: multi-pass but no O(1) length; the length comes from the
//     hint or one counting pass, then chunks are buffered while stepping.
//   - FromChan: single-use stream; one task per element as it arrives.
//
// Pools with zero or one worker bypass the queue and run the elements
// sequentially in traversal order.
//
// ForEach waits on every chunk's handle regardless of failures and
// returns the first failure in submission order; work already scheduled
// is never cancelled, so side effects from other chunks may exist when
// ForEach returns an error.
//
// # Concurrency Contract
//
// The pool only guarantees that chunks cover disjoint parts of the range.
// Element functions that touch shared mutable state must partition it by
// worker identity or by element position; the pool does not protect
// caller-owned state.
//
// # Errors
//
// Submitting to a closed pool fails fast with ErrPoolClosed. A panic
// inside a task never kills its worker: it is captured as a *PanicError
// and re-surfaces from the handle's Get or Wait. A sequence hint that
// disagrees with the traversed length yields ErrLengthMismatch.
package pool
