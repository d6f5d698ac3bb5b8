package pool

// Apply is the element function of ForEach. worker is the identity of
// the executing worker. Execution order across chunks is unspecified, so
// any shared state fn touches must be partitioned by worker identity or
// by element position.
type Apply[T any] func(worker int, item T) error

// ForEach applies fn to every element of s on p's workers and returns
// once every element has been processed. One task is submitted per chunk
// (or per element for single-use sequences); every task's handle is
// waited on regardless of failures, and the first failure in submission
// order is returned. Scheduled work is never cancelled, so side effects
// from other chunks may already exist when ForEach reports an error.
//
// Pools with zero or one worker bypass the queue entirely and run fn
// sequentially, in traversal order, with worker identity 0. An empty
// sequence submits nothing and returns nil.
func ForEach[T any](p *Pool, s Sequence[T], fn Apply[T]) error {
	if p.Workers() <= 1 {
		return forEachSequential(s, fn)
	}

	switch s.kind {
	case RandomAccess:
		return forEachIndexed(p, s.items, fn)
	case ForwardMultiPass:
		return forEachForward(p, s, fn)
	default:
		return forEachStream(p, s, fn)
	}
}

// ForEachSlice is shorthand for ForEach over FromSlice(items).
func ForEachSlice[T any](p *Pool, items []T, fn Apply[T]) error {
	return ForEach(p, FromSlice(items), fn)
}

// ForEachN applies fn to every index of the half-open range [0, n) in
// parallel, without materializing a container.
func ForEachN(p *Pool, n int, fn func(worker, index int) error) error {
	if n <= 0 {
		return nil
	}

	if p.Workers() <= 1 {
		for i := range n {
			if err := runTask(0, func(worker int) error { return fn(worker, i) }); err != nil {
				return err
			}
		}
		return nil
	}

	var futures []*Handle
	var submitErr error
	for _, c := range partition(n, p.Workers()) {
		f, err := p.Submit(func(worker int) error {
			for i := c.start; i < c.start+c.length; i++ {
				if err := fn(worker, i); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			submitErr = err
			break
		}
		futures = append(futures, f)
	}
	return waitAll(futures, submitErr)
}

// ParallelForEach constructs a pool from the thread-count selector, runs
// ForEach on it, and tears the pool down. The one-shot form for callers
// that do not keep a pool around.
func ParallelForEach[T any](threads ThreadCount, s Sequence[T], fn Apply[T]) error {
	p := New(threads)
	defer p.Close()
	return ForEach(p, s, fn)
}

// forEachSequential runs the whole traversal in the calling goroutine,
// stopping at the first failure. Panics are captured the same way the
// worker loop captures them, so callers observe one behavior regardless
// of the worker count.
func forEachSequential[T any](s Sequence[T], fn Apply[T]) error {
	var firstErr error
	n := s.each(func(v T) bool {
		firstErr = runTask(0, func(worker int) error { return fn(worker, v) })
		return firstErr == nil
	})
	if firstErr != nil {
		return firstErr
	}
	return s.checkLength(n)
}

// forEachIndexed carves consecutive subslices and submits one task per
// chunk. The O(1) length makes chunk boundaries free.
func forEachIndexed[T any](p *Pool, items []T, fn Apply[T]) error {
	if len(items) == 0 {
		return nil
	}

	var futures []*Handle
	var submitErr error
	for _, c := range partition(len(items), p.Workers()) {
		f, err := submitChunk(p, items[c.start:c.start+c.length], fn)
		if err != nil {
			submitErr = err
			break
		}
		futures = append(futures, f)
	}
	return waitAll(futures, submitErr)
}

// forEachForward chunks a forward-only traversal. The total comes from
// the hint, or from one extra counting pass when the hint is 0; chunk
// contents are then buffered while stepping element-by-element, one task
// per buffer. A hint that disagrees with the traversed length is a hard
// error, reported after all scheduled work has finished.
func forEachForward[T any](p *Pool, s Sequence[T], fn Apply[T]) error {
	total := s.hint
	if total == 0 {
		for range s.seq {
			total++
		}
	}
	if total == 0 {
		return nil
	}

	size := chunkLen(total, p.Workers())
	var futures []*Handle
	var submitErr error
	buf := make([]T, 0, size)
	n := 0
	for v := range s.seq {
		buf = append(buf, v)
		n++
		if len(buf) == size {
			f, err := submitChunk(p, buf, fn)
			if err != nil {
				submitErr = err
				break
			}
			futures = append(futures, f)
			buf = make([]T, 0, size)
		}
	}
	if submitErr == nil && len(buf) > 0 {
		f, err := submitChunk(p, buf, fn)
		if err != nil {
			submitErr = err
		} else {
			futures = append(futures, f)
		}
	}

	if err := waitAll(futures, submitErr); err != nil {
		return err
	}
	if n != total {
		return lengthMismatch(total, n)
	}
	return nil
}

// forEachStream submits one task per element as it arrives. No planning
// happens up front: a single-use traversal cannot be revisited, so the
// count is discovered incidentally and only compared to the hint at the
// end.
func forEachStream[T any](p *Pool, s Sequence[T], fn Apply[T]) error {
	var futures []*Handle
	var submitErr error
	n := 0
	for v := range s.ch {
		f, err := p.Submit(func(worker int) error { return fn(worker, v) })
		if err != nil {
			submitErr = err
			break
		}
		futures = append(futures, f)
		n++
	}

	if err := waitAll(futures, submitErr); err != nil {
		return err
	}
	return s.checkLength(n)
}

// submitChunk submits one task applying fn to every element of items.
// An element failure aborts the remainder of that chunk only.
func submitChunk[T any](p *Pool, items []T, fn Apply[T]) (*Handle, error) {
	return p.Submit(func(worker int) error {
		for _, v := range items {
			if err := fn(worker, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// waitAll waits on every handle in submission order so no task is left
// unobserved, then returns the first failure. A submission error only
// surfaces when no earlier-submitted task failed.
func waitAll(futures []*Handle, submitErr error) error {
	var firstErr error
	for _, f := range futures {
		if err := f.Wait(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return firstErr
	}
	return submitErr
}
