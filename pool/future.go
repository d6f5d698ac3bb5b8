package pool

// outcome pairs a task's value with its error.
type outcome[R any] struct {
	val R
	err error
}

// Future is the completion handle of a submitted task. It is fulfilled
// exactly once, by whichever worker executes the task, and may be read
// any number of times after that.
type Future[R any] struct {
	done chan struct{}
	out  outcome[R]
}

// Handle is the future of a task that produces no value.
type Handle = Future[struct{}]

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// complete fulfils the future. Must be called exactly once; the closed
// done channel enforces the write-once contract.
func (f *Future[R]) complete(val R, err error) {
	f.out = outcome[R]{val: val, err: err}
	close(f.done)
}

// Get blocks until the task has completed and returns its value and
// error. A panic inside the task surfaces here as a *PanicError.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.out.val, f.out.err
}

// Wait blocks like Get but discards the value.
func (f *Future[R]) Wait() error {
	_, err := f.Get()
	return err
}

// Done returns a channel that is closed once the task has completed,
// for non-blocking readiness checks and select loops.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}
