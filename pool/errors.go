package pool

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrPoolClosed is returned by Submit and SubmitResult when the pool has
// been closed.
var ErrPoolClosed = errors.New("parfor: pool is closed")

// ErrLengthMismatch is returned by ForEach when a caller-supplied element
// count hint disagrees with the number of elements the traversal produced.
var ErrLengthMismatch = errors.New("parfor: sequence length does not match hint")

// PanicError wraps a panic recovered while a task was executing, together
// with the goroutine stack captured at the point of the panic. It is
// stored in the task's future and surfaces from Get or Wait; the worker
// that ran the task keeps going.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// 8 KiB covers most stack traces; runtime.Stack truncates gracefully
	// if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}

func lengthMismatch(hint, got int) error {
	return fmt.Errorf("%w: hint %d, traversed %d", ErrLengthMismatch, hint, got)
}
