package pool

import (
	"github.com/parallelkit/parfor/internal/hardware"
)

// ThreadCount selects how many workers a Pool runs. Non-negative values
// request exactly that many workers; the negative sentinels delegate to
// hardware detection.
type ThreadCount int

const (
	// None disables parallelism. Every submission executes synchronously
	// in the submitting goroutine, with worker identity 0.
	None ThreadCount = 0

	// Auto uses the detected hardware concurrency.
	Auto ThreadCount = -1

	// Half uses half the detected hardware concurrency, leaving headroom
	// for other work on the machine.
	Half ThreadCount = -2
)

// Resolve converts the selector into a concrete worker count. Resolution
// is pure: it depends only on the selector and the hardware-concurrency
// reading, which is taken once per process. Negative values other than
// Half resolve like Auto.
//
// Builds carrying the "singlethread" tag always resolve to 0, forcing
// every pool into synchronous mode for deterministic debugging.
func (t ThreadCount) Resolve() int {
	if singleThreaded {
		return 0
	}
	switch {
	case t >= 0:
		return int(t)
	case t == Half:
		return hardware.Concurrency() / 2
	default:
		return hardware.Concurrency()
	}
}
