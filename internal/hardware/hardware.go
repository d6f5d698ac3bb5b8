// Package hardware answers the one question the pool needs from the
// machine: how many tasks can actually run at the same time.
package hardware

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
)

var (
	once    sync.Once
	logical int
)

// Concurrency returns the number of logical CPUs. The reading is taken
// once per process so thread-count policy resolution stays pure; it falls
// back to runtime.NumCPU when the host query fails.
func Concurrency() int {
	once.Do(func() {
		n, err := cpu.Counts(true)
		if err != nil || n < 1 {
			n = runtime.NumCPU()
		}
		logical = n
	})
	return logical
}
