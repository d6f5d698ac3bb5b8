//go:build linux

// Package cpu pins pool workers to CPU cores on platforms that support it.
package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to an OS thread and binds that thread
// to the core matching the worker identity, wrapped into range on
// machines with fewer cores than workers. The returned release function
// undoes the thread lock and should be deferred.
func Pin(worker int) func() {
	runtime.LockOSThread()

	core := worker % runtime.NumCPU()
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)
	_ = unix.SchedSetaffinity(0, &mask) // 0 = current thread

	return runtime.UnlockOSThread
}
