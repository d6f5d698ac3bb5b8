//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32             = syscall.NewLazyDLL("kernel32.dll")
	procSetAffinityMask  = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread = kernel32.NewProc("GetCurrentThread")
)

// Pin locks the calling goroutine to an OS thread and binds it to the
// core matching the worker identity via SetThreadAffinityMask. The
// returned release function undoes the thread lock.
func Pin(worker int) func() {
	runtime.LockOSThread()

	core := worker % runtime.NumCPU()
	handle, _, _ := procGetCurrentThread.Call()
	// Bit N of the mask selects CPU N.
	_, _, _ = procSetAffinityMask.Call(handle, uintptr(1)<<core)

	return runtime.UnlockOSThread
}
