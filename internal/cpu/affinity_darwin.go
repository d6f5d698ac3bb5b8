//go:build darwin

package cpu

import "runtime"

// Pin locks the calling goroutine to an OS thread. Core binding is not
// available on macOS, so the thread lock is all Pin can do there.
func Pin(worker int) func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
