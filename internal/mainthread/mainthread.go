// Package mainthread records which OS thread carries the process "main"
// role. The designation is made once during initialization and consulted
// by diagnostic code for the rest of the process lifetime.
package mainthread

import (
	"runtime"
	"sync/atomic"
)

var designated atomic.Bool

// Designate pins the calling goroutine to its current OS thread and
// records it as the process main thread. A second call while a
// designation is active is a no-op.
func Designate() {
	if !designated.CompareAndSwap(false, true) {
		return
	}
	runtime.LockOSThread()
}

// Designated reports whether a main thread is currently designated.
func Designated() bool {
	return designated.Load()
}

// Release clears the main-thread designation. The OS-thread pin itself
// lasts until the designated goroutine exits; by the time Release runs
// the process is shutting down, so the pin is irrelevant.
func Release() {
	designated.Store(false)
}
