//go:build linux

package runner

import "syscall"

// currentThreadID returns the OS thread identity of the calling
// goroutine's underlying thread, used to enforce the thread-of-origin
// rule for fatal assertions. Go does not pin goroutines to OS threads
// in general, but Engine.Main calls runtime.LockOSThread() once for
// the goroutine that runs every test thunk, so this identity is
// stable across whatever blocking operations a thunk performs on that
// goroutine. The case this check is meant to catch is a test thunk
// that spawns its own goroutine and calls a fatal assertion from it.
func currentThreadID() int {
	return syscall.Gettid()
}
