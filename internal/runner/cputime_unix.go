//go:build !windows

package runner

import "syscall"

// processCPUTime returns total process CPU time (user + system) in
// seconds, the Go analog of clock_gettime(CLOCK_PROCESS_CPUTIME_ID,
// ...) in the reference implementation.
func processCPUTime() float64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	user := float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
	sys := float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
	return user + sys
}
