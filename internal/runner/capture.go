//go:build !windows

package runner

import (
	"fmt"
	"os"
	"syscall"
)

// redirectOutput creates a fresh capture file under dir (named
// prefix.XXXXXX-style by os.CreateTemp) and duplicates it onto the
// process's stdout and stderr file descriptors, so that any output a
// phase produces — setup, teardown, or a test thunk — lands in that
// file instead of the command stream. It returns the capture file's
// path; the file itself is intentionally left open and leaked onto
// fds 1/2 for the remainder of the phase, matching the reference
// implementation's redirect-and-never-explicitly-close discipline
// (the file is closed implicitly when the next phase's redirect dup2s
// over the same fd numbers, or when the process exits).
func redirectOutput(dir, prefix string) (string, error) {
	f, err := os.CreateTemp(dir, prefix+".*")
	if err != nil {
		return "", fmt.Errorf("creating capture file: %w", err)
	}

	fd := int(f.Fd())
	if err := syscall.Dup2(fd, int(os.Stdout.Fd())); err != nil {
		return "", fmt.Errorf("redirecting stdout to capture file: %w", err)
	}
	if err := syscall.Dup2(fd, int(os.Stderr.Fd())); err != nil {
		return "", fmt.Errorf("redirecting stderr to capture file: %w", err)
	}

	// os.File writes are unbuffered at this layer already (see
	// DESIGN.md's Open Question resolution on setvbuf); no explicit
	// buffering mode to disable.
	return f.Name(), nil
}

// dupCommandStream duplicates fd 1 (standard output) before any
// capture-file redirection happens, producing the file the engine
// writes the JSON event protocol to for the remainder of the run.
// Because it is a dup of the original destination, later dup2 calls
// onto fd 1 do not affect it.
func dupCommandStream() (*os.File, error) {
	newFD, err := syscall.Dup(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("duplicating command stream: %w", err)
	}
	return os.NewFile(uintptr(newFD), "command-stream"), nil
}
