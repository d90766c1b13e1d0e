//go:build !windows

package runner

import (
	"os"
	"os/signal"
	"syscall"
)

// waitForDebugger blocks until a continuation signal arrives, mapping
// a pause()-plus-empty-SIGCONT-handler idiom onto os/signal.
func waitForDebugger() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCONT)
	<-ch
	signal.Stop(ch)
}
