// Package signals installs the process-wide signal handler the backbone
// engine needs: on SIGINT/SIGTERM it stops the active timer, prints
// statistics, and exits, without ever touching the candidate set or the
// oracle (spec §5).
package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/crillab/cadiback/stats"
)

var onlyOneSignalHandler = make(chan struct{})

// Lifecycle is the process-wide signal registration described by the
// Design Notes: {init → register handler → run → deregister handler →
// teardown}. It is created once per process; a second call to Install
// panics, matching the "only one signal handler" discipline of the
// teacher's own signal-handling convention.
type Lifecycle struct {
	st       *stats.Stats
	verbose  bool
	notifyCh chan os.Signal
	once     sync.Once
}

// Install registers the handler, bound to st — an opaque handle the
// handler reads statistics through, per the Design Notes. Verbosity
// suppresses the handler's output under quiet mode (spec §5 step 1).
// Install returns the Lifecycle; callers must call Stop to deregister it
// on every exit path.
func Install(st *stats.Stats, verbose bool) *Lifecycle {
	close(onlyOneSignalHandler) // panics if called twice
	l := &Lifecycle{st: st, verbose: verbose, notifyCh: make(chan os.Signal, 2)}
	signal.Notify(l.notifyCh, os.Interrupt, syscall.SIGTERM)
	go l.run()
	return l
}

func (l *Lifecycle) run() {
	sig, ok := <-l.notifyCh
	if !ok {
		return
	}
	l.st.StopForSignal()
	if l.verbose {
		fmt.Fprintf(os.Stderr, "c caught signal %v\n", sig)
		l.st.Print(os.Stdout, l.verbose)
	}
	os.Exit(1)
}

// Stop deregisters the handler. It is idempotent.
func (l *Lifecycle) Stop() {
	l.once.Do(func() {
		signal.Stop(l.notifyCh)
		close(l.notifyCh)
	})
}
