package backbone

import (
	"bufio"
	"fmt"
	"io"
)

// Emitter streams backbone classifications to an io.Writer in the `b`/`s`
// protocol of spec §4.6/§6.3: one `b <lit>` line per promotion, flushed
// immediately, a `b 0` terminator once the loop ends, then exactly one
// verdict line.
type Emitter struct {
	w       *bufio.Writer
	enabled bool
}

// NewEmitter wraps w. enabled controls whether `b` lines are printed at all
// (spec §4.6's "statistics-only mode"); the verdict line is always
// emitted regardless.
func NewEmitter(w io.Writer, enabled bool) *Emitter {
	return &Emitter{w: bufio.NewWriter(w), enabled: enabled}
}

// Backbone emits one `b <lit>` line and flushes, per the ordering
// guarantee that every `b` line precedes any subsequent oracle call.
func (e *Emitter) Backbone(lit int) error {
	if !e.enabled {
		return nil
	}
	if _, err := fmt.Fprintf(e.w, "b %d\n", lit); err != nil {
		return err
	}
	return e.w.Flush()
}

// Terminator emits the `b 0` list terminator. Only called when the first
// SAT call found a model.
func (e *Emitter) Terminator() error {
	if !e.enabled {
		return nil
	}
	if _, err := fmt.Fprintln(e.w, "b 0"); err != nil {
		return err
	}
	return e.w.Flush()
}

// Verdict emits the single `s SATISFIABLE` or `s UNSATISFIABLE` line.
func (e *Emitter) Verdict(sat bool) error {
	line := "s UNSATISFIABLE"
	if sat {
		line = "s SATISFIABLE"
	}
	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return err
	}
	return e.w.Flush()
}

// Comment emits a `c <text>` line, interleavable with `b` lines per
// spec §4.6.
func (e *Emitter) Comment(text string) error {
	if _, err := fmt.Fprintf(e.w, "c %s\n", text); err != nil {
		return err
	}
	return e.w.Flush()
}
