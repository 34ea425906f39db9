// Package stats collects the counters and timing buckets of a backbone
// extraction run and knows how to print them from a signal-safe context.
package stats

import (
	"fmt"
	"io"
	"time"
)

// Bucket is a discriminated tag identifying which timing bucket a
// currently-running call charges to, per the Design Notes' guidance to use
// a small tagged variant rather than a raw pointer to a counter.
type Bucket int

const (
	// BucketNone means no timer is currently running.
	BucketNone Bucket = iota
	// BucketCall means a solve() call is in flight; its bucket (sat or
	// unsat) is only known once the call resolves.
	BucketCall
	// BucketFlip means a flip probe call is in flight.
	BucketFlip
	// BucketCheck means a checker-sidecar call is in flight.
	BucketCheck
)

// Stats holds every counter and timing bucket from spec §3/§4.7. It is
// updated from the single main thread, except for StopForSignal, which a
// signal handler may call; StopForSignal only touches scalar counters and
// the timer register, never the candidate set or oracle.
type Stats struct {
	Backbones int
	Dropped   int
	Filtered  int
	Flipped   int
	FixedHits int
	Checked   int

	CallsSat     int
	CallsUnsat   int
	CallsUnknown int

	FirstTime    time.Duration
	SatTime      time.Duration
	SatMaxTime   time.Duration
	UnsatTime    time.Duration
	UnsatMaxTime time.Duration
	UnknownTime  time.Duration
	SolvingTime  time.Duration
	FlipTime     time.Duration
	CheckTime    time.Duration

	current Bucket
	started time.Time
}

// CallsTotal returns CallsSat + CallsUnsat + CallsUnknown.
func (s *Stats) CallsTotal() int {
	return s.CallsSat + s.CallsUnsat + s.CallsUnknown
}

// StartCall marks the beginning of a solve() call. Its bucket (sat or
// unsat) is resolved later by FinishCall, since the outcome isn't known
// until the call returns.
func (s *Stats) StartCall() {
	s.current = BucketCall
	s.started = time.Now()
}

// FinishCall resolves the pending solve() call's timing bucket based on
// whether it returned sat.
func (s *Stats) FinishCall(sat bool) {
	elapsed := time.Since(s.started)
	first := s.CallsTotal() == 0
	if first {
		s.FirstTime = elapsed
	}
	if sat {
		s.CallsSat++
		s.SatTime += elapsed
		if elapsed > s.SatMaxTime {
			s.SatMaxTime = elapsed
		}
	} else {
		s.CallsUnsat++
		s.UnsatTime += elapsed
		if elapsed > s.UnsatMaxTime {
			s.UnsatMaxTime = elapsed
		}
	}
	s.SolvingTime += elapsed
	s.current = BucketNone
}

// StartFlip marks the beginning of a flip-probe call.
func (s *Stats) StartFlip() {
	s.current = BucketFlip
	s.started = time.Now()
}

// FinishFlip charges the elapsed time to the flip bucket.
func (s *Stats) FinishFlip() {
	s.FlipTime += time.Since(s.started)
	s.current = BucketNone
}

// StartCheck marks the beginning of a checker-sidecar call.
func (s *Stats) StartCheck() {
	s.current = BucketCheck
	s.started = time.Now()
}

// FinishCheck charges the elapsed time to the check bucket.
func (s *Stats) FinishCheck() {
	s.CheckTime += time.Since(s.started)
	s.current = BucketNone
}

// StopForSignal stops whatever timer is currently running and charges it
// to the unknown bucket, incrementing CallsUnknown if the running timer
// was a solve() call. It touches only scalar fields and is safe to call
// from a signal handler.
func (s *Stats) StopForSignal() {
	if s.current == BucketNone {
		return
	}
	elapsed := time.Since(s.started)
	wasCall := s.current == BucketCall
	s.UnknownTime += elapsed
	if wasCall {
		s.CallsUnknown++
		s.SolvingTime += elapsed
	}
	s.current = BucketNone
}

func percent(a, b time.Duration) float64 {
	if b == 0 {
		return 0
	}
	return 100 * a.Seconds() / b.Seconds()
}

// Print writes a human-readable statistics report to w, in the style of
// the original tool's "backbone statistics" block: counters, then a
// percent-of-solving-time table for each non-empty timing bucket.
func (s *Stats) Print(w io.Writer, verbose bool) {
	fmt.Fprintln(w, "c")
	fmt.Fprintln(w, "c --- [ backbone statistics ] ------------------------------------------------")
	fmt.Fprintln(w, "c")
	fmt.Fprintf(w, "c found %d backbones\n", s.Backbones)
	fmt.Fprintf(w, "c called oracle %d times (%d sat, %d unsat, %d unknown)\n",
		s.CallsTotal(), s.CallsSat, s.CallsUnsat, s.CallsUnknown)
	fmt.Fprintln(w, "c")
	printBucket := func(name string, d time.Duration) {
		if verbose || d != 0 {
			fmt.Fprintf(w, "c   %10.2f %6.2f %% %s\n", d.Seconds(), percent(d, s.SolvingTime), name)
		}
	}
	printBucket("first", s.FirstTime)
	printBucket("sat", s.SatTime)
	printBucket("satmax", s.SatMaxTime)
	printBucket("unsat", s.UnsatTime)
	printBucket("unsatmax", s.UnsatMaxTime)
	printBucket("unknown", s.UnknownTime)
	fmt.Fprintln(w, "c ---------------------------------")
	fmt.Fprintf(w, "c   %10.2f 100.00 %% solving\n", s.SolvingTime.Seconds())
	if verbose || s.FlipTime != 0 {
		fmt.Fprintf(w, "c   %10.2f          flip\n", s.FlipTime.Seconds())
	}
	if verbose || s.CheckTime != 0 {
		fmt.Fprintf(w, "c   %10.2f          check\n", s.CheckTime.Seconds())
	}
	fmt.Fprintln(w, "c")
}
