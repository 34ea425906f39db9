package stats

import (
	"bytes"
	"testing"
	"time"
)

func TestFinishCallBucketsByOutcome(t *testing.T) {
	s := &Stats{}
	s.StartCall()
	time.Sleep(time.Millisecond)
	s.FinishCall(true)
	if s.CallsSat != 1 || s.CallsUnsat != 0 {
		t.Fatalf("expected 1 sat call, got sat=%d unsat=%d", s.CallsSat, s.CallsUnsat)
	}
	if s.FirstTime == 0 {
		t.Fatalf("expected FirstTime to be set on the first call")
	}
	if s.SolvingTime != s.SatTime {
		t.Fatalf("solving time should equal sat time with no unsat calls yet")
	}
}

func TestStopForSignalDuringCall(t *testing.T) {
	s := &Stats{}
	s.StartCall()
	time.Sleep(time.Millisecond)
	s.StopForSignal()
	if s.CallsUnknown != 1 {
		t.Fatalf("expected 1 unknown call, got %d", s.CallsUnknown)
	}
	if s.UnknownTime == 0 {
		t.Fatalf("expected unknown time to be charged")
	}
	// A second call with nothing running must be a no-op.
	s.StopForSignal()
	if s.CallsUnknown != 1 {
		t.Fatalf("StopForSignal with no active timer must not double count")
	}
}

func TestCounterConsistency(t *testing.T) {
	s := &Stats{}
	s.StartCall()
	s.FinishCall(true)
	s.StartCall()
	s.FinishCall(false)
	s.StartCall()
	s.StopForSignal()
	if s.CallsTotal() != s.CallsSat+s.CallsUnsat+s.CallsUnknown {
		t.Fatalf("calls.total must equal sat+unsat+unknown")
	}
}

func TestPrintDoesNotPanic(t *testing.T) {
	s := &Stats{Backbones: 2}
	s.StartCall()
	s.FinishCall(true)
	var buf bytes.Buffer
	s.Print(&buf, true)
	if buf.Len() == 0 {
		t.Fatalf("expected Print to write output")
	}
}
