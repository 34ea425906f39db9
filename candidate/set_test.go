package candidate

import "testing"

func TestInitFromFirstModel(t *testing.T) {
	s := New(3)
	s.InitFromFirstModel(func(v int) bool { return v != 2 })
	if s.CandidateOf(1) != 1 || s.CandidateOf(2) != -2 || s.CandidateOf(3) != 3 {
		t.Fatalf("unexpected candidates: %d %d %d", s.CandidateOf(1), s.CandidateOf(2), s.CandidateOf(3))
	}
}

func TestDropPromoteCounters(t *testing.T) {
	s := New(3)
	s.InitFromFirstModel(func(v int) bool { return true })

	s.Drop(2, false) // the witness drop
	if s.Dropped() != 1 || s.Filtered() != 0 {
		t.Fatalf("witness drop should not count as filtered: dropped=%d filtered=%d", s.Dropped(), s.Filtered())
	}

	s.Drop(3, true) // a filter-probe additional drop
	if s.Dropped() != 2 || s.Filtered() != 1 {
		t.Fatalf("expected dropped=2 filtered=1, got dropped=%d filtered=%d", s.Dropped(), s.Filtered())
	}

	s.Promote(1)
	if s.Backbones() != 1 {
		t.Fatalf("expected 1 backbone, got %d", s.Backbones())
	}
	if s.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", s.Remaining())
	}
	if s.IsCandidate(1) || s.IsCandidate(2) || s.IsCandidate(3) {
		t.Fatalf("no variable should remain a candidate")
	}
}

func TestDropRequiresCandidate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when dropping a non-candidate")
		}
	}()
	s := New(1)
	s.InitFromFirstModel(func(int) bool { return true })
	s.Promote(1)
	s.Drop(1, false)
}
