package solver

import "testing"

type test struct {
	clauses  [][]int
	expected Status
}

var tests = []test{
	{clauses: [][]int{{1, 2, 3}, {4, 5, 6}, {-1, -4}, {-2, -5}, {-3, -6}, {-1, -3}, {-4, -6}}, expected: Sat},
	{clauses: [][]int{{1}, {-1}}, expected: Unsat},
	{clauses: [][]int{{1, 2}}, expected: Sat},
	{clauses: [][]int{}, expected: Sat},
}

func runTest(tc test, t *testing.T) {
	pb := ParseSlice(tc.clauses)
	s := New(pb)
	status := s.Solve()
	if status != tc.expected {
		t.Errorf("expected %v, got %v for clauses %v", tc.expected, status, tc.clauses)
	}
}

func TestSolver(t *testing.T) {
	for _, tc := range tests {
		runTest(tc, t)
	}
}

func TestParseSlice(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {-1, 3}})
	if pb.NbVars != 3 {
		t.Errorf("expected 3 vars, got %d", pb.NbVars)
	}
}

func TestAssumeConsumedOnce(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}})
	s := New(pb)
	s.Assume([]Lit{IntToLit(-1)})
	if status := s.Solve(); status != Sat {
		t.Fatalf("expected Sat under assumption -1, got %v", status)
	}
	if s.Value(IntToVar(2)) != true {
		t.Errorf("expected var 2 to be true when 1 is assumed false")
	}
	// Assumption from the previous call must not carry over.
	if status := s.Solve(); status != Sat {
		t.Fatalf("expected Sat without assumption, got %v", status)
	}
}

func TestConstrainOneShot(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {2}})
	s := New(pb)
	s.Constrain(IntToLit(-1))
	s.Constrain(IntToLit(-2))
	if status := s.Solve(); status != Unsat {
		t.Fatalf("expected Unsat: both 1 and 2 are fixed true, constrain requires one false, got %v", status)
	}
	// The constrain clause must not persist to the next call.
	if status := s.Solve(); status != Sat {
		t.Fatalf("expected Sat once the one-shot constrain clause is gone, got %v", status)
	}
}

func TestFixed(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {2, 3}})
	s := New(pb)
	if got := s.Fixed(IntToLit(1)); got != 1 {
		t.Errorf("expected 1 fixed true, got %d", got)
	}
	if got := s.Fixed(IntToLit(-1)); got != -1 {
		t.Errorf("expected -1 fixed of negation, got %d", got)
	}
	if got := s.Fixed(IntToLit(2)); got != 0 {
		t.Errorf("expected 2 not fixed, got %d", got)
	}
}
