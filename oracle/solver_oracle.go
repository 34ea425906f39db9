package oracle

import (
	"github.com/crillab/cadiback/solver"
)

// SolverOracle adapts this repository's own solver.Solver to the Oracle
// interface. It is the default, in-process backend: no external solver
// process is shelled out to, unlike spec.md's framing of the oracle as an
// external collaborator.
type SolverOracle struct {
	pb *solver.Problem
	sv *solver.Solver
}

// New builds a SolverOracle over pb. pb is not mutated by subsequent calls
// except through the Oracle interface itself.
func New(pb *solver.Problem) *SolverOracle {
	return &SolverOracle{pb: pb, sv: solver.New(pb)}
}

// NbVars returns the number of variables in the loaded problem.
func (o *SolverOracle) NbVars() int {
	return o.pb.NbVars
}

// Assume implements Oracle.
func (o *SolverOracle) Assume(lits []int) {
	converted := make([]solver.Lit, len(lits))
	for i, l := range lits {
		converted[i] = solver.IntToLit(l)
	}
	o.sv.Assume(converted)
}

// Constrain implements Oracle. A call with lit == 0 is a no-op: the clause
// is implicitly terminated and consumed by the next Solve regardless.
func (o *SolverOracle) Constrain(lit int) {
	if lit == 0 {
		return
	}
	o.sv.Constrain(solver.IntToLit(lit))
}

// Solve implements Oracle.
func (o *SolverOracle) Solve() Status {
	switch o.sv.Solve() {
	case solver.Sat:
		return Sat
	case solver.Unsat:
		return Unsat
	default:
		panic("oracle: solver returned neither Sat nor Unsat")
	}
}

// Value implements Oracle.
func (o *SolverOracle) Value(v int) int {
	if o.sv.Value(solver.IntToVar(int32(v))) {
		return v
	}
	return -v
}

// Fixed implements Oracle.
func (o *SolverOracle) Fixed(lit int) int {
	return o.sv.Fixed(solver.IntToLit(lit))
}

// HasFlip implements Oracle. This backend does not support flipping a
// model value without a new solve, so the flip probe is permanently
// disabled for it (spec §4.1: "If the oracle lacks this, the capability is
// permanently disabled").
func (o *SolverOracle) HasFlip() bool {
	return false
}

// Flip implements Oracle. Callers must check HasFlip first; this always
// reports failure.
func (o *SolverOracle) Flip(int) bool {
	return false
}

// Copy implements Oracle, building a fresh, independent solver over a
// clone of the original clause set — used to construct the checker
// sidecar (spec §4.5).
func (o *SolverOracle) Copy() (Oracle, error) {
	return New(o.pb.Clone()), nil
}

// SetOption implements Oracle. "verbose" and "report" both set the
// underlying solver's Verbose flag, which its search does not read, so no
// trace output results; unknown names are ignored.
func (o *SolverOracle) SetOption(name string, value int) {
	switch name {
	case "verbose", "report":
		o.sv.Verbose = value != 0
	}
}

// SetPrefix implements Oracle.
func (o *SolverOracle) SetPrefix(prefix string) {
	o.sv.Prefix = prefix
}
