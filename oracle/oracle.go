// Package oracle abstracts the CNF SAT solver behind the narrow capability
// set the backbone engine needs (spec §4.1/§6.1), so the engine never
// depends directly on a concrete solver implementation.
package oracle

// Status is an oracle call's verdict, using the same 10/20 convention as
// the external interface (spec §6.1).
type Status int

const (
	// Sat means the solver found a satisfying assignment.
	Sat Status = 10
	// Unsat means the solver proved the problem unsatisfiable.
	Unsat Status = 20
)

// Oracle is the capability set spec §4.1 requires of the underlying CNF
// solver. All methods are synchronous; Assume and Constrain build state
// consumed by the very next Solve call only.
type Oracle interface {
	// Assume registers lits as assumptions for the next Solve call only.
	Assume(lits []int)
	// Constrain appends lit to a one-shot constraint clause under
	// construction; the next Solve call requires the disjunction of all
	// literals pushed since the last Solve to be true. Calling Constrain
	// with no literals before Solve leaves the clause set untouched.
	Constrain(lit int)
	// Solve runs the solver to a decisive verdict, consuming any pending
	// assumptions and constrain clause.
	Solve() Status
	// Value returns v's assignment in the model of the most recent Sat
	// result, as a signed literal with absolute value v.
	Value(v int) int
	// Fixed reports whether lit (+1), its negation (-1), or neither (0)
	// has been derived at the root.
	Fixed(lit int) int
	// HasFlip reports whether this oracle supports Flip. It is queried
	// once at startup; callers must not call Flip if it returns false.
	HasFlip() bool
	// Flip attempts to toggle lit's value in the last model without a new
	// solve. It returns whether the flip succeeded; HasFlip must be true.
	Flip(lit int) bool
	// Copy produces an independent oracle reflecting the current
	// permanent clause state, used to build the checker sidecar.
	Copy() (Oracle, error)
	// SetOption configures a backend-specific tunable; unknown names are
	// ignored (this is a best-effort configuration hook, not part of the
	// correctness contract).
	SetOption(name string, value int)
	// SetPrefix sets the prefix prepended to this oracle's own verbose
	// trace lines, if it has any.
	SetPrefix(prefix string)
}

// NbVars is implemented by oracles that can report the number of variables
// in the loaded problem, which the engine needs to size the candidate set.
type NbVars interface {
	NbVars() int
}
