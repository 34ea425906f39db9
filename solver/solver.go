package solver

import "fmt"

// decLevel is the truth value bound to a variable: 0 means unbound, 1 means
// bound to true, -1 means bound to false. The same encoding is used both for
// a Problem's root-level Model and for a Solver's working assignment.
type decLevel int8

// Model is a convenience alias used when printing a full assignment.
type Model []decLevel

func (m Model) String() string {
	res := ""
	for i, val := range m {
		if i != 0 {
			res += " "
		}
		if val >= 0 {
			res += fmt.Sprintf("%d", i+1)
		} else {
			res += fmt.Sprintf("%d", -(i + 1))
		}
	}
	return res
}

// Stats gathers counters about a Solver's activity across its lifetime.
type Stats struct {
	NbCalls  int // total nb of Solve() invocations
	NbSat    int // nb of Solve() calls that returned Sat
	NbUnsat  int // nb of Solve() calls that returned Unsat
	NbConfls int // total nb of conflicts encountered during search
}

// Solver is a simple incremental-by-restart CNF SAT solver: each Solve()
// call runs a complete DPLL search from scratch over the permanent clause
// set plus whatever assumptions and one-shot constrain clause were supplied
// for that call. It does not retain learned clauses or a trail across
// calls; what it does retain is the permanent clause set and the unit
// literals derived once at parse time.
type Solver struct {
	NbVars  int
	clauses []*Clause

	units []Lit // literals fixed at the root (copied from Problem.Units)

	assumptions []Lit // pending, consumed by the next Solve()
	constrain   []Lit // pending one-shot constrain clause, consumed by the next Solve()

	status    Status // status of the most recent Solve() call
	model     []decLevel
	lastModel []decLevel // snapshot of model after the most recent Sat result

	// Verbose and Prefix are stored for the oracle adapter's set_option and
	// set_prefix; the search itself prints no trace lines.
	Verbose bool
	Prefix  string

	Stats Stats
}

// New returns a Solver ready to solve pb. pb is not mutated; New's clauses
// are the same *Clause pointers as pb's, since a Clause is never mutated
// once built.
func New(pb *Problem) *Solver {
	s := &Solver{
		NbVars:  pb.NbVars,
		clauses: pb.Clauses,
		units:   append([]Lit(nil), pb.Units...),
		model:   make([]decLevel, pb.NbVars),
	}
	if pb.Status == Unsat {
		s.status = Unsat
	}
	return s
}

// Assume registers lits as assumptions for the next Solve() call only.
// Calling Assume again before Solve() replaces the previous assumptions.
func (s *Solver) Assume(lits []Lit) {
	s.assumptions = append(s.assumptions[:0], lits...)
}

// Constrain appends lit to the one-shot constrain clause under
// construction. The clause is implicitly terminated and consumed by the
// next Solve() call.
func (s *Solver) Constrain(lit Lit) {
	s.constrain = append(s.constrain, lit)
}

// ClearConstrain discards any pending constrain literals without solving.
func (s *Solver) ClearConstrain() {
	s.constrain = s.constrain[:0]
}

// litStatus reports the status of lit against a partial assignment.
func litStatus(model []decLevel, lit Lit) Status {
	v := model[lit.Var()]
	if v == 0 {
		return Indet
	}
	if (v == 1) == lit.IsPositive() {
		return Sat
	}
	return Unsat
}

// Solve runs a full DPLL search over the permanent clauses, the pending
// assumptions and the pending constrain clause (if any), all of which are
// consumed by this call regardless of the outcome. It returns Sat or Unsat;
// Indet is never returned.
func (s *Solver) Solve() Status {
	s.Stats.NbCalls++
	assumps := s.assumptions
	s.assumptions = nil
	extra := s.constrain
	s.constrain = nil

	work := make([]decLevel, s.NbVars)
	copy(work, s.model)

	conflict := false
	assign := func(lit Lit) bool {
		v := lit.Var()
		want := decLevel(1)
		if !lit.IsPositive() {
			want = -1
		}
		if work[v] != 0 {
			return work[v] == want
		}
		work[v] = want
		return true
	}

	for _, lit := range s.units {
		if !assign(lit) {
			conflict = true
			break
		}
	}
	for _, lit := range assumps {
		if !conflict && !assign(lit) {
			conflict = true
		}
	}

	clauses := s.clauses
	if len(extra) > 0 {
		clauses = append(append([]*Clause(nil), s.clauses...), NewClause(append([]Lit(nil), extra...)))
	}

	if conflict {
		s.Stats.NbUnsat++
		s.status = Unsat
		return Unsat
	}

	if s.search(clauses, work) {
		s.Stats.NbSat++
		s.status = Sat
		s.lastModel = append([]decLevel(nil), work...)
	} else {
		s.Stats.NbUnsat++
		s.status = Unsat
	}
	return s.status
}

// propagate runs unit propagation to a fixpoint. It reports false on
// conflict.
func (s *Solver) propagate(clauses []*Clause, model []decLevel) bool {
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			nbLits := c.Len()
			unassigned := -1
			sat := false
			for i := 0; i < nbLits; i++ {
				lit := c.Get(i)
				switch litStatus(model, lit) {
				case Sat:
					sat = true
				case Indet:
					if unassigned == -1 {
						unassigned = i
					} else {
						unassigned = -2
					}
				}
			}
			if sat {
				continue
			}
			if unassigned == -1 {
				s.Stats.NbConfls++
				return false
			}
			if unassigned >= 0 {
				lit := c.Get(unassigned)
				v := lit.Var()
				want := decLevel(1)
				if !lit.IsPositive() {
					want = -1
				}
				model[v] = want
				changed = true
			}
		}
	}
	return true
}

// search performs a DPLL search starting from model, which already holds
// whatever units and assumptions were forced for this call.
func (s *Solver) search(clauses []*Clause, model []decLevel) bool {
	if !s.propagate(clauses, model) {
		return false
	}
	branch := -1
	for v := 0; v < s.NbVars; v++ {
		if model[v] == 0 {
			branch = v
			break
		}
	}
	if branch == -1 {
		return true // every variable bound, every clause satisfied or vacuous
	}
	saved := append([]decLevel(nil), model...)
	model[branch] = 1
	if s.search(clauses, model) {
		return true
	}
	copy(model, saved)
	model[branch] = -1
	if s.search(clauses, model) {
		return true
	}
	copy(model, saved)
	return false
}

// Value returns the assignment of v in the model of the most recent Sat
// result. It panics if the solver is not currently in a Sat state.
func (s *Solver) Value(v Var) bool {
	if s.status != Sat {
		panic("solver: Value called outside of a Sat state")
	}
	return s.lastModel[v] == 1
}

// Fixed reports whether lit (+1), its negation (-1) or neither (0) was
// derived at the root, i.e. before any search took place.
func (s *Solver) Fixed(lit Lit) int {
	v := lit.Var()
	for _, u := range s.units {
		if u.Var() == v {
			if u.IsPositive() == lit.IsPositive() {
				return 1
			}
			return -1
		}
	}
	return 0
}

// AppendClause permanently adds c to the solver's clause set. Unlike
// Constrain, c affects every subsequent Solve() call, not just the next
// one.
func (s *Solver) AppendClause(c *Clause) {
	s.clauses = append(s.clauses, c)
}

// Status returns the status of the most recent Solve() call.
func (s *Solver) Status() Status {
	return s.status
}
