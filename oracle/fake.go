package oracle

// Fake is a brute-force, in-memory Oracle test double. It exists to
// exercise code paths the default solver-backed oracle cannot, chiefly the
// flip probe, which SolverOracle permanently disables. It is exhaustive
// and only suitable for the small instances unit tests use.
type Fake struct {
	nbVars  int
	clauses [][]int // each inner slice is a disjunction of nonzero signed literals

	assumptions []int
	constrain   []int

	model    []bool // last model found, indexed by v-1
	hasModel bool

	flipSupported bool

	// Calls counts Solve invocations, for tests that assert on the number
	// of oracle calls a given configuration should need.
	Calls int
}

// NewFake builds a Fake oracle over nbVars variables and the given clauses.
// flipSupported controls whether HasFlip reports true.
func NewFake(nbVars int, clauses [][]int, flipSupported bool) *Fake {
	return &Fake{nbVars: nbVars, clauses: clauses, flipSupported: flipSupported}
}

func (f *Fake) Assume(lits []int) {
	f.assumptions = append(f.assumptions[:0], lits...)
}

func (f *Fake) Constrain(lit int) {
	if lit == 0 {
		return
	}
	f.constrain = append(f.constrain, lit)
}

func (f *Fake) satisfiedBy(model []bool, extra []int) bool {
	for _, c := range f.clauses {
		if !clauseSat(c, model) {
			return false
		}
	}
	if len(extra) > 0 && !clauseSat(extra, model) {
		return false
	}
	return true
}

func clauseSat(c []int, model []bool) bool {
	for _, lit := range c {
		v := lit
		if v < 0 {
			v = -v
		}
		val := model[v-1]
		if (lit > 0) == val {
			return true
		}
	}
	return false
}

func consistent(model []bool, lits []int) bool {
	for _, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		val := model[v-1]
		if (lit > 0) != val {
			return false
		}
	}
	return true
}

// Solve implements Oracle via exhaustive search over all 2^nbVars
// assignments consistent with the pending assumptions.
func (f *Fake) Solve() Status {
	f.Calls++
	assumps := f.assumptions
	f.assumptions = nil
	extra := f.constrain
	f.constrain = nil

	model := make([]bool, f.nbVars)
	for mask := 0; mask < (1 << uint(f.nbVars)); mask++ {
		for v := 0; v < f.nbVars; v++ {
			model[v] = mask&(1<<uint(v)) != 0
		}
		if !consistent(model, assumps) {
			continue
		}
		if f.satisfiedBy(model, extra) {
			f.model = append([]bool(nil), model...)
			f.hasModel = true
			return Sat
		}
	}
	f.hasModel = false
	return Unsat
}

func (f *Fake) Value(v int) int {
	if !f.hasModel {
		panic("fake oracle: Value called without a model")
	}
	if f.model[v-1] {
		return v
	}
	return -v
}

// Fixed reports whether lit is forced by any unit clause in the original
// clause set, ignoring assumptions (matching the root-level semantics
// spec §4.1 defines for fixed()).
func (f *Fake) Fixed(lit int) int {
	v := lit
	if v < 0 {
		v = -v
	}
	for _, c := range f.clauses {
		if len(c) == 1 {
			if c[0] == v {
				if lit > 0 {
					return 1
				}
				return -1
			}
			if c[0] == -v {
				if lit > 0 {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

func (f *Fake) HasFlip() bool { return f.flipSupported }

// Flip attempts to toggle lit's value in the last model, succeeding only
// if every clause remains satisfied afterward.
func (f *Fake) Flip(lit int) bool {
	if !f.flipSupported || !f.hasModel {
		return false
	}
	v := lit
	if v < 0 {
		v = -v
	}
	saved := f.model[v-1]
	f.model[v-1] = !f.model[v-1]
	if f.satisfiedBy(f.model, nil) {
		return true
	}
	f.model[v-1] = saved
	return false
}

func (f *Fake) Copy() (Oracle, error) {
	clauses := make([][]int, len(f.clauses))
	for i, c := range f.clauses {
		clauses[i] = append([]int(nil), c...)
	}
	return NewFake(f.nbVars, clauses, f.flipSupported), nil
}

func (f *Fake) SetOption(string, int) {}
func (f *Fake) SetPrefix(string)      {}

// NbVars implements the NbVars interface.
func (f *Fake) NbVars() int { return f.nbVars }
