// Package backbone implements the incremental backbone-extraction driver
// loop (spec §4.4), its shortcut probes (§4.3), the optional checker
// sidecar (§4.5), and the result emitter (§4.6), on top of an oracle.Oracle.
package backbone

import (
	"fmt"

	"github.com/crillab/cadiback/candidate"
	"github.com/crillab/cadiback/oracle"
	"github.com/sirupsen/logrus"
)

// Mode selects the driver's per-variable elimination strategy.
type Mode int

const (
	// ModeConstrain is Mode A, the default: batches remaining candidates
	// into a single disjunctive constrain clause where possible.
	ModeConstrain Mode = iota
	// ModeOneByOne is Mode B: assumes the negation of one candidate at a
	// time.
	ModeOneByOne
)

// Config selects which shortcuts and which driver mode are enabled.
type Config struct {
	Mode Mode

	Filter          bool
	UseFixed        bool
	UseFlip         bool
	UseInprocessing bool
	UseConstrain    bool
	SetPhase        bool

	Check                 bool
	PrintBackbones        bool
	AlwaysPrintStatistics bool
}

// PlainConfig returns the `--plain` preset (spec §6.4): every optimization
// disabled, falling back to an unconditional Mode B one-by-one sweep.
func PlainConfig() Config {
	return Config{
		Mode:           ModeOneByOne,
		PrintBackbones: true,
	}
}

// DefaultConfig returns the default configuration: Mode A with every
// shortcut enabled.
func DefaultConfig() Config {
	return Config{
		Mode:            ModeConstrain,
		Filter:          true,
		UseFixed:        true,
		UseFlip:         true,
		UseInprocessing: true,
		UseConstrain:    true,
		SetPhase:        true,
		PrintBackbones:  true,
	}
}

// Engine owns the candidate set and drives the refinement loop to
// completion over one oracle (and, optionally, one checker oracle).
type Engine struct {
	oc   oracle.Oracle
	cfg  Config
	cand *candidate.Set
	n    int

	hasFlip bool // oc.HasFlip(), captured once in New

	checker *checker

	emitter *Emitter
	log     *logrus.Entry

	last oracle.Status
}

// New builds an Engine over oc, an n-variable problem, and cfg. emitter
// may be nil to suppress b/s output entirely (tests); log may be nil.
func New(oc oracle.Oracle, n int, cfg Config, emitter *Emitter, log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{oc: oc, cfg: cfg, n: n, hasFlip: oc.HasFlip(), emitter: emitter, log: log}
}

func abs(l int) int {
	if l < 0 {
		return -l
	}
	return l
}

// Run executes the full algorithm: the first SAT call, candidate set
// initialization, the driver loop, and the terminator/verdict lines. It
// returns whether the formula was satisfiable.
func (e *Engine) Run() (sat bool, err error) {
	if !e.cfg.UseInprocessing {
		e.oc.SetOption("inprocessing", 0)
	}

	status := e.oc.Solve()
	e.last = status
	if status == oracle.Unsat {
		if e.emitter != nil {
			if err := e.emitter.Verdict(false); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	e.cand = candidate.New(e.n)
	e.cand.InitFromFirstModel(func(v int) bool { return e.oc.Value(v) > 0 })

	if e.cfg.Check {
		c, err := newChecker(e.oc)
		if err != nil {
			return false, err
		}
		e.checker = c
	}

	if err := e.loop(); err != nil {
		return false, err
	}

	if e.checker != nil {
		if err := e.checker.verifyCount(e.n); err != nil {
			return false, err
		}
	}

	if e.emitter != nil {
		if err := e.emitter.Terminator(); err != nil {
			return false, err
		}
		if err := e.emitter.Verdict(true); err != nil {
			return false, err
		}
	}
	return true, nil
}

// loop is the driver loop of spec §4.4, walking v=1..n.
func (e *Engine) loop() error {
	for v := 1; v <= e.n; v++ {
		if !e.cand.IsCandidate(v) {
			continue
		}
		for {
			decided, terminate, err := e.step(v)
			if err != nil {
				return err
			}
			if terminate {
				return nil
			}
			if decided {
				break
			}
			// retry the same v (spec §4.4 Mode A step 4, Design Notes
			// "retry on the same v after constrain-SAT")
		}
	}
	return nil
}

// step attempts to decide v once. It returns decided=true once v is no
// longer a candidate (promoted or dropped), or terminate=true if the
// entire loop must stop (Mode A's constrain-UNSAT case).
func (e *Engine) step(v int) (decided, terminate bool, err error) {
	if e.cfg.UseFixed {
		lit := e.cand.CandidateOf(v)
		if f := e.oc.Fixed(lit); f != 0 {
			e.cand.RecordFixedHit()
			if f == 1 {
				if err := e.classifyPromote(v); err != nil {
					return false, false, err
				}
			} else {
				if err := e.classifyDrop(v, false); err != nil {
					return false, false, err
				}
			}
			return true, false, nil
		}
	}

	if e.cfg.Mode == ModeConstrain && e.cfg.UseConstrain && e.last == oracle.Sat {
		lits, err := e.collectConstrainLits(v)
		if err != nil {
			return false, false, err
		}
		if len(lits) >= 2 {
			return e.constrainStep(v, lits)
		}
		// spec §4.4 step 5: fewer than two literals collected, fall
		// through to Mode B for this v.
	}

	return e.oneByOneStep(v)
}

// collectConstrainLits gathers the negations of v's own candidate literal
// and every remaining candidate w>v, running the root-fixed probe on each w
// during collection (resolving Open Question #3 by filtering during
// collection rather than collecting then dropping: see SPEC_FULL.md).
func (e *Engine) collectConstrainLits(v int) ([]int, error) {
	var lits []int
	for w := v; w <= e.n; w++ {
		if !e.cand.IsCandidate(w) {
			continue
		}
		if e.cfg.UseFixed && w != v {
			lit := e.cand.CandidateOf(w)
			if f := e.oc.Fixed(lit); f != 0 {
				e.cand.RecordFixedHit()
				if f == 1 {
					if err := e.classifyPromote(w); err != nil {
						return nil, err
					}
				} else {
					if err := e.classifyDrop(w, false); err != nil {
						return nil, err
					}
				}
				continue
			}
		}
		lits = append(lits, -e.cand.CandidateOf(w))
	}
	return lits, nil
}

func (e *Engine) constrainStep(v int, lits []int) (decided, terminate bool, err error) {
	e.setPhaseHint(lits)
	for _, l := range lits {
		e.oc.Constrain(l)
	}
	status := e.oc.Solve()
	e.last = status
	if status == oracle.Unsat {
		for w := v; w <= e.n; w++ {
			if e.cand.IsCandidate(w) {
				if err := e.classifyPromote(w); err != nil {
					return false, false, err
				}
			}
		}
		return true, true, nil
	}

	witness := -1
	for w := v; w <= e.n; w++ {
		if e.cand.IsCandidate(w) {
			lit := e.cand.CandidateOf(w)
			if e.oc.Value(abs(lit)) != lit {
				witness = w
				break
			}
		}
	}
	if witness != -1 {
		if err := e.classifyDrop(witness, false); err != nil {
			return false, false, err
		}
		if err := e.filterProbe(witness+1, e.n); err != nil {
			return false, false, err
		}
		if err := e.flipProbe(v, e.n); err != nil {
			return false, false, err
		}
	}
	return !e.cand.IsCandidate(v), false, nil
}

func (e *Engine) oneByOneStep(v int) (decided, terminate bool, err error) {
	lit := e.cand.CandidateOf(v)
	e.setPhaseHint([]int{-lit})
	e.oc.Assume([]int{-lit})
	status := e.oc.Solve()
	e.last = status
	if status == oracle.Unsat {
		if err := e.classifyPromote(v); err != nil {
			return false, false, err
		}
		return true, false, nil
	}
	if err := e.classifyDrop(v, false); err != nil {
		return false, false, err
	}
	if err := e.filterProbe(v+1, e.n); err != nil {
		return false, false, err
	}
	if err := e.flipProbe(v+1, e.n); err != nil {
		return false, false, err
	}
	return true, false, nil
}

// setPhaseHint applies the optional solver phase hint unconditionally
// (Open Question #2: applied in both Mode A and Mode B), best-effort via
// SetOption since phase-setting is not part of the narrow Oracle
// capability set.
func (e *Engine) setPhaseHint(lits []int) {
	if !e.cfg.SetPhase || len(lits) == 0 {
		return
	}
	e.oc.SetOption(fmt.Sprintf("phase%d", abs(lits[0])), lits[0])
}

// filterProbe drops every remaining candidate in [from,to] whose
// conjectured literal disagrees with the current model (spec §4.3's
// model-based filter). These are "additional" drops, counted under
// filtered, distinct from the witness drop that triggered the probe.
func (e *Engine) filterProbe(from, to int) error {
	if !e.cfg.Filter {
		return nil
	}
	for w := from; w <= to; w++ {
		if e.cand.IsCandidate(w) {
			lit := e.cand.CandidateOf(w)
			if e.oc.Value(abs(lit)) != lit {
				if err := e.classifyDrop(w, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// flipProbe attempts flip(candidate[w]) for every remaining candidate in
// [from,to], in rounds, until a full round yields no successful flip
// (spec §4.3's flip probe). It is a no-op if flip is disabled or
// unsupported by the oracle.
func (e *Engine) flipProbe(from, to int) error {
	if !e.cfg.UseFlip || !e.hasFlip {
		return nil
	}
	changed := true
	for changed {
		changed = false
		for w := from; w <= to; w++ {
			if e.cand.IsCandidate(w) {
				lit := e.cand.CandidateOf(w)
				if e.oc.Flip(lit) {
					if err := e.classifyDropFlip(w); err != nil {
						return err
					}
					changed = true
				}
			}
		}
	}
	return nil
}

func (e *Engine) classifyPromote(v int) error {
	lit := e.cand.CandidateOf(v)
	if e.checker != nil {
		if err := e.checker.verifyPromote(lit); err != nil {
			return err
		}
		e.cand.RecordChecked()
	}
	e.cand.Promote(v)
	e.log.Debugf("found backbone literal %d", lit)
	if e.emitter != nil {
		return e.emitter.Backbone(lit)
	}
	return nil
}

func (e *Engine) classifyDrop(v int, fromFilter bool) error {
	lit := e.cand.CandidateOf(v)
	if e.checker != nil {
		if err := e.checker.verifyDrop(lit); err != nil {
			return err
		}
		e.cand.RecordChecked()
	}
	e.cand.Drop(v, fromFilter)
	e.log.Debugf("dropped candidate %d (filter=%v)", lit, fromFilter)
	return nil
}

func (e *Engine) classifyDropFlip(v int) error {
	lit := e.cand.CandidateOf(v)
	if e.checker != nil {
		if err := e.checker.verifyDrop(lit); err != nil {
			return err
		}
		e.cand.RecordChecked()
	}
	e.cand.Drop(v, false)
	e.cand.RecordFlip()
	return nil
}

// Candidates returns the underlying candidate set, for statistics
// reporting after Run completes.
func (e *Engine) Candidates() *candidate.Set {
	return e.cand
}
