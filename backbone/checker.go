package backbone

import (
	"github.com/crillab/cadiback/oracle"
	"github.com/pkg/errors"
)

// checker independently verifies each classification the driver makes,
// against a clause-level copy of the main oracle built immediately after
// the first SAT call (spec §4.5). It is isolated: it never receives
// constrain clauses and its call count is verified to equal n exactly at
// loop exit.
type checker struct {
	oc      oracle.Oracle
	invoked int
}

func newChecker(main oracle.Oracle) (*checker, error) {
	cp, err := main.Copy()
	if err != nil {
		return nil, errors.Wrap(err, "building checker sidecar")
	}
	return &checker{oc: cp}, nil
}

// verifyDrop asserts that ℓ's negation is satisfiable, i.e. v is truly not
// a backbone variable. Any other outcome is a fatal invariant violation.
func (c *checker) verifyDrop(lit int) error {
	c.invoked++
	c.oc.Assume([]int{-lit})
	if status := c.oc.Solve(); status != oracle.Sat {
		return errors.Errorf("checker invariant violated: expected SAT when negating dropped literal %d, got %v", lit, status)
	}
	return nil
}

// verifyPromote asserts that ℓ's negation is unsatisfiable, i.e. v is
// truly a backbone variable. Any other outcome is a fatal invariant
// violation.
func (c *checker) verifyPromote(lit int) error {
	c.invoked++
	c.oc.Assume([]int{-lit})
	if status := c.oc.Solve(); status != oracle.Unsat {
		return errors.Errorf("checker invariant violated: expected UNSAT when negating promoted literal %d, got %v", lit, status)
	}
	return nil
}

// verifyCount asserts the checker was invoked exactly n times, per
// spec §4.5's "the number of checker invocations must equal n exactly;
// mismatch is fatal".
func (c *checker) verifyCount(n int) error {
	if c.invoked != n {
		return errors.Errorf("checker invariant violated: expected %d invocations, got %d", n, c.invoked)
	}
	return nil
}
