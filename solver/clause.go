package solver

import "fmt"

// A Clause is a disjunction of literals.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Set sets the ith literal of the clause.
func (c *Clause) Set(i int, l Lit) {
	c.lits[i] = l
}

// Lits returns the clause's literals. The returned slice must not be mutated.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// Shrink truncates the clause to its first n literals, used by simplify()
// after swap-removing satisfied/falsified literals to the tail.
func (c *Clause) Shrink(n int) {
	c.lits = c.lits[:n]
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}

// OutputClause displays a clause on stdout.
func OutputClause(c *Clause) {
	fmt.Printf("[")
	for i, l := range c.lits {
		if i < c.Len()-1 {
			fmt.Printf("%d, ", l.Int())
		} else {
			fmt.Printf("%d", l.Int())
		}
	}
	fmt.Printf("]\n")
}
