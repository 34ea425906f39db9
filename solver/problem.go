package solver

import "fmt"

// A Problem is a list of clauses & a nb of vars.
type Problem struct {
	NbVars  int        // Total nb of vars
	Clauses []*Clause  // List of non-empty, non-unit clauses
	Status  Status     // Status of the problem. Can be trivially UNSAT (if empty clause was met or inferred by UP), trivially SAT (if no clause remains after simplification), or Indet.
	Units   []Lit      // List of unit literals found while parsing, i.e. literals fixed at the root.
	Model   []decLevel // For each var, its inferred binding. 0 means unbound, 1 means bound to true, -1 means bound to false.
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses))
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}

func (pb *Problem) updateStatus(nbClauses int) {
	pb.Clauses = pb.Clauses[:nbClauses]
	if pb.Status == Indet && nbClauses == 0 {
		pb.Status = Sat
	}
}

// simplify runs root-level unit propagation over the clause set, shrinking
// or removing clauses that become satisfied or unit as a result. Any literal
// forced this way is recorded in Units, which the oracle adapter later
// exposes through fixed().
func (pb *Problem) simplify() {
	nbClauses := len(pb.Clauses)
	i := 0
	for i < nbClauses {
		c := pb.Clauses[i]
		nbLits := c.Len()
		clauseSat := false
		j := 0
		for j < nbLits {
			lit := c.Get(j)
			if pb.Model[lit.Var()] == 0 {
				j++
			} else if (pb.Model[lit.Var()] == 1) == lit.IsPositive() {
				clauseSat = true
				break
			} else {
				nbLits--
				c.Set(j, c.Get(nbLits))
			}
		}
		if clauseSat {
			nbClauses--
			pb.Clauses[i] = pb.Clauses[nbClauses]
		} else if nbLits == 0 {
			pb.Status = Unsat
			return
		} else if nbLits == 1 { // unit propagation
			pb.addUnit(c.Get(0))
			if pb.Status == Unsat {
				return
			}
			nbClauses--
			pb.Clauses[i] = pb.Clauses[nbClauses]
			i = 0 // restart: this unit might satisfy or shrink earlier clauses too
		} else {
			if c.Len() != nbLits {
				c.Shrink(nbLits)
			}
			i++
		}
	}
	pb.updateStatus(nbClauses)
}

func (pb *Problem) addUnit(lit Lit) {
	if lit.IsPositive() {
		if pb.Model[lit.Var()] == -1 {
			pb.Status = Unsat
			return
		}
		pb.Model[lit.Var()] = 1
	} else {
		if pb.Model[lit.Var()] == 1 {
			pb.Status = Unsat
			return
		}
		pb.Model[lit.Var()] = -1
	}
	pb.Units = append(pb.Units, lit)
}

// Clone returns an independent copy of pb, sharing no mutable state with the
// original. Used by the oracle adapter's copy() capability to build the
// checker sidecar's solver from the same starting clause set.
func (pb *Problem) Clone() *Problem {
	clauses := make([]*Clause, len(pb.Clauses))
	for i, c := range pb.Clauses {
		lits := make([]Lit, c.Len())
		copy(lits, c.Lits())
		clauses[i] = NewClause(lits)
	}
	units := make([]Lit, len(pb.Units))
	copy(units, pb.Units)
	model := make([]decLevel, len(pb.Model))
	copy(model, pb.Model)
	return &Problem{
		NbVars:  pb.NbVars,
		Clauses: clauses,
		Status:  pb.Status,
		Units:   units,
		Model:   model,
	}
}
