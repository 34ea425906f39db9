/*
Package solver gives access to a simple incremental CNF SAT solver.
Its input can be either a DIMACS CNF file or a slice of clauses.

Describing a problem

A problem can be described in several ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following content:

    p cnf 6 7
    1 2 3 0
    4 5 6 0
    -1 -4 0
    -2 -5 0
    -3 -6 0
    -1 -3 0
    -4 -6 0

the programmer can create the Problem by doing:

    pb, err := solver.ParseCNF(f)

2. create the equivalent list of list of literals. The problem above can be created programmatically this way:

    clauses := [][]int{
        {1, 2, 3},
        {4, 5, 6},
        {-1, -4},
        {-2, -5},
        {-3, -6},
        {-1, -3},
        {-4, -6},
    }
    pb := solver.ParseSlice(clauses)

Solving a problem

To solve a problem, one creates a solver with said problem, then solves it:

    s := solver.New(pb)
    status := s.Solve()

Solve() can be called repeatedly on the same Solver: assumptions pushed
through Assume and a one-shot clause pushed through Constrain are both
consumed by the next Solve() call only, which makes the solver suitable for
incremental use such as backbone extraction, where the same clause set is
queried under many different temporary assumptions.
*/
package solver
