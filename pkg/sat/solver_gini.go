package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1
)

// giniSolver solves instances in-process with a fresh gini solver per call
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case giniUnsatisfiable:
		return nil, nil
	case giniSatisfiable:
	default:
		return nil, errors.New("gini could not determine satisfiability")
	}

	// Variables that never appear in a clause are unknown to gini, so they are reported as false
	maxVar := uint64(g.MaxVar())
	solution := make(SATSolution, 0, sat.Variables)
	for variable := uint64(1); variable <= sat.Variables; variable++ {
		literal := -int64(variable)
		if variable <= maxVar && g.Value(z.Var(variable).Pos()) {
			literal = int64(variable)
		}
		solution = append(solution, literal)
	}
	return solution, nil
}
