package sat

import (
	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// gophersatSolver solves instances in-process with crillab's gophersat CDCL solver
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (*gophersatSolver) Solve(sat SAT) (SATSolution, error) {
	clauses := lo.Map(sat.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})

	problem := solver.ParseSlice(clauses)
	if problem.Status == solver.Unsat { // Contradicting unit clauses are detected while parsing
		return nil, nil
	}

	s := solver.New(problem)
	switch s.Solve() {
	case solver.Unsat:
		return nil, nil
	case solver.Sat:
	default:
		return nil, errors.New("gophersat could not determine satisfiability")
	}

	model := s.Model()
	solution := make(SATSolution, 0, sat.Variables)
	for variable := uint64(1); variable <= sat.Variables; variable++ {
		literal := -int64(variable)
		if variable <= uint64(len(model)) && model[variable-1] {
			literal = int64(variable)
		}
		solution = append(solution, literal)
	}
	return solution, nil
}
