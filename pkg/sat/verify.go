package sat

import (
	"github.com/pkg/errors"
)

// CheckSolution verifies that the solution assigns every variable of the instance exactly once
// and that it satisfies every clause
func CheckSolution(satInstance SAT, satSolution SATSolution) error {
	if uint64(len(satSolution)) != satInstance.Variables {
		return errors.Errorf("solution assigns %d literals, but the instance has %d variables", len(satSolution), satInstance.Variables)
	}

	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool, len(satSolution))
	for _, literal := range satSolution {
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if literal == 0 || uint64(variable) > satInstance.Variables {
			return errors.Errorf("literal %d is out of range", literal)
		} else if literals[literal] || literals[-literal] {
			return errors.Errorf("variable %d is assigned more than once", variable)
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for i, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return errors.Errorf("clause %d %v is not satisfied", i, clause)
		}
	}

	return nil
}
