package sat

import (
	"fmt"
	"strings"
)

// SATSolution holds one signed literal per variable of the solved instance (positive means true).
// A nil SATSolution stands for an unsatisfiable instance.
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// AddClause appends a clause to the instance. Literals must reference variables within 1..Variables.
func (s *SAT) AddClause(literals ...int64) {
	clause := make([]int64, len(literals))
	copy(clause, literals)
	s.Clauses = append(s.Clauses, clause)
}

// Clone returns a copy whose clause list can be extended without affecting the original
func (s SAT) Clone() SAT {
	clauses := make([][]int64, len(s.Clauses))
	copy(clauses, s.Clauses) // Clauses themselves are never mutated, only appended
	return SAT{
		Variables: s.Variables,
		Clauses:   clauses,
	}
}

// Value reports whether variable is assigned true in the solution
func (solution SATSolution) Value(variable int64) bool {
	for _, literal := range solution {
		if literal == variable {
			return true
		} else if literal == -variable {
			return false
		}
	}
	return false
}

// Positives returns the variables assigned true
func (solution SATSolution) Positives() []int64 {
	positives := make([]int64, 0, len(solution)/2)
	for _, literal := range solution {
		if literal > 0 {
			positives = append(positives, literal)
		}
	}
	return positives
}
