package model

import (
	"fmt"
	"io"

	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	OutcomeEmpty Outcome = iota // The first solver call was unsatisfiable: no feasible slot
	OutcomeFound
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeEmpty:
		return "empty"
	case OutcomeFound:
		return "found"
	}
	return fmt.Sprintf("Outcome(%d)", int(outcome))
}

// Enumeration holds every solution found, in the order the solver returned them
type Enumeration struct {
	Solutions []sat.SATSolution
	Choices   []Candidate // Choices[i] is the candidate selected by Solutions[i]
	Calls     int         // Solver invocations, including the final unsatisfiable one
	Clauses   int         // Clauses of the working formula when the enumeration stopped
}

func (enumeration Enumeration) Outcome() Outcome {
	if len(enumeration.Solutions) == 0 {
		return OutcomeEmpty
	}
	return OutcomeFound
}

// Enumerate queries the solver until the formula becomes unsatisfiable, blocking the chosen
// candidate after every solution. The encoding's formula is left untouched.
func Enumerate(solver sat.SATSolver, encoding Encoding, logger logrus.FieldLogger) (Enumeration, error) {
	if logger == nil {
		logger = discardLogger()
	}
	working := encoding.SAT.Clone()
	enumeration := Enumeration{}
	maxCalls := len(encoding.Candidates) + 1

	for {
		if enumeration.Calls == maxCalls {
			return Enumeration{}, &OracleContractViolation{
				Call:   enumeration.Calls,
				Reason: fmt.Sprintf("formula still satisfiable after %d candidates were blocked", len(encoding.Candidates)),
			}
		}
		enumeration.Calls++

		solution, err := solver.Solve(working)
		if err != nil {
			return Enumeration{}, errors.Wrapf(err, "solver failed on call %d", enumeration.Calls)
		} else if solution == nil {
			break
		}

		if err := sat.CheckSolution(working, solution); err != nil {
			return Enumeration{}, &OracleContractViolation{Call: enumeration.Calls, Reason: err.Error()}
		}
		chosen := encoding.ChosenCandidates(solution)
		if len(chosen) != 1 {
			return Enumeration{}, &OracleContractViolation{
				Call:   enumeration.Calls,
				Reason: fmt.Sprintf("expected exactly one chosen candidate, got %d", len(chosen)),
			}
		}

		candidate, _ := encoding.CandidateOf(chosen[0])
		logger.WithFields(logrus.Fields{
			"call":     enumeration.Calls,
			"variable": chosen[0],
			"day":      candidate.Day,
			"start":    candidate.Start,
		}).Debug("candidate found")

		enumeration.Solutions = append(enumeration.Solutions, solution)
		enumeration.Choices = append(enumeration.Choices, candidate)

		// Block the chosen candidate so it is never returned again
		working.AddClause(-chosen[0])
	}

	enumeration.Clauses = len(working.Clauses)
	logger.WithFields(logrus.Fields{
		"solutions": len(enumeration.Solutions),
		"calls":     enumeration.Calls,
	}).Debug("enumeration finished")
	return enumeration, nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
