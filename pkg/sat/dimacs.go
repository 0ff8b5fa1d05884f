package sat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS reads a DIMACS-CNF instance. Comment lines may appear anywhere; clauses may span
// several lines since only the 0 sentinel terminates them. When the problem line is present its
// counts are enforced.
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var (
		sat             SAT
		declaredClauses = -1
		clause          []int64
	)
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p") {
			if declaredClauses >= 0 {
				return SAT{}, errors.New("multiple problem lines")
			} else if len(sat.Clauses) > 0 || len(clause) > 0 {
				return SAT{}, errors.New("problem line appears after clauses")
			}
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, errors.Errorf("invalid problem line: %s", line)
			}
			variables, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, errors.Wrap(err, "invalid variable count")
			}
			clauses, err := strconv.Atoi(parts[3])
			if err != nil || clauses < 0 {
				return SAT{}, errors.Errorf("invalid clause count: %s", parts[3])
			}
			sat.Variables = variables
			declaredClauses = clauses
			continue
		}
		// Clause line
		for _, literalStr := range strings.Fields(line) {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, errors.Wrapf(err, "invalid literal '%s'", literalStr)
			}
			if literal == 0 {
				sat.Clauses = append(sat.Clauses, clause)
				clause = nil
				continue
			}
			clause = append(clause, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return SAT{}, errors.Wrap(err, "error reading DIMACS input")
	}
	// Tolerate a missing sentinel on the last clause
	if len(clause) > 0 {
		sat.Clauses = append(sat.Clauses, clause)
	}

	if declaredClauses < 0 {
		sat.Variables = maxVariable(sat.Clauses)
		return sat, nil
	}
	if len(sat.Clauses) != declaredClauses {
		return SAT{}, errors.Errorf("problem line specifies %d clauses, but there are %d", declaredClauses, len(sat.Clauses))
	}
	if highest := maxVariable(sat.Clauses); highest > sat.Variables {
		return SAT{}, errors.Errorf("formula contains variable %d, but problem line asserts %d variables", highest, sat.Variables)
	}
	return sat, nil
}

func maxVariable(clauses [][]int64) uint64 {
	var highest uint64
	for _, clause := range clauses {
		for _, literal := range clause {
			if literal < 0 {
				literal = -literal
			}
			if uint64(literal) > highest {
				highest = uint64(literal)
			}
		}
	}
	return highest
}
