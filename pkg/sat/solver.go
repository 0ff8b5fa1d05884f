package sat

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

const DefaultSolver = "gini"

var solvers = map[string]func(Config) SATSolver{
	"gini":          func(Config) SATSolver { return NewGiniSolver() },
	"gophersat":     func(Config) SATSolver { return NewGophersatSolver() },
	"kissat":        func(config Config) SATSolver { return NewKissatSolver(config.Path("kissat"), config.Timeout) },
	"cadical":       func(config Config) SATSolver { return NewCadicalSolver(config.Path("cadical"), config.Timeout) },
	"cryptominisat": func(config Config) SATSolver { return NewCryptominisatSolver(config.Path("cryptominisat"), config.Timeout) },
	"minisat":       func(config Config) SATSolver { return NewMinisatSolver(config.Path("minisat"), config.Timeout) },
	"glucosesimp":   func(config Config) SATSolver { return NewGlucoseSimpSolver(config.Path("glucosesimp"), config.Timeout) },
	"slime":         func(config Config) SATSolver { return NewSlimeSolver(config.Path("slime"), config.Timeout) },
	"ortoolsat":     func(config Config) SATSolver { return NewOrtoolsatSolver(config.Path("ortoolsat"), config.Timeout) },
}

// SolverNames returns the names accepted by NewSolver in alphabetical order
func SolverNames() []string {
	names := lo.Keys(solvers)
	slices.Sort(names)
	return names
}

// InProcess reports whether the named solver runs inside the current process (no executable needed)
func InProcess(name string) bool {
	return name == "gini" || name == "gophersat"
}

func NewSolver(name string, config Config) (SATSolver, error) {
	constructor, ok := solvers[name]
	if !ok {
		return nil, errors.Errorf("%v is not a valid solver, allowed values are: %v", name, SolverNames())
	}
	return constructor(config), nil
}
