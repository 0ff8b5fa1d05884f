package sat

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGini(t *testing.T) {
	solver := NewGiniSolver()
	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, solver)
	})
	t.Run("Fixed instances", func(t *testing.T) {
		fixedExecution(t, solver)
	})
}

func TestGophersat(t *testing.T) {
	solver := NewGophersatSolver()
	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, solver)
	})
	t.Run("Fixed instances", func(t *testing.T) {
		fixedExecution(t, solver)
	})
}

func TestExternalSolvers(t *testing.T) {
	config := DefaultConfig()
	for _, name := range SolverNames() {
		if InProcess(name) {
			continue
		}
		t.Run(name, func(t *testing.T) {
			if _, err := exec.LookPath(config.Path(name)); err != nil {
				t.Skipf("%v is not installed", name)
			}
			solver, err := NewSolver(name, config)
			require.NoError(t, err)

			randomExecution(t, solver)
			fixedExecution(t, solver)
		})
	}
}

func TestInProcessSolversAgree(t *testing.T) {
	gini, gophersat := NewGiniSolver(), NewGophersatSolver()

	for range 20 {
		//** Arrange
		instance := GenerateSATInstance(15, 60)

		//** Act
		giniSolution, err := gini.Solve(instance)
		require.NoError(t, err)
		gophersatSolution, err := gophersat.Solve(instance)
		require.NoError(t, err)

		//** Assert
		assert.Equal(t, giniSolution == nil, gophersatSolution == nil, "solvers disagree on satisfiability")
	}
}

func TestNewSolver(t *testing.T) {
	t.Run("Unknown solver", func(t *testing.T) {
		_, err := NewSolver("sat4j", DefaultConfig())
		assert.ErrorContains(t, err, "not a valid solver")
	})

	t.Run("Known solvers", func(t *testing.T) {
		for _, name := range SolverNames() {
			solver, err := NewSolver(name, DefaultConfig())
			assert.NoError(t, err)
			assert.NotNil(t, solver)
		}
	})
}

func TestMissingExecutable(t *testing.T) {
	solver := NewKissatSolver("/nonexistent/kissat", 0)

	solution, err := solver.Solve(SAT{Variables: 1, Clauses: [][]int64{{1}}})

	assert.Error(t, err)
	assert.Nil(t, solution)
}

func randomExecution(t *testing.T, solver SATSolver) {
	unsatisfiableCount := 0

	for range 10 {
		//** Arrange
		instance := GenerateSATInstance(40, 120)

		//** Act
		solution, err := solver.Solve(instance)

		//** Assert
		require.NoError(t, err)
		if solution == nil {
			unsatisfiableCount++
			continue
		}
		assert.NoError(t, CheckSolution(instance, solution))
	}

	t.Logf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func fixedExecution(t *testing.T, solver SATSolver) {
	t.Run("Satisfiable", func(t *testing.T) {
		// (¬x1 ∨ ¬x2) ∧ (¬x2 ∨ x3) ∧ (x1 ∨ ¬x3 ∨ x2) ∧ x2
		instance := SAT{
			Variables: 3,
			Clauses:   [][]int64{{-1, -2}, {-2, 3}, {1, -3, 2}, {2}},
		}

		solution, err := solver.Solve(instance)

		require.NoError(t, err)
		assert.Equal(t, SATSolution{-1, 2, 3}, solution)
	})

	t.Run("Unsatisfiable", func(t *testing.T) {
		instance := SAT{
			Variables: 2,
			Clauses:   [][]int64{{1, 2}, {-1}, {-2}},
		}

		solution, err := solver.Solve(instance)

		require.NoError(t, err)
		assert.Nil(t, solution)
	})

	t.Run("Unused variables are assigned", func(t *testing.T) {
		instance := SAT{
			Variables: 4,
			Clauses:   [][]int64{{1}},
		}

		solution, err := solver.Solve(instance)

		require.NoError(t, err)
		assert.Len(t, solution, 4)
		assert.NoError(t, CheckSolution(instance, solution))
	})
}
