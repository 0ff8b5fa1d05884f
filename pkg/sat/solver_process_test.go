package sat

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (¬x1 ∨ ¬x2) ∧ (¬x2 ∨ x3) ∧ (x1 ∨ ¬x3 ∨ x2) ∧ x2
var scriptedInstance = SAT{
	Variables: 3,
	Clauses:   [][]int64{{-1, -2}, {-2, 3}, {1, -3, 2}, {2}},
}

// writeSolverScript creates an executable shell script standing in for an external solver
func writeSolverScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "solver.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestProcessSolverStdout(t *testing.T) {
	t.Run("Satisfiable", func(t *testing.T) {
		//** Arrange
		path := writeSolverScript(t, `cat > /dev/null
echo 's SATISFIABLE'
echo 'v -1 2'
echo 'v 3 0'
exit 10`)

		//** Act
		solution, err := NewKissatSolver(path, 0).Solve(scriptedInstance)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, SATSolution{-1, 2, 3}, solution)
	})

	t.Run("Unsatisfiable", func(t *testing.T) {
		path := writeSolverScript(t, `echo 's UNSATISFIABLE'
exit 20`)

		solution, err := NewKissatSolver(path, 0).Solve(scriptedInstance)

		require.NoError(t, err)
		assert.Nil(t, solution)
	})

	t.Run("Exit code zero", func(t *testing.T) {
		path := writeSolverScript(t, `echo 'v -1 2 3 0'
exit 0`)

		solution, err := NewKissatSolver(path, 0).Solve(scriptedInstance)

		require.NoError(t, err)
		assert.Equal(t, SATSolution{-1, 2, 3}, solution)
	})

	t.Run("Failure", func(t *testing.T) {
		path := writeSolverScript(t, `echo 'out of memory' >&2
exit 1`)

		solution, err := NewKissatSolver(path, 0).Solve(scriptedInstance)

		assert.ErrorContains(t, err, "out of memory")
		assert.Nil(t, solution)
	})

	t.Run("Invalid literal", func(t *testing.T) {
		path := writeSolverScript(t, `echo 'v 1 x 0'
exit 10`)

		var solution SATSolution
		var err error
		assert.NotPanics(t, func() {
			solution, err = NewKissatSolver(path, 0).Solve(scriptedInstance)
		})

		assert.ErrorContains(t, err, "cannot read kissat output")
		assert.Nil(t, solution)
	})

	t.Run("Input is fed through stdin", func(t *testing.T) {
		path := writeSolverScript(t, `grep -q '^p cnf 3 4$' || exit 1
echo 'v -1 2 3 0'
exit 10`)

		solution, err := NewKissatSolver(path, 0).Solve(scriptedInstance)

		require.NoError(t, err)
		assert.Equal(t, SATSolution{-1, 2, 3}, solution)
	})
}

func TestProcessSolverResultFile(t *testing.T) {
	// minisat is invoked as: <path> -verb=0 <input> <output>
	t.Run("Satisfiable", func(t *testing.T) {
		//** Arrange
		path := writeSolverScript(t, `grep -q '^p cnf 3 4$' "$2" || exit 1
printf 'SAT\n-1 2 3 0\n' > "$3"
exit 10`)

		//** Act
		solution, err := NewMinisatSolver(path, 0).Solve(scriptedInstance)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, SATSolution{-1, 2, 3}, solution)
	})

	t.Run("Unsatisfiable", func(t *testing.T) {
		path := writeSolverScript(t, `printf 'UNSAT\n' > "$3"
exit 20`)

		solution, err := NewMinisatSolver(path, 0).Solve(scriptedInstance)

		require.NoError(t, err)
		assert.Nil(t, solution)
	})

	t.Run("Invalid literal", func(t *testing.T) {
		path := writeSolverScript(t, `printf 'SAT\n-1 two 3 0\n' > "$3"
exit 10`)

		solution, err := NewMinisatSolver(path, 0).Solve(scriptedInstance)

		assert.ErrorContains(t, err, "cannot read minisat result file")
		assert.Nil(t, solution)
	})

	t.Run("Temporary files are removed", func(t *testing.T) {
		record := filepath.Join(t.TempDir(), "args")
		path := writeSolverScript(t, `echo "$2" > "`+record+`"
echo "$3" >> "`+record+`"
printf 'SAT\n-1 2 3 0\n' > "$3"
exit 10`)

		_, err := NewMinisatSolver(path, 0).Solve(scriptedInstance)
		require.NoError(t, err)

		content, err := os.ReadFile(record)
		require.NoError(t, err)
		require.Len(t, strings.Fields(string(content)), 2)
		for _, file := range strings.Fields(string(content)) {
			assert.NoFileExists(t, file)
		}
	})
}

func TestProcessSolverTimeout(t *testing.T) {
	//** Arrange
	path := writeSolverScript(t, "sleep 5")
	solver := NewKissatSolver(path, 200*time.Millisecond)

	//** Act
	begin := time.Now()
	solution, err := solver.Solve(scriptedInstance)
	elapsed := time.Since(begin)

	//** Assert
	assert.ErrorContains(t, err, "did not finish within 200ms")
	assert.Nil(t, solution)
	assert.Less(t, elapsed, 200*time.Millisecond+waitDelay+time.Second)
}
