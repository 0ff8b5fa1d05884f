package sat

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
const (
	satisfiableExitCode   = 10
	unsatisfiableExitCode = 20
)

// Grace period granted after a timeout kill before the output pipes are forcibly closed
const waitDelay = time.Second

type inputMode int

const (
	stdinInput inputMode = iota // DIMACS is fed through the standard input
	fileInput                   // DIMACS is written to a temporary file passed as argument
)

type outputMode int

const (
	stdoutOutput outputMode = iota // Assignment is printed as "v" lines on the standard output
	fileOutput                     // Assignment is written to a result file passed as second argument
)

// processSolver runs an external SAT-solver executable that follows the SAT-competition conventions
type processSolver struct {
	name    string
	path    string
	args    []string
	input   inputMode
	output  outputMode
	timeout time.Duration // Zero means no limit
}

func (solver *processSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx := context.Background()
	if solver.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solver.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, solver.path, solver.args...)
	cmd.WaitDelay = waitDelay // Children that inherited stdout/stderr must not keep Run blocked after the kill

	if solver.input == stdinInput {
		cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into the solver's standard input
	} else {
		inputFile, err := writeTempFile("dimacs-*.cnf", dimacs)
		if err != nil {
			return nil, err
		}
		defer removeTempFile(inputFile)
		cmd.Args = append(cmd.Args, inputFile)
	}

	var outputFile string
	if solver.output == fileOutput {
		var err error
		if outputFile, err = writeTempFile(solver.name+"_output-*.txt", ""); err != nil {
			return nil, err
		}
		defer removeTempFile(outputFile)
		cmd.Args = append(cmd.Args, outputFile)
	}

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, errors.Errorf("%v did not finish within %v", solver.name, solver.timeout)
	} else if cmd.ProcessState == nil {
		return nil, errors.Wrapf(err, "cannot execute %v", solver.name)
	}

	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != satisfiableExitCode && exitCode != unsatisfiableExitCode {
		return nil, errors.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	} else if exitCode == unsatisfiableExitCode {
		return nil, nil
	}

	if solver.output == stdoutOutput {
		solution, err := parseSolution(stdOut.String())
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %v output", solver.name)
		}
		return solution, nil
	}

	output, err := os.ReadFile(outputFile) // Read the output file
	if err != nil {
		return nil, errors.Wrap(err, "failed to read output file")
	}
	solution, err := parseResultFile(string(output))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %v result file", solver.name)
	}
	return solution, nil
}

func writeTempFile(pattern, content string) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary file")
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", errors.Wrap(err, "failed to write temporary file")
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", errors.Wrap(err, "failed to close temporary file")
	}
	return file.Name(), nil
}

func removeTempFile(name string) {
	if err := os.Remove(name); err != nil {
		log.Warnf("failed to remove temporary file %s: %v", name, err)
	}
}
