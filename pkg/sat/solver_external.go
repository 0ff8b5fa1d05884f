package sat

import "time"

func NewKissatSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "kissat", path: path, args: []string{"-q", "--relaxed"}, timeout: timeout}
}

func NewCadicalSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "cadical", path: path, args: []string{"-q"}, timeout: timeout}
}

func NewCryptominisatSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "cryptominisat", path: path, args: []string{"--verb", "0"}, timeout: timeout}
}

// minisat and glucose only print statistics; the model goes to the result file
func NewMinisatSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "minisat", path: path, args: []string{"-verb=0"}, input: fileInput, output: fileOutput, timeout: timeout}
}

func NewGlucoseSimpSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "glucosesimp", path: path, args: []string{"-verb=0"}, input: fileInput, output: fileOutput, timeout: timeout}
}

func NewSlimeSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "slime", path: path, input: fileInput, timeout: timeout}
}

func NewOrtoolsatSolver(path string, timeout time.Duration) SATSolver {
	return &processSolver{name: "ortoolsat", path: path, input: fileInput, timeout: timeout}
}
