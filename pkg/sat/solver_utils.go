package sat

import (
	"encoding/json"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Config holds the executable paths of the external solvers and the limit imposed on every call
type Config struct {
	Solver  string            `mapstructure:"solver"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Paths   map[string]string `mapstructure:"paths"`
}

func DefaultConfig() Config {
	return Config{
		Solver: DefaultSolver,
		Paths:  map[string]string{},
	}
}

// Path returns the configured executable for solver, falling back to its bare name (resolved through $PATH)
func (config Config) Path(solver string) string {
	if path, ok := config.Paths[solver]; ok && path != "" {
		return path
	}
	return solver
}

// LoadConfig reads a config.json file. A missing file yields the default configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return Config{}, errors.Wrap(err, "cannot read config file")
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, errors.Wrap(err, "cannot parse config file")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			secondsToDurationHook,
		),
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Config{}, errors.Wrap(err, "invalid config file")
	}
	if config.Solver == "" {
		config.Solver = DefaultSolver
	}
	if config.Timeout < 0 {
		return Config{}, errors.Errorf("timeout must not be negative: %v", config.Timeout)
	}
	return config, nil
}

// JSON numbers are interpreted as seconds
func secondsToDurationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) || from.Kind() != reflect.Float64 {
		return data, nil
	}
	return time.Duration(data.(float64) * float64(time.Second)), nil
}

// parseSolution extracts the assignment from the "v" lines of a solver's standard output
func parseSolution(solverOutput string) (SATSolution, error) {
	tokens := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(values []string, line string, _ int) []string {
			return append(values, strings.Fields(line[1:])...)
		},
		[]string{},
	)
	return parseLiterals(tokens)
}

// parseResultFile extracts the assignment from a minisat-style result file ("SAT" header followed by the literals)
func parseResultFile(solverOutput string) (SATSolution, error) {
	lines := strings.Split(strings.TrimSpace(solverOutput), "\n")
	if len(lines) > 1 && strings.HasPrefix(lines[0], "SAT") {
		lines = lines[1:] // The first line is the header, we only need the rest
	}
	return parseLiterals(strings.Fields(strings.Join(lines, " ")))
}

func parseLiterals(tokens []string) (SATSolution, error) {
	values := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid literal %q in solver output", token)
		}
		values = append(values, value)
	}
	return trimSentinel(values), nil
}

func trimSentinel(values []int64) SATSolution {
	if len(values) > 0 && values[len(values)-1] == 0 {
		values = values[:len(values)-1]
	}
	return SATSolution(values)
}
