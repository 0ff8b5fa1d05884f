package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/limaJavier/meetingslots/pkg/model"
	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
}

type TestMetadata struct {
	Name            string
	Participants    int
	Days            int
	Slots           int
	BusyProbability float32
}

type BenchmarkResult struct {
	Solver        string
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

type settings struct {
	executable   string
	config       string
	out          string
	meeting      uint64
	participants []int
	busy         []float32
	solvers      []string
}

func main() {
	var opts settings
	flag.StringVar(&opts.executable, "executable", "../../bin/meetingslots", "Path to the meetingslots executable")
	flag.StringVar(&opts.config, "config", "", "Solver configuration passed to every run")
	flag.StringVar(&opts.out, "out", "benchmark_results.csv", "CSV file where the results are written")
	flag.Uint64Var(&opts.meeting, "duration", 60, "Meeting duration in minutes")
	flag.IntSliceVar(&opts.participants, "participants", []int{5, 20, 50}, "Participant counts of the generated models")
	flag.Float32SliceVar(&opts.busy, "busy", []float32{0.2, 0.5, 0.8}, "Busy probabilities of the generated models")
	flag.StringSliceVar(&opts.solvers, "solvers", nil, "Solvers to compare; every available solver when empty")
	flag.Parse()

	config, err := sat.LoadConfig(opts.config)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	directory, err := os.MkdirTemp("", "meetingslots-benchmark-")
	if err != nil {
		log.Fatalf("cannot create test directory: %v", err)
	}
	defer os.RemoveAll(directory)

	tests := generateTests(directory, opts.participants, opts.busy)
	solvers := getSolvers(opts.solvers, config)
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			log.WithFields(log.Fields{"test": test.Name, "solver": solver}).Info("benchmarking")

			duration, maxMemory, cpuPercentage, result := measure(opts, solver, test.Name)

			results = append(results, BenchmarkResult{
				Solver:        solver,
				Test:          test,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	toCsv(opts.out, results)
}

// generateTests writes one random availability model per participant count and busy probability
func generateTests(directory string, participants []int, busy []float32) []TestMetadata {
	slots := lo.Must(model.GenerateSlots(model.MustParseSlot("08:00"), model.MustParseSlot("18:00")))

	tests := make([]TestMetadata, 0, len(participants)*len(busy))
	for _, tuple := range lo.CrossJoin2(participants, busy) {
		count, busyProbability := tuple.A, tuple.B
		input := model.GenerateModelInput(count, busyProbability, model.Days, slots)

		filename := filepath.Join(directory, fmt.Sprintf("%d-%.2f.json", count, busyProbability))
		content, err := json.Marshal(input.Raw())
		if err != nil {
			log.Fatalf("cannot marshal input: %v", err)
		}
		if err := os.WriteFile(filename, content, 0o644); err != nil {
			log.Fatalf("cannot write input file: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:            filename,
			Participants:    count,
			Days:            len(input.Days),
			Slots:           len(input.Slots),
			BusyProbability: busyProbability,
		})
	}
	return tests
}

// getSolvers keeps the requested solvers whose executable can be found
func getSolvers(requested []string, config sat.Config) []string {
	if len(requested) == 0 {
		requested = sat.SolverNames()
	}
	return lo.Filter(requested, func(solver string, _ int) bool {
		if sat.InProcess(solver) {
			return true
		}
		if _, err := exec.LookPath(config.Path(solver)); err != nil {
			log.Warnf("skipping %v: %v", solver, err)
			return false
		}
		return true
	})
}

func measure(opts settings, solver string, testFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	args := []string{"-v", opts.executable, "--solver", solver, "--file", testFile, "--duration", fmt.Sprint(opts.meeting), "--format", "json", "--out", os.DevNull}
	if opts.config != "" {
		args = append(args, "--config", opts.config)
	}
	cmd := exec.Command("/usr/bin/time", args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	if err := cmd.Run(); cmd.ProcessState == nil {
		log.Fatalf("cannot run /usr/bin/time: %v", err)
	}
	switch cmd.ProcessState.ExitCode() {
	case 10:
		result = solved
	case 20:
		result = unsatisfiable
	default:
		log.Fatalf("an error occurred during the execution of \"meetingslots\" at test \"%v\" using solver \"%v\": %v\n", testFile, solver, stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writeCsv(writer, results); err != nil {
		log.Panicf("cannot write CSV: %v", err)
	}
}

func writeCsv(writer *csv.Writer, results []BenchmarkResult) error {
	header := []string{"Solver", "Test", "Participants", "Days", "Slots", "Busy Probability", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			filepath.Base(result.Test.Name),
			fmt.Sprintf("%d", result.Test.Participants),
			fmt.Sprintf("%d", result.Test.Days),
			fmt.Sprintf("%d", result.Test.Slots),
			fmt.Sprintf("%.2f", result.Test.BusyProbability),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
