package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/meetingslots/pkg/model"
	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes follow the SAT solver convention
const (
	exitFound      = 10
	exitEmpty      = 20
	exitUnverified = 15
	exitError      = 1
)

const configFileName = "config.json"

type options struct {
	file       string
	duration   uint64
	solver     string
	breakStart string
	breakEnd   string
	format     string
	out        string
	dimacs     string
	config     string
	debug      bool
}

func execute(args []string, stdout, stderr io.Writer) int {
	code := exitError
	cmd := newCommand(stdout, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger := logrus.New()
		logger.SetOutput(stderr)
		logger.WithError(err).Error("cannot find meeting slots")
		return exitError
	}
	return code
}

func newCommand(stdout io.Writer, code *int) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "meetingslots --file <input.json> [--duration minutes]",
		Short: "List every meeting slot that suits all participants",
		Long: `Encode the participants' availability as a SAT formula and enumerate every
start time where a meeting of the requested duration fits, blocking each found
slot until the solver reports that no other exists.

Exit codes: 10 when options were found, 20 when none exist, 15 when the
options failed verification and 1 on error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := run(cmd, opts, stdout)
			if err != nil {
				return err
			}
			*code = result
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the availability input file")
	cmd.Flags().Uint64VarP(&opts.duration, "duration", "d", model.SlotWidth, "Meeting duration in minutes, a multiple of 15")
	cmd.Flags().StringVarP(&opts.solver, "solver", "s", sat.DefaultSolver, "SAT solver to use, one of "+strings.Join(sat.SolverNames(), ", "))
	cmd.Flags().StringVar(&opts.breakStart, "break-start", "12:00", "Start of the break window (HH:MM)")
	cmd.Flags().StringVar(&opts.breakEnd, "break-end", "14:00", "End of the break window (HH:MM)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format (text|json); defaults to text on a terminal and json otherwise")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "File where the options are written; the standard output when empty")
	cmd.Flags().StringVar(&opts.dimacs, "dimacs", "", "File where the initial formula is written in DIMACS format")
	cmd.Flags().StringVar(&opts.config, "config", "", "Path to the solver configuration; defaults to config.json next to the executable")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log every solver call")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, opts options, stdout io.Writer) (int, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	//** Load configuration
	config, err := sat.LoadConfig(configPath(opts.config))
	if err != nil {
		return exitError, err
	}
	solverName := config.Solver
	if cmd.Flags().Changed("solver") {
		solverName = opts.solver
	}
	solver, err := sat.NewSolver(solverName, config)
	if err != nil {
		return exitError, err
	}

	format, err := resolveFormat(opts.format, opts.out, stdout)
	if err != nil {
		return exitError, err
	}

	//** Extract input
	input, err := model.InputFromJson(opts.file)
	if err != nil {
		return exitError, err
	}
	breakWindow, err := model.NewBreakWindow(opts.breakStart, opts.breakEnd)
	if err != nil {
		return exitError, err
	}
	request := model.Request{Duration: opts.duration, Break: breakWindow}

	if opts.dimacs != "" {
		if err := writeDimacs(opts.dimacs, input, request); err != nil {
			return exitError, err
		}
	}

	//** Find options
	logger.WithFields(logrus.Fields{
		"solver":       solverName,
		"participants": len(input.Participants),
		"duration":     request.Duration,
		"break":        request.Break.String(),
	}).Debug("scheduling")

	scheduler := model.NewSatScheduler(solver, logger)
	meetingOptions, variables, clauses, err := scheduler.Schedule(input, request)
	if err != nil {
		return exitError, err
	}
	logger.WithFields(logrus.Fields{"variables": variables, "clauses": clauses}).Info("formula solved")

	if !scheduler.Verify(meetingOptions, input, request) {
		logger.Error("options failed verification")
		return exitUnverified, nil
	}

	//** Write output
	if err := writeOptions(opts.out, stdout, format, meetingOptions); err != nil {
		return exitError, err
	}

	if len(meetingOptions) == 0 {
		return exitEmpty, nil
	}
	return exitFound, nil
}

// configPath returns the explicit path, or config.json next to the executable
func configPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	execPath, err := os.Executable()
	if err != nil {
		return configFileName
	}
	return filepath.Join(filepath.Dir(execPath), configFileName)
}

func resolveFormat(format, out string, stdout io.Writer) (string, error) {
	switch format {
	case formatText, formatJSON:
		return format, nil
	case "":
		if file, ok := stdout.(*os.File); ok && out == "" &&
			(isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())) {
			return formatText, nil
		}
		return formatJSON, nil
	}
	return "", errors.Errorf("invalid --format value %q, expected (text|json)", format)
}

func writeDimacs(path string, input model.ModelInput, request model.Request) error {
	encoding, err := model.Encode(input, request.Duration, request.Break)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(encoding.SAT.ToDIMACS()), 0o644); err != nil {
		return errors.Wrap(err, "cannot write DIMACS file")
	}
	return nil
}

func writeOptions(out string, stdout io.Writer, format string, meetingOptions []model.MeetingOption) error {
	if out == "" {
		return render(stdout, format, meetingOptions)
	}

	file, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	if err := render(file, format, meetingOptions); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "cannot close output file")
}
