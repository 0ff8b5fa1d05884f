package model

import (
	"cmp"
	"slices"

	"github.com/kr/pretty"
	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/sirupsen/logrus"
)

// Request describes the meeting to place
type Request struct {
	Duration uint64 // Minutes, a positive multiple of SlotWidth
	Break    BreakWindow
}

type Scheduler interface {
	// Schedule returns every feasible meeting option. An empty result means no slot suits all participants.
	Schedule(
		modelInput ModelInput,
		request Request,
	) (options []MeetingOption, variables uint64, clauses uint64, err error)

	Verify(
		options []MeetingOption,
		modelInput ModelInput,
		request Request,
	) bool
}

type satScheduler struct {
	solver sat.SATSolver
	logger logrus.FieldLogger
}

func NewSatScheduler(solver sat.SATSolver, logger logrus.FieldLogger) Scheduler {
	if logger == nil {
		logger = discardLogger()
	}
	return &satScheduler{
		solver: solver,
		logger: logger,
	}
}

func (scheduler *satScheduler) Schedule(modelInput ModelInput, request Request) ([]MeetingOption, uint64, uint64, error) {
	//** Build SAT instance
	encoding, err := Encode(modelInput, request.Duration, request.Break)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := encoding.SAT.Variables, uint64(len(encoding.SAT.Clauses))

	scheduler.logger.WithFields(logrus.Fields{
		"variables":  variables,
		"clauses":    clauses,
		"candidates": len(encoding.Candidates),
	}).Info("formula encoded")
	scheduler.logger.Debugf("clauses per constraint: %v", pretty.Sprint(encoding.Counts))

	//** Enumerate solutions
	enumeration, err := Enumerate(scheduler.solver, encoding, scheduler.logger)
	if err != nil {
		return nil, variables, clauses, err
	}
	scheduler.logger.WithFields(logrus.Fields{
		"outcome": enumeration.Outcome(),
		"calls":   enumeration.Calls,
	}).Info("enumeration finished")

	//** Interpret solutions
	options, err := InterpretAll(modelInput, encoding, enumeration)
	if err != nil {
		return nil, variables, clauses, err
	}
	for _, option := range options {
		if !option.FullyAvailable {
			scheduler.logger.WithField("option", option.String()).Warnf("participants %v are busy during a chosen block", option.Unavailable)
		}
	}

	sortOptions(options)
	return options, variables, clauses, nil
}

func (scheduler *satScheduler) Verify(options []MeetingOption, modelInput ModelInput, request Request) bool {
	return verify(options, modelInput, request)
}

// sortOptions orders options by day, then start time, following the model's day sequence
func sortOptions(options []MeetingOption) {
	slices.SortFunc(options, func(a, b MeetingOption) int {
		if dayComparison := cmp.Compare(a.candidate.Day, b.candidate.Day); dayComparison != 0 {
			return dayComparison
		}
		return cmp.Compare(a.candidate.Start, b.candidate.Start)
	})
}
