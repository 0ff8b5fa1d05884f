package model

import (
	"fmt"

	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// MeetingOption is the human-facing reading of a solution
type MeetingOption struct {
	Day            string   `json:"day"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	FullyAvailable bool     `json:"fullyAvailable"`
	Unavailable    []string `json:"unavailable,omitempty"` // Participants busy during the block, expected to be empty

	candidate Candidate
}

// Range formats the option's time span, e.g. "09:00-09:15"
func (option MeetingOption) Range() string {
	return fmt.Sprintf("%v-%v", option.Start, option.End)
}

func (option MeetingOption) String() string {
	return fmt.Sprintf("%v %v", option.Day, option.Range())
}

// Interpret maps the candidate chosen by the solution back to its day and time span, and re-checks
// the raw availability of every participant of input over the block
func Interpret(input ModelInput, encoding Encoding, solution sat.SATSolution) (MeetingOption, error) {
	return interpret(input, newPredicateEvaluator(input, encoding.Blocks, BreakWindow{}), encoding, solution)
}

// InterpretAll interprets every solution of the enumeration, preserving its order
func InterpretAll(input ModelInput, encoding Encoding, enumeration Enumeration) ([]MeetingOption, error) {
	evaluator := newPredicateEvaluator(input, encoding.Blocks, BreakWindow{})
	options := make([]MeetingOption, 0, len(enumeration.Solutions))
	for i, solution := range enumeration.Solutions {
		option, err := interpret(input, evaluator, encoding, solution)
		if err != nil {
			return nil, errors.Wrapf(err, "solution %d", i)
		}
		options = append(options, option)
	}
	return options, nil
}

func interpret(input ModelInput, evaluator predicateEvaluator, encoding Encoding, solution sat.SATSolution) (MeetingOption, error) {
	chosen := encoding.ChosenCandidates(solution)
	if len(chosen) != 1 {
		return MeetingOption{}, errors.Errorf("expected exactly one chosen candidate, got %d", len(chosen))
	}
	candidate, _ := encoding.CandidateOf(chosen[0])
	if candidate.Day >= uint64(len(input.Days)) || candidate.Start+encoding.Blocks > uint64(len(input.Slots)) {
		return MeetingOption{}, errors.Errorf("candidate %v does not fit the model", candidate)
	}
	return describe(input, evaluator, encoding.Blocks, candidate), nil
}

func describe(input ModelInput, evaluator predicateEvaluator, blocks uint64, candidate Candidate) MeetingOption {
	start := input.Slots[candidate.Start]

	unavailable := lo.Map(evaluator.Unavailable(candidate.Day, candidate.Start), func(participant uint64, _ int) string {
		return input.Participants[participant].Name
	})

	return MeetingOption{
		Day:            input.Days[candidate.Day],
		Start:          start.String(),
		End:            start.Advance(blocks).String(),
		FullyAvailable: len(unavailable) == 0,
		Unavailable:    unavailable,
		candidate:      candidate,
	}
}
