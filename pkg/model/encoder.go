package model

import (
	"github.com/limaJavier/meetingslots/pkg/sat"
	"github.com/pkg/errors"
)

// Candidate is a (day, start slot) pair whose block of slots fits within the day
type Candidate struct {
	Day   uint64
	Start uint64
}

type ConstraintCount struct {
	Name    string
	Clauses int
}

// Encoding is the CNF formula of a meeting request together with the mapping of its candidate variables
type Encoding struct {
	SAT        sat.SAT
	Candidates []Candidate // Ordered by variable index
	Blocks     uint64      // Slots covered by the meeting
	Counts     []ConstraintCount

	candidates indexer
}

// Encode translates the availability model into a formula whose models choose exactly one
// meeting candidate free for every participant and not straddling the break window.
// duration is expressed in minutes.
func Encode(input ModelInput, duration uint64, breakWindow BreakWindow) (Encoding, error) {
	//** Validate request
	if duration == 0 || duration%SlotWidth != 0 {
		return Encoding{}, errors.Wrapf(ErrInvalidDuration, "got %d minutes with %d-minute slots", duration, SlotWidth)
	} else if len(input.Participants) == 0 {
		return Encoding{}, ErrNoParticipants
	}

	//** Extract attributes' domains
	participants, days, slots := uint64(len(input.Participants)), uint64(len(input.Days)), uint64(len(input.Slots))
	blocks := duration / SlotWidth
	if days == 0 || blocks > slots {
		return Encoding{}, errors.Wrapf(ErrInsufficientSlots, "%d slots needed, %d available per day over %d days", blocks, slots, days)
	}
	starts := slots - blocks + 1

	//** Initialize dependencies
	availability := newAvailabilityIndexer(participants, days, slots)
	_, lastAvailability := availability.Bounds()
	candidates := newCandidateIndexer(lastAvailability, days, starts)
	_, variables := candidates.Bounds()
	state := constraintState{
		availability: availability,
		candidates:   candidates,
		evaluator:    newPredicateEvaluator(input, blocks, breakWindow),
		participants: participants,
		days:         days,
		slots:        slots,
		blocks:       blocks,
		starts:       starts,
	}

	//** Build SAT instance
	satInstance, counts := buildSat(variables, constraints, state)

	encoding := Encoding{
		SAT:        satInstance,
		Candidates: make([]Candidate, 0, days*starts),
		Blocks:     blocks,
		Counts:     counts,
		candidates: candidates,
	}
	for day := range days {
		for start := range starts {
			encoding.Candidates = append(encoding.Candidates, Candidate{Day: day, Start: start})
		}
	}
	return encoding, nil
}

// buildSat runs the constraint generators in order so the clause order is reproducible
func buildSat(variables uint64, constraints []constraint, state constraintState) (sat.SAT, []ConstraintCount) {
	satInstance := sat.SAT{
		Variables: variables,
		Clauses:   [][]int64{},
	}
	counts := make([]ConstraintCount, 0, len(constraints))

	for _, constraint := range constraints {
		clauses := constraint.generate(state)
		satInstance.Clauses = append(satInstance.Clauses, clauses...)
		counts = append(counts, ConstraintCount{Name: constraint.name, Clauses: len(clauses)})
	}

	return satInstance, counts
}

// VariableOf returns the Y-variable of the candidate
func (encoding Encoding) VariableOf(candidate Candidate) int64 {
	return int64(encoding.candidates.Index(candidate.Day, candidate.Start))
}

// CandidateOf returns the candidate behind a Y-variable
func (encoding Encoding) CandidateOf(variable int64) (Candidate, bool) {
	if !encoding.IsCandidate(variable) {
		return Candidate{}, false
	}
	attributes := encoding.candidates.Attributes(uint64(variable))
	return Candidate{Day: attributes[0], Start: attributes[1]}, true
}

func (encoding Encoding) IsCandidate(variable int64) bool {
	if encoding.candidates == nil || variable <= 0 {
		return false
	}
	first, last := encoding.candidates.Bounds()
	return uint64(variable) >= first && uint64(variable) <= last
}

// ChosenCandidates returns the Y-variables assigned true in the solution
func (encoding Encoding) ChosenCandidates(solution sat.SATSolution) []int64 {
	chosen := make([]int64, 0, 1)
	for _, literal := range solution {
		if literal > 0 && encoding.IsCandidate(literal) {
			chosen = append(chosen, literal)
		}
	}
	return chosen
}
