package model

// verify checks the options against the raw availability model, independently of any formula:
// every option must be free for all participants, fit in its day and keep clear of the break,
// no option may repeat, and every feasible candidate must be present
func verify(options []MeetingOption, modelInput ModelInput, request Request) bool {
	if request.Duration == 0 || request.Duration%SlotWidth != 0 {
		return false
	}
	blocks := request.Duration / SlotWidth

	evaluator := newPredicateEvaluator(modelInput, blocks, request.Break)
	found := make(map[Candidate]bool)
	for _, option := range options {
		day, ok := modelInput.DayIndex(option.Day)
		if !ok {
			return false
		}
		startSlot, err := ParseSlot(option.Start)
		if err != nil {
			return false
		}
		start, ok := modelInput.SlotIndex(startSlot)
		candidate := Candidate{Day: day, Start: start}

		// Check that:
		// - The start slot belongs to the slot sequence
		// - The block fits within the day
		// - The end time matches the block length
		// - The option is not a duplicate
		// - The option is feasible
		// - The option reports full availability
		if !ok ||
			start+blocks > uint64(len(modelInput.Slots)) ||
			option.End != startSlot.Advance(blocks).String() ||
			found[candidate] ||
			!feasible(evaluator, candidate) ||
			!option.FullyAvailable {
			return false
		}
		found[candidate] = true
	}

	// Check that no feasible candidate was missed
	return len(found) == len(feasibleCandidates(modelInput, request, blocks))
}

func feasible(evaluator predicateEvaluator, candidate Candidate) bool {
	return !evaluator.Straddles(candidate.Start) && evaluator.Free(candidate.Day, candidate.Start)
}

// feasibleCandidates enumerates by brute force every candidate satisfying the request
func feasibleCandidates(modelInput ModelInput, request Request, blocks uint64) []Candidate {
	slots := uint64(len(modelInput.Slots))
	if blocks == 0 || blocks > slots {
		return nil
	}

	evaluator := newPredicateEvaluator(modelInput, blocks, request.Break)
	candidates := make([]Candidate, 0)
	for day := range uint64(len(modelInput.Days)) {
		for start := range slots - blocks + 1 {
			candidate := Candidate{Day: day, Start: start}
			if feasible(evaluator, candidate) {
				candidates = append(candidates, candidate)
			}
		}
	}
	return candidates
}
