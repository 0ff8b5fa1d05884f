package model

type constraintState struct {
	availability indexer // X(participant, day, slot): the participant is free at that slot
	candidates   indexer // Y(day, start): the meeting starts at that slot
	evaluator    predicateEvaluator

	participants,
	days,
	slots,
	blocks, // Slots covered by the meeting
	starts uint64 // Feasible start slots per day
}

type constraint struct {
	name     string
	generate func(state constraintState) [][]int64
}

// Clause families in the order they are emitted
var constraints = []constraint{
	{"at-least-one", atLeastOneConstraints},
	{"at-most-one", atMostOneConstraints},
	{"block-availability", blockAvailabilityConstraints},
	{"busy", busyConstraints},
	{"break", breakConstraints},
}

// At least one meeting candidate is chosen
func atLeastOneConstraints(state constraintState) [][]int64 {
	first, last := state.candidates.Bounds()
	clause := make([]int64, 0, last-first+1)
	for variable := first; variable <= last; variable++ {
		clause = append(clause, int64(variable))
	}
	return [][]int64{clause}
}

// No two meeting candidates are chosen simultaneously
func atMostOneConstraints(state constraintState) [][]int64 {
	first, last := state.candidates.Bounds()
	total := last - first + 1
	clauses := make([][]int64, 0, total*(total-1)/2)

	for i := first; i < last; i++ {
		for j := i + 1; j <= last; j++ {
			clauses = append(clauses, []int64{-int64(i), -int64(j)})
		}
	}
	return clauses
}

// Choosing a candidate forces every participant free over its whole block: ¬Y(d,s) ∨ X(p,d,s+j)
func blockAvailabilityConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.days*state.starts*state.participants*state.blocks)

	for day := range state.days {
		for start := range state.starts {
			candidate := int64(state.candidates.Index(day, start))
			for participant := range state.participants {
				for offset := range state.blocks {
					free := int64(state.availability.Index(participant, day, start+offset))
					clauses = append(clauses, []int64{-candidate, free})
				}
			}
		}
	}
	return clauses
}

// A busy participant is never free: ¬X(p,d,t)
func busyConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for participant := range state.participants {
		for day := range state.days {
			for slot := range state.slots {
				if state.evaluator.Busy(participant, day, slot) {
					clauses = append(clauses, []int64{-int64(state.availability.Index(participant, day, slot))})
				}
			}
		}
	}
	return clauses
}

// Candidates whose block straddles the whole break are ruled out: ¬Y(d,s)
func breakConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for day := range state.days {
		for start := range state.starts {
			if state.evaluator.Straddles(start) {
				clauses = append(clauses, []int64{-int64(state.candidates.Index(day, start))})
			}
		}
	}
	return clauses
}
