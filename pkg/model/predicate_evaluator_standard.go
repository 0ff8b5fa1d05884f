package model

import (
	"github.com/samber/lo"
)

type predicateEvaluatorStandard struct {
	modelInput  ModelInput
	blocks      uint64
	breakWindow BreakWindow
	occupancy   [][]uint64 // Busy participants per day and slot
}

func newPredicateEvaluator(modelInput ModelInput, blocks uint64, breakWindow BreakWindow) predicateEvaluator {
	evaluator := predicateEvaluatorStandard{
		modelInput:  modelInput,
		blocks:      blocks,
		breakWindow: breakWindow,
	}

	evaluator.occupancy = make([][]uint64, len(modelInput.Days))
	for day := range evaluator.occupancy {
		evaluator.occupancy[day] = make([]uint64, len(modelInput.Slots))
		for slot := range evaluator.occupancy[day] {
			evaluator.occupancy[day][slot] = uint64(lo.CountBy(modelInput.Participants, func(participant Participant) bool {
				return participant.Busy[day][slot]
			}))
		}
	}

	return &evaluator
}

func (evaluator *predicateEvaluatorStandard) Busy(participant, day, slot uint64) bool {
	return evaluator.modelInput.IsBusy(participant, day, slot)
}

func (evaluator *predicateEvaluatorStandard) Free(day, start uint64) bool {
	if start+evaluator.blocks > uint64(len(evaluator.modelInput.Slots)) {
		return false
	}
	return lo.EveryBy(evaluator.occupancy[day][start:start+evaluator.blocks], func(busy uint64) bool {
		return busy == 0
	})
}

func (evaluator *predicateEvaluatorStandard) Straddles(start uint64) bool {
	startSlot := evaluator.modelInput.Slots[start]
	return evaluator.breakWindow.Straddles(startSlot, startSlot.Advance(evaluator.blocks))
}

func (evaluator *predicateEvaluatorStandard) Unavailable(day, start uint64) []uint64 {
	participants := make([]uint64, 0)
	if evaluator.Free(day, start) {
		return participants
	}
	for participant := range uint64(len(evaluator.modelInput.Participants)) {
		busy := lo.SomeBy(lo.Range(int(evaluator.blocks)), func(offset int) bool {
			return evaluator.Busy(participant, day, start+uint64(offset))
		})
		if busy {
			participants = append(participants, participant)
		}
	}
	return participants
}
