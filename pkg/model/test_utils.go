package model

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// GenerateModelInput builds a random availability model where each slot is busy with the given probability
func GenerateModelInput(participants int, busyProbability float32, days []string, slots []Slot) ModelInput {
	input := ModelInput{
		Days:         slices.Clone(days),
		Slots:        slices.Clone(slots),
		Participants: make([]Participant, 0, participants),
	}

	for id := range participants {
		busy := make([][]bool, len(days))
		for day := range busy {
			busy[day] = make([]bool, len(slots))
			for slot := range busy[day] {
				busy[day][slot] = rand.Float32() < busyProbability
			}
		}
		input.Participants = append(input.Participants, Participant{
			Id:   uint64(id),
			Name: fmt.Sprintf("participant-%d", id),
			Busy: busy,
		})
	}

	return input
}
