package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// newTestInput builds an availability model over the default days and 08:00-18:00 where each
// participant is busy everywhere except the listed free slot times per day
func newTestInput(t *testing.T, free map[string]map[string][]string) ModelInput {
	t.Helper()

	slots, err := GenerateSlots(MustParseSlot("08:00"), MustParseSlot("18:00"))
	require.NoError(t, err)

	rawInput := RawModelInput{Start: "08:00", End: "18:00"}
	for name, freeTimes := range free {
		table := make(map[string][]bool, len(Days))
		for _, day := range Days {
			table[day] = make([]bool, len(slots))
			for i, slot := range slots {
				table[day][i] = !lo.Contains(freeTimes[day], slot.String())
			}
		}
		rawInput.Participants = append(rawInput.Participants, RawParticipant{Name: name, Table: table})
	}

	input, err := ProcessRawInput(rawInput)
	require.NoError(t, err)
	return input
}

// newOpenInput builds an availability model where every participant is free except the listed busy slot times
func newOpenInput(t *testing.T, busy map[string]map[string][]string) ModelInput {
	t.Helper()

	rawInput := RawModelInput{Start: "08:00", End: "18:00"}
	for name, busyTimes := range busy {
		rawInput.Participants = append(rawInput.Participants, RawParticipant{Name: name, Busy: busyTimes})
	}

	input, err := ProcessRawInput(rawInput)
	require.NoError(t, err)
	return input
}

func lunchBreak() BreakWindow {
	return BreakWindow{Start: MustParseSlot("12:00"), End: MustParseSlot("14:00")}
}
