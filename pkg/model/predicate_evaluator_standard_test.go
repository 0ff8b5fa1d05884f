package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateEvaluator(t *testing.T) {
	//** Arrange
	input := newOpenInput(t, map[string]map[string][]string{
		"alice": {"Lundi": {"09:00"}},
		"bob":   {"Lundi": {"09:15"}, "Mardi": {"17:45"}},
	})
	alice, bob := uint64(0), uint64(1)
	if input.Participants[0].Name == "bob" {
		alice, bob = bob, alice
	}
	nine, _ := input.SlotIndex(MustParseSlot("09:00"))
	lastStart := uint64(len(input.Slots)) - 2

	//** Act
	evaluator := newPredicateEvaluator(input, 2, lunchBreak())

	//** Assert
	assert.True(t, evaluator.Busy(alice, 0, nine))
	assert.False(t, evaluator.Busy(bob, 0, nine))

	assert.False(t, evaluator.Free(0, nine-1))
	assert.False(t, evaluator.Free(0, nine))
	assert.False(t, evaluator.Free(0, nine+1))
	assert.True(t, evaluator.Free(0, nine+2))
	assert.False(t, evaluator.Free(1, lastStart))
	assert.True(t, evaluator.Free(2, lastStart))
	assert.False(t, evaluator.Free(2, lastStart+1))

	assert.ElementsMatch(t, []uint64{alice, bob}, evaluator.Unavailable(0, nine))
	assert.Equal(t, []uint64{bob}, evaluator.Unavailable(0, nine+1))
	assert.Empty(t, evaluator.Unavailable(3, nine))

	// Two slots never reach the end of a two-hour break
	for start := range uint64(len(input.Slots)) - 1 {
		assert.False(t, evaluator.Straddles(start))
	}
	long := newPredicateEvaluator(input, 9, lunchBreak())
	late, _ := input.SlotIndex(MustParseSlot("11:45"))
	assert.True(t, long.Straddles(late))
	assert.False(t, long.Straddles(late-1))
	assert.False(t, long.Straddles(late+1))
}
