package model

type predicateEvaluator interface {
	// Checks whether the participant is unavailable at the given day and slot
	Busy(participant, day, slot uint64) bool

	// Checks whether every participant is free over the whole block starting at the given day and slot
	Free(day, start uint64) bool

	// Checks whether the block starting at the given slot straddles the break window
	Straddles(start uint64) bool

	// Returns the participants busy at some point of the block starting at the given day and slot
	Unavailable(day, start uint64) []uint64
}
