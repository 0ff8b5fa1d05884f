package model

// indexer interface is design to give a unique index to a combination of a variable's attributes and vice versa
type indexer interface {
	// Returns a unique index to a combination of the variable's attributes
	Index(attributes ...uint64) uint64
	// Returns the combination of the variable's attributes from a unique index
	Attributes(index uint64) []uint64
	// Returns the first and last index handed out by the indexer
	Bounds() (first, last uint64)
}

// newAvailabilityIndexer indexes X-variables by (participant, day, slot), participant-major
func newAvailabilityIndexer(participants, days, slots uint64) indexer {
	return &indexerImplementation{
		offset:     0,
		dimensions: []uint64{slots, days, participants},
	}
}

// newCandidateIndexer indexes Y-variables by (day, start), day-major, right after the availability variables
func newCandidateIndexer(offset, days, starts uint64) indexer {
	return &indexerImplementation{
		offset:     offset,
		dimensions: []uint64{starts, days},
	}
}
