package model

import log "github.com/sirupsen/logrus"

// indexerImplementation maps attributes onto a dense mixed-radix range starting at offset+1.
// dimensions are ordered from the fastest-varying attribute to the slowest one.
type indexerImplementation struct {
	offset     uint64
	dimensions []uint64
}

// Index expects the attributes from the slowest-varying to the fastest-varying one
func (indexer *indexerImplementation) Index(attributes ...uint64) uint64 {
	if len(attributes) != len(indexer.dimensions) {
		log.Panicf("expected %d attributes, got %d", len(indexer.dimensions), len(attributes))
	}

	index, stride := uint64(0), uint64(1)
	for i, dimension := range indexer.dimensions {
		attribute := attributes[len(attributes)-1-i]
		if attribute >= dimension {
			log.Panicf("attribute %d is out of range: %d >= %d", len(attributes)-1-i, attribute, dimension)
		}
		index += attribute * stride
		stride *= dimension
	}
	return indexer.offset + index + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) []uint64 {
	index = index - indexer.offset - 1
	attributes := make([]uint64, len(indexer.dimensions))
	for i, dimension := range indexer.dimensions {
		attributes[len(attributes)-1-i] = index % dimension
		index = index / dimension
	}
	return attributes
}

func (indexer *indexerImplementation) Bounds() (first, last uint64) {
	size := uint64(1)
	for _, dimension := range indexer.dimensions {
		size *= dimension
	}
	return indexer.offset + 1, indexer.offset + size
}
