// Bucket table abstraction.
//
// A table is an array of fixed-capacity buckets of fingerprints over a
// bitArray. Two layouts exist: uncompressed stores one fingerprint per slot,
// semi-sorted compresses each 4-slot bucket to save one bit per slot.
package cuckoo

import (
	"fmt"
	"math/rand/v2"
)

// Table type identifiers, encoded in the serialization header.
const (
	tableTypeUncompressed = 0
	tableTypeSemiSorted   = 1
)

// emptySlot is the reserved fingerprint value marking a free slot. A
// strategy never produces it as a real fingerprint.
const emptySlot = 0

type table interface {
	// insertWithReplacement places fingerprint in the bucket, filling the
	// first empty slot when one exists. When the bucket is full, a victim
	// slot is chosen uniformly at random, overwritten, and its previous
	// fingerprint returned with evicted=true.
	insertWithReplacement(bucketIndex int, fingerprint uint64) (replaced uint64, evicted bool)

	// contains scans the bucket for fingerprint.
	contains(bucketIndex int, fingerprint uint64) bool

	// delete clears the first slot equal to fingerprint, reporting whether
	// one existed.
	delete(bucketIndex int, fingerprint uint64) bool

	// isFull reports whether the bucket has no empty slot.
	isFull(bucketIndex int) bool

	size() Size

	// occupied counts non-empty slots across the whole table.
	occupied() int64

	kind() int

	serialize() SerializedTable
}

// newTable picks a layout for an empty table. Space optimization is best
// effort: the semi-sorted layout applies only to buckets of capacity 4 with
// fingerprints of at least 4 bits, and anything else silently falls back to
// the uncompressed layout.
func newTable(size Size, spaceOptimized bool, rng *rand.Rand) (table, error) {
	if spaceOptimized && size.bucketCapacity == semiSortedCapacity && size.fingerprintLength >= 4 {
		return newSemiSortedTable(size, rng)
	}
	return newUncompressedTable(size, rng)
}

// parseTable reconstructs a table from a serialized blob.
func parseTable(st SerializedTable, rng *rand.Rand) (table, error) {
	tableType, size, body, err := decodeTable(st.Bytes())
	if err != nil {
		return nil, err
	}
	switch tableType {
	case tableTypeUncompressed:
		return newUncompressedTableFromBytes(size, body, rng)
	case tableTypeSemiSorted:
		return newSemiSortedTableFromBytes(size, body, rng)
	default:
		return nil, fmt.Errorf("%w: unknown table type %d", ErrCorruptTable, tableType)
	}
}
