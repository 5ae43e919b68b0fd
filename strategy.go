// Fingerprint and bucket derivation.
//
// A strategy maps a 64-bit element hash to a fingerprint and a primary
// bucket, and maps any (fingerprint, bucket) pair to the alternate bucket.
// The alternate-bucket function is an involution: applying it twice returns
// the original bucket. That lets an evicted fingerprint move between its two
// buckets without rehashing the element it came from.
package cuckoo

import "encoding/binary"

// Strategy constants.
const (
	// StrategySimpleMod is the default. The fingerprint is the top
	// fingerprintLength bits of the hash, with zero remapped to 1 because 0
	// marks an empty slot. The remap makes 1 twice as likely as any other
	// fingerprint, a small skew the setfilters wire format shares.
	StrategySimpleMod = 1

	// StrategyUniformMod draws fingerprints uniformly from [1, 2^F) via
	// mod (2^F - 1) + 1. Not wire-compatible with StrategySimpleMod.
	StrategyUniformMod = 2
)

// maxReplacementCount bounds the insertion random walk.
const maxReplacementCount = 500

// fingerprintOf derives a fingerprint in (0, 2^fingerprintLength) from the
// element hash. Never returns 0.
func fingerprintOf(hash uint64, fingerprintLength, strategy int) uint64 {
	switch strategy {
	case StrategySimpleMod:
		// Most significant bits, to decorrelate from the bucket index which
		// uses the full hash.
		fp := hash >> (64 - uint(fingerprintLength))
		if fp == 0 {
			return 1
		}
		return fp
	case StrategyUniformMod:
		return hash%mask(fingerprintLength) + 1
	}
	return 0
}

// bucketIndexOf reduces the element hash to a primary bucket in
// [0, bucketCount), treating the hash as a signed value.
func bucketIndexOf(hash uint64, bucketCount int) int {
	return floorMod(int64(hash), bucketCount)
}

// altBucketIndexOf returns the other candidate bucket for a fingerprint.
// (hash(fp) - b) mod bucketCount is self-inverse: subtracting from a fixed
// quantity twice gives back b.
func altBucketIndexOf(fingerprint uint64, bucketIndex, bucketCount, alg int) int {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], fingerprint)
	fingerprintHash := hash64(b[:], alg)
	return floorMod(int64(fingerprintHash)-int64(bucketIndex), bucketCount)
}

// floorMod reduces v modulo m into [0, m). The built-in remainder is
// negative for negative v.
func floorMod(v int64, m int) int {
	r := v % int64(m)
	if r < 0 {
		r += int64(m)
	}
	return int(r)
}

func validStrategy(strategy int) bool {
	return strategy == StrategySimpleMod || strategy == StrategyUniformMod
}
