// Filter sizing.
//
// A filter's size is the immutable triple (bucketCount, bucketCapacity,
// fingerprintLength). ComputeEfficientSize searches bucket capacities 2-8
// under an empirical maximum-load model and picks the triple with the
// fewest total bits that meets a target false-positive rate.
package cuckoo

import (
	"fmt"
	"math"
)

// Size limits.
const (
	MaxBucketCapacity    = 128
	MaxFingerprintLength = 64

	maxBucketCount = int64(1) << 31
)

// approxLoad is the empirical maximum load by bucket capacity: the fraction
// of slots that can be filled before insertion starts failing.
var approxLoad = [9]float64{2: 0.85, 3: 0.91, 4: 0.95, 5: 0.96, 6: 0.97, 7: 0.98, 8: 0.98}

// Size describes the shape of a cuckoo filter table: bucketCount buckets of
// bucketCapacity slots, each slot holding a fingerprint of
// fingerprintLength bits. Immutable once created.
type Size struct {
	bucketCount       int
	bucketCapacity    int
	fingerprintLength int
}

// NewSize validates and returns a Size. bucketCount must be in [1, 2^31),
// bucketCapacity in [1, MaxBucketCapacity], and fingerprintLength in
// [1, MaxFingerprintLength].
func NewSize(bucketCount, bucketCapacity, fingerprintLength int) (Size, error) {
	if bucketCount < 1 || int64(bucketCount) >= maxBucketCount {
		return Size{}, fmt.Errorf("%w: %d", ErrBucketCount, bucketCount)
	}
	if bucketCapacity < 1 || bucketCapacity > MaxBucketCapacity {
		return Size{}, fmt.Errorf("%w: %d", ErrBucketCapacity, bucketCapacity)
	}
	if fingerprintLength < 1 || fingerprintLength > MaxFingerprintLength {
		return Size{}, fmt.Errorf("%w: %d", ErrFingerprintLength, fingerprintLength)
	}
	return Size{bucketCount, bucketCapacity, fingerprintLength}, nil
}

// ComputeEfficientSize returns a Size that holds up to elementsCountUpperBound
// elements (with high probability) at the given target false-positive rate,
// minimising total bits. targetFalsePositiveRate must be in (0, 1) and
// elementsCountUpperBound must be > 0.
func ComputeEfficientSize(targetFalsePositiveRate float64, elementsCountUpperBound int64) (Size, error) {
	if !(targetFalsePositiveRate > 0 && targetFalsePositiveRate < 1) {
		return Size{}, fmt.Errorf("%w: %v", ErrTargetRate, targetFalsePositiveRate)
	}
	if elementsCountUpperBound <= 0 {
		return Size{}, fmt.Errorf("%w: %d", ErrElementCount, elementsCountUpperBound)
	}

	var best Size
	bestBits := int64(-1)
	for capacity := 2; capacity <= 8; capacity++ {
		load := approxLoad[capacity]

		// A query compares against up to 2k slots, so the fingerprint must
		// satisfy 2k / 2^F <= target rate.
		length := int(math.Ceil(-math.Log2(targetFalsePositiveRate) + math.Log2(float64(capacity)) + 1))
		buckets := int64(math.Ceil(float64(elementsCountUpperBound) / (float64(capacity) * load)))

		if length > MaxFingerprintLength || buckets >= maxBucketCount {
			continue
		}

		totalBits := buckets * int64(capacity) * int64(length)
		if bestBits == -1 || totalBits < bestBits {
			bestBits = totalBits
			best = Size{int(buckets), capacity, length}
		}
	}

	if bestBits == -1 {
		return Size{}, fmt.Errorf("%w: rate %v, capacity %d", ErrUnsatisfiable,
			targetFalsePositiveRate, elementsCountUpperBound)
	}
	return best, nil
}

// BucketCount returns the number of buckets.
func (s Size) BucketCount() int { return s.bucketCount }

// BucketCapacity returns the number of fingerprint slots per bucket.
func (s Size) BucketCapacity() int { return s.bucketCapacity }

// FingerprintLength returns the fingerprint width in bits.
func (s Size) FingerprintLength() int { return s.fingerprintLength }

// slotCount returns the total number of slots, bucketCount * bucketCapacity.
func (s Size) slotCount() int64 {
	return int64(s.bucketCount) * int64(s.bucketCapacity)
}

func (s Size) validate() error {
	_, err := NewSize(s.bucketCount, s.bucketCapacity, s.fingerprintLength)
	return err
}
