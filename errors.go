// Package cuckoo implements a cuckoo filter: a space-efficient probabilistic
// multiset supporting membership queries, insertion, and deletion.
//
// Like a Bloom filter, a cuckoo filter can return false positives but never
// false negatives (provided Delete is only called on elements that were
// inserted). Unlike a Bloom filter it supports deletion, and at low target
// false-positive rates it usually needs fewer bits per element.
//
// Each element is reduced to a short non-zero fingerprint stored in one of
// two candidate buckets. When both buckets are full, insertion displaces an
// existing fingerprint into its alternate bucket, cuckoo-style, walking the
// bucket graph until a free slot is found or a step limit is reached. A
// failed insertion rolls every displacement back and reports false; it means
// the filter is near capacity.
//
// A Filter is not safe for concurrent mutation. Wrap it in external
// synchronisation if it is shared.
package cuckoo

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// distinguish configuration mistakes (out-of-range sizes, unknown algorithm
// or strategy) from damaged input (ErrCorruptTable, ErrDecompress). Failed
// inserts and missed deletes are not errors; they are boolean results.
var (
	ErrBucketCount       = errors.New("bucket count out of range")
	ErrBucketCapacity    = errors.New("bucket capacity out of range")
	ErrFingerprintLength = errors.New("fingerprint length out of range")
	ErrArrayLength       = errors.New("bit array length out of range")
	ErrBitsPerElement    = errors.New("bits per element out of range")
	ErrArrayBytes        = errors.New("byte length does not match bit array size")
	ErrTargetRate        = errors.New("target false positive rate out of range")
	ErrElementCount      = errors.New("element count upper bound out of range")
	ErrUnsatisfiable     = errors.New("no filter size satisfies the given input")
	ErrHashAlgorithm     = errors.New("unknown hash algorithm")
	ErrStrategy          = errors.New("unknown strategy")
	ErrSemiSorted        = errors.New("semi-sorted table requires bucket capacity 4 and fingerprint length >= 4")
	ErrCorruptTable      = errors.New("corrupt serialized table")
	ErrDecompress        = errors.New("decompression failed")
)
