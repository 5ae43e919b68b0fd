// Filter type and lifecycle operations.
//
// Filter ties the table, hash algorithm, strategy, and funnel together and
// runs the cuckoo insertion walk. It owns its table, which owns the bit
// array; nothing here is safe for concurrent mutation.
package cuckoo

import (
	"fmt"
	"math/rand/v2"
)

// Config holds filter configuration options.
type Config struct {
	Size           Size       // Required; from NewSize or ComputeEfficientSize
	HashAlgorithm  int        // 1=Murmur3, 2=XXH3, 3=Blake2b (default Murmur3)
	Strategy       int        // 1=SimpleMod, 2=UniformMod (default SimpleMod)
	SpaceOptimized bool       // Use the semi-sorted layout when applicable
	Rand           *rand.Rand // Victim and walk-start selection; nil seeds a new source
}

// Filter is a cuckoo filter over elements of type T.
type Filter[T any] struct {
	config Config
	table  table
	funnel Funnel[T]
	rng    *rand.Rand
	count  int64
}

// New creates an empty filter. The zero values of Config.HashAlgorithm and
// Config.Strategy select Murmur3 and SimpleMod; Config.Size must be set.
func New[T any](config Config, funnel Funnel[T]) (*Filter[T], error) {
	config = withDefaults(config)
	if err := checkConfig(config); err != nil {
		return nil, err
	}
	if err := config.Size.validate(); err != nil {
		return nil, err
	}

	t, err := newTable(config.Size, config.SpaceOptimized, config.Rand)
	if err != nil {
		return nil, err
	}
	return &Filter[T]{config: config, table: t, funnel: funnel, rng: config.Rand}, nil
}

// FromSerializedTable rebuilds a filter from a serialized table. The blob
// records only the table layout and bit array: the hash algorithm, strategy,
// and funnel must be the ones the serializing filter used, or membership
// answers are undefined. Config.Size and Config.SpaceOptimized are ignored;
// both come from the blob. The element count is recomputed by scanning the
// table for occupied slots.
func FromSerializedTable[T any](st SerializedTable, config Config, funnel Funnel[T]) (*Filter[T], error) {
	config = withDefaults(config)
	if err := checkConfig(config); err != nil {
		return nil, err
	}

	t, err := parseTable(st, config.Rand)
	if err != nil {
		return nil, err
	}
	config.Size = t.size()
	config.SpaceOptimized = t.kind() == tableTypeSemiSorted
	return &Filter[T]{
		config: config,
		table:  t,
		funnel: funnel,
		rng:    config.Rand,
		count:  t.occupied(),
	}, nil
}

func withDefaults(config Config) Config {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgMurmur3
	}
	if config.Strategy == 0 {
		config.Strategy = StrategySimpleMod
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return config
}

func checkConfig(config Config) error {
	if !validAlgorithm(config.HashAlgorithm) {
		return fmt.Errorf("%w: %d", ErrHashAlgorithm, config.HashAlgorithm)
	}
	if !validStrategy(config.Strategy) {
		return fmt.Errorf("%w: %d", ErrStrategy, config.Strategy)
	}
	return nil
}

// Contains reports whether element is in the filter. False positives are
// possible; false negatives are not, as long as Delete is only called on
// inserted elements.
func (f *Filter[T]) Contains(element T) bool {
	fingerprint, bucket, altBucket := f.locate(element)
	return f.table.contains(bucket, fingerprint) || f.table.contains(altBucket, fingerprint)
}

// Insert adds element to the filter, reporting whether it fit. A false
// return leaves every bucket holding the same fingerprints as before and
// means the filter is near capacity; other elements may still insert
// successfully.
func (f *Filter[T]) Insert(element T) bool {
	fingerprint, bucket, altBucket := f.locate(element)

	if !f.table.isFull(bucket) {
		f.table.insertWithReplacement(bucket, fingerprint)
		f.count++
		return true
	}
	if !f.table.isFull(altBucket) {
		f.table.insertWithReplacement(altBucket, fingerprint)
		f.count++
		return true
	}

	// Both candidate buckets are full: walk the cuckoo graph from a random
	// one of the two.
	start := bucket
	if f.rng.IntN(2) == 1 {
		start = altBucket
	}
	if f.insertWithReplacements(fingerprint, start) {
		f.count++
		return true
	}
	return false
}

// Delete removes element from the filter, reporting whether it was found.
// Delete must only be called on elements believed to be in the filter:
// deleting an absent element can strip the fingerprint of an unrelated
// colliding element and make future Contains calls on it return false.
func (f *Filter[T]) Delete(element T) bool {
	fingerprint, bucket, altBucket := f.locate(element)
	deleted := f.table.delete(bucket, fingerprint) || f.table.delete(altBucket, fingerprint)
	if deleted {
		f.count--
	}
	return deleted
}

// Count returns the number of elements currently in the filter.
func (f *Filter[T]) Count() int64 {
	return f.count
}

// Load returns Count divided by the total slot count, in [0, 1].
func (f *Filter[T]) Load() float64 {
	return float64(f.count) / float64(f.config.Size.slotCount())
}

// Size returns the filter's size triple.
func (f *Filter[T]) Size() Size {
	return f.config.Size
}

// SerializeTable serializes the table state. See FromSerializedTable for
// what the blob does and does not contain.
func (f *Filter[T]) SerializeTable() SerializedTable {
	return f.table.serialize()
}

// locate derives the fingerprint and both candidate buckets for element.
func (f *Filter[T]) locate(element T) (fingerprint uint64, bucket, altBucket int) {
	h := hashElement(element, f.funnel, f.config.HashAlgorithm)
	fingerprint = fingerprintOf(h, f.config.Size.fingerprintLength, f.config.Strategy)
	bucket = bucketIndexOf(h, f.config.Size.bucketCount)
	altBucket = altBucketIndexOf(fingerprint, bucket, f.config.Size.bucketCount, f.config.HashAlgorithm)
	return fingerprint, bucket, altBucket
}

// insertWithReplacements performs the bounded random walk: repeatedly evict
// a random victim and chase it to its alternate bucket until a free slot
// turns up. On failure every displacement is unwound, newest first, so each
// bucket again holds the fingerprints it held before the insert. The order
// of slots within a bucket is not necessarily restored.
func (f *Filter[T]) insertWithReplacements(fingerprint uint64, startBucket int) bool {
	visited := []int{-1} // sentinel aligns the two slices
	replaced := []uint64{fingerprint}

	currFingerprint := fingerprint
	currBucket := startBucket
	for i := 0; i < maxReplacementCount; i++ {
		evictedFingerprint, evicted := f.table.insertWithReplacement(currBucket, currFingerprint)
		if !evicted {
			return true
		}

		visited = append(visited, currBucket)
		replaced = append(replaced, evictedFingerprint)

		currFingerprint = evictedFingerprint
		currBucket = altBucketIndexOf(currFingerprint, currBucket, f.config.Size.bucketCount, f.config.HashAlgorithm)
	}

	for i := len(visited) - 1; i > 0; i-- {
		f.table.delete(visited[i], replaced[i-1])
		f.table.insertWithReplacement(visited[i], replaced[i])
	}
	return false
}
