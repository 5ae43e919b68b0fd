// Hash algorithm implementations for element hashing.
//
// The filter consumes 64 bits of hash entropy per element. Three algorithms
// are supported, selectable via Config.HashAlgorithm. The serialized table
// does not record the algorithm, so a rebuilt filter must be given the same
// one it was created with.
package cuckoo

import (
	"bytes"
	"encoding/binary"

	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgMurmur3 = 1 // Default. First 64 bits of MurmurHash3 x64_128
	AlgXXH3    = 2 // Fastest
	AlgBlake2b = 3 // Best distribution
)

// hash64 hashes data with the given algorithm. For AlgMurmur3 the result is
// the first 64-bit word of the 128-bit output, equal to what Guava's
// Hashing.murmur3_128() hash codes return from asLong, so serialized tables
// stay interchangeable with the Java setfilters library.
func hash64(data []byte, alg int) uint64 {
	switch alg {
	case AlgMurmur3:
		h1, _ := murmur3.Sum128(data)
		return h1
	case AlgXXH3:
		return xxh3.Hash(data)
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return binary.LittleEndian.Uint64(h.Sum(nil))
	default:
		return 0
	}
}

// hashElement funnels the element into a buffer and hashes it.
func hashElement[T any](element T, funnel Funnel[T], alg int) uint64 {
	var buf bytes.Buffer
	funnel(element, &buf)
	return hash64(buf.Bytes(), alg)
}

func validAlgorithm(alg int) bool {
	switch alg {
	case AlgMurmur3, AlgXXH3, AlgBlake2b:
		return true
	}
	return false
}
