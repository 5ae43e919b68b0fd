// Funnels serialise application values to bytes for hashing.
package cuckoo

import (
	"encoding/binary"
	"io"
)

// A Funnel writes a byte representation of element to w. The filter hashes
// whatever the funnel writes, so two elements funnel to the same bytes iff
// the filter treats them as the same element. Funnels must be deterministic,
// and a rebuilt filter must use the funnel its serialization was built with.
type Funnel[T any] func(element T, w io.Writer)

// IntFunnel writes an int as 4 little-endian bytes, truncating to 32 bits.
func IntFunnel(element int, w io.Writer) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(element))
	w.Write(b[:])
}

// Int64Funnel writes an int64 as 8 little-endian bytes.
func Int64Funnel(element int64, w io.Writer) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(element))
	w.Write(b[:])
}

// Uint64Funnel writes a uint64 as 8 little-endian bytes.
func Uint64Funnel(element uint64, w io.Writer) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], element)
	w.Write(b[:])
}

// StringFunnel writes the raw bytes of a string.
func StringFunnel(element string, w io.Writer) {
	io.WriteString(w, element)
}

// BytesFunnel writes a byte slice as-is.
func BytesFunnel(element []byte, w io.Writer) {
	w.Write(element)
}
