// Table serialization.
//
// The blob is self-describing: a 16-byte header of four big-endian int32
// fields (tableType, bucketCount, bucketCapacity, fingerprintLength)
// followed by the bit array words as little-endian uint64s. The mixed
// endianness is part of the wire format and must not change. The hash
// algorithm, strategy, and funnel are not recorded; the caller supplies
// them again on reconstruction.
package cuckoo

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// serializedHeaderSize is the fixed size of the header in bytes.
const serializedHeaderSize = 16

// SerializedTable is an opaque serialized cuckoo filter table. Both the
// constructor and Bytes copy, so mutating a slice on either side never
// alters the serialization.
type SerializedTable struct {
	raw []byte
}

// SerializedTableFromBytes wraps a raw blob produced by SerializeTable.
func SerializedTableFromBytes(raw []byte) SerializedTable {
	return SerializedTable{raw: bytes.Clone(raw)}
}

// Bytes returns a copy of the raw serialization.
func (s SerializedTable) Bytes() []byte {
	return bytes.Clone(s.raw)
}

// encodeTable assembles the header and bit array body.
func encodeTable(tableType int, size Size, body []byte) SerializedTable {
	raw := make([]byte, serializedHeaderSize+len(body))
	binary.BigEndian.PutUint32(raw[0:4], uint32(tableType))
	binary.BigEndian.PutUint32(raw[4:8], uint32(size.bucketCount))
	binary.BigEndian.PutUint32(raw[8:12], uint32(size.bucketCapacity))
	binary.BigEndian.PutUint32(raw[12:16], uint32(size.fingerprintLength))
	copy(raw[serializedHeaderSize:], body)
	return SerializedTable{raw: raw}
}

// decodeTable splits a blob into its header fields and bit array body.
func decodeTable(raw []byte) (tableType int, size Size, body []byte, err error) {
	if len(raw) <= serializedHeaderSize {
		return 0, Size{}, nil, fmt.Errorf("%w: %d byte blob", ErrCorruptTable, len(raw))
	}

	tableType = int(int32(binary.BigEndian.Uint32(raw[0:4])))
	size, err = NewSize(
		int(int32(binary.BigEndian.Uint32(raw[4:8]))),
		int(int32(binary.BigEndian.Uint32(raw[8:12]))),
		int(int32(binary.BigEndian.Uint32(raw[12:16]))),
	)
	if err != nil {
		return 0, Size{}, nil, fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}

	body = raw[serializedHeaderSize:]
	if len(body)%8 != 0 {
		return 0, Size{}, nil, fmt.Errorf("%w: body of %d bytes is not whole words", ErrCorruptTable, len(body))
	}
	return tableType, size, body, nil
}
