// Compressed serialization.
//
// A table serialized below its maximum load is mostly zero words, which
// zstd collapses well. CompressedBytes and SerializedTableFromCompressedBytes
// wrap the raw blob; the uncompressed format is unchanged.
package cuckoo

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once because zstd encoder/decoder construction is expensive
// relative to compressing a single table blob. SpeedFastest: the win here
// is the zero runs, and a higher level buys little on top.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// CompressedBytes returns the zstd-compressed serialization.
func (s SerializedTable) CompressedBytes() []byte {
	return zstdEncoder.EncodeAll(s.raw, nil)
}

// SerializedTableFromCompressedBytes inverts CompressedBytes.
func SerializedTableFromCompressedBytes(compressed []byte) (SerializedTable, error) {
	raw, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return SerializedTable{}, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return SerializedTable{raw: raw}, nil
}
