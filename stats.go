// Filter introspection.
package cuckoo

import (
	json "github.com/goccy/go-json"
)

// Stats is a point-in-time snapshot of a filter's shape and occupancy.
type Stats struct {
	TableType         int     `json:"tableType"` // 0=uncompressed, 1=semi-sorted
	BucketCount       int     `json:"bucketCount"`
	BucketCapacity    int     `json:"bucketCapacity"`
	FingerprintLength int     `json:"fingerprintLength"`
	Count             int64   `json:"count"`
	Load              float64 `json:"load"`
}

// Stats returns a snapshot of the filter.
func (f *Filter[T]) Stats() Stats {
	return Stats{
		TableType:         f.table.kind(),
		BucketCount:       f.config.Size.bucketCount,
		BucketCapacity:    f.config.Size.bucketCapacity,
		FingerprintLength: f.config.Size.fingerprintLength,
		Count:             f.count,
		Load:              f.Load(),
	}
}

// JSON encodes the snapshot for logs and diagnostics.
func (s Stats) JSON() ([]byte, error) {
	return json.Marshal(s)
}
