package cuckoo_test

import (
	"fmt"
	"log"

	"github.com/jpl-au/cuckoo"
)

func Example() {
	// Size the filter for 10,000 elements at a 1% false positive rate.
	size, err := cuckoo.ComputeEfficientSize(0.01, 10000)
	if err != nil {
		log.Fatal(err)
	}

	filter, err := cuckoo.New(cuckoo.Config{Size: size}, cuckoo.StringFunnel)
	if err != nil {
		log.Fatal(err)
	}

	filter.Insert("alice")
	filter.Insert("bob")

	fmt.Println(filter.Contains("alice"))
	fmt.Println(filter.Contains("mallory"))

	// Deletion works, but only for elements that were inserted.
	filter.Delete("bob")
	fmt.Println(filter.Contains("bob"))
	// Output: true
	// false
	// false
}

func ExampleFromSerializedTable() {
	size, _ := cuckoo.ComputeEfficientSize(0.01, 1000)
	filter, _ := cuckoo.New(cuckoo.Config{Size: size}, cuckoo.Int64Funnel)

	for i := int64(0); i < 1000; i++ {
		filter.Insert(i)
	}

	// The blob records the table only. The rebuilt filter must be given
	// the same hash algorithm, strategy, and funnel.
	blob := filter.SerializeTable().Bytes()

	rebuilt, err := cuckoo.FromSerializedTable(
		cuckoo.SerializedTableFromBytes(blob), cuckoo.Config{}, cuckoo.Int64Funnel)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(rebuilt.Contains(42))
	// Output: true
}

func ExampleFilter_Stats() {
	size, _ := cuckoo.NewSize(100, 4, 16)
	filter, _ := cuckoo.New(cuckoo.Config{Size: size, SpaceOptimized: true}, cuckoo.IntFunnel)

	for i := 0; i < 100; i++ {
		filter.Insert(i)
	}

	out, _ := filter.Stats().JSON()
	fmt.Println(string(out))
	// Output: {"tableType":1,"bucketCount":100,"bucketCapacity":4,"fingerprintLength":16,"count":100,"load":0.25}
}
