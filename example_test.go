package hllset

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strconv"
)

// A simple walkthrough on how to use Sketch.
func Example() {
	const numToInsert = 100000

	// Any good hash function works, truncated to 8 bytes to fit in a uint64.
	hashU64 := func(s string) uint64 {
		sum := sha1.Sum([]byte(s))
		return binary.LittleEndian.Uint64(sum[0:8])
	}

	sk, err := New(DefaultPrecision)
	if err != nil {
		panic(err)
	}

	// For this example, inputs are just decimal strings, e.g. "1", "2".
	for i := 0; i < numToInsert; i++ {
		sk.AddHash(hashU64(strconv.Itoa(i)))
	}

	// Duplicates do not affect the cardinality. This loop changes nothing.
	for i := 0; i < 10000; i++ {
		sk.AddHash(hashU64("1"))
	}

	// We inserted 100K unique elements, so the estimate should be nearby.
	count, err := sk.Cardinality()
	if err != nil {
		panic(err)
	}
	fmt.Println(count)
	// Output: 105962
}

// Match scores the overlap of two sketches as a rounded percentage of their
// union, so a sketch matched against itself always scores 100.
func ExampleSketch_Match() {
	hashU64 := func(s string) uint64 {
		sum := sha1.Sum([]byte(s))
		return binary.LittleEndian.Uint64(sum[0:8])
	}

	a, _ := New(DefaultPrecision)
	b, _ := New(DefaultPrecision)

	// Two ranges sharing a third of their combined universe.
	for i := 0; i < 20000; i++ {
		a.AddHash(hashU64(strconv.Itoa(i)))
	}
	for i := 10000; i < 30000; i++ {
		b.AddHash(hashU64(strconv.Itoa(i)))
	}

	m, _ := a.Match(b)
	self, _ := a.Match(a)
	fmt.Println(m, self)
	// Output: 43 100
}

// Sketches built with different seeds are statistically independent, which
// makes resampling-style estimates cheap: hash-level bootstrapping needs no
// copies of the underlying data, only another pass under another seed.
func Example_bootstrap() {
	const rounds = 20

	estimates := make([]uint64, rounds)
	for seed := uint64(1); seed <= rounds; seed++ {
		sk, err := New(DefaultPrecision)
		if err != nil {
			panic(err)
		}
		for i := 0; i < 50000; i++ {
			AddSeeded(sk, int64(i), seed)
		}
		c, err := sk.Cardinality()
		if err != nil {
			panic(err)
		}
		estimates[seed-1] = c
	}

	var sum float64
	for _, c := range estimates {
		sum += float64(c)
	}
	fmt.Printf("mean of %d decorrelated estimates: %.0f\n", rounds, sum/rounds)
}
