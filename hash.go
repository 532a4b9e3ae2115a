package hllset

import (
	"encoding/binary"
	"math"

	"github.com/dgryski/go-metro"
)

// Element enumerates the value types with a canonical hash encoding. Strings
// and byte slices hash over their raw bytes; the integer types hash over an
// 8-byte little-endian two's-complement encoding, so Add(s, int(7)),
// Add(s, int64(7)) and Add(s, uint64(7)) are the same element. Floats hash
// over their IEEE 754 bit pattern.
type Element interface {
	string | []byte | int | int64 | uint64 | float64
}

// MapKey is the subset of Element usable as a map key.
type MapKey interface {
	string | int | int64 | uint64 | float64
}

// Hash64 returns the canonical 64-bit hash of v. Seed 0 is the plain hash.
// A nonzero seed selects an independent hash family and reduces the result
// modulo the maximum signed 64-bit value, which is how decorrelated sketches
// of the same universe (multiple estimators, hash-level bootstrapping) are
// produced without disturbing the seed-0 identity.
func Hash64[E Element](v E, seed uint64) uint64 {
	var h uint64
	switch x := any(v).(type) {
	case string:
		h = metro.Hash64Str(x, seed)
	case []byte:
		h = metro.Hash64(x, seed)
	case int:
		h = hashWord(uint64(int64(x)), seed)
	case int64:
		h = hashWord(uint64(x), seed)
	case uint64:
		h = hashWord(x, seed)
	case float64:
		h = hashWord(math.Float64bits(x), seed)
	}
	if seed != 0 {
		h %= math.MaxInt64
	}
	return h
}

func hashWord(w, seed uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], w)
	return metro.Hash64(b[:], seed)
}

// Add inserts v into s under its canonical hash.
func Add[E Element](s *Sketch, v E) {
	s.AddHash(Hash64(v, 0))
}

// AddSeeded inserts v under the hash family selected by seed. Sketches built
// with different seeds over the same data are statistically independent.
func AddSeeded[E Element](s *Sketch, v E, seed uint64) {
	s.AddHash(Hash64(v, seed))
}

// AddBatch inserts every element of vs.
func AddBatch[E Element](s *Sketch, vs []E) {
	for _, v := range vs {
		Add(s, v)
	}
}

// AddMap inserts every key and every value of kv, fingerprinting a key-value
// store as the set of everything it contains. Iteration order is irrelevant
// because register updates commute.
func AddMap[K MapKey, V Element](s *Sketch, kv map[K]V) {
	for k, v := range kv {
		Add(s, k)
		Add(s, v)
	}
}
