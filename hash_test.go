package hllset

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestHash64Deterministic(t *testing.T) {
	assert.Equal(t, Hash64("rook", 0), Hash64("rook", 0))
	assert.Equal(t, Hash64("rook", 7), Hash64("rook", 7))
	assert.Equal(t, Hash64(int64(-12), 0), Hash64(int64(-12), 0))
	assert.Equal(t, Hash64(1.5, 0), Hash64(1.5, 0))
}

// One logical value, several Go types, one element.
func TestHash64CanonicalEncoding(t *testing.T) {
	assert.Equal(t, Hash64(int(42), 0), Hash64(int64(42), 0))
	assert.Equal(t, Hash64(int64(42), 0), Hash64(uint64(42), 0))
	assert.Equal(t, Hash64(int(-3), 0), Hash64(int64(-3), 0))

	assert.Equal(t, Hash64("crow", 0), Hash64([]byte("crow"), 0))
	assert.Equal(t, Hash64("", 0), Hash64([]byte{}, 0))
}

// A nonzero seed folds the hash into the signed-64 range.
func TestHash64SeededRange(t *testing.T) {
	for seed := uint64(1); seed <= 64; seed++ {
		h := Hash64("seeded", seed)
		assert.T(t, h < 1<<63, h)
	}
}

func TestSeedDecorrelation(t *testing.T) {
	plain, _ := New(8)
	s1, _ := New(8)
	s2, _ := New(8)

	for i := int64(0); i < 1000; i++ {
		Add(plain, i)
		AddSeeded(s1, i, 1)
		AddSeeded(s2, i, 2)
	}

	assert.T(t, !plain.Equal(s1))
	assert.T(t, !s1.Equal(s2))
}

func TestAddIdempotent(t *testing.T) {
	once, _ := New(DefaultPrecision)
	twice, _ := New(DefaultPrecision)

	Add(once, "pelican")
	Add(twice, "pelican")
	Add(twice, "pelican")
	assert.T(t, once.Equal(twice))
}

func TestAddBatch(t *testing.T) {
	a, _ := New(DefaultPrecision)
	b, _ := New(DefaultPrecision)

	words := []string{"heron", "egret", "ibis", "heron"}
	AddBatch(a, words)
	for _, w := range words {
		Add(b, w)
	}
	assert.T(t, a.Equal(b))
}

func TestAddMap(t *testing.T) {
	a, _ := New(DefaultPrecision)
	b, _ := New(DefaultPrecision)

	kv := map[string]int64{"one": 1, "two": 2, "three": 3}
	AddMap(a, kv)
	for k, v := range kv {
		Add(b, k)
		Add(b, v)
	}
	assert.T(t, a.Equal(b))
}
