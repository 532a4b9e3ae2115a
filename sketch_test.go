package hllset

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestNewPrecisionRange(t *testing.T) {
	testCases := []struct {
		p         uint8
		expectErr error
	}{
		{0, ErrInvalidPrecision},
		{3, ErrInvalidPrecision},
		{4, nil},
		{10, nil},
		{18, nil},
		{19, ErrInvalidPrecision},
	}

	for i, testCase := range testCases {
		s, err := New(testCase.p)
		if err != testCase.expectErr {
			t.Errorf("Case %d: err = %v, want %v", i, err, testCase.expectErr)
			continue
		}
		if err == nil {
			if s.Precision() != testCase.p {
				t.Errorf("Case %d: precision %d", i, s.Precision())
			}
			if s.RegisterCount() != 1<<testCase.p {
				t.Errorf("Case %d: %d registers for p=%d", i, s.RegisterCount(), testCase.p)
			}
		}
	}
}

// Bins come from the leading bits, ranks from trailing zeros, and the same
// rank observed twice leaves the register unchanged.
func TestAddHash(t *testing.T) {
	s, err := New(4)
	assert.Equal(t, nil, err)

	const bin3 = uint64(3) << 59

	s.AddHash(bin3 | 1<<2) // rank 3
	s.AddHash(bin3 | 1)    // rank 1
	assert.Equal(t, uint32(0b101), s.Dump()[3])

	s.AddHash(bin3 | 1)
	assert.Equal(t, uint32(0b101), s.Dump()[3])

	// rank 32 is the last one a register can hold
	s.AddHash(bin3 | 1<<31)
	assert.Equal(t, uint32(1<<31|0b101), s.Dump()[3])

	// rank 33 has no bit to land in and is dropped
	s.AddHash(bin3 | 1<<32)
	assert.Equal(t, uint32(1<<31|0b101), s.Dump()[3])
}

// Bin selection reads p+1 leading bits and reduces mod 2^p, so two hashes
// differing only in the top bit land in the same bin with the same rank.
func TestAddHashTopBit(t *testing.T) {
	a, _ := New(4)
	b, _ := New(4)

	h := uint64(3)<<59 | 1<<7
	a.AddHash(h)
	b.AddHash(h | 1<<63)
	assert.T(t, a.Equal(b))
}

func TestAddHashGolden(t *testing.T) {
	s, _ := New(4)
	s.AddHash(0xBF09017AE57A5ADA)

	for i, r := range s.Dump() {
		if i == 7 {
			assert.Equal(t, uint32(2), r)
		} else {
			assert.Equal(t, uint32(0), r, i)
		}
	}
}

func TestMergeMatchesUnion(t *testing.T) {
	a := streamSketch(t, 8, 1, 500)
	b := streamSketch(t, 8, 400, 900)

	u, err := a.Union(b)
	assert.Equal(t, nil, err)

	m := a.Copy()
	assert.Equal(t, nil, m.Merge(b))
	assert.T(t, m.Equal(u))

	// merging the same operand again changes nothing
	assert.Equal(t, nil, m.Merge(b))
	assert.T(t, m.Equal(u))
}

func TestMergeIncompatible(t *testing.T) {
	a, _ := New(8)
	b, _ := New(9)

	assert.Equal(t, ErrIncompatible, a.Merge(b))
	assert.Equal(t, ErrIncompatible, a.Merge(nil))
}

func TestCopyIsDeep(t *testing.T) {
	a, _ := New(4)
	a.AddHash(uint64(3)<<59 | 1)

	c := a.Copy()
	assert.T(t, a.Equal(c))

	c.AddHash(uint64(5)<<59 | 1)
	assert.T(t, !a.Equal(c))
	assert.Equal(t, uint32(0), a.Dump()[5])
	assert.Equal(t, uint32(1), c.Dump()[5])
}

func TestNilSketches(t *testing.T) {
	var s *Sketch
	assert.T(t, s.Copy() == nil)
	assert.T(t, s.Equal(nil))

	a, _ := New(4)
	assert.T(t, !a.Equal(nil))
	assert.T(t, !s.Equal(a))
}

func TestIsEmpty(t *testing.T) {
	s, _ := New(5)
	assert.T(t, s.IsEmpty())

	s.AddHash(mix64(streamSalt ^ 1))
	assert.T(t, !s.IsEmpty())
}

func TestDumpRestore(t *testing.T) {
	a := streamSketch(t, 7, 1, 300)

	regs := a.Dump()
	b, err := Restore(regs, 7)
	assert.Equal(t, nil, err)
	assert.T(t, a.Equal(b))

	// Dump hands out a copy, not the live registers.
	d1 := a.Dump()
	d1[0]++
	assert.T(t, d1[0] != a.Dump()[0])
}

func TestRestoreStrictness(t *testing.T) {
	regs := make([]uint32, 128)

	_, err := Restore(regs[:127], 7)
	assert.Equal(t, ErrLengthMismatch, err)

	_, err = Restore(append(regs, 0), 7)
	assert.Equal(t, ErrLengthMismatch, err)

	_, err = Restore(regs, 3)
	assert.Equal(t, ErrInvalidPrecision, err)
	_, err = Restore(regs, 19)
	assert.Equal(t, ErrInvalidPrecision, err)
}
