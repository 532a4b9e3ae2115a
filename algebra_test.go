package hllset

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestAlgebraExactRegisters(t *testing.T) {
	pad := make([]uint32, 12)
	a, err := Restore(append([]uint32{0b0011, 0b0101, 0, 0xFFFFFFFF}, pad...), 4)
	assert.Equal(t, nil, err)
	b, err := Restore(append([]uint32{0b0110, 0b0101, 0b1000, 0}, pad...), 4)
	assert.Equal(t, nil, err)

	testCases := []struct {
		name   string
		op     func(*Sketch, *Sketch) (*Sketch, error)
		expect []uint32
	}{
		{"union", (*Sketch).Union, []uint32{0b0111, 0b0101, 0b1000, 0xFFFFFFFF}},
		{"intersect", (*Sketch).Intersect, []uint32{0b0010, 0b0101, 0, 0}},
		{"difference", (*Sketch).Difference, []uint32{0b0001, 0, 0, 0xFFFFFFFF}},
		{"xor", (*Sketch).Xor, []uint32{0b0101, 0, 0b1000, 0xFFFFFFFF}},
	}

	for _, testCase := range testCases {
		out, err := testCase.op(a, b)
		assert.Equalf(t, nil, err, "%s", testCase.name)
		assert.Equal(t, testCase.expect, out.Dump()[:4], testCase.name)

		// operands must come through untouched
		assert.Equal(t, uint32(0b0011), a.Dump()[0], testCase.name)
		assert.Equal(t, uint32(0b0110), b.Dump()[0], testCase.name)
	}
}

func TestAlgebraLaws(t *testing.T) {
	a := streamSketch(t, 8, 1, 800)
	b := streamSketch(t, 8, 500, 1300)

	ab, err := a.Union(b)
	assert.Equal(t, nil, err)
	ba, _ := b.Union(a)
	assert.T(t, ab.Equal(ba))

	aa, _ := a.Union(a)
	assert.T(t, aa.Equal(a))

	ix, _ := a.Intersect(b)
	xi, _ := b.Intersect(a)
	assert.T(t, ix.Equal(xi))

	ia, _ := a.Intersect(a)
	assert.T(t, ia.Equal(a))

	// symmetric difference == union minus intersection, bit for bit
	x, _ := a.Xor(b)
	ui, _ := ab.Difference(ix)
	assert.T(t, x.Equal(ui))
}

func TestDiffReassembles(t *testing.T) {
	before := streamSketch(t, 8, 1, 600)
	after := streamSketch(t, 8, 300, 900)

	d, err := before.Diff(after)
	assert.Equal(t, nil, err)

	left, _ := d.Deleted.Union(d.Retained)
	assert.T(t, left.Equal(before))

	right, _ := d.Added.Union(d.Retained)
	assert.T(t, right.Equal(after))
}

func TestDiffSelf(t *testing.T) {
	s := streamSketch(t, 6, 1, 200)

	d, err := s.Diff(s)
	assert.Equal(t, nil, err)
	assert.T(t, d.Deleted.IsEmpty())
	assert.T(t, d.Added.IsEmpty())
	assert.T(t, d.Retained.Equal(s))
}

func TestAlgebraIncompatible(t *testing.T) {
	a, _ := New(8)
	b, _ := New(9)

	ops := map[string]func(*Sketch, *Sketch) (*Sketch, error){
		"union":      (*Sketch).Union,
		"intersect":  (*Sketch).Intersect,
		"difference": (*Sketch).Difference,
		"xor":        (*Sketch).Xor,
	}
	for name, op := range ops {
		_, err := op(a, b)
		assert.Equalf(t, ErrIncompatible, err, "%s", name)
		_, err = op(a, nil)
		assert.Equalf(t, ErrIncompatible, err, "%s vs nil", name)
	}

	_, err := a.Diff(b)
	assert.Equal(t, ErrIncompatible, err)
}
