package hllset

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestTensorShape(t *testing.T) {
	s := streamSketch(t, 4, 1, 50)

	tn := s.Tensor()
	assert.Equal(t, 16, len(tn))
	for i, row := range tn {
		assert.Equal(t, 32, len(row), i)
	}
}

// Rows are most-significant bit first.
func TestTensorBitOrder(t *testing.T) {
	regs := make([]uint32, 16)
	regs[0] = 0x80000001
	regs[2] = 1 << 30
	s, err := Restore(regs, 4)
	assert.Equal(t, nil, err)

	tn := s.Tensor()
	assert.Equal(t, true, tn[0][0])
	assert.Equal(t, false, tn[0][1])
	assert.Equal(t, true, tn[0][31])
	assert.Equal(t, true, tn[2][1])
	assert.Equal(t, false, tn[2][0])
}

func TestTensorRoundTrip(t *testing.T) {
	s := streamSketch(t, 5, 1, 200)

	rt, err := FromTensor(s.Tensor(), 5)
	assert.Equal(t, nil, err)
	assert.T(t, rt.Equal(s))
}

func TestFromTensorShapeChecks(t *testing.T) {
	s := streamSketch(t, 4, 1, 20)

	tn := s.Tensor()
	_, err := FromTensor(tn[:15], 4)
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	tn = s.Tensor()
	tn[3] = tn[3][:31]
	_, err = FromTensor(tn, 4)
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = FromTensor(s.Tensor(), 3)
	assert.Equal(t, ErrInvalidPrecision, err)
}

func TestBitStringRoundTrip(t *testing.T) {
	s := streamSketch(t, 4, 1, 100)

	flat := Flatten(s.Tensor())
	assert.Equal(t, 16*32, len(flat))

	str := EncodeBitString(flat)
	assert.Equal(t, 16*32, len(str))

	ones := 0
	for _, r := range s.Dump() {
		ones += bits.OnesCount32(r)
	}
	assert.Equal(t, ones, strings.Count(str, "1"))

	back, err := DecodeBitString(str, 4)
	assert.Equal(t, nil, err)
	assert.Equal(t, flat, back)
}

// Truncated input parses as if right-padded with zeros.
func TestDecodeBitStringPadding(t *testing.T) {
	flat, err := DecodeBitString("101", 4)
	assert.Equal(t, nil, err)
	assert.Equal(t, 16*32, len(flat))
	assert.Equal(t, true, flat[0])
	assert.Equal(t, false, flat[1])
	assert.Equal(t, true, flat[2])
	for i, b := range flat[3:] {
		assert.T(t, !b, i)
	}

	empty, err := DecodeBitString("", 4)
	assert.Equal(t, nil, err)
	assert.Equal(t, 16*32, len(empty))
}

func TestDecodeBitStringErrors(t *testing.T) {
	_, err := DecodeBitString(strings.Repeat("0", 16*32+1), 4)
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	_, err = DecodeBitString("0102", 4)
	assert.T(t, err != nil)

	_, err = DecodeBitString("0", 19)
	assert.Equal(t, ErrInvalidPrecision, err)
}
