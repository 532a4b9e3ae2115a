package hllset

import "github.com/pkg/errors"

// Tensor expands the registers into a registerCount by 32 boolean grid,
// most-significant bit first within each row. The grid is freshly allocated
// and shares no storage with the sketch.
func (s *Sketch) Tensor() [][]bool {
	t := make([][]bool, len(s.regs))
	for i, r := range s.regs {
		row := make([]bool, registerWidth)
		for j := range row {
			row[j] = r&(1<<(registerWidth-1-j)) != 0
		}
		t[i] = row
	}
	return t
}

// Flatten linearizes a tensor row-major into a single boolean sequence.
func Flatten(t [][]bool) []bool {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	flat := make([]bool, 0, n)
	for _, row := range t {
		flat = append(flat, row...)
	}
	return flat
}

// EncodeBitString renders a flat boolean sequence as a string of '0' and
// '1' characters, one per bit.
func EncodeBitString(flat []bool) string {
	buf := make([]byte, len(flat))
	for i, b := range flat {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// DecodeBitString parses a string of '0' and '1' characters back into the
// flat boolean sequence for a sketch of precision p. Input shorter than
// registerCount*32 characters is right-padded with '0' before parsing;
// input that is too long fails, as does any character other than '0' or
// '1'. The padding mirrors the encoder's historical wire format, where
// trailing zero bits of an unsaturated sketch could be dropped in transit.
func DecodeBitString(str string, p uint8) ([]bool, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, ErrInvalidPrecision
	}
	want := int(uint32(1)<<p) * registerWidth
	if len(str) > want {
		return nil, errors.Wrapf(ErrLengthMismatch, "bit string has %d characters, want at most %d", len(str), want)
	}
	flat := make([]bool, want)
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '1':
			flat[i] = true
		case '0':
		default:
			return nil, errors.Errorf("hllset: non-binary byte %q at offset %d", str[i], i)
		}
	}
	return flat, nil
}

// FromTensor re-packs a registerCount by 32 boolean grid into a sketch of
// precision p, inverting Tensor exactly. The grid must have registerCount
// rows of 32 booleans each.
func FromTensor(t [][]bool, p uint8) (*Sketch, error) {
	s, err := New(p)
	if err != nil {
		return nil, err
	}
	if uint32(len(t)) != s.m {
		return nil, errors.Wrapf(ErrLengthMismatch, "tensor has %d rows, want %d", len(t), s.m)
	}
	for i, row := range t {
		if len(row) != registerWidth {
			return nil, errors.Wrapf(ErrLengthMismatch, "tensor row %d has %d bits, want %d", i, len(row), registerWidth)
		}
		var r uint32
		for j, b := range row {
			if b {
				r |= 1 << (registerWidth - 1 - j)
			}
		}
		s.regs[i] = r
	}
	return s, nil
}
