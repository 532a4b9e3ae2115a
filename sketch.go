package hllset

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// MinPrecision and MaxPrecision bound the register-count exponent.
	MinPrecision = 4
	MaxPrecision = 18

	// DefaultPrecision trades roughly 3% standard error for 4KiB of
	// registers, a reasonable middle ground for set fingerprints.
	DefaultPrecision = 10

	// registerWidth is the number of rank bits a bin can record.
	registerWidth = 32
)

var (
	// ErrInvalidPrecision is returned when a precision outside
	// [MinPrecision, MaxPrecision] is given.
	ErrInvalidPrecision = errors.New("hllset: precision must be in [4,18]")

	// ErrIncompatible is returned by binary operations over sketches whose
	// register counts differ.
	ErrIncompatible = errors.New("hllset: sketches have different precisions")

	// ErrLengthMismatch is returned when register data of the wrong shape or
	// length is supplied.
	ErrLengthMismatch = errors.New("hllset: register data has wrong length")
)

// Sketch is a fixed-size set sketch. Each of its 2^p bins holds a 32-bit
// bitmask in which bit k-1 records that a hashed element with rank k landed in
// that bin. Registers only ever accumulate bits, so insertion order is
// irrelevant and re-inserting an element is a no-op.
//
// A Sketch must be confined to a single writer: concurrent AddHash or Merge
// calls on the same value race. Read-only operations (estimation, similarity,
// serialization, and the algebra methods, which allocate their results) are
// safe to run concurrently over sketches nobody is mutating.
type Sketch struct {
	p    uint8
	m    uint32
	regs []uint32
}

// New returns an empty sketch with 2^p zeroed registers.
func New(p uint8) (*Sketch, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, ErrInvalidPrecision
	}
	m := uint32(1) << p
	return &Sketch{p: p, m: m, regs: make([]uint32, m)}, nil
}

// Precision returns the register-count exponent fixed at construction.
func (s *Sketch) Precision() uint8 { return s.p }

// RegisterCount returns the number of bins, 2^p.
func (s *Sketch) RegisterCount() uint32 { return s.m }

// AddHash records one pre-hashed element. The top p+1 bits of h select a bin
// (one extra bit so bin selection stays clear of the rank bits), and the rank
// is the count of trailing zeros plus one, with the top p bits forced to one
// so the count cannot run into the bin field. Ranks above 32 do not fit in a
// register and are silently dropped.
func (s *Sketch) AddHash(h uint64) {
	bin := (h >> (63 - s.p)) & uint64(s.m-1)
	rank := bits.TrailingZeros64(h|(^uint64(0)<<(64-s.p))) + 1
	if rank <= registerWidth {
		s.regs[bin] |= 1 << (rank - 1)
	}
}

// Merge folds other into s register by register (in-place union). The other
// sketch is never mutated. Sketches of different precisions do not merge.
func (s *Sketch) Merge(other *Sketch) error {
	if other == nil || len(other.regs) != len(s.regs) {
		return ErrIncompatible
	}
	for i, r := range other.regs {
		s.regs[i] |= r
	}
	return nil
}

// Copy returns a sketch with identical registers sharing no storage with s.
func (s *Sketch) Copy() *Sketch {
	if s == nil {
		return nil
	}
	c := &Sketch{p: s.p, m: s.m, regs: make([]uint32, len(s.regs))}
	copy(c.regs, s.regs)
	return c
}

// Equal reports whether both sketches have the same register count and
// bit-identical registers.
func (s *Sketch) Equal(other *Sketch) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	if len(s.regs) != len(other.regs) {
		return false
	}
	for i, r := range s.regs {
		if other.regs[i] != r {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no element has ever been recorded.
func (s *Sketch) IsEmpty() bool {
	for _, r := range s.regs {
		if r != 0 {
			return false
		}
	}
	return true
}

// Dump exports the raw registers as a copy, suitable for persistence next to
// the precision.
func (s *Sketch) Dump() []uint32 {
	out := make([]uint32, len(s.regs))
	copy(out, s.regs)
	return out
}

// Restore rebuilds a sketch from a Dump result. Unlike DecodeBitString this
// is strict: a vector whose length is not exactly 2^p is rejected rather than
// padded or truncated.
func Restore(regs []uint32, p uint8) (*Sketch, error) {
	s, err := New(p)
	if err != nil {
		return nil, err
	}
	if len(regs) != len(s.regs) {
		return nil, ErrLengthMismatch
	}
	copy(s.regs, regs)
	return s, nil
}

// String summarizes the sketch for debugging.
func (s *Sketch) String() string {
	active := 0
	for _, r := range s.regs {
		if r != 0 {
			active++
		}
	}
	return fmt.Sprintf("hllset.Sketch{p:%d bins:%d active:%d}", s.p, s.m, active)
}
