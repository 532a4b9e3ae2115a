package hllset

// The algebra methods combine two sketches of equal precision into a new one,
// leaving both operands untouched. They are exact over register bit patterns;
// as approximations of element-level set operations they inherit the usual
// collision behavior of hashing into a fixed number of bins.

// Union returns a sketch whose registers OR the operands' registers. Its
// bit evidence is exactly what a sketch of the combined stream would hold.
func (s *Sketch) Union(other *Sketch) (*Sketch, error) {
	out, err := s.newCompatible(other)
	if err != nil {
		return nil, err
	}
	for i := range out.regs {
		out.regs[i] = s.regs[i] | other.regs[i]
	}
	return out, nil
}

// Intersect returns a sketch keeping only the rank bits present in both
// operands.
func (s *Sketch) Intersect(other *Sketch) (*Sketch, error) {
	out, err := s.newCompatible(other)
	if err != nil {
		return nil, err
	}
	for i := range out.regs {
		out.regs[i] = s.regs[i] & other.regs[i]
	}
	return out, nil
}

// Difference returns a sketch keeping the rank bits present in s but absent
// from other: other's complement within s.
func (s *Sketch) Difference(other *Sketch) (*Sketch, error) {
	out, err := s.newCompatible(other)
	if err != nil {
		return nil, err
	}
	for i := range out.regs {
		out.regs[i] = s.regs[i] &^ other.regs[i]
	}
	return out, nil
}

// Xor returns the symmetric difference: rank bits present in exactly one of
// the two operands.
func (s *Sketch) Xor(other *Sketch) (*Sketch, error) {
	out, err := s.newCompatible(other)
	if err != nil {
		return nil, err
	}
	for i := range out.regs {
		out.regs[i] = s.regs[i] ^ other.regs[i]
	}
	return out, nil
}

// Delta decomposes a transition between a before sketch and an after sketch
// into the bit evidence that disappeared, persisted, and newly arrived.
type Delta struct {
	Deleted  *Sketch // in before, gone from after
	Retained *Sketch // in both
	Added    *Sketch // only in after
}

// Diff decomposes the transition from s (before) to other (after). The parts
// reassemble exactly: the union of Deleted and Retained equals s, and the
// union of Added and Retained equals other, register by register.
func (s *Sketch) Diff(other *Sketch) (Delta, error) {
	del, err := s.Difference(other)
	if err != nil {
		return Delta{}, err
	}
	ret, _ := s.Intersect(other)
	add, _ := other.Difference(s)
	return Delta{Deleted: del, Retained: ret, Added: add}, nil
}

func (s *Sketch) newCompatible(other *Sketch) (*Sketch, error) {
	if other == nil || len(other.regs) != len(s.regs) {
		return nil, ErrIncompatible
	}
	return &Sketch{p: s.p, m: s.m, regs: make([]uint32, len(s.regs))}, nil
}
