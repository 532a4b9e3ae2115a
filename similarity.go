package hllset

import "math"

// Match scores how alike two sketches are as a whole-number percentage,
// the Jaccard index of the estimated cardinalities: 100 times the count of
// the intersection over the count of the union, rounded. Two sketches with
// no observed elements between them score 0; a non-empty sketch matched
// against itself scores 100.
func (s *Sketch) Match(other *Sketch) (int, error) {
	u, err := s.Union(other)
	if err != nil {
		return 0, err
	}
	cu, err := u.Cardinality()
	if err != nil {
		return 0, err
	}
	if cu == 0 {
		return 0, nil
	}
	x, err := s.Intersect(other)
	if err != nil {
		return 0, err
	}
	ci, err := x.Cardinality()
	if err != nil {
		return 0, err
	}
	return int(math.Round(100 * float64(ci) / float64(cu))), nil
}

// Cosine treats the raw registers as integer vectors and returns the cosine
// of the angle between them, in [0, 1]. Unlike Match it never estimates
// cardinality, so it stays cheap and exact, but the value reflects register
// overlap rather than element overlap. If either vector is all zeros the
// similarity is 0.
func (s *Sketch) Cosine(other *Sketch) (float64, error) {
	if other == nil || len(other.regs) != len(s.regs) {
		return 0, ErrIncompatible
	}
	var dot, nx, ny float64
	for i, r := range s.regs {
		x := float64(r)
		y := float64(other.regs[i])
		dot += x * y
		nx += x * x
		ny += y * y
	}
	if nx == 0 || ny == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(nx) * math.Sqrt(ny)), nil
}

// Relation describes how a sketch sits relative to a reference set.
// Coverage is the share of the reference the sketch contains; Exclusion is
// the sketch's surplus, what it holds beyond the reference, also scaled by
// the reference size. Each ratio is estimated independently, so the pair is
// descriptive rather than an exact partition.
type Relation struct {
	Coverage  float64
	Exclusion float64
}

// RelationTo measures the receiver against reference sketch other. A
// reference with estimated cardinality zero yields the zero Relation.
func (s *Sketch) RelationTo(other *Sketch) (Relation, error) {
	if other == nil || len(other.regs) != len(s.regs) {
		return Relation{}, ErrIncompatible
	}
	co, err := other.Cardinality()
	if err != nil {
		return Relation{}, err
	}
	if co == 0 {
		return Relation{}, nil
	}
	x, err := s.Intersect(other)
	if err != nil {
		return Relation{}, err
	}
	ci, err := x.Cardinality()
	if err != nil {
		return Relation{}, err
	}
	surplus, err := s.Difference(other)
	if err != nil {
		return Relation{}, err
	}
	cs, err := surplus.Cardinality()
	if err != nil {
		return Relation{}, err
	}
	return Relation{
		Coverage:  float64(ci) / float64(co),
		Exclusion: float64(cs) / float64(co),
	}, nil
}
