package hllset

import (
	"math"
	"math/bits"
	"sort"
)

//go:generate go run biasdata_gen.go

// BiasData holds empirical bias-correction breakpoints for every precision.
// RawEstimates[p-MinPrecision] is an ascending list of raw-estimate
// breakpoints and Biases[p-MinPrecision] the overestimate observed at each.
// The built-in tables live in biasdata.go; alternates can be supplied to
// CardinalityWith, which keeps the estimator itself free of hidden state.
type BiasData struct {
	RawEstimates [][]float64
	Biases       [][]float64
}

var defaultBiasData = &BiasData{
	RawEstimates: rawEstimateData[:],
	Biases:       biasData[:],
}

// Cardinality returns the estimated number of distinct elements recorded so
// far, using the built-in bias tables. The estimate is recomputed from the
// registers on every call.
//
// The relative standard error is about 1.04/sqrt(2^p). Estimates are fine
// for an empty sketch (zero) and degrade gracefully as registers saturate.
func (s *Sketch) Cardinality() (uint64, error) {
	return s.CardinalityWith(defaultBiasData)
}

// CardinalityWith estimates cardinality against the supplied correction
// tables; nil means the built-in ones. It fails on a sketch whose precision
// is out of range, which can only happen to a zero or corrupted value since
// New enforces the range.
func (s *Sketch) CardinalityWith(data *BiasData) (uint64, error) {
	if s.p < MinPrecision || s.p > MaxPrecision {
		return 0, ErrInvalidPrecision
	}
	if data == nil {
		data = defaultBiasData
	}
	est := s.rawEstimate()
	est -= data.correction(s.p, est)
	if est < 0 {
		est = 0
	}
	return uint64(math.Round(est)), nil
}

// rawEstimate computes the uncorrected harmonic-mean estimate. The statistic
// per bin is the highest rank bit ever set, the same value a max-rank
// register would hold; an all-zero register contributes 2^0.
func (s *Sketch) rawEstimate() float64 {
	sum := 0.0
	for _, r := range s.regs {
		sum += 1.0 / float64(uint64(1)<<bits.Len32(r))
	}
	return alpha(s.m) * float64(s.m) * float64(s.m) / sum
}

func alpha(m uint32) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	}
	return 0.7213 / (1.0 + 1.079/float64(m))
}

// correction interpolates the bias to subtract from raw estimate e at
// precision p. Estimates above the last breakpoint take no correction;
// estimates below the first take the first bias as is.
func (d *BiasData) correction(p uint8, e float64) float64 {
	raws := d.RawEstimates[p-MinPrecision]
	biases := d.Biases[p-MinPrecision]
	i := sort.SearchFloat64s(raws, e)
	if i == len(raws) {
		return 0
	}
	if i == 0 {
		return biases[0]
	}
	c := (e - raws[i-1]) / (raws[i] - raws[i-1])
	return biases[i-1]*(1.0-c) + biases[i]*c
}
