package response

import (
	"fmt"
	"sort"
)

// Curve is an immutable piecewise-linear frequency-response interpolant.
//
// Control points are sorted by frequency at construction time and must be
// strictly increasing after the sort. Queries outside the covered frequency
// range fail rather than extrapolate.
type Curve struct {
	freqs []float64
	resps []float64
}

// NewCurve builds a linear interpolant over the given control points.
//
// The input does not need to be sorted. Duplicate frequencies (which can
// arise from PolicyZero extension with an eps on the order of the control
// point spacing) are rejected with ErrNotStrictlyIncreasing.
func NewCurve(freqs, responses []float64) (*Curve, error) {
	if len(freqs) == 0 {
		return nil, ErrNoControlPoints
	}
	if len(freqs) != len(responses) {
		return nil, ErrLengthMismatch
	}

	c := &Curve{
		freqs: append([]float64(nil), freqs...),
		resps: append([]float64(nil), responses...),
	}
	sort.Sort(byFrequency{c})

	for i := 1; i < len(c.freqs); i++ {
		if !(c.freqs[i] > c.freqs[i-1]) {
			return nil, fmt.Errorf("%w: %g at index %d", ErrNotStrictlyIncreasing, c.freqs[i], i)
		}
	}

	return c, nil
}

// MinFreq returns the lowest covered frequency in Hz.
func (c *Curve) MinFreq() float64 { return c.freqs[0] }

// MaxFreq returns the highest covered frequency in Hz.
func (c *Curve) MaxFreq() float64 { return c.freqs[len(c.freqs)-1] }

// At evaluates the curve at freq by linear interpolation between the two
// surrounding control points.
func (c *Curve) At(freq float64) (float64, error) {
	if freq < c.freqs[0] || freq > c.freqs[len(c.freqs)-1] {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, freq, c.freqs[0], c.freqs[len(c.freqs)-1])
	}
	if freq == c.freqs[len(c.freqs)-1] {
		return c.resps[len(c.resps)-1], nil
	}

	j := sort.SearchFloat64s(c.freqs, freq)
	if c.freqs[j] == freq {
		return c.resps[j], nil
	}

	f0, f1 := c.freqs[j-1], c.freqs[j]
	t := (freq - f0) / (f1 - f0)
	return c.resps[j-1] + t*(c.resps[j]-c.resps[j-1]), nil
}

// Sample evaluates the curve at each query frequency.
func (c *Curve) Sample(freqs []float64) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		y, err := c.At(f)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// byFrequency sorts a curve's point pairs by frequency.
type byFrequency struct{ c *Curve }

func (s byFrequency) Len() int           { return len(s.c.freqs) }
func (s byFrequency) Less(i, j int) bool { return s.c.freqs[i] < s.c.freqs[j] }
func (s byFrequency) Swap(i, j int) {
	s.c.freqs[i], s.c.freqs[j] = s.c.freqs[j], s.c.freqs[i]
	s.c.resps[i], s.c.resps[j] = s.c.resps[j], s.c.resps[i]
}
