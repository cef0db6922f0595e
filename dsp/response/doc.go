// Package response models piecewise-linear frequency-response curves built
// from sparse (frequency, response) control points.
//
// A response curve is constructed in two steps. [Extend] augments the control
// points with synthetic boundary points so that the curve covers the full
// range from 0 Hz to the Nyquist limit, according to a [Policy] chosen
// independently for each end. [NewCurve] then sorts the points by frequency
// and builds a linear interpolant over them.
//
// # Usage
//
// Extend a band-limited response to [0, nyquist] with sharp cutoffs, then
// evaluate it:
//
//	freqs, resps, _ := response.Extend(
//	    []float64{2000, 6000}, []float64{1, 1},
//	    8000, response.PolicyZero, response.PolicyZero, 0.001,
//	)
//	curve, _ := response.NewCurve(freqs, resps)
//	y, _ := curve.At(4000) // 1
//
// Extend appends boundary points at the end of the sequences without
// sorting; Curve owns the sort. Callers composing the two directly must not
// assume Extend output is ordered.
package response
