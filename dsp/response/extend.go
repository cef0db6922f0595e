package response

// Extend augments sparse control points so that their frequency span covers
// [0, nyquist], applying the low and high boundary policies.
//
// Synthetic points are appended at the end of the returned slices; the output
// is not sorted. When the lowest control frequency is already 0 (or the
// highest already equals nyquist), no point is added on that side.
func Extend(freqs, responses []float64, nyquist float64, low, high Policy, eps float64) ([]float64, []float64, error) {
	if len(freqs) == 0 {
		return nil, nil, ErrNoControlPoints
	}
	if len(freqs) != len(responses) {
		return nil, nil, ErrLengthMismatch
	}
	if nyquist <= 0 {
		return nil, nil, ErrInvalidNyquist
	}
	if eps <= 0 {
		return nil, nil, ErrInvalidEps
	}
	if !low.Valid() || !high.Valid() {
		return nil, nil, ErrInvalidPolicy
	}

	outFreqs := append([]float64(nil), freqs...)
	outResps := append([]float64(nil), responses...)

	minIdx := 0
	for i, f := range outFreqs {
		if f < outFreqs[minIdx] {
			minIdx = i
		}
	}
	minFreq := outFreqs[minIdx]

	if minFreq < 0 {
		return nil, nil, ErrNegativeFrequency
	}
	if minFreq > 0 {
		switch low {
		case PolicyFlat:
			outFreqs = append(outFreqs, 0)
			outResps = append(outResps, outResps[minIdx])
		case PolicyLinear:
			outFreqs = append(outFreqs, 0)
			outResps = append(outResps, 0)
		case PolicyZero:
			outFreqs = append(outFreqs, minFreq-eps, 0)
			outResps = append(outResps, 0, 0)
		}
	}

	maxIdx := 0
	for i, f := range outFreqs {
		if f > outFreqs[maxIdx] {
			maxIdx = i
		}
	}
	maxFreq := outFreqs[maxIdx]

	if maxFreq > nyquist {
		return nil, nil, ErrFrequencyAboveNyquist
	}
	if maxFreq < nyquist {
		switch high {
		case PolicyFlat:
			outFreqs = append(outFreqs, nyquist)
			outResps = append(outResps, outResps[maxIdx])
		case PolicyLinear:
			outFreqs = append(outFreqs, nyquist)
			outResps = append(outResps, 0)
		case PolicyZero:
			outFreqs = append(outFreqs, maxFreq+eps, nyquist)
			outResps = append(outResps, 0, 0)
		}
	}

	return outFreqs, outResps, nil
}
