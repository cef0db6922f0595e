package synth

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/response"
)

// Defaults applied by Shape for zero-valued optional fields.
const (
	DefaultDuration = 10.0  // seconds
	DefaultEps      = 0.001 // Hz
	DefaultPeak     = 0.8   // normalization target for written files
)

// Shape describes the desired noise spectrum and output format.
//
// Freqs and Responses are the control points of the frequency-response curve.
// Exactly one of Nyquist and SampleRate may be left zero; the other is then
// derived. When both are set they must satisfy Nyquist == SampleRate/2.
// Zero-valued Duration and Eps fall back to DefaultDuration and DefaultEps;
// the zero value of LowBound and HighBound is response.PolicyLinear.
type Shape struct {
	Freqs     []float64 // control frequencies in Hz
	Responses []float64 // response magnitude per control frequency

	Nyquist    float64 // Hz; 0 means derive from SampleRate
	SampleRate float64 // Hz; 0 means derive from Nyquist
	Duration   float64 // seconds

	LowBound  response.Policy // behavior between 0 Hz and min(Freqs)
	HighBound response.Policy // behavior between max(Freqs) and Nyquist
	Eps       float64         // cliff width for response.PolicyZero, in Hz
}

// Rates resolves the Nyquist limit and sample rate from whichever of the two
// the shape specifies.
func (s *Shape) Rates() (nyquist, sampleRate float64, err error) {
	if s.Nyquist < 0 || s.SampleRate < 0 {
		return 0, 0, ErrInvalidRate
	}

	switch {
	case s.Nyquist == 0 && s.SampleRate == 0:
		return 0, 0, ErrRateRequired
	case s.Nyquist != 0 && s.SampleRate != 0:
		if s.Nyquist != s.SampleRate/2 {
			return 0, 0, ErrRateMismatch
		}
		return s.Nyquist, s.SampleRate, nil
	case s.Nyquist != 0:
		return s.Nyquist, 2 * s.Nyquist, nil
	default:
		return s.SampleRate / 2, s.SampleRate, nil
	}
}

func (s *Shape) duration() float64 {
	if s.Duration == 0 {
		return DefaultDuration
	}
	return s.Duration
}

func (s *Shape) eps() float64 {
	if s.Eps == 0 {
		return DefaultEps
	}
	return s.Eps
}

// binCount returns the number of frequency bins between 0 and nyquist
// inclusive. The reconstructed signal has 2*binCount - 2 samples, which
// equals duration * sampleRate.
func (s *Shape) binCount(nyquist float64) int {
	return int(math.Round(s.duration()*nyquist)) + 1
}

// Validate checks the shape parameters without synthesizing anything.
func (s *Shape) Validate() error {
	nyquist, _, err := s.Rates()
	if err != nil {
		return err
	}

	if s.Duration < 0 {
		return ErrInvalidDuration
	}
	if s.binCount(nyquist) < 2 {
		return ErrDurationTooShort
	}

	if len(s.Freqs) == 0 {
		return response.ErrNoControlPoints
	}
	if len(s.Freqs) != len(s.Responses) {
		return response.ErrLengthMismatch
	}
	for _, f := range s.Freqs {
		if f < 0 {
			return response.ErrNegativeFrequency
		}
		if f > nyquist {
			return response.ErrFrequencyAboveNyquist
		}
	}

	if !s.LowBound.Valid() || !s.HighBound.Valid() {
		return response.ErrInvalidPolicy
	}
	if s.Eps < 0 {
		return response.ErrInvalidEps
	}

	return nil
}
