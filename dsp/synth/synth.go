package synth

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-noise/dsp/response"
	"github.com/cwbudde/algo-noise/wavfile"
)

// Synthesizer creates shaped noise with deterministic random phases.
type Synthesizer struct {
	seed int64
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed sets the seed of the phase generator.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// New creates a configured Synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Seed returns the current phase generator seed.
func (s *Synthesizer) Seed() int64 { return s.seed }

// SetSeed replaces the phase generator seed.
func (s *Synthesizer) SetSeed(seed int64) { s.seed = seed }

// Synthesize generates the time-domain signal for the given shape.
//
// It returns the sample times in seconds and the raw (unnormalized) sample
// values. The output length is exactly duration * sampleRate.
func (s *Synthesizer) Synthesize(shape *Shape) (times, samples []float64, err error) {
	if err := shape.Validate(); err != nil {
		return nil, nil, err
	}

	nyquist, sampleRate, err := shape.Rates()
	if err != nil {
		return nil, nil, err
	}

	freqs, resps, err := response.Extend(
		shape.Freqs, shape.Responses,
		nyquist, shape.LowBound, shape.HighBound, shape.eps(),
	)
	if err != nil {
		return nil, nil, err
	}

	curve, err := response.NewCurve(freqs, resps)
	if err != nil {
		return nil, nil, err
	}

	// Uniform grid over [0, nyquist] inclusive. The bin count ties the
	// mirrored spectrum length to the sample rate: 2n-2 == duration*rate.
	n := shape.binCount(nyquist)
	binFreqs := make([]float64, n)
	for i := range binFreqs {
		binFreqs[i] = nyquist * float64(i) / float64(n-1)
	}

	mags, err := curve.Sample(binFreqs)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(s.seed))

	spectrum := make([]complex128, 2*n-2)
	for i, m := range mags {
		spectrum[i] = cmplx.Rect(m, 2*math.Pi*rng.Float64())
	}

	// Conjugate mirror of the interior bins. The DC and nyquist bins are
	// not mirrored.
	for i := 1; i <= n-2; i++ {
		spectrum[n-1+i] = cmplx.Conj(spectrum[n-1-i])
	}

	timeDomain := fft.IFFT(spectrum)

	samples = make([]float64, len(timeDomain))
	times = make([]float64, len(timeDomain))
	for i, v := range timeDomain {
		// The symmetric spectrum forces a real result; any imaginary
		// residue is numerical noise.
		samples[i] = real(v)
		times[i] = float64(i) / sampleRate
	}

	return times, samples, nil
}

// GenerateFile synthesizes the shape, normalizes the signal to DefaultPeak,
// and writes it as a mono 32-bit float WAV file.
//
// Validation failures surface before anything is written.
func (s *Synthesizer) GenerateFile(path string, shape *Shape) error {
	_, samples, err := s.Synthesize(shape)
	if err != nil {
		return err
	}

	if err := Normalize(samples, DefaultPeak); err != nil {
		return err
	}

	_, sampleRate, err := shape.Rates()
	if err != nil {
		return err
	}

	return wavfile.Write(path, samples, int(math.Round(sampleRate)))
}
