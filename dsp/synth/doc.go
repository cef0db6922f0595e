// Package synth generates noise whose power spectrum follows a user-defined
// piecewise-linear frequency-response curve.
//
// The response curve is sampled on a uniform frequency grid from 0 Hz to the
// Nyquist limit, each bin is given an independent random phase, the spectrum
// is mirrored to enforce conjugate symmetry, and an inverse DFT produces a
// real time-domain signal. The result is calibration/test noise for audio
// equipment: flat, band-limited, triangular, or impulse-like spectra.
//
// # Usage
//
// Generate ten seconds of band-limited noise at 16 kHz and write it to disk:
//
//	shape := &synth.Shape{
//	    Freqs:     []float64{2000, 6000},
//	    Responses: []float64{1, 1},
//	    Nyquist:   8000,
//	    LowBound:  response.PolicyZero,
//	    HighBound: response.PolicyZero,
//	}
//	gen := synth.New(synth.WithSeed(42))
//	err := gen.GenerateFile("band_2000-6000.wav", shape)
//
// Or keep the signal in memory:
//
//	times, samples, err := gen.Synthesize(shape)
//
// Phases are drawn from a generator seeded at construction time, so a given
// Synthesizer produces the same signal for the same shape on every call.
package synth
