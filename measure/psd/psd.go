// Package psd estimates the one-sided power spectrum of a real signal.
//
// It is used to verify that synthesized calibration noise carries energy
// where its response curve says it should: window, zero-pad to a power of
// two, FFT, and sum |X[k]|^2 over frequency bands.
package psd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by psd functions.
var (
	ErrEmptySignal       = errors.New("psd: signal must not be empty")
	ErrInvalidSampleRate = errors.New("psd: sample rate must be > 0")
	ErrFFTSizeTooSmall   = errors.New("psd: fft size must cover the signal length")
)

// Config holds analysis parameters.
type Config struct {
	SampleRate float64
	FFTSize    int // 0 selects the next power of 2 >= signal length
}

// Result holds the one-sided power spectrum, bins 0 (DC) through Nyquist.
type Result struct {
	BinFreqs []float64 // bin center frequencies in Hz
	Power    []float64 // |X[k]|^2 per bin
}

// Analyze computes the Hann-windowed power spectrum of signal.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrFFTSizeTooSmall, fftSize, len(signal))
	}

	buf := make([]complex128, fftSize)
	for i, v := range signal {
		buf[i] = complex(v*hann(i, len(signal)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("psd: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, buf); err != nil {
		return Result{}, fmt.Errorf("psd: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range binCount {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	binFreqs := make([]float64, binCount)
	for i := range binFreqs {
		binFreqs[i] = float64(i) * cfg.SampleRate / float64(fftSize)
	}

	return Result{BinFreqs: binFreqs, Power: power}, nil
}

// BandPower sums the power of all bins with center frequency in [loHz, hiHz].
func (r Result) BandPower(loHz, hiHz float64) float64 {
	sum := 0.0
	for i, f := range r.BinFreqs {
		if f >= loHz && f <= hiHz {
			sum += r.Power[i]
		}
	}
	return sum
}

// TotalPower sums the power of all bins.
func (r Result) TotalPower() float64 {
	sum := 0.0
	for _, p := range r.Power {
		sum += p
	}
	return sum
}

// hann returns the Hann window coefficient for index i of an n-sample frame.
func hann(i, n int) float64 {
	if n < 2 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
