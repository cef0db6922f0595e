// Package wavfile persists mono float64 signals as 32-bit IEEE float WAV
// files.
package wavfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/wav"
)

// Errors returned by wavfile functions.
var (
	ErrEmptySignal       = errors.New("wavfile: signal must not be empty")
	ErrInvalidSampleRate = errors.New("wavfile: sample rate must be > 0")
)

const (
	bitsPerSample = 32
	channels      = 1
	formatFloat   = 3 // WAVE_FORMAT_IEEE_FLOAT
)

// Write creates path and writes samples into it as a mono 32-bit float WAV
// file. Nothing is created if validation fails.
func Write(path string, samples []float64, sampleRate int) (err error) {
	if len(samples) == 0 {
		return ErrEmptySignal
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: error creating %s: %w", path, err)
	}

	defer func() {
		cerr := file.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("wavfile: failed to close file: %w", cerr)
		}
	}()

	enc := wav.NewEncoder(file, sampleRate, bitsPerSample, channels, formatFloat)
	for _, v := range samples {
		if err := enc.WriteFrame(float32(v)); err != nil {
			return fmt.Errorf("wavfile: failed to write frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: failed to close encoder: %w", err)
	}

	return nil
}
