package synth

import "errors"

// Errors returned by synth functions.
var (
	ErrRateRequired     = errors.New("synth: either nyquist or sample rate must be provided")
	ErrRateMismatch     = errors.New("synth: nyquist must equal sample rate / 2")
	ErrInvalidRate      = errors.New("synth: nyquist and sample rate must be > 0")
	ErrInvalidDuration  = errors.New("synth: duration must be > 0")
	ErrDurationTooShort = errors.New("synth: duration too short for the requested nyquist")
	ErrEmptySignal      = errors.New("synth: signal must not be empty")
)
