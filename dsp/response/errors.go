package response

import "errors"

// Errors returned by response functions.
var (
	ErrNoControlPoints       = errors.New("response: at least one control point is required")
	ErrLengthMismatch        = errors.New("response: freqs and responses must have the same length")
	ErrNegativeFrequency     = errors.New("response: frequencies must be nonnegative")
	ErrFrequencyAboveNyquist = errors.New("response: frequencies must not exceed nyquist")
	ErrInvalidPolicy         = errors.New("response: policy must be one of zero, flat, linear")
	ErrInvalidEps            = errors.New("response: eps must be > 0")
	ErrInvalidNyquist        = errors.New("response: nyquist must be > 0")
	ErrNotStrictlyIncreasing = errors.New("response: frequencies must be strictly increasing after sorting")
	ErrOutOfDomain           = errors.New("response: frequency outside the curve domain")
)
