package synth

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize rescales samples in place so that max(|sample|) == targetPeak.
//
// An all-zero signal is left untouched.
func Normalize(samples []float64, targetPeak float64) error {
	if targetPeak < 0 {
		return fmt.Errorf("synth: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(samples) == 0 {
		return ErrEmptySignal
	}

	maxAbs := vecmath.MaxAbs(samples)
	if maxAbs == 0 {
		return nil
	}

	vecmath.ScaleBlockInPlace(samples, targetPeak/maxAbs)
	return nil
}
