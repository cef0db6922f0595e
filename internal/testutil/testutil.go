package testutil

import (
	"math"
	"testing"
)

// MaxAbs returns the maximum absolute value in data, 0 for an empty slice.
func MaxAbs(data []float64) float64 {
	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	return maxAbs
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePeak fails t if max(|data|) differs from want by more than eps.
func RequirePeak(t *testing.T, data []float64, want, eps float64) {
	t.Helper()
	got := MaxAbs(data)
	if math.Abs(got-want) > eps {
		t.Fatalf("peak = %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireLen fails t if data does not have exactly want elements.
func RequireLen(t *testing.T, data []float64, want int) {
	t.Helper()
	if len(data) != want {
		t.Fatalf("length = %d, want %d", len(data), want)
	}
}
