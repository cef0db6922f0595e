package synth

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/response"
)

func TestShapeRates(t *testing.T) {
	tests := []struct {
		name        string
		shape       Shape
		wantNyquist float64
		wantRate    float64
		wantErr     error
	}{
		{"neither", Shape{}, 0, 0, ErrRateRequired},
		{"nyquist only", Shape{Nyquist: 8000}, 8000, 16000, nil},
		{"rate only", Shape{SampleRate: 16000}, 8000, 16000, nil},
		{"both consistent", Shape{Nyquist: 8000, SampleRate: 16000}, 8000, 16000, nil},
		{"both inconsistent", Shape{Nyquist: 8000, SampleRate: 44100}, 0, 0, ErrRateMismatch},
		{"negative nyquist", Shape{Nyquist: -8000}, 0, 0, ErrInvalidRate},
		{"negative rate", Shape{SampleRate: -16000}, 0, 0, ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nyquist, rate, err := tt.shape.Rates()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Rates() error = %v, want %v", err, tt.wantErr)
			}
			if nyquist != tt.wantNyquist || rate != tt.wantRate {
				t.Errorf("Rates() = (%g, %g), want (%g, %g)", nyquist, rate, tt.wantNyquist, tt.wantRate)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	valid := Shape{
		Freqs:     []float64{2000, 6000},
		Responses: []float64{1, 1},
		Nyquist:   8000,
	}

	tests := []struct {
		name    string
		mutate  func(*Shape)
		wantErr error
	}{
		{"valid", func(s *Shape) {}, nil},
		{"no rates", func(s *Shape) { s.Nyquist = 0 }, ErrRateRequired},
		{"rate mismatch", func(s *Shape) { s.SampleRate = 44100 }, ErrRateMismatch},
		{"negative duration", func(s *Shape) { s.Duration = -1 }, ErrInvalidDuration},
		{"duration too short", func(s *Shape) { s.Duration = 1e-6 }, ErrDurationTooShort},
		{"no control points", func(s *Shape) { s.Freqs = nil; s.Responses = nil }, response.ErrNoControlPoints},
		{"length mismatch", func(s *Shape) { s.Responses = []float64{1} }, response.ErrLengthMismatch},
		{"negative frequency", func(s *Shape) { s.Freqs = []float64{-1, 6000} }, response.ErrNegativeFrequency},
		{"above nyquist", func(s *Shape) { s.Freqs = []float64{2000, 9000} }, response.ErrFrequencyAboveNyquist},
		{"above derived nyquist", func(s *Shape) { s.Nyquist = 0; s.SampleRate = 8000; s.Freqs = []float64{2000, 5000} }, response.ErrFrequencyAboveNyquist},
		{"bad low policy", func(s *Shape) { s.LowBound = response.Policy(7) }, response.ErrInvalidPolicy},
		{"bad high policy", func(s *Shape) { s.HighBound = response.Policy(-2) }, response.ErrInvalidPolicy},
		{"negative eps", func(s *Shape) { s.Eps = -0.5 }, response.ErrInvalidEps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := valid
			shape.Freqs = append([]float64(nil), valid.Freqs...)
			shape.Responses = append([]float64(nil), valid.Responses...)
			tt.mutate(&shape)

			err := shape.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestShapeDefaults(t *testing.T) {
	s := Shape{}
	if got := s.duration(); got != DefaultDuration {
		t.Errorf("duration() = %g, want %g", got, DefaultDuration)
	}
	if got := s.eps(); got != DefaultEps {
		t.Errorf("eps() = %g, want %g", got, DefaultEps)
	}

	s.Duration = 2.5
	s.Eps = 0.25
	if got := s.duration(); got != 2.5 {
		t.Errorf("duration() = %g, want 2.5", got)
	}
	if got := s.eps(); got != 0.25 {
		t.Errorf("eps() = %g, want 0.25", got)
	}
}

func TestShapeBinCount(t *testing.T) {
	tests := []struct {
		duration float64
		nyquist  float64
		want     int
	}{
		{10, 8000, 80001},
		{1, 8000, 8001},
		{0.5, 4000, 2001},
		{2, 22050, 44101},
	}

	for _, tt := range tests {
		s := Shape{Duration: tt.duration}
		if got := s.binCount(tt.nyquist); got != tt.want {
			t.Errorf("binCount(%g s, %g Hz) = %d, want %d", tt.duration, tt.nyquist, got, tt.want)
		}
	}
}
