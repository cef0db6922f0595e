package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.wav")

	err := run([]string{"-preset", "band-zero", "-duration", "0.25", "-output", path})
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// 0.25 s at 16 kHz, 4 bytes per sample.
	if info.Size() < 4000*4 {
		t.Errorf("file size = %d, want >= %d", info.Size(), 4000*4)
	}
}

func TestRunCustomCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.wav")

	err := run([]string{
		"-freqs", "2000,4000,6000",
		"-responses", "0,1,0",
		"-nyquist", "8000",
		"-duration", "0.25",
		"-output", path,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown preset", []string{"-preset", "nope"}, "unknown preset"},
		{"no frequencies", []string{"-nyquist", "8000"}, "invalid -freqs"},
		{"bad responses", []string{"-freqs", "100", "-responses", "x"}, "invalid -responses"},
		{"bad policy", []string{"-freqs", "100", "-responses", "1", "-low", "hold"}, "invalid -low"},
		{"no rates", []string{"-freqs", "100", "-responses", "1"}, "nyquist or sample rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(append(tt.args, "-output", filepath.Join(t.TempDir(), "out.wav")))
			if err == nil {
				t.Fatal("run() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, e := range presets {
		t.Run(e.name, func(t *testing.T) {
			shape := e.shape
			if err := shape.Validate(); err != nil {
				t.Errorf("preset %q does not validate: %v", e.name, err)
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"2000,4000,6000", []float64{2000, 4000, 6000}, false},
		{" 1 , 2 ", []float64{1, 2}, false},
		{"0.5", []float64{0.5}, false},
		{"", nil, true},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		got, err := parseFloats(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFloats(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFloats(%q) error = %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseFloats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFloats(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
