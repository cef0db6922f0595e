// Command noisegen synthesizes calibration noise with a chosen frequency
// response and writes it as a mono 32-bit float WAV file.
//
// Usage:
//
//	noisegen [flags]
//
// The response curve is given either through -freqs/-responses or through a
// named -preset.
//
// Examples:
//
//	noisegen -preset uniform -output uniform.wav
//	noisegen -preset band-zero -seed 7
//	noisegen -freqs 2000,4000,6000 -responses 0,1,0 -nyquist 8000
//	noisegen -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/response"
	"github.com/cwbudde/algo-noise/dsp/synth"
)

type presetEntry struct {
	name        string
	description string
	shape       synth.Shape
}

// Presets reproduce the canonical calibration signals: flat, band-limited,
// triangular, decreasing, and impulse-like spectra, all with an 8 kHz
// Nyquist limit (16 kHz sample rate).
var presets = []presetEntry{
	{
		"uniform", "flat response across the full spectrum",
		synth.Shape{Freqs: []float64{4000}, Responses: []float64{1}, Nyquist: 8000,
			LowBound: response.PolicyFlat, HighBound: response.PolicyFlat},
	},
	{
		"band-zero", "flat response from 2 kHz to 6 kHz, zero elsewhere",
		synth.Shape{Freqs: []float64{2000, 6000}, Responses: []float64{1, 1}, Nyquist: 8000,
			LowBound: response.PolicyZero, HighBound: response.PolicyZero},
	},
	{
		"band-linear", "flat response from 2 kHz to 6 kHz, linearly decreasing outside",
		synth.Shape{Freqs: []float64{2000, 6000}, Responses: []float64{1, 1}, Nyquist: 8000},
	},
	{
		"triangular", "triangular response across the full spectrum, peak at 4 kHz",
		synth.Shape{Freqs: []float64{4000}, Responses: []float64{1}, Nyquist: 8000},
	},
	{
		"band-triangular", "triangular response from 2 kHz to 6 kHz, peak at 4 kHz, zero elsewhere",
		synth.Shape{Freqs: []float64{2000, 4000, 6000}, Responses: []float64{0, 1, 0}, Nyquist: 8000},
	},
	{
		"decreasing", "linearly decreasing response across the full spectrum",
		synth.Shape{Freqs: []float64{0}, Responses: []float64{1}, Nyquist: 8000},
	},
	{
		"band-decreasing", "linearly decreasing response from 2 kHz up, zero below",
		synth.Shape{Freqs: []float64{2000}, Responses: []float64{1}, Nyquist: 8000,
			LowBound: response.PolicyZero},
	},
	{
		"impulse", "impulse-like response at 4 kHz",
		synth.Shape{Freqs: []float64{4000}, Responses: []float64{1}, Nyquist: 8000,
			LowBound: response.PolicyZero, HighBound: response.PolicyZero},
	},
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("noisegen", flag.ContinueOnError)

	output := flagSet.String("output", "noise.wav", "filename to write to")
	preset := flagSet.String("preset", "", "preset name (use -list to see available)")
	list := flagSet.Bool("list", false, "list preset names and exit")
	freqs := flagSet.String("freqs", "", "comma-separated control frequencies in Hz")
	responses := flagSet.String("responses", "", "comma-separated response magnitudes, one per frequency")
	nyquist := flagSet.Float64("nyquist", 0, "nyquist limit in Hz (alternative to -rate)")
	rate := flagSet.Float64("rate", 0, "sample rate in Hz (alternative to -nyquist)")
	duration := flagSet.Float64("duration", 0, "duration in seconds (default 10)")
	low := flagSet.String("low", "linear", "low boundary policy: zero, flat, or linear")
	high := flagSet.String("high", "linear", "high boundary policy: zero, flat, or linear")
	eps := flagSet.Float64("eps", 0, "cliff width in Hz for the zero policy (default 0.001)")
	seed := flagSet.Int64("seed", 1, "random phase seed")

	err := flagSet.Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if *list {
		printPresets(flagSet.Output())
		return nil
	}

	var shape synth.Shape
	if *preset != "" {
		entry, ok := lookupPreset(*preset)
		if !ok {
			return fmt.Errorf("unknown preset %q (use -list to see available)", *preset)
		}
		shape = entry.shape
	} else {
		shape.Freqs, err = parseFloats(*freqs)
		if err != nil {
			return fmt.Errorf("invalid -freqs: %w", err)
		}
		shape.Responses, err = parseFloats(*responses)
		if err != nil {
			return fmt.Errorf("invalid -responses: %w", err)
		}
		shape.LowBound, err = response.ParsePolicy(*low)
		if err != nil {
			return fmt.Errorf("invalid -low: %w", err)
		}
		shape.HighBound, err = response.ParsePolicy(*high)
		if err != nil {
			return fmt.Errorf("invalid -high: %w", err)
		}
	}

	if *nyquist != 0 || *rate != 0 {
		shape.Nyquist = *nyquist
		shape.SampleRate = *rate
	}
	if *duration != 0 {
		shape.Duration = *duration
	}
	if *eps != 0 {
		shape.Eps = *eps
	}

	gen := synth.New(synth.WithSeed(*seed))

	log.Printf("generating %g sec of shaped noise into %s", durationOrDefault(shape.Duration), *output)

	err = gen.GenerateFile(*output, &shape)
	if err != nil {
		return err
	}

	log.Printf("wrote %s", *output)
	return nil
}

func durationOrDefault(d float64) float64 {
	if d == 0 {
		return synth.DefaultDuration
	}
	return d
}

func lookupPreset(name string) (presetEntry, bool) {
	for _, e := range presets {
		if e.name == name {
			return e, true
		}
	}
	return presetEntry{}, false
}

func printPresets(w io.Writer) {
	for _, e := range presets {
		fmt.Fprintf(w, "%-16s %s\n", e.name, e.description)
	}
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no values given")
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
