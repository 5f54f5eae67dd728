// Package pinmap loads the YAML file that tells which GPIO line drives each
// segment and digit of a display.
//
// Example file:
//
//	segments: {a: GPIO5, b: GPIO6, c: GPIO13, d: GPIO19, e: GPIO26, f: GPIO21, g: GPIO20, dp: GPIO16}
//	digits: [GPIO17, GPIO27, GPIO22, GPIO23]
//	display:
//	  digit_count: 4
//	  leading_zero: false
//	  right_aligned: false
//	  period_ms: 2
//
// Digit lines are listed by physical position, leftmost first. An empty name
// leaves a position unwired.
package pinmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a display wiring file.
type Config struct {
	Segments SegmentsConfig `yaml:"segments"`
	Digits   []string       `yaml:"digits"`
	Display  DisplayConfig  `yaml:"display"`
}

// ---- SEGMENTS ----

// SegmentsConfig names the line driving each segment.
type SegmentsConfig struct {
	A  string `yaml:"a"`
	B  string `yaml:"b"`
	C  string `yaml:"c"`
	D  string `yaml:"d"`
	E  string `yaml:"e"`
	F  string `yaml:"f"`
	G  string `yaml:"g"`
	DP string `yaml:"dp"`
}

// Lines returns the segment line names in drive order (A..G, DP).
func (s SegmentsConfig) Lines() [8]string {
	return [8]string{s.A, s.B, s.C, s.D, s.E, s.F, s.G, s.DP}
}

// ---- DISPLAY ----

// DisplayConfig holds the driver options.
type DisplayConfig struct {
	DigitCount   int  `yaml:"digit_count"` // 0 => one per listed digit line
	LeadingZero  bool `yaml:"leading_zero"`
	RightAligned bool `yaml:"right_aligned"`
	PeriodMs     int  `yaml:"period_ms"` // 0 => driver default
}

// Load reads and parses a wiring file. It does not validate it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pinmap: %w", err)
	}
	return Parse(data)
}

// Parse decodes a wiring file. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("pinmap: empty wiring file")
		}
		return nil, fmt.Errorf("pinmap: %w", err)
	}
	return cfg, nil
}

// Default returns the wiring used in the package examples: a 4-digit display
// on the Raspberry Pi header.
func Default() *Config {
	return &Config{
		Segments: SegmentsConfig{
			A: "GPIO5", B: "GPIO6", C: "GPIO13", D: "GPIO19",
			E: "GPIO26", F: "GPIO21", G: "GPIO20", DP: "GPIO16",
		},
		Digits:  []string{"GPIO17", "GPIO27", "GPIO22", "GPIO23"},
		Display: DisplayConfig{DigitCount: 4, PeriodMs: 2},
	}
}
