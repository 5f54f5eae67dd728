package pinmap

import (
	"fmt"

	"periph.io/x/devices/v3/segmux"
)

var segmentKeys = [8]string{"a", "b", "c", "d", "e", "f", "g", "dp"}

// Validate checks the wiring file. It does not mutate cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("pinmap: nil config")
	}

	owner := make(map[string]string)
	claim := func(line, use string) error {
		if prev, ok := owner[line]; ok {
			return fmt.Errorf("pinmap: line %q used by both %s and %s", line, prev, use)
		}
		owner[line] = use
		return nil
	}

	// ---- segments ----

	for i, line := range cfg.Segments.Lines() {
		use := "segment " + segmentKeys[i]
		if line == "" {
			return fmt.Errorf("pinmap: %s has no line", use)
		}
		if err := claim(line, use); err != nil {
			return err
		}
	}

	// ---- digits ----

	if len(cfg.Digits) == 0 {
		return fmt.Errorf("pinmap: no digit lines")
	}
	if len(cfg.Digits) > segmux.MaxDigits {
		return fmt.Errorf("pinmap: %d digit lines listed, at most %d supported", len(cfg.Digits), segmux.MaxDigits)
	}
	for i, line := range cfg.Digits {
		if line == "" {
			continue
		}
		if err := claim(line, fmt.Sprintf("digit %d", i)); err != nil {
			return err
		}
	}

	// ---- display ----

	d := cfg.Display
	if d.DigitCount < 0 || d.DigitCount > segmux.MaxDigits {
		return fmt.Errorf("pinmap: digit_count %d out of range 0..%d", d.DigitCount, segmux.MaxDigits)
	}
	if d.PeriodMs < 0 {
		return fmt.Errorf("pinmap: period_ms %d is negative", d.PeriodMs)
	}

	count := cfg.digitCount()
	first := 0
	if d.RightAligned {
		first = segmux.MaxDigits - count
	}
	for pos := first; pos < first+count; pos++ {
		if pos >= len(cfg.Digits) || cfg.Digits[pos] == "" {
			return fmt.Errorf("pinmap: digit %d is displayed but has no line", pos)
		}
	}
	return nil
}

func (c *Config) digitCount() int {
	if c.Display.DigitCount != 0 {
		return c.Display.DigitCount
	}
	return len(c.Digits)
}
