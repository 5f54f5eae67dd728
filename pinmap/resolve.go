package pinmap

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/segmux"
)

// Resolve looks up every named line. lookup returns nil for an unknown name.
// Positions without a name are returned as nil digit lines.
func (c *Config) Resolve(lookup func(name string) gpio.PinOut) ([8]gpio.PinOut, [segmux.MaxDigits]gpio.PinOut, error) {
	var segs [8]gpio.PinOut
	var digits [segmux.MaxDigits]gpio.PinOut

	for i, name := range c.Segments.Lines() {
		p := lookup(name)
		if p == nil {
			return segs, digits, fmt.Errorf("pinmap: segment %s: no line named %q", segmentKeys[i], name)
		}
		segs[i] = p
	}
	for i, name := range c.Digits {
		if i >= segmux.MaxDigits {
			break
		}
		if name == "" {
			continue
		}
		p := lookup(name)
		if p == nil {
			return segs, digits, fmt.Errorf("pinmap: digit %d: no line named %q", i, name)
		}
		digits[i] = p
	}
	return segs, digits, nil
}

// Opts returns the driver options described by the display section.
func (c *Config) Opts() *segmux.Opts {
	return &segmux.Opts{
		Digits:       c.digitCount(),
		LeadingZero:  c.Display.LeadingZero,
		RightAligned: c.Display.RightAligned,
		Period:       time.Duration(c.Display.PeriodMs) * time.Millisecond,
	}
}
