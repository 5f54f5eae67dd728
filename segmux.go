// Package segmux drives up to four multiplexed seven-segment digits from GPIO lines.
//
// The digits share eight segment lines (A-G and the decimal point) and each has
// its own enable line. A periodic scan routine lights one digit per period.
//
// See the examples for how to use this package.
package segmux

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/segmux/segcode"
)

// MaxDigits is the number of physical digit positions the driver addresses.
const MaxDigits = 4

// DefaultPeriod is the scan period used when Opts.Period is zero.
const DefaultPeriod = 2 * time.Millisecond

// Line levels. Segment and digit lines are active low.
const (
	digitOn  = gpio.Low
	digitOff = gpio.High
)

// Opts is the configuration for the display.
type Opts struct {
	// Number of digits wired (default: 4, must be ≤4)
	Digits int
	// Show zeros in leading positions written with SetDigit
	LeadingZero bool
	// Occupy the rightmost positions when fewer than 4 digits are wired
	RightAligned bool

	// Scan period (default: 2ms, whole milliseconds)
	Period time.Duration
	// Time source for the built-in ticker (default: real clock)
	Clock clockwork.Clock
	// Optional external trigger. When set, the caller is responsible for
	// invoking Tick once per Period; no ticker is started.
	Trigger Trigger
}

// Dev is the device handle for a multiplexed seven-segment display.
type Dev struct {
	// Output lines
	segs [8]gpio.PinOut
	digs [MaxDigits]gpio.PinOut

	// Display buffer, one code per slot. Each slot is stored atomically so
	// the scan routine never reads a half-written code.
	slots [MaxDigits]atomic.Uint32

	// Geometry. Written by Init inside the trigger critical section.
	count int
	shift int
	right bool

	// Foreground only
	leadingZero bool

	// Scan routine only
	cursor int
	halted bool

	trig   Trigger
	ticker *Ticker // nil when Opts.Trigger was supplied
	clock  Clock
}

// New creates a display driving segs (A, B, C, D, E, F, G, DP) and the digit
// enable lines digits (most significant first).
//
// Digit lines outside the configured positions may be nil. Unless opts
// supplies a Trigger, New starts a ticker that calls Tick every period; call
// Halt to stop it.
//
// opts can be nil to use defaults (4 digits, 2ms).
func New(segs [8]gpio.PinOut, digits [MaxDigits]gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{}
	}
	count := opts.Digits
	if count == 0 {
		count = MaxDigits
	}
	if count < 0 || count > MaxDigits {
		return nil, errors.New("segmux: digits must be between 1 and 4")
	}
	period := opts.Period
	if period == 0 {
		period = DefaultPeriod
	}
	if period < time.Millisecond || period%time.Millisecond != 0 {
		return nil, errors.New("segmux: period must be a whole number of milliseconds")
	}
	for i, p := range segs {
		if p == nil {
			return nil, fmt.Errorf("segmux: segment line %s is nil", segmentNames[i])
		}
	}

	d := &Dev{
		segs: segs,
		digs: digits,
	}
	d.trig = opts.Trigger
	if d.trig == nil {
		d.ticker = NewTicker(opts.Clock, period)
		d.trig = d.ticker
	}
	d.clock = Clock{trig: d.trig, msPerTick: uint32(period / time.Millisecond)}

	d.Clear()
	if err := d.Init(count, opts.LeadingZero, opts.RightAligned); err != nil {
		return nil, err
	}

	if d.ticker != nil {
		if err := d.ticker.Start(d.Tick); err != nil {
			return nil, err
		}
	}
	return d, nil
}

var segmentNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "DP"}

// Init reconfigures the digit count, leading zero display and alignment.
//
// The leading zero setting is always applied. A count above MaxDigits is
// rejected and the previous count kept; the alignment still applies if the
// kept count has enable lines on that side. When the requested positions lack
// an enable line, the previous count and alignment are both kept. Zero digits
// leaves every digit dark.
func (d *Dev) Init(count int, leadingZero, rightAligned bool) error {
	en := d.trig.Disable()
	defer d.trig.Restore(en)

	d.leadingZero = leadingZero

	var err error
	keep := count
	if count < 0 || count > MaxDigits {
		err = fmt.Errorf("segmux: %d digits requested, at most %d supported", count, MaxDigits)
		keep = d.count
	}
	if lerr := d.checkDigitLines(keep, rightAligned); lerr != nil {
		if err == nil {
			err = lerr
		}
	} else {
		d.count = keep
		d.right = rightAligned
	}

	d.shift = 0
	if d.right {
		d.shift = MaxDigits - d.count
	}
	d.cursor = 0
	d.allOff()
	return err
}

func (d *Dev) checkDigitLines(count int, right bool) error {
	first := 0
	if right {
		first = MaxDigits - count
	}
	for i := first; i < first+count; i++ {
		if d.digs[i] == nil {
			return fmt.Errorf("segmux: digit line %d is nil", i)
		}
	}
	return nil
}

// allOff switches every wired digit off.
func (d *Dev) allOff() error {
	var first error
	for _, p := range d.digs {
		if p == nil {
			continue
		}
		if err := p.Out(digitOff); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Clock returns the display's period counter.
func (d *Dev) Clock() *Clock {
	return &d.clock
}

// Halt stops the scan and switches every digit off.
// After calling Halt, Tick does nothing; the display buffer can still be written.
func (d *Dev) Halt() error {
	if d.ticker != nil {
		d.ticker.Stop()
	}
	en := d.trig.Disable()
	d.halted = true
	err := d.allOff()
	d.trig.Restore(en)
	if err != nil {
		return fmt.Errorf("segmux: failed to switch digits off: %w", err)
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("segmux.Dev{%d digits}", d.count)
}

// code returns the slot content as a segment code.
func (d *Dev) code(pos int) segcode.Code {
	return segcode.Code(d.slots[pos].Load())
}
