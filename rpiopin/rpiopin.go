// Package rpiopin exposes Raspberry Pi GPIO lines driven through go-rpio as
// periph.io gpio.PinOut values.
//
// go-rpio writes the GPIO registers through /dev/gpiomem, so no periph.io
// host driver is needed. Call Open before driving any line.
package rpiopin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/stianeikeland/go-rpio"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// NumLines is the number of BCM GPIO lines addressable through go-rpio.
const NumLines = 54

var opened atomic.Bool

// Open maps the GPIO registers.
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("rpiopin: %w", err)
	}
	opened.Store(true)
	return nil
}

// Close unmaps the GPIO registers. Lines keep their last level.
func Close() error {
	if !opened.Swap(false) {
		return nil
	}
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("rpiopin: %w", err)
	}
	return nil
}

// ByNumber returns the line with the given BCM number, or nil when out of
// range.
func ByNumber(bcm int) *Pin {
	if bcm < 0 || bcm >= NumLines {
		return nil
	}
	return &Pin{num: bcm}
}

// ByName accepts "GPIO17" or "17".
func ByName(name string) *Pin {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(name), "GPIO"))
	if err != nil {
		return nil
	}
	return ByNumber(n)
}

// Pin is one BCM GPIO line. It implements gpio.PinOut.
type Pin struct {
	num int

	mu     sync.Mutex
	output bool
	level  gpio.Level
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.Name()
}

// Halt implements conn.Resource.
//
// It has no effect.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return "GPIO" + strconv.Itoa(p.num)
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return p.num
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.output {
		return "In"
	}
	return "Out/" + p.level.String()
}

// Out implements gpio.PinOut.
//
// The first call switches the line to output mode.
func (p *Pin) Out(l gpio.Level) error {
	if !opened.Load() {
		return errors.New("rpiopin: GPIO memory not open")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	rp := rpio.Pin(p.num)
	if !p.output {
		rp.Output()
		p.output = true
	}
	if l {
		rp.High()
	} else {
		rp.Low()
	}
	p.level = l
	return nil
}

// PWM implements gpio.PinOut.
//
// It is not supported.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("rpiopin: %s: PWM is not supported", p)
}

var _ gpio.PinOut = &Pin{}
