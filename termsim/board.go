// Package termsim simulates a multiplexed seven-segment display in memory and
// on a terminal.
//
// A Board provides the segment and digit lines as gpio.PinOut values. Driving
// a digit line Low latches the current segment levels as that digit's code,
// the way the eye keeps the last image of a lit digit. Frame returns what a
// viewer would see.
package termsim

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"periph.io/x/devices/v3/segmux/segcode"
)

// NumDigits is the number of digit positions on a Board.
const NumDigits = 4

var segNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "DP"}

// Board is a simulated common-anode display with active-low lines.
type Board struct {
	mu     sync.Mutex
	segs   [8]gpio.Level
	digits [NumDigits]gpio.Level
	frame  [NumDigits]segcode.Code
	ghosts int

	segLines   [8]*Line
	digitLines [NumDigits]*Line
}

// NewBoard returns a dark board. Every line starts High.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.segs {
		b.segs[i] = gpio.High
		b.segLines[i] = &Line{b: b, name: "SIM_SEG_" + segNames[i], num: i, index: i}
	}
	for i := range b.digits {
		b.digits[i] = gpio.High
		b.frame[i] = segcode.Encode(segcode.Blank)
		b.digitLines[i] = &Line{b: b, name: fmt.Sprintf("SIM_DIG%d", i), num: 8 + i, index: i, digit: true}
	}
	return b
}

// Segments returns the segment lines A, B, C, D, E, F, G, DP.
func (b *Board) Segments() [8]gpio.PinOut {
	var out [8]gpio.PinOut
	for i, l := range b.segLines {
		out[i] = l
	}
	return out
}

// Digits returns the digit enable lines, leftmost first.
func (b *Board) Digits() [NumDigits]gpio.PinOut {
	var out [NumDigits]gpio.PinOut
	for i, l := range b.digitLines {
		out[i] = l
	}
	return out
}

// Frame returns the code last latched by each digit position.
func (b *Board) Frame() [NumDigits]segcode.Code {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// Ghosts returns how many times a digit was enabled while another digit was
// still on. A correct scan never does that.
func (b *Board) Ghosts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ghosts
}

func (b *Board) drive(l *Line, level gpio.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !l.digit {
		b.segs[l.index] = level
		// A lit digit follows its segment lines.
		for i, d := range b.digits {
			if d == gpio.Low {
				b.frame[i] = b.code()
			}
		}
		return
	}
	if level == gpio.Low {
		for i, d := range b.digits {
			if i != l.index && d == gpio.Low {
				b.ghosts++
			}
		}
		b.frame[l.index] = b.code()
	}
	b.digits[l.index] = level
}

func (b *Board) code() segcode.Code {
	var c segcode.Code
	for i, s := range b.segs {
		if s == gpio.High {
			c |= 1 << i
		}
	}
	return c
}

func (b *Board) level(l *Line) gpio.Level {
	b.mu.Lock()
	defer b.mu.Unlock()
	if l.digit {
		return b.digits[l.index]
	}
	return b.segs[l.index]
}

// Line is one simulated output line. It implements gpio.PinOut.
type Line struct {
	b     *Board
	name  string
	num   int
	index int
	digit bool
}

// String implements conn.Resource.
func (l *Line) String() string {
	return l.name
}

// Halt implements conn.Resource.
//
// It has no effect.
func (l *Line) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (l *Line) Name() string {
	return l.name
}

// Number implements pin.Pin.
func (l *Line) Number() int {
	return l.num
}

// Function implements pin.Pin.
func (l *Line) Function() string {
	return "Out/" + l.b.level(l).String()
}

// Out implements gpio.PinOut.
func (l *Line) Out(level gpio.Level) error {
	l.b.drive(l, level)
	return nil
}

// PWM implements gpio.PinOut.
func (l *Line) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("termsim: PWM is not supported")
}

var _ gpio.PinOut = &Line{}
