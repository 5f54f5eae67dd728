package termsim

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/segmux"
	"periph.io/x/devices/v3/segmux/segcode"
)

type manualTrigger struct{ enabled bool }

func (m *manualTrigger) Disable() bool {
	was := m.enabled
	m.enabled = false
	return was
}

func (m *manualTrigger) Restore(enabled bool) {
	if enabled {
		m.enabled = true
	}
}

func newDisplay(t *testing.T, b *Board, opts segmux.Opts) *segmux.Dev {
	t.Helper()
	opts.Trigger = &manualTrigger{enabled: true}
	d, err := segmux.New(b.Segments(), b.Digits(), &opts)
	assert.NilError(t, err)
	return d
}

func TestBoardStartsDark(t *testing.T) {
	b := NewBoard()
	blank := segcode.Encode(segcode.Blank)
	for i, c := range b.Frame() {
		assert.Check(t, is.Equal(c, blank), "digit %d", i)
	}
	assert.Equal(t, b.Segments()[0].Function(), "Out/High")
}

func TestBoardLatchesOnEnable(t *testing.T) {
	b := NewBoard()
	segs, digits := b.Segments(), b.Digits()

	// Segments change while every digit is off: nothing latches.
	segs[6].Out(gpio.Low)
	assert.Equal(t, b.Frame()[2], segcode.Encode(segcode.Blank))

	digits[2].Out(gpio.Low)
	assert.Equal(t, b.Frame()[2], segcode.Encode(segcode.Dash))

	// A lit digit follows its segments.
	segs[7].Out(gpio.Low)
	assert.Assert(t, b.Frame()[2].Lit(segcode.SegDP), "decimal point should be lit")

	// Switched off, it keeps its last image.
	digits[2].Out(gpio.High)
	segs[6].Out(gpio.High)
	assert.Assert(t, b.Frame()[2].Lit(segcode.SegG), "digit 2 lost its last image")
}

func TestBoardGhosts(t *testing.T) {
	b := NewBoard()
	digits := b.Digits()
	digits[0].Out(gpio.Low)
	digits[1].Out(gpio.Low)
	assert.Equal(t, b.Ghosts(), 1)
}

func TestBoardShowsBuffer(t *testing.T) {
	tests := []struct {
		name string
		opts segmux.Opts
		text string
		want string
	}{
		{"4 digits", segmux.Opts{}, "HELP", "HELP"},
		{"2 digits left", segmux.Opts{Digits: 2}, "42", "42  "},
		{"2 digits right", segmux.Opts{Digits: 2, RightAligned: true}, "42", "  42"},
		{"3 digits right", segmux.Opts{Digits: 3, RightAligned: true}, "-7.", " -7."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			d := newDisplay(t, b, tt.opts)
			d.Print(tt.text)

			for i := 0; i < d.Count(); i++ {
				d.Tick()
			}

			var want [NumDigits]segcode.Code
			for i := range want {
				want[i] = segcode.Encode(segcode.SymbolFor(tt.want[i]))
			}
			assert.Equal(t, b.Frame(), want)
			assert.Equal(t, b.Ghosts(), 0)
		})
	}
}

func TestBoardPrintInt(t *testing.T) {
	b := NewBoard()
	d := newDisplay(t, b, segmux.Opts{})

	d.PrintInt(-42)
	d.SetDP(2, true)
	for i := 0; i < 2*segmux.MaxDigits; i++ {
		d.Tick()
	}

	want := [NumDigits]segcode.Code{
		segcode.Encode(segcode.Blank),
		segcode.Encode(segcode.Dash),
		segcode.Encode(4).WithDP(true),
		segcode.Encode(2),
	}
	assert.Equal(t, b.Frame(), want)
	assert.Equal(t, b.Ghosts(), 0)
}

func TestLineNames(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, b.Segments()[7].Name(), "SIM_SEG_DP")
	assert.Equal(t, b.Digits()[3].String(), "SIM_DIG3")
	assert.Equal(t, b.Digits()[3].Number(), 11)
	assert.ErrorContains(t, b.Digits()[0].PWM(gpio.DutyHalf, 0), "not supported")
}
