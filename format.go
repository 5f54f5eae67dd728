package segmux

import (
	"io"
	"strings"

	"periph.io/x/devices/v3/segmux/segcode"
)

// Range of values PrintInt can show on four digits.
const (
	MinInt = -999
	MaxInt = 9999
)

// PrintInt shows v right aligned over the active digits.
//
// Leading zeros are suppressed unless a more significant digit was written.
// A minus sign takes the most significant blank slot unless the digits below
// it still need that slot, in which case it moves one slot right; -999 to
// -101 use the thousands slot. Values outside MinInt..MaxInt show "Err ".
func (d *Dev) PrintInt(v int) {
	if v < MinInt || v > MaxInt {
		d.ShowErr()
		return
	}

	minus := v < 0
	if minus {
		v = -v
	}

	saved := d.leadingZero
	defer func() { d.leadingZero = saved }()

	nonZero := false
	zeroOrBlank := func() int {
		if nonZero {
			return segcode.Zero
		}
		return segcode.Blank
	}

	// Thousands
	pos := d.count - 4
	switch {
	case v >= 1000:
		d.SetDigit(pos, v/1000)
		v %= 1000
		nonZero = true
		d.leadingZero = true
	case minus && v > 100:
		d.SetDigit(pos, segcode.Dash)
		minus = false
	default:
		d.SetDigit(pos, segcode.Blank)
	}

	// Hundreds
	pos++
	switch {
	case v >= 100:
		d.SetDigit(pos, v/100)
		v %= 100
		nonZero = true
		d.leadingZero = true
	case minus && v > 10:
		d.SetDigit(pos, segcode.Dash)
		minus = false
	default:
		d.SetDigit(pos, zeroOrBlank())
	}

	// Tens
	pos++
	switch {
	case v >= 10:
		d.SetDigit(pos, v/10)
		v %= 10
	case minus:
		d.SetDigit(pos, segcode.Dash)
	default:
		d.SetDigit(pos, zeroOrBlank())
	}

	// Units always print, zero included.
	d.SetDigit(pos+1, v)
}

// Print writes text to the active digits from the left, one character per
// digit. Slots past the end of text, or past a NUL byte, keep their content.
func (d *Dev) Print(text string) {
	d.PrintReader(strings.NewReader(text))
}

// PrintReader is Print for text held outside memory, such as flash or a
// file. It reads at most one byte per active digit.
func (d *Dev) PrintReader(r io.ByteReader) {
	for i := 0; i < d.count; i++ {
		ch, err := r.ReadByte()
		if err != nil || ch == 0 {
			return
		}
		d.PrintChar(i, ch)
	}
}

// PrintChar writes one character to slot pos. Digits always print, zero
// included; characters without a glyph print as a blank.
func (d *Dev) PrintChar(pos int, ch byte) {
	index := segcode.SymbolFor(ch)
	if ch >= '0' && ch <= '9' {
		saved := d.leadingZero
		d.leadingZero = true
		d.SetDigit(pos, index)
		d.leadingZero = saved
		return
	}
	d.SetDigit(pos, index)
}

// ShowDash fills every slot with a dash.
func (d *Dev) ShowDash() {
	for i := 0; i < MaxDigits; i++ {
		d.SetDigit(i, segcode.Dash)
	}
}

// ShowErr shows "Err " on slots 0 to 3.
func (d *Dev) ShowErr() {
	d.SetDigit(0, segcode.LetterE)
	d.SetDigit(1, segcode.LetterR)
	d.SetDigit(2, segcode.LetterR)
	d.SetDigit(3, segcode.Blank)
}
