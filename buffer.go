package segmux

import "periph.io/x/devices/v3/segmux/segcode"

// SetDigit writes the symbol at index to slot pos.
//
// Positions outside 0..MaxDigits-1 are ignored and indices outside the symbol
// table write a blank. A zero is shown only when leading zeros are enabled or
// pos is the last active digit; otherwise it is written as a blank.
func (d *Dev) SetDigit(pos, index int) {
	if pos < 0 || pos >= MaxDigits {
		return
	}
	c := segcode.Encode(index)
	if index == segcode.Zero && !d.leadingZero && pos != d.count-1 {
		c = segcode.Encode(segcode.Blank)
	}
	d.slots[pos].Store(uint32(c))
}

// SetDP lights (on) or darkens the decimal point of slot pos, leaving the
// rest of the slot as it is.
func (d *Dev) SetDP(pos int, on bool) {
	if pos < 0 || pos >= MaxDigits {
		return
	}
	d.slots[pos].Store(uint32(d.code(pos).WithDP(on)))
}

// Clear blanks every slot.
func (d *Dev) Clear() {
	for i := range d.slots {
		d.slots[i].Store(uint32(segcode.Encode(segcode.Blank)))
	}
}

// Digit returns the code in slot pos, or a blank for positions out of range.
func (d *Dev) Digit(pos int) segcode.Code {
	if pos < 0 || pos >= MaxDigits {
		return segcode.Encode(segcode.Blank)
	}
	return d.code(pos)
}

// Digits returns a copy of every slot.
func (d *Dev) Digits() [MaxDigits]segcode.Code {
	var out [MaxDigits]segcode.Code
	for i := range out {
		out[i] = d.code(i)
	}
	return out
}

// Count returns the number of active digits.
func (d *Dev) Count() int { return d.count }

// Shift returns the physical position of slot 0.
func (d *Dev) Shift() int { return d.shift }

// LeadingZero reports whether leading zeros are shown.
func (d *Dev) LeadingZero() bool { return d.leadingZero }
