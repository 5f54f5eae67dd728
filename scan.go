package segmux

import "periph.io/x/conn/v3/gpio"

// Tick runs one scan period: it blanks the display, drives the segment lines
// with the next digit's code, enables that digit and advances the clock.
//
// Tick is the routine invoked by the Trigger. It must not run concurrently
// with itself, and it never blocks. Line errors are ignored; the next period
// drives the lines again.
func (d *Dev) Tick() {
	if d.halted {
		return
	}
	if d.count > 0 {
		// Segment lines are shared: switch every digit off before changing them.
		d.allOff()

		code := d.code(d.cursor)
		for i, p := range d.segs {
			p.Out(gpio.Level(code&(1<<i) != 0))
		}

		if p := d.digs[d.cursor+d.shift]; p != nil {
			p.Out(digitOn)
		}

		d.cursor++
		if d.cursor >= d.count {
			d.cursor = 0
		}
	}
	d.clock.tick()
}
