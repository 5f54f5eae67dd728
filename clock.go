package segmux

// Clock counts scan periods. The scan routine is its only writer.
type Clock struct {
	trig      Trigger
	ticks     uint32
	msPerTick uint32
}

// Now returns the milliseconds elapsed since the device was created.
// The value wraps at 2^32 ms.
//
// Now must not be called from the scan routine itself.
func (c *Clock) Now() uint32 {
	return c.Ticks() * c.msPerTick
}

// Ticks returns the number of scan periods elapsed.
func (c *Clock) Ticks() uint32 {
	en := c.trig.Disable()
	n := c.ticks
	c.trig.Restore(en)
	return n
}

func (c *Clock) tick() {
	c.ticks++
}
