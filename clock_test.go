package segmux

import (
	"testing"
	"time"
)

func TestClockNow(t *testing.T) {
	tests := []struct {
		name   string
		period time.Duration
		ticks  int
		want   uint32
	}{
		{"default period", 0, 0, 0},
		{"default period one tick", 0, 1, 2},
		{"default period 500 ticks", 0, 500, 1000},
		{"1ms period", time.Millisecond, 7, 7},
		{"5ms period", 5 * time.Millisecond, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, _ := newTestDev(t, &Opts{Period: tt.period})
			for i := 0; i < tt.ticks; i++ {
				d.Tick()
			}
			if got := d.Clock().Now(); got != tt.want {
				t.Errorf("Now() = %d, want %d", got, tt.want)
			}
			if got := d.Clock().Ticks(); got != uint32(tt.ticks) {
				t.Errorf("Ticks() = %d, want %d", got, tt.ticks)
			}
		})
	}
}

func TestClockRestoresTrigger(t *testing.T) {
	d, _, trig := newTestDev(t, nil)

	before := trig.disables
	d.Clock().Now()
	if trig.disables != before+1 {
		t.Errorf("Now() disabled the trigger %d times, want 1", trig.disables-before)
	}
	if !trig.enabled {
		t.Error("Now left the trigger disabled")
	}

	// Called from inside a critical section, Now keeps the trigger disabled.
	outer := trig.Disable()
	d.Clock().Now()
	if trig.enabled {
		t.Error("Now re-enabled a disabled trigger")
	}
	trig.Restore(outer)
	if !trig.enabled {
		t.Error("trigger should be enabled after the outer Restore")
	}
}

func TestClockWraps(t *testing.T) {
	d, _, _ := newTestDev(t, nil)
	d.clock.ticks = 1<<31 - 1

	d.Tick()
	if got := d.Clock().Now(); got != 0 {
		t.Errorf("Now() = %d at 2^31 ticks, want 0", got)
	}
	d.Tick()
	if got := d.Clock().Now(); got != 2 {
		t.Errorf("Now() = %d, want 2", got)
	}
}
