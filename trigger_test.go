package segmux

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const waitTimeout = 2 * time.Second

func startTicker(t *testing.T, period time.Duration) (*Ticker, clockwork.FakeClock, chan struct{}) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	tk := NewTicker(clock, period)
	calls := make(chan struct{}, 16)
	if err := tk.Start(func() { calls <- struct{}{} }); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(tk.Stop)
	clock.BlockUntil(1)
	return tk, clock, calls
}

func waitCall(t *testing.T, calls chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(waitTimeout):
		t.Fatal("tick function was not called")
	}
}

func noCall(t *testing.T, calls chan struct{}) {
	t.Helper()
	select {
	case <-calls:
		t.Fatal("tick function called while disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTickerFires(t *testing.T) {
	_, clock, calls := startTicker(t, DefaultPeriod)

	for i := 0; i < 3; i++ {
		clock.Advance(DefaultPeriod)
		waitCall(t, calls)
	}
}

func TestTickerDisableRestore(t *testing.T) {
	tk, clock, calls := startTicker(t, DefaultPeriod)

	if !tk.Disable() {
		t.Fatal("Disable() = false on an enabled ticker")
	}
	if tk.Disable() {
		t.Fatal("nested Disable should report disabled")
	}

	clock.Advance(DefaultPeriod)
	noCall(t, calls)

	// The inner Restore keeps the outer section closed.
	tk.Restore(false)
	noCall(t, calls)

	// The tick missed while disabled is delivered once.
	tk.Restore(true)
	waitCall(t, calls)
	noCall(t, calls)
}

func TestTickerHoldsOnePendingTick(t *testing.T) {
	tk, clock, calls := startTicker(t, DefaultPeriod)

	tk.Disable()
	for i := 0; i < 5; i++ {
		clock.Advance(DefaultPeriod)
	}
	noCall(t, calls)

	tk.Restore(true)
	waitCall(t, calls)
	noCall(t, calls)
}

func TestTickerDisableWaitsForCall(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tk := NewTicker(clock, DefaultPeriod)

	entered := make(chan struct{})
	release := make(chan struct{})
	err := tk.Start(func() {
		close(entered)
		<-release
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(tk.Stop)
	clock.BlockUntil(1)

	clock.Advance(DefaultPeriod)
	<-entered

	disabled := make(chan bool)
	go func() { disabled <- tk.Disable() }()

	select {
	case <-disabled:
		t.Fatal("Disable returned while the tick function was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case was := <-disabled:
		if !was {
			t.Error("Disable() = false, want true")
		}
	case <-time.After(waitTimeout):
		t.Fatal("Disable did not return")
	}
}

func TestTickerStart(t *testing.T) {
	tk := NewTicker(clockwork.NewFakeClock(), DefaultPeriod)
	if err := tk.Start(nil); err == nil || !strings.Contains(err.Error(), "nil tick function") {
		t.Errorf("Start(nil) error = %v", err)
	}

	if err := tk.Start(func() {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := tk.Start(func() {}); err == nil || !strings.Contains(err.Error(), "already running") {
		t.Errorf("second Start() error = %v", err)
	}

	tk.Stop()
	tk.Stop()

	// A stopped ticker can be started again.
	if err := tk.Start(func() {}); err != nil {
		t.Errorf("Start() after Stop error = %v", err)
	}
	tk.Stop()
}

func TestTickerBadPeriod(t *testing.T) {
	tk := NewTicker(clockwork.NewFakeClock(), 0)
	if err := tk.Start(func() {}); err == nil || !strings.Contains(err.Error(), "period must be positive") {
		t.Errorf("Start() error = %v", err)
	}
}

func TestTickerStopWithoutStart(t *testing.T) {
	tk := NewTicker(nil, DefaultPeriod)
	tk.Stop()
	if tk.Period() != DefaultPeriod {
		t.Errorf("Period() = %v, want %v", tk.Period(), DefaultPeriod)
	}
}

func TestDevOnFakeClock(t *testing.T) {
	tl := newTestLines()
	segs, digits := tl.pins()
	clock := clockwork.NewFakeClock()

	d, err := New(segs, digits, &Opts{Clock: clock})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Halt()
	d.Print("8888")
	clock.BlockUntil(1)

	// The fake ticker drops ticks nobody has received yet: advance one period
	// at a time.
	for i := uint32(1); i <= 4; i++ {
		clock.Advance(DefaultPeriod)
		deadline := time.Now().Add(waitTimeout)
		for d.Clock().Ticks() < i {
			if time.Now().After(deadline) {
				t.Fatalf("Ticks() = %d after %d periods", d.Clock().Ticks(), i)
			}
			time.Sleep(time.Millisecond)
		}
	}
	if got := d.Clock().Now(); got != 8 {
		t.Errorf("Now() = %d after 4 periods, want 8", got)
	}
}
