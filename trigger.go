package segmux

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Trigger is the periodic mechanism that invokes the scan routine.
//
// Disable and Restore bracket a critical section in which the routine cannot
// run. They nest: Restore re-enables only when the matching Disable found the
// trigger enabled.
type Trigger interface {
	// Disable blocks the periodic routine, waiting for a running invocation
	// to return, and reports whether the trigger was enabled.
	Disable() bool
	// Restore re-enables the periodic routine if enabled is true.
	Restore(enabled bool)
}

// Ticker is a Trigger that calls a function every period.
//
// A tick that arrives while the ticker is disabled is held as a single pending
// invocation and delivered once the ticker is enabled again.
type Ticker struct {
	clock  clockwork.Clock
	period time.Duration

	busy sync.Mutex // held while fn runs

	mu      sync.Mutex
	enabled bool
	pending bool
	running bool

	fn   func()
	kick chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewTicker returns an enabled, stopped ticker. A nil clock uses the real clock.
func NewTicker(clock clockwork.Clock, period time.Duration) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Ticker{
		clock:   clock,
		period:  period,
		enabled: true,
		kick:    make(chan struct{}, 1),
	}
}

// Period returns the tick period.
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Start begins calling fn once per period on a separate goroutine.
func (t *Ticker) Start(fn func()) error {
	if fn == nil {
		return errors.New("segmux: nil tick function")
	}
	if t.period <= 0 {
		return errors.New("segmux: tick period must be positive")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return errors.New("segmux: ticker already running")
	}
	t.running = true
	t.fn = fn
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	tk := t.clock.NewTicker(t.period)
	go t.loop(tk, t.stop, t.done)
	return nil
}

// Stop ends periodic invocation and waits for the goroutine to exit.
// It is a no-op on a stopped ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stop, done := t.stop, t.done
	t.mu.Unlock()

	close(stop)
	<-done
}

// Disable implements Trigger.
func (t *Ticker) Disable() bool {
	t.mu.Lock()
	was := t.enabled
	t.enabled = false
	t.mu.Unlock()

	if was {
		// Wait out an invocation that started before the flag was cleared.
		t.busy.Lock()
		t.busy.Unlock()
	}
	return was
}

// Restore implements Trigger.
func (t *Ticker) Restore(enabled bool) {
	if !enabled {
		return
	}
	t.mu.Lock()
	t.enabled = true
	fire := t.pending
	t.pending = false
	t.mu.Unlock()

	if fire {
		select {
		case t.kick <- struct{}{}:
		default:
		}
	}
}

func (t *Ticker) loop(tk clockwork.Ticker, stop, done chan struct{}) {
	defer close(done)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tk.Chan():
			t.fire()
		case <-t.kick:
			t.fire()
		}
	}
}

func (t *Ticker) fire() {
	t.busy.Lock()
	defer t.busy.Unlock()

	t.mu.Lock()
	if !t.enabled {
		t.pending = true
		t.mu.Unlock()
		return
	}
	fn := t.fn
	t.mu.Unlock()

	fn()
}
