package race

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker owns at most one running clockwork ticker. Fires are not
// delivered to a callback; the owner receives from C on its own goroutine.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration
	ticker   clockwork.Ticker
}

func NewTicker(clock clockwork.Clock, interval time.Duration) *Ticker {
	return &Ticker{
		clock:    clock,
		interval: interval,
	}
}

// Start replaces any running ticker with a fresh one.
func (t *Ticker) Start() {
	t.Stop()
	t.ticker = t.clock.NewTicker(t.interval)
}

// Stop is safe to call when already stopped.
func (t *Ticker) Stop() {
	if t.ticker == nil {
		return
	}

	t.ticker.Stop()
	// drop a fire that landed before Stop
	select {
	case <-t.ticker.Chan():
	default:
	}
	t.ticker = nil
}

func (t *Ticker) Running() bool {
	return t.ticker != nil
}

// C returns the fire channel, or nil when stopped. A nil channel never
// becomes ready, so a select on it falls through to its default case.
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}

	return t.ticker.Chan()
}
