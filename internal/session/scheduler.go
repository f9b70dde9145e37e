package session

import (
	"time"

	"github.com/vovakirdan/ninja-jump/internal/core"
)

// Scheduler turns driver ticks into game steps. Drivers (a Bubble Tea tick
// chain, Ebiten's Update loop, tests) call Tick once per frame and stop
// asking for frames when it returns false.
type Scheduler struct {
	session *Session
	surface core.Surface
	ticks   int
}

// NewScheduler creates a scheduler. surface may be nil when the driver
// renders on its own schedule.
func NewScheduler(s *Session, surface core.Surface) *Scheduler {
	return &Scheduler{session: s, surface: surface}
}

// Tick runs one frame: step then render. It does nothing unless the session
// is Running and reports whether another tick is wanted.
func (sc *Scheduler) Tick() bool {
	if sc.session.State() != StateRunning {
		return false
	}

	sc.ticks++
	sc.session.Step()
	if sc.surface != nil {
		sc.session.Render(sc.surface)
	}

	return sc.session.State() == StateRunning
}

// Ticks returns how many frames were stepped.
func (sc *Scheduler) Ticks() int {
	return sc.ticks
}

// Interval returns the frame period for a tick rate, 60 Hz by default.
func Interval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
