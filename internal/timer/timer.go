// Package timer implements the work/break interval timer state machine.
//
// The timer owns no goroutine: the host polls Tick and CompleteIfExpired on
// its own schedule and dispatches notifications itself. State is owned by a
// single tracking session and never persisted.
package timer

import (
	"time"

	"github.com/runoshun/timetrack/internal/domain"
)

// Phase is the current interval kind.
type Phase string

// Timer phases.
const (
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
)

// Config holds the durations read once at construction.
type Config struct {
	WorkDuration            time.Duration
	BreakDuration           time.Duration
	LongBreakDuration       time.Duration
	SessionsBeforeLongBreak int
	// AutoStartBreaks keeps the timer running across a phase boundary.
	// When false the timer pauses at each transition, waiting for Start.
	AutoStartBreaks bool
}

// Timer cycles work -> break -> (long break every N work sessions) -> work.
// There is no terminal state; the cycle runs until Reset.
// Fields are ordered to minimize memory padding.
type Timer struct {
	clock         domain.Clock
	startedAt     time.Time // wall clock reference for elapsed time
	cfg           Config
	remaining     time.Duration
	phase         Phase
	completedWork int
	running       bool
	justCompleted bool
}

// New creates a stopped timer in the work phase with the full work
// duration remaining.
func New(cfg Config, clock domain.Clock) *Timer {
	return &Timer{
		cfg:       cfg,
		clock:     clock,
		phase:     PhaseWork,
		remaining: cfg.WorkDuration,
	}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool { return t.running }

// Remaining returns the time left in the current phase, as of the last Tick.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// CompletedWorkSessions returns work sessions finished since the last long
// break or reset.
func (t *Timer) CompletedWorkSessions() int { return t.completedWork }

// Start begins or resumes the countdown. Resuming continues from the
// remaining time recorded at Stop.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.justCompleted = false
	// Shift the reference point back by the time already consumed, so Tick
	// keeps counting from the paused remainder.
	t.startedAt = t.clock.Now().Add(t.remaining - t.phaseDuration())
}

// Stop pauses the countdown without altering phase or remaining time.
func (t *Timer) Stop() {
	t.running = false
}

// Reset returns to the initial state regardless of current phase.
func (t *Timer) Reset() {
	t.running = false
	t.phase = PhaseWork
	t.completedWork = 0
	t.remaining = t.cfg.WorkDuration
	t.justCompleted = false
}

// Tick recomputes remaining time from the wall clock. It never performs the
// phase transition itself; the host follows up with CompleteIfExpired.
func (t *Timer) Tick() {
	if !t.running {
		return
	}
	elapsed := t.clock.Now().Sub(t.startedAt)
	t.remaining = t.phaseDuration() - elapsed
	if t.remaining > 0 {
		t.justCompleted = false
	} else {
		t.remaining = 0
	}
}

// CompleteIfExpired performs the phase transition when the current phase has
// run out, exactly once per expiry. It returns the phase that just ended so
// the host can dispatch its notification; ok is false when no transition
// happened on this poll.
func (t *Timer) CompleteIfExpired() (ended Phase, ok bool) {
	if !t.running || t.remaining > 0 || t.justCompleted {
		return "", false
	}

	ended = t.phase
	t.justCompleted = true

	if t.phase == PhaseWork {
		t.completedWork++
		if t.completedWork >= t.cfg.SessionsBeforeLongBreak {
			t.phase = PhaseLongBreak
			t.completedWork = 0
		} else {
			t.phase = PhaseBreak
		}
	} else {
		t.phase = PhaseWork
	}

	t.remaining = t.phaseDuration()
	if t.cfg.AutoStartBreaks {
		t.startedAt = t.clock.Now()
	} else {
		t.running = false
	}
	return ended, true
}

func (t *Timer) phaseDuration() time.Duration {
	switch t.phase {
	case PhaseBreak:
		return t.cfg.BreakDuration
	case PhaseLongBreak:
		return t.cfg.LongBreakDuration
	default:
		return t.cfg.WorkDuration
	}
}
