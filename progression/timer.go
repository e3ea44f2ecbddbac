// Package progression is the live, per-run wave controller: it
// alternates between intermission countdowns and spawning phases,
// consuming a wave plan's enemy queue over time.
package progression

import "time"

// TimerMode selects countdown behavior.
type TimerMode int

const (
	// Once finishes a single time and stays finished until Reset.
	Once TimerMode = iota
	// Repeating rolls over on completion, carrying excess elapsed
	// time into the next cycle.
	Repeating
)

// Timer is a frame-stepped countdown advanced by tick deltas. It is
// the only mechanism in this package that spans ticks.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode

	finished    bool
	completions int
}

// NewTimer builds a timer with the duration given in seconds.
func NewTimer(seconds float64, mode TimerMode) *Timer {
	return &Timer{duration: secsToDuration(seconds), mode: mode}
}

// Tick advances the timer by dt seconds and records completions.
func (t *Timer) Tick(dt float64) {
	t.completions = 0
	if t.mode == Once && t.finished {
		return
	}
	t.elapsed += secsToDuration(dt)

	switch t.mode {
	case Once:
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.completions = 1
		}
	case Repeating:
		if t.duration <= 0 {
			// Degenerate interval: complete once per tick instead of
			// spinning forever.
			t.completions = 1
			t.elapsed = 0
			return
		}
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
			t.completions++
		}
	}
}

// JustFinished reports whether the last Tick crossed a completion.
func (t *Timer) JustFinished() bool { return t.completions > 0 }

// Completions returns how many times the timer completed during the
// last Tick. Repeating timers can complete more than once when a tick
// delta spans several periods.
func (t *Timer) Completions() int { return t.completions }

// Finished reports whether a Once timer has run out.
func (t *Timer) Finished() bool { return t.finished }

// Remaining returns seconds left until the next completion.
func (t *Timer) Remaining() float64 {
	left := t.duration - t.elapsed
	if left < 0 {
		left = 0
	}
	return left.Seconds()
}

// Duration returns the configured period in seconds.
func (t *Timer) Duration() float64 { return t.duration.Seconds() }

// SetDuration retargets the timer without resetting elapsed time.
func (t *Timer) SetDuration(seconds float64) {
	t.duration = secsToDuration(seconds)
}

// Reset clears elapsed time and the finished latch.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.completions = 0
}

func secsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
