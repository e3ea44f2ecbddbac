package progression

import (
	"math"
	"testing"
)

func TestOnceTimerFinishes(t *testing.T) {
	timer := NewTimer(1.0, Once)

	timer.Tick(0.6)
	if timer.JustFinished() || timer.Finished() {
		t.Error("timer finished early")
	}
	if got := timer.Remaining(); math.Abs(got-0.4) > 1e-6 {
		t.Errorf("remaining = %v, want 0.4", got)
	}

	timer.Tick(0.6)
	if !timer.JustFinished() || !timer.Finished() {
		t.Error("timer should finish once elapsed crosses the duration")
	}
	if got := timer.Remaining(); got != 0 {
		t.Errorf("remaining after finish = %v, want 0", got)
	}
}

func TestOnceTimerLatches(t *testing.T) {
	timer := NewTimer(0.5, Once)
	timer.Tick(1.0)
	if !timer.JustFinished() {
		t.Fatal("timer should have finished")
	}

	timer.Tick(1.0)
	if timer.JustFinished() {
		t.Error("a finished Once timer must not fire again")
	}
	if !timer.Finished() {
		t.Error("the finished latch must persist")
	}
}

func TestRepeatingTimerCarriesOverflow(t *testing.T) {
	timer := NewTimer(1.0, Repeating)

	// One tick spanning two and a half periods completes twice and
	// keeps the half period for the next cycle.
	timer.Tick(2.5)
	if got := timer.Completions(); got != 2 {
		t.Errorf("completions = %d, want 2", got)
	}
	timer.Tick(0.5)
	if got := timer.Completions(); got != 1 {
		t.Errorf("carry-over completions = %d, want 1", got)
	}
}

func TestRepeatingTimerZeroDuration(t *testing.T) {
	timer := NewTimer(0, Repeating)
	for i := 0; i < 3; i++ {
		timer.Tick(0.1)
		if got := timer.Completions(); got != 1 {
			t.Fatalf("tick %d completions = %d, want 1", i, got)
		}
	}
}

func TestSetDurationKeepsElapsed(t *testing.T) {
	timer := NewTimer(5.0, Once)
	timer.Tick(2.0)

	timer.SetDuration(3.0)
	if got := timer.Remaining(); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("remaining after retarget = %v, want 1.0", got)
	}

	timer.Tick(1.0)
	if !timer.JustFinished() {
		t.Error("retargeted timer should finish against the new duration")
	}
}

func TestReset(t *testing.T) {
	timer := NewTimer(1.0, Once)
	timer.Tick(2.0)
	timer.Reset()

	if timer.Finished() || timer.JustFinished() {
		t.Error("reset should clear the finished latch")
	}
	if got := timer.Remaining(); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("remaining after reset = %v, want the full duration", got)
	}
}
