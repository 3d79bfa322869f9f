package partycle

import (
	"math"
	"time"
)

type TimerMode uint8

const TimerModeOnce TimerMode = 0
const TimerModeRepeating TimerMode = 1

// Timer is either a one shot or a repeating timer with a specific duration.
// Particles use a one shot timer for their lifetime, emitters a repeating
// one to fire bursts.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration

	finishedCountInTick uint32
	finished            bool
	mode                TimerMode
}

func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick adds the given amount of time to the Timer.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.finishedCountInTick = 0

	if t.finished && t.mode == TimerModeOnce {
		return t
	}

	t.elapsed += delta

	if t.elapsed < t.duration || t.duration <= 0 {
		return t
	}

	switch t.mode {
	case TimerModeOnce:
		t.elapsed = t.duration
		t.finished = true
		t.finishedCountInTick = 1

	case TimerModeRepeating:
		t.finishedCountInTick = uint32(min(math.MaxUint32, t.elapsed/t.duration))
		t.elapsed = t.elapsed % t.duration
	}

	return t
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Fraction returns how far the timer has progressed, 0 for a fresh timer
// and 1 for a finished one.
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

// Finished returns true once a TimerModeOnce timer has reached its duration.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished returns true if the timer reached its duration during the previous call to Tick.
func (t *Timer) JustFinished() bool {
	return t.finishedCountInTick > 0
}

// TimesFinishedThisTick returns the number of times this timer has finished at the previous call to Tick.
// E.g. if you tick a 1 second timer with a 3.5 second delta, the timer will have finished three times in this tick.
func (t *Timer) TimesFinishedThisTick() int {
	return int(t.finishedCountInTick)
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.finishedCountInTick = 0
}
