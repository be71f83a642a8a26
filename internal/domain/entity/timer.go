package entity

import (
	"math"
	"time"
)

// tickSlack absorbs the sub-nanosecond rounding of steps like 1/3 s
const tickSlack = time.Microsecond

// Timer is a repeating countdown.
// Time is kept in integer nanoseconds so summing many small steps never
// drifts below a completed interval.
type Timer struct {
	Elapsed  time.Duration
	Duration time.Duration
}

// Seconds converts a float second count to a Duration, rounded to the nanosecond
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// NewTimer creates a repeating timer of the given length in seconds
func NewTimer(seconds float64) Timer {
	return Timer{Duration: Seconds(seconds)}
}

// Tick advances the timer by dt seconds and returns how many intervals
// completed. A zero or negative duration never fires.
func (t *Timer) Tick(dt float64) int {
	step := Seconds(dt)
	if t.Duration <= 0 || step <= 0 {
		return 0
	}
	t.Elapsed += step
	n := 0
	for t.Elapsed+tickSlack >= t.Duration {
		t.Elapsed -= t.Duration
		n++
	}
	return n
}
