// SPDX-License-Identifier: MIT

package bench

import "time"

// Timer measures wall-clock intervals on the monotonic clock.
// The zero value is usable once Start has been called.
type Timer struct {
	start time.Time
}

// Start (re)arms the timer.
func (t *Timer) Start() { t.start = time.Now() }

// Elapsed returns the time since the last Start.
func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

// ElapsedMS returns the time since the last Start in milliseconds.
func (t *Timer) ElapsedMS() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}

// ElapsedSeconds returns the time since the last Start in seconds.
func (t *Timer) ElapsedSeconds() float64 { return t.Elapsed().Seconds() }
