package puppet

import "time"

// Timer is a one-shot timer counting up towards its duration.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

// NewTimer returns a fresh timer with the given duration.
func NewTimer(d time.Duration) *Timer {
	return &Timer{Duration: d}
}

// Tick advances the timer by d. Elapsed time never exceeds the duration.
func (t *Timer) Tick(d time.Duration) {
	t.Elapsed = min(t.Elapsed+d, t.Duration)
}

// Finished returns true once the timer has run for its full duration.
func (t *Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

func (t *Timer) clone() *Timer {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
