package simulation

import (
	"time"

	"github.com/oomph-ac/puppeteer/assert"
)

// Clock is a fixed rate tick clock. Every tick advances the simulation by the same delta.
type Clock struct {
	rate  int
	delta time.Duration

	tick    uint64
	elapsed time.Duration
}

// NewClock returns a clock ticking rate times per second.
func NewClock(rate int) *Clock {
	assert.IsTrue(rate > 0, "tick rate must be positive, got %d", rate)
	return &Clock{rate: rate, delta: time.Second / time.Duration(rate)}
}

// Rate returns the amount of ticks per second.
func (c *Clock) Rate() int {
	return c.rate
}

// Delta returns the duration of a single tick.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// Advance moves the clock forward by one tick and returns the duration of that tick.
func (c *Clock) Advance() time.Duration {
	c.tick++
	c.elapsed += c.delta
	return c.delta
}

// Tick returns the amount of ticks the clock has advanced.
func (c *Clock) Tick() uint64 {
	return c.tick
}

// Elapsed returns the total simulated time.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
