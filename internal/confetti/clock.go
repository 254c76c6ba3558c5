package confetti

import "time"

// Clock supplies frame timestamps in milliseconds.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMillis implements Clock.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ManualClock is advanced explicitly by its owner.
// Used by headless tools and tests to drive frames deterministically.
type ManualClock struct {
	Now int64
}

// NowMillis implements Clock.
func (c *ManualClock) NowMillis() int64 {
	return c.Now
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.Now += ms
}
