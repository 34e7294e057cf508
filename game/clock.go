package game

import "time"

// Clock is the game's time source. Elapsed returns the non-negative number
// of seconds since the previous call.
type Clock interface {
	Elapsed() float64
}

// WallClock measures real elapsed time using the monotonic clock.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock returns a clock whose first Elapsed call measures from now.
func NewWallClock() *WallClock {
	return &WallClock{last: time.Now(), now: time.Now}
}

func (c *WallClock) Elapsed() float64 {
	now := c.now()
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// FixedStep reports the same delta on every call. Frontends driven by a fixed
// update rate use it, e.g. FixedStep(1.0 / 60).
type FixedStep float64

func (f FixedStep) Elapsed() float64 {
	if f < 0 {
		return 0
	}
	return float64(f)
}

// ManualClock reports whatever was added with Advance since the last call.
type ManualClock struct {
	pending float64
}

// Advance adds seconds to the next reading. Negative values are ignored.
func (m *ManualClock) Advance(seconds float64) {
	if seconds > 0 {
		m.pending += seconds
	}
}

func (m *ManualClock) Elapsed() float64 {
	d := m.pending
	m.pending = 0
	return d
}
