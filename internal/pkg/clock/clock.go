package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reports UTC at microsecond precision so values survive a
// timestamptz round trip unchanged.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

// Advance moves the clock forward and returns the new time.
func (c *MockClock) Advance(d time.Duration) time.Time {
	c.currentTime = c.currentTime.Add(d)
	return c.currentTime
}
