package schedule

import (
	"fmt"
	"time"
)

// Interval is a half-open [start, end) span on a production line.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

// Overlaps uses the half-open test, so touching intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

func (iv Interval) String() string {
	return iv.start.Format(time.RFC3339) + "/" + iv.end.Format(time.RFC3339)
}
