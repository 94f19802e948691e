package schedule

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultSlotStep    = 15 * time.Minute
	DefaultMaxAttempts = 5
)

var (
	secondsPerHour = decimal.NewFromInt(3600)
	maxRunSeconds  = decimal.NewFromInt(math.MaxInt64 / int64(time.Second))
)

// ComputeEnd derives the end of a run from quantity and line throughput.
// The duration is rounded to the nearest second and is never shorter than one
// second, so every accepted run occupies a non-empty slot.
func ComputeEnd(start time.Time, quantityKg, rateKgPerHour decimal.Decimal) (time.Time, error) {
	if !rateKgPerHour.IsPositive() {
		return time.Time{}, ErrInvalidRate
	}
	if !quantityKg.IsPositive() {
		return time.Time{}, ErrInvalidQuantity
	}

	seconds := quantityKg.Mul(secondsPerHour).Div(rateKgPerHour).Round(0)
	if seconds.GreaterThan(maxRunSeconds) {
		return time.Time{}, ErrRunTooLong
	}
	if !seconds.IsPositive() {
		seconds = decimal.NewFromInt(1)
	}
	return start.Add(time.Duration(seconds.IntPart()) * time.Second), nil
}

// FindConflict returns the first existing booking on the candidate's line
// that still blocks its slot and overlaps the candidate. The candidate's own
// id is skipped so an edited booking does not collide with itself.
func FindConflict(candidate *Booking, existing []*Booking) *Booking {
	return firstOverlap(candidate.resourceID, candidate.interval, existing, map[uuid.UUID]struct{}{candidate.id: {}})
}

func firstOverlap(resourceID uuid.UUID, iv Interval, existing []*Booking, skip map[uuid.UUID]struct{}) *Booking {
	for _, b := range existing {
		if b == nil || b.resourceID != resourceID || !b.Blocks() {
			continue
		}
		if _, ok := skip[b.id]; ok {
			continue
		}
		if b.interval.Overlaps(iv) {
			return b
		}
	}
	return nil
}

type Scheduler struct {
	Step        time.Duration
	MaxAttempts int
}

func NewScheduler(step time.Duration, maxAttempts int) *Scheduler {
	if step <= 0 {
		step = DefaultSlotStep
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Scheduler{Step: step, MaxAttempts: maxAttempts}
}

// ProposeNextSlot looks for the earliest grid-aligned slot of the given
// duration after conflict ends. On each collision it jumps to the end of the
// booking it hit rather than stepping by a fixed increment. ok is false when
// MaxAttempts trials all collide.
func (s *Scheduler) ProposeNextSlot(conflict *Booking, duration time.Duration, existing []*Booking, exclude ...uuid.UUID) (Interval, bool) {
	if conflict == nil || duration <= 0 {
		return Interval{}, false
	}

	skip := make(map[uuid.UUID]struct{}, len(exclude)+1)
	skip[conflict.id] = struct{}{}
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	start := s.roundUp(conflict.interval.end)
	for attempt := 0; attempt < s.MaxAttempts; attempt++ {
		trial := Interval{start: start, end: start.Add(duration)}
		hit := firstOverlap(conflict.resourceID, trial, existing, skip)
		if hit == nil {
			return trial, true
		}
		start = s.roundUp(hit.interval.end)
	}
	return Interval{}, false
}

// Check runs the conflict check for a candidate and, on collision, returns a
// *SlotConflictError carrying the next free slot when one exists.
func (s *Scheduler) Check(candidate *Booking, existing []*Booking) error {
	conflict := FindConflict(candidate, existing)
	if conflict == nil {
		return nil
	}

	err := &SlotConflictError{
		ResourceID:           candidate.resourceID,
		ConflictingBookingID: conflict.id,
		Conflicting:          conflict.interval,
	}
	if next, ok := s.ProposeNextSlot(conflict, candidate.interval.Duration(), existing, candidate.id); ok {
		err.Proposed = &next
	}
	return err
}

// roundUp aligns t to the next Step boundary counted from local midnight.
// Times already on a boundary are returned unchanged.
func (s *Scheduler) roundUp(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := t.Sub(midnight)
	rem := offset % s.Step
	if rem == 0 {
		return t
	}
	return midnight.Add(offset - rem + s.Step)
}
