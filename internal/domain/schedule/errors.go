package schedule

import (
	"errors"
	"fmt"

	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errs.Mark(errors.New("quantity must be positive"), errs.ErrInput)
	ErrInvalidRate     = errs.Mark(errors.New("throughput rate must be positive"), errs.ErrInput)
	ErrRunTooLong      = errs.Mark(errors.New("run duration exceeds the schedulable range"), errs.ErrInput)
	ErrInvalidInterval = errs.Mark(errors.New("interval start must be before end"), errs.ErrInput)
	ErrInvalidStatus   = errs.Mark(errors.New("invalid booking status"), errs.ErrInput)
	ErrBookingClosed   = errs.Mark(errors.New("booking is closed"), errs.ErrConflict)
	ErrAlreadyClosed   = errs.Mark(errors.New("booking is already closed"), errs.ErrConflict)
	ErrSlotConflict    = errors.New("slot conflict")
)

// SlotConflictError is returned when a candidate booking overlaps an existing
// one. Proposed is nil when no free slot was found within the attempt limit.
type SlotConflictError struct {
	ResourceID           uuid.UUID
	ConflictingBookingID uuid.UUID
	Conflicting          Interval
	Proposed             *Interval
}

func (e *SlotConflictError) Error() string {
	msg := fmt.Sprintf("slot conflict on line %s with booking %s (%s)", e.ResourceID, e.ConflictingBookingID, e.Conflicting)
	if e.Proposed != nil {
		msg += "; next free slot " + e.Proposed.String()
	}
	return msg
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict || target == errs.ErrConflict
}
