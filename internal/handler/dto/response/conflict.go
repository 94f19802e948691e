package response

import (
	"time"

	"olive-mill/internal/domain/capacity"
	"olive-mill/internal/domain/schedule"

	"github.com/google/uuid"
)

type SlotConflictDetail struct {
	LineID               uuid.UUID  `json:"line_id"`
	ConflictingBookingID uuid.UUID  `json:"conflicting_booking_id"`
	ConflictStart        time.Time  `json:"conflict_start"`
	ConflictEnd          time.Time  `json:"conflict_end"`
	ProposedStart        *time.Time `json:"proposed_start,omitempty"`
	ProposedEnd          *time.Time `json:"proposed_end,omitempty"`
}

func FromSlotConflict(e *schedule.SlotConflictError) *SlotConflictDetail {
	d := &SlotConflictDetail{
		LineID:               e.ResourceID,
		ConflictingBookingID: e.ConflictingBookingID,
		ConflictStart:        e.Conflicting.Start(),
		ConflictEnd:          e.Conflicting.End(),
	}
	if e.Proposed != nil {
		start, end := e.Proposed.Start(), e.Proposed.End()
		d.ProposedStart = &start
		d.ProposedEnd = &end
	}
	return d
}

type CapacityDetail struct {
	TankID      uuid.UUID `json:"tank_id"`
	AvailableKg string    `json:"available_kg"`
	RequestedKg string    `json:"requested_kg"`
}

func FromCapacityExceeded(e *capacity.CapacityExceededError) *CapacityDetail {
	return &CapacityDetail{
		TankID:      e.TankID,
		AvailableKg: e.Available.String(),
		RequestedKg: e.Requested.String(),
	}
}
