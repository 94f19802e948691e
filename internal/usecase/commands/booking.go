package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra"
	"olive-mill/internal/pkg/clock"
	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLineNotFound    = errs.Mark(errs.New("production line not found"), errs.ErrNotFound)
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrNotPermitted    = errs.Mark(errs.New("actor may not act on this booking"), errs.ErrForbidden)
	ErrOperatorOnly    = errs.Mark(errs.New("operation requires the operator role"), errs.ErrForbidden)
	ErrSlotTaken       = errs.Mark(errs.New("slot was taken by a concurrent booking"), errs.ErrConflict)
	ErrEmptyUpdate     = errs.Mark(errs.New("update request has no fields"), errs.ErrInput)
)

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, act actor.Actor) (*CreateBookingResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, act actor.Actor) error
	CorrectEnd(ctx context.Context, id uuid.UUID, end time.Time, act actor.Actor) error
	Close(ctx context.Context, id uuid.UUID, act actor.Actor) error
}

type CreateBookingRequest struct {
	LineID uuid.UUID
	// RequesterID defaults to the actor. uuid.Nil books in-house time.
	RequesterID *uuid.UUID
	ProductType catalog.ProductID
	QuantityKg  decimal.Decimal
	Start       time.Time
	Confirm     bool
	Contact     schedule.Contact
}

// UpdateBookingRequest is a partial update. Nil fields keep their value.
type UpdateBookingRequest struct {
	LineID      *uuid.UUID
	ProductType *catalog.ProductID
	QuantityKg  *decimal.Decimal
	Start       *time.Time
	Contact     *schedule.Contact
}

func (r UpdateBookingRequest) reschedules() bool {
	return r.LineID != nil || r.ProductType != nil || r.QuantityKg != nil || r.Start != nil
}

// coalesce returns the patched value when set, else the stored one.
func coalesce[T any](patched *T, stored T) T {
	if patched != nil {
		return *patched
	}
	return stored
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	scheduler *schedule.Scheduler
	horizon   time.Duration
	clock     clock.Clock
}

// NewBookingUseCase builds the booking commands. horizon bounds how far past
// a candidate's end the next-slot search may look.
func NewBookingUseCase(uow shared.UnitOfWork, scheduler *schedule.Scheduler, horizon time.Duration, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		scheduler: scheduler,
		horizon:   horizon,
		clock:     clk,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, act actor.Actor) (*CreateBookingResult, error) {
	requesterID := coalesce(req.RequesterID, act.ID)
	if !act.IsOperator() {
		if requesterID != act.ID || catalog.IsInHouse(requesterID) {
			return nil, ErrNotPermitted
		}
		if req.Confirm {
			return nil, ErrOperatorOnly
		}
	}

	status := schedule.StatusProvisional
	if req.Confirm {
		status = schedule.StatusConfirmed
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		line, err := uc.loadLine(ctx, tx, req.LineID)
		if err != nil {
			return err
		}

		booking, err := schedule.NewBooking(line, schedule.Draft{
			RequesterID: requesterID,
			ProductType: req.ProductType,
			QuantityKg:  req.QuantityKg,
			Start:       req.Start,
			Status:      status,
			Contact:     req.Contact,
		}, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Bookings().LockLine(ctx, line.ID()); err != nil {
			return err
		}
		if err := uc.checkSlot(ctx, tx, booking); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, booking); err != nil {
			return mapBookingWriteErr(err)
		}

		createdID = booking.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, act actor.Actor) error {
	if !req.reschedules() && req.Contact == nil {
		return ErrEmptyUpdate
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := uc.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !act.CanModify(booking.RequesterID()) {
			return ErrNotPermitted
		}

		now := uc.clock.Now()
		if req.reschedules() {
			line, err := uc.loadLine(ctx, tx, coalesce(req.LineID, booking.ResourceID()))
			if err != nil {
				return err
			}
			if err := tx.Bookings().LockLine(ctx, line.ID()); err != nil {
				return err
			}

			err = booking.Reschedule(
				line,
				coalesce(req.ProductType, booking.ProductType()),
				coalesce(req.QuantityKg, booking.QuantityKg()),
				coalesce(req.Start, booking.Interval().Start()),
				now,
			)
			if err != nil {
				return err
			}
			if err := uc.checkSlot(ctx, tx, booking); err != nil {
				return err
			}
		}

		if req.Contact != nil {
			if err := booking.UpdateContact(*req.Contact, now); err != nil {
				return err
			}
		}

		return mapBookingWriteErr(tx.Bookings().Update(ctx, booking))
	})
}

func (uc *bookingUseCaseImpl) CorrectEnd(ctx context.Context, id uuid.UUID, end time.Time, act actor.Actor) error {
	if !act.IsOperator() {
		return ErrOperatorOnly
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := uc.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := booking.CorrectEnd(end, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().LockLine(ctx, booking.ResourceID()); err != nil {
			return err
		}
		if err := uc.checkSlot(ctx, tx, booking); err != nil {
			return err
		}
		return mapBookingWriteErr(tx.Bookings().Update(ctx, booking))
	})
}

// Close records that the booked intake has happened. It happens once, by the
// requester or an operator.
func (uc *bookingUseCaseImpl) Close(ctx context.Context, id uuid.UUID, act actor.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := uc.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !act.CanModify(booking.RequesterID()) {
			return ErrNotPermitted
		}
		if err := booking.Close(uc.clock.Now()); err != nil {
			return err
		}
		return mapBookingWriteErr(tx.Bookings().Update(ctx, booking))
	})
}

// checkSlot runs the conflict check against every booking overlapping
// [start, end+horizon). A proposal reaching past that window is dropped since
// bookings beyond it were never loaded.
func (uc *bookingUseCaseImpl) checkSlot(ctx context.Context, tx shared.Tx, b *schedule.Booking) error {
	iv := b.Interval()
	windowEnd := iv.End().Add(uc.horizon)

	existing, err := tx.Reads().BookingsInWindow(ctx, b.ResourceID(), iv.Start(), windowEnd)
	if err != nil {
		return err
	}

	err = uc.scheduler.Check(b, existing)
	var conflict *schedule.SlotConflictError
	if errors.As(err, &conflict) && conflict.Proposed != nil && conflict.Proposed.End().After(windowEnd) {
		conflict.Proposed = nil
	}
	return err
}

func (uc *bookingUseCaseImpl) loadLine(ctx context.Context, tx shared.Tx, id uuid.UUID) (*catalog.ProductionLine, error) {
	line, err := tx.Reads().LineByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, ErrLineNotFound
	}
	return line, err
}

func (uc *bookingUseCaseImpl) loadForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*schedule.Booking, error) {
	booking, err := tx.Bookings().GetForUpdate(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, ErrBookingNotFound
	}
	return booking, err
}

// The exclusion constraint only fires when a concurrent writer slipped past
// the line lock.
func mapBookingWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindConflict):
		slog.Warn("booking rejected by overlap constraint", "error", err.Error())
		return ErrSlotTaken
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrLineNotFound
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	default:
		return err
	}
}
