package queries

import (
	"context"
	"errors"
	"time"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/infra"
	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound = errs.Mark(errors.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess   = errs.Mark(errors.New("booking belongs to another requester"), errs.ErrForbidden)
)

type BookingView struct {
	ID           uuid.UUID
	LineID       uuid.UUID
	LineName     string
	RequesterID  uuid.UUID
	ProductType  int64
	QuantityKg   decimal.Decimal
	Start        time.Time
	End          time.Time
	Status       string
	Closed       bool
	ContactName  string
	ContactPhone string
	ContactEmail string
	ContactNote  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookingListItem is one row of a line listing. RequesterID is nil when the
// caller may not see who booked the slot.
type BookingListItem struct {
	ID          uuid.UUID
	RequesterID *uuid.UUID
	ProductType int64
	QuantityKg  decimal.Decimal
	Start       time.Time
	End         time.Time
	Status      string
	Closed      bool
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByLineFirstPage(ctx context.Context, lineID uuid.UUID, window TimeWindow, limit int32) ([]*BookingListItem, error)
	FindByLineKeyset(ctx context.Context, lineID uuid.UUID, window TimeWindow, lastStart time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, act actor.Actor) (*BookingView, error)
	ListByLine(ctx context.Context, lineID uuid.UUID, window TimeWindow, cursor *Cursor, limit int, act actor.Actor) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, act actor.Actor) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !act.IsOperator() && view.RequesterID != act.ID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

// ListByLine pages bookings ordered by slot start, then id. Every caller sees
// the line's occupancy; only operators and the requester see who booked.
func (q *bookingQueriesImpl) ListByLine(ctx context.Context, lineID uuid.UUID, window TimeWindow, cursor *Cursor, limit int, act actor.Actor) ([]*BookingListItem, *Cursor, error) {
	if err := window.Validate(); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByLineFirstPage(ctx, lineID, window, int32(limit+1))
	} else {
		lastStart, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByLineKeyset(ctx, lineID, window, lastStart, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.Start, last.ID)}
		rows = rows[:limit]
	}
	return redactRequesters(rows, act), next, nil
}

func redactRequesters(rows []*BookingListItem, act actor.Actor) []*BookingListItem {
	if act.IsOperator() {
		return rows
	}
	out := make([]*BookingListItem, len(rows))
	for i, row := range rows {
		if row.RequesterID != nil && *row.RequesterID == act.ID {
			out[i] = row
			continue
		}
		hidden := *row
		hidden.RequesterID = nil
		out[i] = &hidden
	}
	return out
}
