package readstore

import (
	"context"
	"time"

	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/converter"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/pgconv"
	"olive-mill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	bookingByIDSQL = `SELECT ` + converter.BookingColumns + `, l.name
		FROM bookings b JOIN production_lines l ON l.id = b.line_id
		WHERE b.id = $1`

	bookingsInWindowSQL = `SELECT ` + converter.BookingColumns + `
		FROM bookings b
		WHERE b.line_id = $1 AND b.slot && tstzrange($2, $3, '[)')
		ORDER BY lower(b.slot), b.id`

	bookingsByLineSQL = `SELECT ` + converter.BookingColumns + `
		FROM bookings b
		WHERE b.line_id = $1
		  AND ($2::timestamptz IS NULL OR upper(b.slot) > $2)
		  AND ($3::timestamptz IS NULL OR lower(b.slot) < $3)
		ORDER BY lower(b.slot), b.id
		LIMIT $4`

	bookingsByLineKeysetSQL = `SELECT ` + converter.BookingColumns + `
		FROM bookings b
		WHERE b.line_id = $1
		  AND ($2::timestamptz IS NULL OR upper(b.slot) > $2)
		  AND ($3::timestamptz IS NULL OR lower(b.slot) < $3)
		  AND (lower(b.slot), b.id) > ($5::timestamptz, $6::uuid)
		ORDER BY lower(b.slot), b.id
		LIMIT $4`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var row converter.BookingRow
	var lineName string
	if err := r.db.QueryRow(ctx, bookingByIDSQL, id).Scan(append(row.Targets(), &lineName)...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	qty, err := pgconv.DecimalFromNumeric(row.QuantityKg)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking quantity", err)
	}
	contact := row.Contact()
	return &queries.BookingView{
		ID:           row.ID,
		LineID:       row.LineID,
		LineName:     lineName,
		RequesterID:  row.RequesterID,
		ProductType:  row.ProductType,
		QuantityKg:   qty,
		Start:        row.SlotStart,
		End:          row.SlotEnd,
		Status:       row.Status,
		Closed:       row.Closed,
		ContactName:  contact.Name,
		ContactPhone: contact.Phone,
		ContactEmail: contact.Email,
		ContactNote:  contact.Note,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// FindDomainByID loads the aggregate for command-side validation.
func (r *BookingReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*schedule.Booking, error) {
	var row converter.BookingRow
	var lineName string
	if err := r.db.QueryRow(ctx, bookingByIDSQL, id).Scan(append(row.Targets(), &lineName)...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return row.ToDomain()
}

func (r *BookingReadStore) FindInWindow(ctx context.Context, lineID uuid.UUID, from, to time.Time) ([]*schedule.Booking, error) {
	rows, err := r.db.Query(ctx, bookingsInWindowSQL, lineID, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in window", err)
	}

	bookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*schedule.Booking, error) {
		var br converter.BookingRow
		if err := row.Scan(br.Targets()...); err != nil {
			return nil, err
		}
		return br.ToDomain()
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings in window", err)
	}
	return bookings, nil
}

func (r *BookingReadStore) FindByLineFirstPage(ctx context.Context, lineID uuid.UUID, window queries.TimeWindow, limit int32) ([]*queries.BookingListItem, error) {
	from, to := windowBounds(window)
	rows, err := r.db.Query(ctx, bookingsByLineSQL, lineID, from, to, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by line", err)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) FindByLineKeyset(ctx context.Context, lineID uuid.UUID, window queries.TimeWindow, lastStart time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	from, to := windowBounds(window)
	rows, err := r.db.Query(ctx, bookingsByLineKeysetSQL, lineID, from, to, limit, pgconv.TimeToPgtype(lastStart), lastID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by line keyset", err)
	}
	return collectListItems(rows)
}

func windowBounds(w queries.TimeWindow) (from, to pgtype.Timestamptz) {
	if !w.From.IsZero() {
		from = pgconv.TimeToPgtype(w.From)
	}
	if !w.To.IsZero() {
		to = pgconv.TimeToPgtype(w.To)
	}
	return from, to
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingListItem, error) {
		var br converter.BookingRow
		if err := row.Scan(br.Targets()...); err != nil {
			return nil, err
		}
		qty, err := pgconv.DecimalFromNumeric(br.QuantityKg)
		if err != nil {
			return nil, err
		}
		return &queries.BookingListItem{
			ID:          br.ID,
			RequesterID: &br.RequesterID,
			ProductType: br.ProductType,
			QuantityKg:  qty,
			Start:       br.SlotStart,
			End:         br.SlotEnd,
			Status:      br.Status,
			Closed:      br.Closed,
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking list", err)
	}
	return items, nil
}
