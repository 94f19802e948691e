package repository

import (
	"context"

	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/converter"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	lockLineSQL = `SELECT pg_advisory_xact_lock(hashtextextended('line:' || $1::text, 0))`

	bookingForUpdateSQL = `SELECT ` + converter.BookingColumns + `
		FROM bookings b WHERE b.id = $1 FOR UPDATE`

	insertBookingSQL = `INSERT INTO bookings (
			id, line_id, requester_id, product_type, quantity_kg, slot, status, closed,
			contact_name, contact_phone, contact_email, contact_note, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, tstzrange($6, $7, '[)'), $8, $9, $10, $11, $12, $13, $14, $15)`

	updateBookingSQL = `UPDATE bookings SET
			line_id = $2, requester_id = $3, product_type = $4, quantity_kg = $5,
			slot = tstzrange($6, $7, '[)'), status = $8, closed = $9,
			contact_name = $10, contact_phone = $11, contact_email = $12, contact_note = $13,
			created_at = $14, updated_at = $15
		WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) LockLine(ctx context.Context, lineID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, lockLineSQL, lineID); err != nil {
		return infra.WrapRepoErr("failed to lock production line", err)
	}
	return nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Booking, error) {
	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, bookingForUpdateSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return row.ToDomain()
}

func (r *BookingRepository) Create(ctx context.Context, b *schedule.Booking) error {
	if _, err := r.db.Exec(ctx, insertBookingSQL, converter.BookingArgs(b)...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *schedule.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL, converter.BookingArgs(b)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
