package converter

import (
	"time"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns matches the scan order of BookingRow.Targets.
const BookingColumns = `b.id, b.line_id, b.requester_id, b.product_type, b.quantity_kg,
	lower(b.slot), upper(b.slot), b.status, b.closed,
	b.contact_name, b.contact_phone, b.contact_email, b.contact_note,
	b.created_at, b.updated_at`

type BookingRow struct {
	ID           uuid.UUID
	LineID       uuid.UUID
	RequesterID  uuid.UUID
	ProductType  int64
	QuantityKg   pgtype.Numeric
	SlotStart    time.Time
	SlotEnd      time.Time
	Status       string
	Closed       bool
	ContactName  pgtype.Text
	ContactPhone pgtype.Text
	ContactEmail pgtype.Text
	ContactNote  pgtype.Text
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *BookingRow) Targets() []any {
	return []any{
		&r.ID, &r.LineID, &r.RequesterID, &r.ProductType, &r.QuantityKg,
		&r.SlotStart, &r.SlotEnd, &r.Status, &r.Closed,
		&r.ContactName, &r.ContactPhone, &r.ContactEmail, &r.ContactNote,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *BookingRow) Contact() schedule.Contact {
	return schedule.Contact{
		Name:  pgconv.StringFromPgtype(r.ContactName),
		Phone: pgconv.StringFromPgtype(r.ContactPhone),
		Email: pgconv.StringFromPgtype(r.ContactEmail),
		Note:  pgconv.StringFromPgtype(r.ContactNote),
	}
}

func (r *BookingRow) ToDomain() (*schedule.Booking, error) {
	qty, err := pgconv.DecimalFromNumeric(r.QuantityKg)
	if err != nil {
		return nil, err
	}
	iv, err := schedule.NewInterval(r.SlotStart, r.SlotEnd)
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructBooking(
		r.ID,
		r.LineID,
		r.RequesterID,
		catalog.ProductID(r.ProductType),
		qty,
		iv,
		schedule.Status(r.Status),
		r.Closed,
		r.Contact(),
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

// BookingArgs returns the positional arguments shared by insert and update:
// $1 id, $2 line, $3 requester, $4 product, $5 quantity, $6 slot start,
// $7 slot end, $8 status, $9 closed, $10-$13 contact, $14 created, $15 updated.
func BookingArgs(b *schedule.Booking) []any {
	c := b.Contact()
	return []any{
		b.ID(),
		b.ResourceID(),
		b.RequesterID(),
		int64(b.ProductType()),
		pgconv.DecimalToNumeric(b.QuantityKg()),
		pgconv.TimeToPgtype(b.Interval().Start()),
		pgconv.TimeToPgtype(b.Interval().End()),
		string(b.Status()),
		b.IsClosed(),
		pgconv.StringToPgtype(c.Name),
		pgconv.StringToPgtype(c.Phone),
		pgconv.StringToPgtype(c.Email),
		pgconv.StringToPgtype(c.Note),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
