package schedule

import (
	"time"

	"olive-mill/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft carries the requester-supplied part of a booking. The end of the
// slot is never part of it: it is derived from the line throughput.
type Draft struct {
	RequesterID uuid.UUID
	ProductType catalog.ProductID
	QuantityKg  decimal.Decimal
	Start       time.Time
	Status      Status
	Contact     Contact
}

type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	requesterID uuid.UUID
	productType catalog.ProductID
	quantityKg  decimal.Decimal
	interval    Interval
	status      Status
	closed      bool
	contact     Contact
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(line *catalog.ProductionLine, d Draft, now time.Time) (*Booking, error) {
	status := d.Status
	if status == "" {
		status = StatusProvisional
	}
	if !status.IsValid() || status == StatusCanceled {
		return nil, ErrInvalidStatus
	}

	end, err := ComputeEnd(d.Start, d.QuantityKg, line.ThroughputKgPerHour())
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		resourceID:  line.ID(),
		requesterID: d.RequesterID,
		productType: d.ProductType,
		quantityKg:  d.QuantityKg,
		interval:    Interval{start: d.Start, end: end},
		status:      status,
		contact:     d.Contact,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, resourceID, requesterID uuid.UUID,
	productType catalog.ProductID,
	quantityKg decimal.Decimal,
	interval Interval,
	status Status,
	closed bool,
	contact Contact,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		resourceID:  resourceID,
		requesterID: requesterID,
		productType: productType,
		quantityKg:  quantityKg,
		interval:    interval,
		status:      status,
		closed:      closed,
		contact:     contact,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Reschedule moves the booking to a line, product, quantity and start,
// recomputing the end from the line throughput.
func (b *Booking) Reschedule(line *catalog.ProductionLine, productType catalog.ProductID, quantityKg decimal.Decimal, start time.Time, now time.Time) error {
	if b.closed {
		return ErrBookingClosed
	}

	end, err := ComputeEnd(start, quantityKg, line.ThroughputKgPerHour())
	if err != nil {
		return err
	}

	b.resourceID = line.ID()
	b.productType = productType
	b.quantityKg = quantityKg
	b.interval = Interval{start: start, end: end}
	b.markModified(now)
	return nil
}

// CorrectEnd overrides the derived end. Operators use it when the actual run
// diverged from the throughput estimate.
func (b *Booking) CorrectEnd(end time.Time, now time.Time) error {
	if b.closed {
		return ErrBookingClosed
	}

	iv, err := NewInterval(b.interval.start, end)
	if err != nil {
		return err
	}

	b.interval = iv
	b.markModified(now)
	return nil
}

func (b *Booking) UpdateContact(c Contact, now time.Time) error {
	if b.closed {
		return ErrBookingClosed
	}
	b.contact = c
	b.updatedAt = now
	return nil
}

// Close marks the booking as consumed by an intake event. It happens once.
func (b *Booking) Close(now time.Time) error {
	if b.closed {
		return ErrAlreadyClosed
	}
	b.closed = true
	b.updatedAt = now
	return nil
}

func (b *Booking) markModified(now time.Time) {
	b.status = StatusModified
	b.updatedAt = now
}

// Blocks reports whether the booking occupies its slot for conflict checks.
func (b *Booking) Blocks() bool {
	return !b.closed && b.status != StatusCanceled
}

func (b *Booking) IsOwnedBy(requesterID uuid.UUID) bool {
	return b.requesterID == requesterID
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) ResourceID() uuid.UUID          { return b.resourceID }
func (b *Booking) RequesterID() uuid.UUID         { return b.requesterID }
func (b *Booking) ProductType() catalog.ProductID { return b.productType }
func (b *Booking) QuantityKg() decimal.Decimal    { return b.quantityKg }
func (b *Booking) Interval() Interval             { return b.interval }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) IsClosed() bool                 { return b.closed }
func (b *Booking) Contact() Contact               { return b.contact }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
