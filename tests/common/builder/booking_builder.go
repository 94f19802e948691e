//go:build unit || e2e

package builder

import (
	"time"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/schedule"
	reqdto "olive-mill/internal/handler/dto/request"
	"olive-mill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Morning is the reference start used across scheduling tests.
var Morning = time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID                  uuid.UUID
	LineID              uuid.UUID
	LineName            string
	ThroughputKgPerHour decimal.Decimal
	RequesterID         uuid.UUID
	ProductType         catalog.ProductID
	QuantityKg          decimal.Decimal
	Start               time.Time
	End                 *time.Time
	Status              schedule.Status
	Closed              bool
	Contact             schedule.Contact
	CreatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                  uuid.New(),
		LineID:              uuid.New(),
		LineName:            "Line 1",
		ThroughputKgPerHour: decimal.NewFromInt(1000),
		RequesterID:         uuid.New(),
		ProductType:         7,
		QuantityKg:          decimal.NewFromInt(500),
		Start:               Morning,
		Status:              schedule.StatusProvisional,
		Contact: schedule.Contact{
			Name:  "Maria Lopez",
			Phone: "+34 600 000 000",
			Email: "maria@example.com",
		},
		CreatedAt: Morning.Add(-24 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildLine() (*catalog.ProductionLine, error) {
	return catalog.NewProductionLine(b.LineID, b.LineName, b.ThroughputKgPerHour, nil)
}

func (b *BookingBuilder) BuildDraft() schedule.Draft {
	return schedule.Draft{
		RequesterID: b.RequesterID,
		ProductType: b.ProductType,
		QuantityKg:  b.QuantityKg,
		Start:       b.Start,
		Status:      b.Status,
		Contact:     b.Contact,
	}
}

// BuildDomain creates a fresh booking through the validating constructor.
func (b *BookingBuilder) BuildDomain() (*schedule.Booking, error) {
	line, err := b.BuildLine()
	if err != nil {
		return nil, err
	}
	return schedule.NewBooking(line, b.BuildDraft(), b.CreatedAt)
}

// BuildExisting reconstructs a stored booking with the builder's ID.
func (b *BookingBuilder) BuildExisting() *schedule.Booking {
	end := b.Start
	if b.End != nil {
		end = *b.End
	} else if computed, err := schedule.ComputeEnd(b.Start, b.QuantityKg, b.ThroughputKgPerHour); err == nil {
		end = computed
	}
	iv, err := schedule.NewInterval(b.Start, end)
	if err != nil {
		panic("builder: invalid interval: " + err.Error())
	}
	return schedule.ReconstructBooking(
		b.ID, b.LineID, b.RequesterID,
		b.ProductType, b.QuantityKg, iv,
		b.Status, b.Closed, b.Contact,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		LineID:      b.LineID,
		ProductType: int64(b.ProductType),
		QuantityKg:  b.QuantityKg,
		Start:       b.Start,
		Contact: &reqdto.ContactRequest{
			Name:  b.Contact.Name,
			Phone: b.Contact.Phone,
			Email: b.Contact.Email,
		},
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	booking := b.BuildExisting()
	return &queries.BookingView{
		ID:           booking.ID(),
		LineID:       booking.ResourceID(),
		LineName:     b.LineName,
		RequesterID:  booking.RequesterID(),
		ProductType:  int64(booking.ProductType()),
		QuantityKg:   booking.QuantityKg(),
		Start:        booking.Interval().Start(),
		End:          booking.Interval().End(),
		Status:       string(booking.Status()),
		Closed:       booking.IsClosed(),
		ContactName:  b.Contact.Name,
		ContactPhone: b.Contact.Phone,
		ContactEmail: b.Contact.Email,
		ContactNote:  b.Contact.Note,
		CreatedAt:    booking.CreatedAt(),
		UpdatedAt:    booking.UpdatedAt(),
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	v := b.BuildViewQuery()
	return &queries.BookingListItem{
		ID:          v.ID,
		RequesterID: &v.RequesterID,
		ProductType: v.ProductType,
		QuantityKg:  v.QuantityKg,
		Start:       v.Start,
		End:         v.End,
		Status:      v.Status,
		Closed:      v.Closed,
	}
}

func (b *BookingBuilder) WithLine(lineID uuid.UUID) *BookingBuilder {
	b.LineID = lineID
	return b
}

func (b *BookingBuilder) WithRequester(requesterID uuid.UUID) *BookingBuilder {
	b.RequesterID = requesterID
	return b
}

func (b *BookingBuilder) WithQuantity(kg int64) *BookingBuilder {
	b.QuantityKg = decimal.NewFromInt(kg)
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.Start = start
	return b
}

func (b *BookingBuilder) WithSpan(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = &end
	return b
}

func (b *BookingBuilder) AsClosed() *BookingBuilder {
	b.Closed = true
	return b
}

func (b *BookingBuilder) AsCanceled() *BookingBuilder {
	b.Status = schedule.StatusCanceled
	return b
}

func (b *BookingBuilder) AsInHouse() *BookingBuilder {
	b.RequesterID = catalog.InHouse
	return b
}
