package response

import (
	"time"

	"olive-mill/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContactResponse struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Note  string `json:"note,omitempty"`
}

type BookingResponse struct {
	ID          uuid.UUID       `json:"id"`
	LineID      uuid.UUID       `json:"line_id"`
	LineName    string          `json:"line_name"`
	RequesterID uuid.UUID       `json:"requester_id"`
	ProductType int64           `json:"product_type"`
	QuantityKg  string          `json:"quantity_kg"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Status      string          `json:"status"`
	Closed      bool            `json:"closed"`
	Contact     ContactResponse `json:"contact"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID *uuid.UUID `json:"requester_id,omitempty"`
	ProductType int64      `json:"product_type"`
	QuantityKg  string     `json:"quantity_kg"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Status      string     `json:"status"`
	Closed      bool       `json:"closed"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	res.Contact = ContactResponse{
		Name:  v.ContactName,
		Phone: v.ContactPhone,
		Email: v.ContactEmail,
		Note:  v.ContactNote,
	}
	return res, nil
}

func FromBookingList(items []*queries.BookingListItem) ([]*BookingListItemResponse, error) {
	res := make([]*BookingListItemResponse, 0, len(items))
	if err := copyInto(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}
