package request

import (
	"time"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContactRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Phone string `json:"phone" binding:"max=50"`
	Email string `json:"email" binding:"omitempty,email,max=254"`
	Note  string `json:"note" binding:"max=1000"`
}

func (r *ContactRequest) toDomain() schedule.Contact {
	if r == nil {
		return schedule.Contact{}
	}
	return schedule.Contact{Name: r.Name, Phone: r.Phone, Email: r.Email, Note: r.Note}
}

type CreateBookingRequest struct {
	LineID uuid.UUID `json:"line_id" binding:"required"`
	// Operators may book for a client or, with the nil uuid, for the mill.
	RequesterID *uuid.UUID      `json:"requester_id"`
	ProductType int64           `json:"product_type" binding:"required,min=1"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	Start       time.Time       `json:"start" binding:"required"`
	Confirm     bool            `json:"confirm"`
	Contact     *ContactRequest `json:"contact"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		LineID:      r.LineID,
		RequesterID: r.RequesterID,
		ProductType: catalog.ProductID(r.ProductType),
		QuantityKg:  r.QuantityKg,
		Start:       r.Start,
		Confirm:     r.Confirm,
		Contact:     r.Contact.toDomain(),
	}
}

func (r *CreateBookingRequest) Validate() error {
	return checkKg("quantity_kg", r.QuantityKg)
}

type UpdateBookingRequest struct {
	LineID      *uuid.UUID       `json:"line_id"`
	ProductType *int64           `json:"product_type" binding:"omitempty,min=1"`
	QuantityKg  *decimal.Decimal `json:"quantity_kg"`
	Start       *time.Time       `json:"start"`
	Contact     *ContactRequest  `json:"contact"`
}

func (r *UpdateBookingRequest) ToCommand() commands.UpdateBookingRequest {
	cmd := commands.UpdateBookingRequest{
		LineID:     r.LineID,
		QuantityKg: r.QuantityKg,
		Start:      r.Start,
	}
	if r.ProductType != nil {
		p := catalog.ProductID(*r.ProductType)
		cmd.ProductType = &p
	}
	if r.Contact != nil {
		c := r.Contact.toDomain()
		cmd.Contact = &c
	}
	return cmd
}

func (r *UpdateBookingRequest) Validate() error {
	if r.QuantityKg == nil {
		return nil
	}
	return checkKg("quantity_kg", *r.QuantityKg)
}

type CorrectEndRequest struct {
	End time.Time `json:"end" binding:"required"`
}
