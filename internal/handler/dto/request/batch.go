package request

import (
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanBatchRequest struct {
	LotIDs        []uuid.UUID `json:"lot_ids" binding:"required,min=1,max=500"`
	OutputProduct *int64      `json:"output_product" binding:"omitempty,min=1"`
}

func (r *PlanBatchRequest) ToCommand() commands.PlanBatchRequest {
	return commands.PlanBatchRequest{
		LotIDs:        r.LotIDs,
		OutputProduct: productPtr(r.OutputProduct),
	}
}

type CommitBatchRequest struct {
	OwnerID       uuid.UUID       `json:"owner_id" binding:"required"`
	TankID        uuid.UUID       `json:"tank_id" binding:"required"`
	LotIDs        []uuid.UUID     `json:"lot_ids" binding:"required,min=1,max=500"`
	OutputKg      decimal.Decimal `json:"output_kg"`
	OutputProduct *int64          `json:"output_product" binding:"omitempty,min=1"`
}

func (r *CommitBatchRequest) ToCommand() commands.CommitBatchRequest {
	return commands.CommitBatchRequest{
		OwnerID:       r.OwnerID,
		TankID:        r.TankID,
		LotIDs:        r.LotIDs,
		OutputKg:      r.OutputKg,
		OutputProduct: productPtr(r.OutputProduct),
	}
}

func (r *CommitBatchRequest) Validate() error {
	return checkKg("output_kg", r.OutputKg)
}

func productPtr(v *int64) *catalog.ProductID {
	if v == nil {
		return nil
	}
	p := catalog.ProductID(*v)
	return &p
}
