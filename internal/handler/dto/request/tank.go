package request

import (
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TankCheckRequest struct {
	Product    int64           `json:"product" binding:"required,min=1"`
	OwnerID    uuid.UUID       `json:"owner_id" binding:"required"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
}

func (r *TankCheckRequest) ToCommand(tankID uuid.UUID) commands.TankCheckRequest {
	return commands.TankCheckRequest{
		TankID:     tankID,
		Product:    catalog.ProductID(r.Product),
		OwnerID:    r.OwnerID,
		QuantityKg: r.QuantityKg,
	}
}

func (r *TankCheckRequest) Validate() error {
	return checkKg("quantity_kg", r.QuantityKg)
}
