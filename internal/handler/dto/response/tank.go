package response

import (
	"olive-mill/internal/usecase/commands"

	"github.com/google/uuid"
)

type TankCheckResponse struct {
	TankID      uuid.UUID `json:"tank_id"`
	CapacityKg  string    `json:"capacity_kg"`
	StockKg     string    `json:"stock_kg"`
	AvailableKg string    `json:"available_kg"`
}

func FromTankCheck(r *commands.TankCheckResult) (*TankCheckResponse, error) {
	res := &TankCheckResponse{}
	if err := copyInto(res, r); err != nil {
		return nil, err
	}
	return res, nil
}
