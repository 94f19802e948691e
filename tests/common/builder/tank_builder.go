//go:build unit || e2e

package builder

import (
	"olive-mill/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TankBuilder struct {
	ID              uuid.UUID
	Name            string
	CapacityKg      decimal.Decimal
	StockKg         decimal.Decimal
	AssignedProduct *catalog.ProductID
	AssignedOwner   *uuid.UUID
}

func NewTankBuilder() *TankBuilder {
	return &TankBuilder{
		ID:         uuid.New(),
		Name:       "Tank A",
		CapacityKg: decimal.NewFromInt(1000),
		StockKg:    decimal.NewFromInt(950),
	}
}

func (b *TankBuilder) With(mutate func(*TankBuilder)) *TankBuilder {
	mutate(b)
	return b
}

func (b *TankBuilder) BuildDomain() (*catalog.Tank, error) {
	return catalog.NewTank(b.ID, b.Name, b.CapacityKg, b.StockKg, b.AssignedProduct, b.AssignedOwner)
}

func (b *TankBuilder) WithStock(kg int64) *TankBuilder {
	b.StockKg = decimal.NewFromInt(kg)
	return b
}

func (b *TankBuilder) AssignedTo(product catalog.ProductID, owner *uuid.UUID) *TankBuilder {
	b.AssignedProduct = &product
	b.AssignedOwner = owner
	return b
}
