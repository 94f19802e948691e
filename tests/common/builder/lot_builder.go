//go:build unit || e2e

package builder

import (
	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	ID            uuid.UUID
	InputProduct  catalog.ProductID
	QuantityKg    decimal.Decimal
	Origin        string
	AlreadyMilled bool
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:           uuid.New(),
		InputProduct: 7,
		QuantityKg:   decimal.NewFromInt(300),
		Origin:       "Finca El Olivar",
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) Build() batch.IntakeLot {
	return batch.IntakeLot{
		ID:            b.ID,
		InputProduct:  b.InputProduct,
		QuantityKg:    b.QuantityKg,
		Origin:        b.Origin,
		AlreadyMilled: b.AlreadyMilled,
	}
}

func (b *LotBuilder) OfProduct(p catalog.ProductID) *LotBuilder {
	b.InputProduct = p
	return b
}

func (b *LotBuilder) WithQuantity(kg int64) *LotBuilder {
	b.QuantityKg = decimal.NewFromInt(kg)
	return b
}
