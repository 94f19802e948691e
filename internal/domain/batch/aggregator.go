package batch

import (
	"github.com/shopspring/decimal"
)

var DefaultByproductRatio = decimal.RequireFromString("0.43")

type Totals struct {
	TotalQuantityKg      decimal.Decimal
	EstimatedByproductKg decimal.Decimal
}

// Aggregator folds lots into batches and projects planning totals.
type Aggregator struct {
	ByproductRatio decimal.Decimal
}

func NewAggregator(byproductRatio decimal.Decimal) *Aggregator {
	if !byproductRatio.IsPositive() {
		byproductRatio = DefaultByproductRatio
	}
	return &Aggregator{ByproductRatio: byproductRatio}
}

// Totals is recomputed from the members on every call.
func (a *Aggregator) Totals(b *MillingBatch) Totals {
	total := b.TotalQuantityKg()
	return Totals{
		TotalQuantityKg:      total,
		EstimatedByproductKg: total.Mul(a.ByproductRatio),
	}
}

// Fold adds lots in order and stops at the first rejection.
func (a *Aggregator) Fold(lots []IntakeLot) (*MillingBatch, error) {
	if len(lots) == 0 {
		return nil, ErrEmptyBatch
	}

	var b *MillingBatch
	for _, lot := range lots {
		next, err := AddLot(b, lot)
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}
