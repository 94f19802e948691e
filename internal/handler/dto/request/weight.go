package request

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Weights are stored as numeric(12,3).
const kgScale = 3

var maxKg = decimal.New(1, 9)

func checkKg(field string, v decimal.Decimal) error {
	if !v.Equal(v.Truncate(kgScale)) {
		return fmt.Errorf("%s allows at most %d decimal places", field, kgScale)
	}
	if v.Abs().GreaterThanOrEqual(maxKg) {
		return fmt.Errorf("%s must be below %s kg", field, maxKg)
	}
	return nil
}
