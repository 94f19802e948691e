package capacity

import (
	"olive-mill/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	DefaultMinYield = decimal.RequireFromString("0.08")
	DefaultMaxYield = decimal.RequireFromString("0.20")
)

type YieldStatus string

const (
	YieldValid      YieldStatus = "valid"
	YieldOutOfRange YieldStatus = "out_of_range"
)

// YieldAssessment is advisory. OutOfRange never blocks a commit by itself.
type YieldAssessment struct {
	Ratio  decimal.Decimal
	Status YieldStatus
	Min    decimal.Decimal
	Max    decimal.Decimal
}

func (a YieldAssessment) IsWarning() bool {
	return a.Status == YieldOutOfRange
}

// CheckTankCapacity rejects iff stock + additional exceeds capacity.
// Filling a tank exactly to capacity is accepted.
func CheckTankCapacity(tank *catalog.Tank, additionalKg decimal.Decimal) error {
	if additionalKg.IsNegative() {
		return ErrInvalidQuantity
	}
	if tank.StockKg().Add(additionalKg).GreaterThan(tank.CapacityKg()) {
		return &CapacityExceededError{
			TankID:    tank.ID(),
			Available: tank.Available(),
			Requested: additionalKg,
		}
	}
	return nil
}

// CheckTankOwnership rejects a tank restricted to a different product or
// owner. An empty tank may always be repurposed.
func CheckTankOwnership(tank *catalog.Tank, product catalog.ProductID, owner uuid.UUID) error {
	if tank.IsEmpty() {
		return nil
	}

	productMismatch := tank.AssignedProduct() != nil && *tank.AssignedProduct() != product
	ownerMismatch := tank.AssignedOwner() != nil && *tank.AssignedOwner() != owner
	if productMismatch || ownerMismatch {
		return &IncompatibleAssignmentError{
			TankID:           tank.ID(),
			AssignedProduct:  tank.AssignedProduct(),
			AssignedOwner:    tank.AssignedOwner(),
			RequestedProduct: product,
			RequestedOwner:   owner,
		}
	}
	return nil
}

// Guard carries the admissible yield band.
type Guard struct {
	MinRatio decimal.Decimal
	MaxRatio decimal.Decimal
}

func NewGuard(minRatio, maxRatio decimal.Decimal) (*Guard, error) {
	if minRatio.IsNegative() || minRatio.GreaterThan(maxRatio) {
		return nil, ErrInvalidYieldBand
	}
	return &Guard{MinRatio: minRatio, MaxRatio: maxRatio}, nil
}

func NewDefaultGuard() *Guard {
	return &Guard{MinRatio: DefaultMinYield, MaxRatio: DefaultMaxYield}
}

// CheckTank runs the hard tank rules, ownership first.
func (g *Guard) CheckTank(tank *catalog.Tank, product catalog.ProductID, owner uuid.UUID, additionalKg decimal.Decimal) error {
	if err := CheckTankOwnership(tank, product, owner); err != nil {
		return err
	}
	return CheckTankCapacity(tank, additionalKg)
}

// CheckYield rates output/input against the band. Both bounds are inclusive.
func (g *Guard) CheckYield(inputKg, outputKg decimal.Decimal) (YieldAssessment, error) {
	if !inputKg.IsPositive() || outputKg.IsNegative() {
		return YieldAssessment{}, ErrInvalidQuantity
	}

	ratio := outputKg.Div(inputKg)
	status := YieldValid
	if ratio.LessThan(g.MinRatio) || ratio.GreaterThan(g.MaxRatio) {
		status = YieldOutOfRange
	}
	return YieldAssessment{Ratio: ratio, Status: status, Min: g.MinRatio, Max: g.MaxRatio}, nil
}
