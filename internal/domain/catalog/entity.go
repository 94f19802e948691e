package catalog

import (
	"errors"
	"strings"

	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errs.Mark(errors.New("name cannot be empty"), errs.ErrInput)
	ErrNameTooLong       = errs.Mark(errors.New("name is too long (max 255 characters)"), errs.ErrInput)
	ErrInvalidThroughput = errs.Mark(errors.New("throughput rate must be positive"), errs.ErrInput)
	ErrInvalidCapacity   = errs.Mark(errors.New("tank capacity must be positive"), errs.ErrInput)
	ErrStockOutOfBounds  = errs.Mark(errors.New("tank stock must be between zero and capacity"), errs.ErrInput)
)

const MaxNameLength = 255

type ProductionLine struct {
	id                uuid.UUID
	name              string
	throughputKgPerHr decimal.Decimal
	preferredProduct  *ProductID
}

func NewProductionLine(id uuid.UUID, name string, throughputKgPerHr decimal.Decimal, preferredProduct *ProductID) (*ProductionLine, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !throughputKgPerHr.IsPositive() {
		return nil, ErrInvalidThroughput
	}

	return &ProductionLine{
		id:                id,
		name:              strings.TrimSpace(name),
		throughputKgPerHr: throughputKgPerHr,
		preferredProduct:  preferredProduct,
	}, nil
}

// Prefers reports whether the line has no affinity or its affinity matches p.
func (l *ProductionLine) Prefers(p ProductID) bool {
	return l.preferredProduct == nil || *l.preferredProduct == p
}

func (l *ProductionLine) ID() uuid.UUID                        { return l.id }
func (l *ProductionLine) Name() string                         { return l.name }
func (l *ProductionLine) ThroughputKgPerHour() decimal.Decimal { return l.throughputKgPerHr }
func (l *ProductionLine) PreferredProduct() *ProductID         { return l.preferredProduct }

type Tank struct {
	id              uuid.UUID
	name            string
	capacityKg      decimal.Decimal
	stockKg         decimal.Decimal
	assignedProduct *ProductID
	assignedOwner   *uuid.UUID
}

func NewTank(
	id uuid.UUID,
	name string,
	capacityKg, stockKg decimal.Decimal,
	assignedProduct *ProductID,
	assignedOwner *uuid.UUID,
) (*Tank, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !capacityKg.IsPositive() {
		return nil, ErrInvalidCapacity
	}
	if stockKg.IsNegative() || stockKg.GreaterThan(capacityKg) {
		return nil, ErrStockOutOfBounds
	}

	return &Tank{
		id:              id,
		name:            strings.TrimSpace(name),
		capacityKg:      capacityKg,
		stockKg:         stockKg,
		assignedProduct: assignedProduct,
		assignedOwner:   assignedOwner,
	}, nil
}

func (t *Tank) Available() decimal.Decimal {
	return t.capacityKg.Sub(t.stockKg)
}

func (t *Tank) IsEmpty() bool {
	return t.stockKg.IsZero()
}

func (t *Tank) ID() uuid.UUID               { return t.id }
func (t *Tank) Name() string                { return t.name }
func (t *Tank) CapacityKg() decimal.Decimal { return t.capacityKg }
func (t *Tank) StockKg() decimal.Decimal    { return t.stockKg }
func (t *Tank) AssignedProduct() *ProductID { return t.assignedProduct }
func (t *Tank) AssignedOwner() *uuid.UUID   { return t.assignedOwner }

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
