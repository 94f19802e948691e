package batch

import (
	"slices"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/designate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IntakeLot struct {
	ID            uuid.UUID
	InputProduct  catalog.ProductID
	QuantityKg    decimal.Decimal
	Origin        string
	AlreadyMilled bool
}

// MillingBatch is an immutable value. Every membership change returns a new
// batch and leaves the receiver untouched. A nil *MillingBatch is the empty
// batch with no product constraint.
type MillingBatch struct {
	inputProduct  catalog.ProductID
	lots          []IntakeLot
	outputProduct *catalog.ProductID
	outputKg      *decimal.Decimal
}

// AddLot returns b with lot appended. The first lot fixes the batch's input
// product; every later lot must match it.
func AddLot(b *MillingBatch, lot IntakeLot) (*MillingBatch, error) {
	if !lot.QuantityKg.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	if lot.AlreadyMilled {
		return nil, ErrLotAlreadyMilled
	}

	if b.IsEmpty() {
		return &MillingBatch{inputProduct: lot.InputProduct, lots: []IntakeLot{lot}}, nil
	}

	if b.Contains(lot.ID) {
		return nil, ErrDuplicateLot
	}

	members := append(slices.Clone(b.lots), lot)
	if stray, found := designate.Stray(members, lotProduct, b.inputProduct); found {
		return nil, &HeterogeneousLotError{LotID: stray.ID, Expected: b.inputProduct, Actual: stray.InputProduct}
	}

	next := b.clone()
	next.lots = members
	return next, nil
}

// RemoveLot returns b without the given lot. Removing the last lot yields the
// empty batch, which clears the product constraint.
func RemoveLot(b *MillingBatch, lotID uuid.UUID) (*MillingBatch, error) {
	if !b.Contains(lotID) {
		return nil, ErrLotNotInBatch
	}

	_, rest := designate.Partition(b.lots, func(l IntakeLot) bool { return l.ID == lotID })
	if len(rest) == 0 {
		return nil, nil
	}

	next := b.clone()
	next.lots = rest
	return next, nil
}

// WithOutput records the resolved output product and the measured quantity.
func (b *MillingBatch) WithOutput(product catalog.ProductID, outputKg decimal.Decimal) (*MillingBatch, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBatch
	}
	if outputKg.IsNegative() {
		return nil, ErrInvalidOutput
	}

	next := b.clone()
	next.outputProduct = &product
	next.outputKg = &outputKg
	return next, nil
}

func (b *MillingBatch) IsEmpty() bool {
	return b == nil || len(b.lots) == 0
}

func (b *MillingBatch) Contains(lotID uuid.UUID) bool {
	if b.IsEmpty() {
		return false
	}
	return slices.ContainsFunc(b.lots, func(l IntakeLot) bool { return l.ID == lotID })
}

func (b *MillingBatch) TotalQuantityKg() decimal.Decimal {
	total := decimal.Zero
	if b == nil {
		return total
	}
	for _, l := range b.lots {
		total = total.Add(l.QuantityKg)
	}
	return total
}

// YieldRatio is output/total. ok is false until an output quantity is known.
func (b *MillingBatch) YieldRatio() (ratio decimal.Decimal, ok bool) {
	if b.IsEmpty() || b.outputKg == nil {
		return decimal.Zero, false
	}
	return b.outputKg.Div(b.TotalQuantityKg()), true
}

func (b *MillingBatch) InputProduct() catalog.ProductID {
	if b == nil {
		return 0
	}
	return b.inputProduct
}

func (b *MillingBatch) LotIDs() []uuid.UUID {
	if b == nil {
		return nil
	}
	ids := make([]uuid.UUID, len(b.lots))
	for i, l := range b.lots {
		ids[i] = l.ID
	}
	return ids
}

func (b *MillingBatch) Lots() []IntakeLot {
	if b == nil {
		return nil
	}
	return slices.Clone(b.lots)
}

func (b *MillingBatch) OutputProduct() *catalog.ProductID {
	if b == nil {
		return nil
	}
	return b.outputProduct
}

func (b *MillingBatch) OutputKg() *decimal.Decimal {
	if b == nil {
		return nil
	}
	return b.outputKg
}

func (b *MillingBatch) clone() *MillingBatch {
	return &MillingBatch{
		inputProduct:  b.inputProduct,
		lots:          slices.Clone(b.lots),
		outputProduct: b.outputProduct,
		outputKg:      b.outputKg,
	}
}

func lotProduct(l IntakeLot) catalog.ProductID {
	return l.InputProduct
}
