package batch

import (
	"errors"
	"fmt"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errs.Mark(errors.New("lot quantity must be positive"), errs.ErrInput)
	ErrInvalidOutput    = errs.Mark(errors.New("output quantity cannot be negative"), errs.ErrInput)
	ErrEmptyBatch       = errs.Mark(errors.New("batch has no lots"), errs.ErrInput)
	ErrLotNotInBatch    = errs.Mark(errors.New("lot is not part of the batch"), errs.ErrInput)
	ErrDuplicateLot     = errs.Mark(errors.New("lot is already part of the batch"), errs.ErrConflict)
	ErrLotAlreadyMilled = errs.Mark(errors.New("lot has already been milled"), errs.ErrConflict)
	ErrHeterogeneousLot = errors.New("heterogeneous lot")
)

// HeterogeneousLotError rejects a lot whose input product differs from the
// product the batch was seeded with.
type HeterogeneousLotError struct {
	LotID    uuid.UUID
	Expected catalog.ProductID
	Actual   catalog.ProductID
}

func (e *HeterogeneousLotError) Error() string {
	return fmt.Sprintf("lot %s has input product %s, batch requires %s", e.LotID, e.Actual, e.Expected)
}

func (e *HeterogeneousLotError) Is(target error) bool {
	return target == ErrHeterogeneousLot || target == errs.ErrConflict
}
