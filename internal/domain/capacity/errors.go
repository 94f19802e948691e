package capacity

import (
	"errors"
	"fmt"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity        = errs.Mark(errors.New("quantity must be positive"), errs.ErrInput)
	ErrInvalidYieldBand       = errs.Mark(errors.New("yield band must satisfy 0 <= min <= max"), errs.ErrInput)
	ErrCapacityExceeded       = errors.New("tank capacity exceeded")
	ErrIncompatibleAssignment = errors.New("tank assigned to another product or owner")
)

type CapacityExceededError struct {
	TankID    uuid.UUID
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("tank %s has %s kg available, %s kg requested", e.TankID, e.Available, e.Requested)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded || target == errs.ErrCapacity
}

type IncompatibleAssignmentError struct {
	TankID           uuid.UUID
	AssignedProduct  *catalog.ProductID
	AssignedOwner    *uuid.UUID
	RequestedProduct catalog.ProductID
	RequestedOwner   uuid.UUID
}

func (e *IncompatibleAssignmentError) Error() string {
	return fmt.Sprintf("tank %s is not empty and is assigned to another product or owner", e.TankID)
}

func (e *IncompatibleAssignmentError) Is(target error) bool {
	return target == ErrIncompatibleAssignment || target == errs.ErrConflict
}
