package commands

import (
	"context"

	"olive-mill/internal/domain/capacity"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/infra"
	"olive-mill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TankCheckRequest struct {
	TankID     uuid.UUID
	Product    catalog.ProductID
	OwnerID    uuid.UUID
	QuantityKg decimal.Decimal
}

type TankCheckResult struct {
	TankID      uuid.UUID
	CapacityKg  decimal.Decimal
	StockKg     decimal.Decimal
	AvailableKg decimal.Decimal
}

type TankCommands interface {
	// Check validates a proposed stock addition without writing anything.
	Check(ctx context.Context, req TankCheckRequest) (*TankCheckResult, error)
}

type tankUseCaseImpl struct {
	uow   shared.UnitOfWork
	guard *capacity.Guard
}

func NewTankUseCase(uow shared.UnitOfWork, guard *capacity.Guard) TankCommands {
	return &tankUseCaseImpl{uow: uow, guard: guard}
}

func (uc *tankUseCaseImpl) Check(ctx context.Context, req TankCheckRequest) (*TankCheckResult, error) {
	tank, err := uc.uow.CommandReads().TankByID(ctx, req.TankID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, ErrTankNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := uc.guard.CheckTank(tank, req.Product, req.OwnerID, req.QuantityKg); err != nil {
		return nil, err
	}
	return &TankCheckResult{
		TankID:      tank.ID(),
		CapacityKg:  tank.CapacityKg(),
		StockKg:     tank.StockKg(),
		AvailableKg: tank.Available(),
	}, nil
}
