package commands

import (
	"context"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/usecase/shared"
)

type MappingCommands interface {
	SetDefault(ctx context.Context, input, output catalog.ProductID, act actor.Actor) error
}

type mappingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMappingUseCase(uow shared.UnitOfWork) MappingCommands {
	return &mappingUseCaseImpl{uow: uow}
}

// SetDefault makes (input, output) the only default of its input group. The
// group is locked first so concurrent calls apply one after the other.
func (uc *mappingUseCaseImpl) SetDefault(ctx context.Context, input, output catalog.ProductID, act actor.Actor) error {
	if !act.IsOperator() {
		return ErrOperatorOnly
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Mappings().LockInput(ctx, input); err != nil {
			return err
		}

		group, err := tx.Reads().MappingsByInput(ctx, input)
		if err != nil {
			return err
		}
		next, err := mapping.SetDefault(input, output, group)
		if err != nil {
			return err
		}
		if err := mapping.Validate(next); err != nil {
			return err
		}
		return tx.Mappings().SaveDefaults(ctx, input, next)
	})
}
