package commands

import (
	"context"
	"log/slog"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/capacity"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/infra"
	"olive-mill/internal/pkg/clock"
	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLotNotFound      = errs.Mark(errs.New("intake lot not found"), errs.ErrNotFound)
	ErrTankNotFound     = errs.Mark(errs.New("tank not found"), errs.ErrNotFound)
	ErrOutputUnresolved = errs.Mark(errs.New("no output product is mapped for the input product"), errs.ErrInput)
	ErrLotsChanged      = errs.Mark(errs.New("intake lots were milled concurrently"), errs.ErrConflict)
)

type PlanBatchRequest struct {
	LotIDs []uuid.UUID
	// OutputProduct overrides the default mapping. It must still be mapped.
	OutputProduct *catalog.ProductID
}

type BatchPlan struct {
	InputProduct         catalog.ProductID
	OutputProduct        catalog.ProductID
	LotIDs               []uuid.UUID
	TotalQuantityKg      decimal.Decimal
	EstimatedByproductKg decimal.Decimal
}

type CommitBatchRequest struct {
	OwnerID       uuid.UUID
	TankID        uuid.UUID
	LotIDs        []uuid.UUID
	OutputKg      decimal.Decimal
	OutputProduct *catalog.ProductID
}

type CommitBatchResult struct {
	BatchID uuid.UUID
	BatchPlan
	OutputKg    decimal.Decimal
	Yield       capacity.YieldAssessment
	TankStockKg decimal.Decimal
	// LedgerRecorded is false when the movement could not be appended. The
	// batch itself is committed either way.
	LedgerRecorded bool
}

type BatchCommands interface {
	Plan(ctx context.Context, req PlanBatchRequest) (*BatchPlan, error)
	Commit(ctx context.Context, req CommitBatchRequest, act actor.Actor) (*CommitBatchResult, error)
}

type batchUseCaseImpl struct {
	uow        shared.UnitOfWork
	aggregator *batch.Aggregator
	guard      *capacity.Guard
	ledger     shared.MovementLedger
	clock      clock.Clock
}

func NewBatchUseCase(
	uow shared.UnitOfWork,
	aggregator *batch.Aggregator,
	guard *capacity.Guard,
	ledger shared.MovementLedger,
	clk clock.Clock,
) BatchCommands {
	return &batchUseCaseImpl{
		uow:        uow,
		aggregator: aggregator,
		guard:      guard,
		ledger:     ledger,
		clock:      clk,
	}
}

func (uc *batchUseCaseImpl) Plan(ctx context.Context, req PlanBatchRequest) (*BatchPlan, error) {
	var plan *BatchPlan
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		lots, err := reads.LotsByIDs(ctx, req.LotIDs)
		if err != nil {
			return err
		}
		b, err := uc.fold(req.LotIDs, lots)
		if err != nil {
			return err
		}
		output, err := resolveOutput(ctx, reads, b.InputProduct(), req.OutputProduct)
		if err != nil {
			return err
		}
		plan = uc.planOf(b, output)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Commit mills the lots into the tank. The tank row is locked before the lots
// so two commits into the same tank serialize on it.
func (uc *batchUseCaseImpl) Commit(ctx context.Context, req CommitBatchRequest, act actor.Actor) (*CommitBatchResult, error) {
	if !act.IsOperator() {
		return nil, ErrOperatorOnly
	}

	batchID := uuid.New()
	var result *CommitBatchResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tank, err := tx.Tanks().GetForUpdate(ctx, req.TankID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTankNotFound
		}
		if err != nil {
			return err
		}

		lots, err := tx.Lots().GetForUpdate(ctx, req.LotIDs)
		if err != nil {
			return err
		}
		b, err := uc.fold(req.LotIDs, lots)
		if err != nil {
			return err
		}

		output, err := resolveOutput(ctx, tx.Reads(), b.InputProduct(), req.OutputProduct)
		if err != nil {
			return err
		}
		if err := uc.guard.CheckTank(tank, output, req.OwnerID, req.OutputKg); err != nil {
			return err
		}
		yield, err := uc.guard.CheckYield(b.TotalQuantityKg(), req.OutputKg)
		if err != nil {
			return err
		}
		b, err = b.WithOutput(output, req.OutputKg)
		if err != nil {
			return err
		}

		plan := uc.planOf(b, output)
		rec := shared.BatchRecord{
			ID:                   batchID,
			OwnerID:              req.OwnerID,
			TankID:               tank.ID(),
			InputProduct:         plan.InputProduct,
			OutputProduct:        output,
			InputKg:              plan.TotalQuantityKg,
			OutputKg:             req.OutputKg,
			EstimatedByproductKg: plan.EstimatedByproductKg,
			YieldRatio:           yield.Ratio,
			YieldStatus:          string(yield.Status),
			LotIDs:               plan.LotIDs,
			MilledAt:             uc.clock.Now(),
		}
		if err := tx.Batches().Record(ctx, rec); err != nil {
			return err
		}
		if err := tx.Lots().MarkMilled(ctx, plan.LotIDs, batchID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrLotsChanged
			}
			return err
		}
		if err := tx.Tanks().ApplyStockDelta(ctx, tank.ID(), req.OutputKg, output, req.OwnerID); err != nil {
			return err
		}

		result = &CommitBatchResult{
			BatchID:     batchID,
			BatchPlan:   *plan,
			OutputKg:    req.OutputKg,
			Yield:       yield,
			TankStockKg: tank.StockKg().Add(req.OutputKg),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Yield.IsWarning() {
		slog.Warn("batch yield out of range",
			"batch_id", batchID.String(),
			"ratio", result.Yield.Ratio.String(),
			"min", result.Yield.Min.String(),
			"max", result.Yield.Max.String())
	}

	movement := shared.Movement{
		ID:         batchID,
		TankID:     req.TankID,
		OwnerID:    req.OwnerID,
		Product:    result.OutputProduct,
		QuantityKg: req.OutputKg,
		RecordedAt: uc.clock.Now(),
	}
	if err := uc.ledger.Append(ctx, movement); err != nil {
		slog.Warn("failed to append stock movement", "batch_id", batchID.String(), "error", err.Error())
	} else {
		result.LedgerRecorded = true
	}
	return result, nil
}

// fold orders lots as requested and folds them into one batch. Requested ids
// the store did not return are reported as missing.
func (uc *batchUseCaseImpl) fold(ids []uuid.UUID, lots []batch.IntakeLot) (*batch.MillingBatch, error) {
	byID := make(map[uuid.UUID]batch.IntakeLot, len(lots))
	for _, lot := range lots {
		byID[lot.ID] = lot
	}

	ordered := make([]batch.IntakeLot, 0, len(ids))
	for _, id := range ids {
		lot, ok := byID[id]
		if !ok {
			return nil, errs.Wrapf(ErrLotNotFound, "lot %s", id)
		}
		ordered = append(ordered, lot)
	}
	return uc.aggregator.Fold(ordered)
}

func (uc *batchUseCaseImpl) planOf(b *batch.MillingBatch, output catalog.ProductID) *BatchPlan {
	totals := uc.aggregator.Totals(b)
	return &BatchPlan{
		InputProduct:         b.InputProduct(),
		OutputProduct:        output,
		LotIDs:               b.LotIDs(),
		TotalQuantityKg:      totals.TotalQuantityKg,
		EstimatedByproductKg: totals.EstimatedByproductKg,
	}
}

func resolveOutput(ctx context.Context, reads shared.CommandReads, input catalog.ProductID, explicit *catalog.ProductID) (catalog.ProductID, error) {
	mappings, err := reads.MappingsByInput(ctx, input)
	if err != nil {
		return 0, err
	}

	if explicit != nil {
		for _, m := range mappings {
			if m.InputProduct == input && m.OutputProduct == *explicit {
				return *explicit, nil
			}
		}
		return 0, mapping.ErrMappingNotFound
	}

	output, ok := mapping.Resolve(input, mappings)
	if !ok {
		return 0, ErrOutputUnresolved
	}
	return output, nil
}
