package repository

import (
	"context"

	"olive-mill/internal/infra"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/pgconv"
	"olive-mill/internal/usecase/shared"
)

const (
	insertBatchSQL = `INSERT INTO milling_batches (
			id, owner_id, tank_id, input_product, output_product,
			input_kg, output_kg, estimated_byproduct_kg, yield_ratio, yield_status, milled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	insertBatchLotsSQL = `INSERT INTO milling_batch_lots (batch_id, lot_id)
		SELECT $1, unnest($2::uuid[])`
)

type BatchRepository struct {
	db db.DBTX
}

func NewBatchRepository(db db.DBTX) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) Record(ctx context.Context, rec shared.BatchRecord) error {
	_, err := r.db.Exec(ctx, insertBatchSQL,
		rec.ID,
		rec.OwnerID,
		rec.TankID,
		int64(rec.InputProduct),
		int64(rec.OutputProduct),
		pgconv.DecimalToNumeric(rec.InputKg),
		pgconv.DecimalToNumeric(rec.OutputKg),
		pgconv.DecimalToNumeric(rec.EstimatedByproductKg),
		pgconv.DecimalToNumeric(rec.YieldRatio.Round(5)),
		rec.YieldStatus,
		pgconv.TimeToPgtype(rec.MilledAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record milling batch", err)
	}

	if _, err := r.db.Exec(ctx, insertBatchLotsSQL, rec.ID, rec.LotIDs); err != nil {
		return infra.WrapRepoErr("failed to record milling batch lots", err)
	}
	return nil
}
