package repository

import (
	"context"

	"olive-mill/internal/domain/batch"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/converter"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/infra/readstore"

	"github.com/google/uuid"
)

const (
	lotsForUpdateSQL = `SELECT ` + converter.LotColumns + `
		FROM intake_lots i WHERE i.id = ANY($1::uuid[]) ORDER BY i.id FOR UPDATE`

	markLotsMilledSQL = `UPDATE intake_lots SET milled_batch_id = $2
		WHERE id = ANY($1::uuid[]) AND milled_batch_id IS NULL`
)

type LotRepository struct {
	db db.DBTX
}

func NewLotRepository(db db.DBTX) *LotRepository {
	return &LotRepository{db: db}
}

// GetForUpdate locks rows in id order so concurrent batches cannot deadlock.
func (r *LotRepository) GetForUpdate(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error) {
	rows, err := r.db.Query(ctx, lotsForUpdateSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock intake lots", err)
	}
	return readstore.CollectLots(rows)
}

func (r *LotRepository) MarkMilled(ctx context.Context, ids []uuid.UUID, batchID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, markLotsMilledSQL, ids, batchID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark lots milled", err)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return infra.WrapRepoErr("intake lot already milled", nil, infra.KindConflict)
	}
	return nil
}
