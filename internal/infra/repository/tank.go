package repository

import (
	"context"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/converter"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	tankForUpdateSQL = `SELECT ` + converter.TankColumns + ` FROM tanks t WHERE t.id = $1 FOR UPDATE`

	applyStockDeltaSQL = `UPDATE tanks SET
			stock_kg = stock_kg + $2,
			assigned_product = $3,
			assigned_owner = $4,
			updated_at = now()
		WHERE id = $1`
)

type TankRepository struct {
	db db.DBTX
}

func NewTankRepository(db db.DBTX) *TankRepository {
	return &TankRepository{db: db}
}

func (r *TankRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Tank, error) {
	var row converter.TankRow
	if err := r.db.QueryRow(ctx, tankForUpdateSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tank not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock tank", err)
	}
	return row.ToDomain()
}

func (r *TankRepository) ApplyStockDelta(ctx context.Context, id uuid.UUID, deltaKg decimal.Decimal, product catalog.ProductID, owner uuid.UUID) error {
	tag, err := r.db.Exec(ctx, applyStockDeltaSQL, id, pgconv.DecimalToNumeric(deltaKg), int64(product), owner)
	if err != nil {
		return infra.WrapRepoErr("failed to apply tank stock delta", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tank not found", nil, infra.KindNotFound)
	}
	return nil
}
