package readstore

import (
	"context"

	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/converter"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	lineByIDSQL = `SELECT ` + converter.LineColumns + ` FROM production_lines l WHERE l.id = $1`
	tankByIDSQL = `SELECT ` + converter.TankColumns + ` FROM tanks t WHERE t.id = $1`
	lotsByIDSQL = `SELECT ` + converter.LotColumns + ` FROM intake_lots i WHERE i.id = ANY($1::uuid[]) ORDER BY i.id`
)

// CatalogReadStore loads lines, tanks and intake lots as domain values.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) LineByID(ctx context.Context, id uuid.UUID) (*catalog.ProductionLine, error) {
	var row converter.LineRow
	if err := r.db.QueryRow(ctx, lineByIDSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("production line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get production line", err)
	}
	return row.ToDomain()
}

func (r *CatalogReadStore) TankByID(ctx context.Context, id uuid.UUID) (*catalog.Tank, error) {
	var row converter.TankRow
	if err := r.db.QueryRow(ctx, tankByIDSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tank not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get tank", err)
	}
	return row.ToDomain()
}

func (r *CatalogReadStore) LotsByIDs(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error) {
	rows, err := r.db.Query(ctx, lotsByIDSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list intake lots", err)
	}
	return CollectLots(rows)
}

func CollectLots(rows pgx.Rows) ([]batch.IntakeLot, error) {
	lots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (batch.IntakeLot, error) {
		var lr converter.LotRow
		if err := row.Scan(lr.Targets()...); err != nil {
			return batch.IntakeLot{}, err
		}
		return lr.ToDomain()
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan intake lots", err)
	}
	return lots, nil
}
