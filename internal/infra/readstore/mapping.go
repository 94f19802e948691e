package readstore

import (
	"context"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const mappingsByInputSQL = `SELECT input_product, output_product, is_default
	FROM default_mappings WHERE input_product = $1 ORDER BY output_product`

type MappingReadStore struct {
	db db.DBTX
}

func NewMappingReadStore(db db.DBTX) *MappingReadStore {
	return &MappingReadStore{db: db}
}

func (r *MappingReadStore) FindByInput(ctx context.Context, input catalog.ProductID) ([]mapping.DefaultMapping, error) {
	rows, err := r.db.Query(ctx, mappingsByInputSQL, int64(input))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list default mappings", err)
	}

	group, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (mapping.DefaultMapping, error) {
		var in, out int64
		var isDefault bool
		if err := row.Scan(&in, &out, &isDefault); err != nil {
			return mapping.DefaultMapping{}, err
		}
		return mapping.DefaultMapping{
			InputProduct:  catalog.ProductID(in),
			OutputProduct: catalog.ProductID(out),
			IsDefault:     isDefault,
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan default mappings", err)
	}
	return group, nil
}
