package repository

import (
	"context"

	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/db"
)

const (
	lockMappingInputSQL = `SELECT pg_advisory_xact_lock(hashtextextended('mapping:' || $1::text, 0))`

	clearDefaultSQL = `UPDATE default_mappings SET is_default = false
		WHERE input_product = $1 AND is_default`

	setDefaultSQL = `UPDATE default_mappings SET is_default = true
		WHERE input_product = $1 AND output_product = $2`
)

type MappingRepository struct {
	db db.DBTX
}

func NewMappingRepository(db db.DBTX) *MappingRepository {
	return &MappingRepository{db: db}
}

func (r *MappingRepository) LockInput(ctx context.Context, input catalog.ProductID) error {
	if _, err := r.db.Exec(ctx, lockMappingInputSQL, int64(input)); err != nil {
		return infra.WrapRepoErr("failed to lock mapping group", err)
	}
	return nil
}

// SaveDefaults clears the group's default before setting the new one so the
// partial unique index never sees two defaults.
func (r *MappingRepository) SaveDefaults(ctx context.Context, input catalog.ProductID, group []mapping.DefaultMapping) error {
	if _, err := r.db.Exec(ctx, clearDefaultSQL, int64(input)); err != nil {
		return infra.WrapRepoErr("failed to clear default mapping", err)
	}

	for _, m := range group {
		if m.InputProduct != input || !m.IsDefault {
			continue
		}
		tag, err := r.db.Exec(ctx, setDefaultSQL, int64(input), int64(m.OutputProduct))
		if err != nil {
			return infra.WrapRepoErr("failed to set default mapping", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("default mapping not found", nil, infra.KindNotFound)
		}
	}
	return nil
}
