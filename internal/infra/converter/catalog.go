package converter

import (
	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const LineColumns = `l.id, l.name, l.throughput_kg_per_hour, l.preferred_product`

type LineRow struct {
	ID               uuid.UUID
	Name             string
	Throughput       pgtype.Numeric
	PreferredProduct pgtype.Int8
}

func (r *LineRow) Targets() []any {
	return []any{&r.ID, &r.Name, &r.Throughput, &r.PreferredProduct}
}

func (r *LineRow) ToDomain() (*catalog.ProductionLine, error) {
	rate, err := pgconv.DecimalFromNumeric(r.Throughput)
	if err != nil {
		return nil, err
	}
	return catalog.NewProductionLine(r.ID, r.Name, rate, productPtr(r.PreferredProduct))
}

const TankColumns = `t.id, t.name, t.capacity_kg, t.stock_kg, t.assigned_product, t.assigned_owner`

type TankRow struct {
	ID              uuid.UUID
	Name            string
	CapacityKg      pgtype.Numeric
	StockKg         pgtype.Numeric
	AssignedProduct pgtype.Int8
	AssignedOwner   pgtype.UUID
}

func (r *TankRow) Targets() []any {
	return []any{&r.ID, &r.Name, &r.CapacityKg, &r.StockKg, &r.AssignedProduct, &r.AssignedOwner}
}

func (r *TankRow) ToDomain() (*catalog.Tank, error) {
	capacity, err := pgconv.DecimalFromNumeric(r.CapacityKg)
	if err != nil {
		return nil, err
	}
	stock, err := pgconv.DecimalFromNumeric(r.StockKg)
	if err != nil {
		return nil, err
	}
	return catalog.NewTank(r.ID, r.Name, capacity, stock, productPtr(r.AssignedProduct), pgconv.UUIDPtrFromPgtype(r.AssignedOwner))
}

const LotColumns = `i.id, i.input_product, i.quantity_kg, i.origin, i.milled_batch_id IS NOT NULL`

type LotRow struct {
	ID           uuid.UUID
	InputProduct int64
	QuantityKg   pgtype.Numeric
	Origin       pgtype.Text
	Milled       bool
}

func (r *LotRow) Targets() []any {
	return []any{&r.ID, &r.InputProduct, &r.QuantityKg, &r.Origin, &r.Milled}
}

func (r *LotRow) ToDomain() (batch.IntakeLot, error) {
	qty, err := pgconv.DecimalFromNumeric(r.QuantityKg)
	if err != nil {
		return batch.IntakeLot{}, err
	}
	return batch.IntakeLot{
		ID:            r.ID,
		InputProduct:  catalog.ProductID(r.InputProduct),
		QuantityKg:    qty,
		Origin:        pgconv.StringFromPgtype(r.Origin),
		AlreadyMilled: r.Milled,
	}, nil
}

func productPtr(v pgtype.Int8) *catalog.ProductID {
	if !v.Valid {
		return nil
	}
	p := catalog.ProductID(v.Int64)
	return &p
}
