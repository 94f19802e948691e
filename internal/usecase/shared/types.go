package shared

import (
	"context"
	"time"

	"olive-mill/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BatchRecord struct {
	ID                   uuid.UUID
	OwnerID              uuid.UUID
	TankID               uuid.UUID
	InputProduct         catalog.ProductID
	OutputProduct        catalog.ProductID
	InputKg              decimal.Decimal
	OutputKg             decimal.Decimal
	EstimatedByproductKg decimal.Decimal
	YieldRatio           decimal.Decimal
	YieldStatus          string
	LotIDs               []uuid.UUID
	MilledAt             time.Time
}

// Movement is one stock entry appended to the external ledger. ID is the
// batch id, so replays of the same batch are rejected by the ledger.
type Movement struct {
	ID         uuid.UUID
	TankID     uuid.UUID
	OwnerID    uuid.UUID
	Product    catalog.ProductID
	QuantityKg decimal.Decimal
	RecordedAt time.Time
}

type MovementLedger interface {
	Append(ctx context.Context, m Movement) error
}
