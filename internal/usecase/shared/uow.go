package shared

import (
	"context"
	"time"

	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Tanks() TankRepository
	Lots() LotRepository
	Batches() BatchRepository
	Mappings() MappingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	LineByID(ctx context.Context, id uuid.UUID) (*catalog.ProductionLine, error)
	TankByID(ctx context.Context, id uuid.UUID) (*catalog.Tank, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*schedule.Booking, error)
	// BookingsInWindow returns bookings on the line whose slot overlaps [from, to).
	BookingsInWindow(ctx context.Context, lineID uuid.UUID, from, to time.Time) ([]*schedule.Booking, error)
	// LotsByIDs skips unknown ids; callers compare lengths.
	LotsByIDs(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error)
	MappingsByInput(ctx context.Context, input catalog.ProductID) ([]mapping.DefaultMapping, error)
}

type BookingRepository interface {
	// LockLine serializes check-then-write sequences on one line until the
	// transaction ends.
	LockLine(ctx context.Context, lineID uuid.UUID) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Booking, error)
	Create(ctx context.Context, b *schedule.Booking) error
	Update(ctx context.Context, b *schedule.Booking) error
}

type TankRepository interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Tank, error)
	// ApplyStockDelta adds deltaKg and pins the tank to product and owner.
	ApplyStockDelta(ctx context.Context, id uuid.UUID, deltaKg decimal.Decimal, product catalog.ProductID, owner uuid.UUID) error
}

type LotRepository interface {
	GetForUpdate(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error)
	MarkMilled(ctx context.Context, ids []uuid.UUID, batchID uuid.UUID) error
}

type BatchRepository interface {
	Record(ctx context.Context, rec BatchRecord) error
}

type MappingRepository interface {
	LockInput(ctx context.Context, input catalog.ProductID) error
	// SaveDefaults persists the is_default flags of one input group.
	SaveDefaults(ctx context.Context, input catalog.ProductID, group []mapping.DefaultMapping) error
}
