package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/infra/readstore"
	"olive-mill/internal/infra/repository"
	"olive-mill/internal/pkg/errs"
	"olive-mill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newCommandReads(pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo  shared.BookingRepository
	tankRepo     shared.TankRepository
	lotRepo      shared.LotRepository
	batchRepo    shared.BatchRepository
	mappingRepo  shared.MappingRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Tanks() shared.TankRepository {
	if t.tankRepo == nil {
		t.tankRepo = repository.NewTankRepository(t.dbtx)
	}
	return t.tankRepo
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository(t.dbtx)
	}
	return t.lotRepo
}

func (t *pgTx) Batches() shared.BatchRepository {
	if t.batchRepo == nil {
		t.batchRepo = repository.NewBatchRepository(t.dbtx)
	}
	return t.batchRepo
}

func (t *pgTx) Mappings() shared.MappingRepository {
	if t.mappingRepo == nil {
		t.mappingRepo = repository.NewMappingRepository(t.dbtx)
	}
	return t.mappingRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	catalog  *readstore.CatalogReadStore
	bookings *readstore.BookingReadStore
	mappings *readstore.MappingReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		catalog:  readstore.NewCatalogReadStore(dbtx),
		bookings: readstore.NewBookingReadStore(dbtx),
		mappings: readstore.NewMappingReadStore(dbtx),
	}
}

func (r *commandReads) LineByID(ctx context.Context, id uuid.UUID) (*catalog.ProductionLine, error) {
	return r.catalog.LineByID(ctx, id)
}

func (r *commandReads) TankByID(ctx context.Context, id uuid.UUID) (*catalog.Tank, error) {
	return r.catalog.TankByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*schedule.Booking, error) {
	return r.bookings.FindDomainByID(ctx, id)
}

func (r *commandReads) BookingsInWindow(ctx context.Context, lineID uuid.UUID, from, to time.Time) ([]*schedule.Booking, error) {
	return r.bookings.FindInWindow(ctx, lineID, from, to)
}

func (r *commandReads) LotsByIDs(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error) {
	return r.catalog.LotsByIDs(ctx, ids)
}

func (r *commandReads) MappingsByInput(ctx context.Context, input catalog.ProductID) ([]mapping.DefaultMapping, error) {
	return r.mappings.FindByInput(ctx, input)
}
