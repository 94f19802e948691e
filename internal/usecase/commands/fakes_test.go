//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/catalog"
	"olive-mill/internal/domain/mapping"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/infra"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the Postgres unit of work. Reads
// return copies so a failed command never leaks mutations into the store.
type memStore struct {
	lines        map[uuid.UUID]*catalog.ProductionLine
	tanks        map[uuid.UUID]*catalog.Tank
	bookings     map[uuid.UUID]*schedule.Booking
	lots         map[uuid.UUID]batch.IntakeLot
	milledBy     map[uuid.UUID]uuid.UUID
	mappings     []mapping.DefaultMapping
	batches      []shared.BatchRecord
	lockedLines  []uuid.UUID
	lockedInputs []catalog.ProductID
}

func newMemStore() *memStore {
	return &memStore{
		lines:    map[uuid.UUID]*catalog.ProductionLine{},
		tanks:    map[uuid.UUID]*catalog.Tank{},
		bookings: map[uuid.UUID]*schedule.Booking{},
		lots:     map[uuid.UUID]batch.IntakeLot{},
		milledBy: map[uuid.UUID]uuid.UUID{},
	}
}

func (s *memStore) addLine(l *catalog.ProductionLine) { s.lines[l.ID()] = l }
func (s *memStore) addTank(t *catalog.Tank)           { s.tanks[t.ID()] = t }
func (s *memStore) addBooking(b *schedule.Booking)    { s.bookings[b.ID()] = cloneBooking(b) }
func (s *memStore) addLot(l batch.IntakeLot)          { s.lots[l.ID] = l }

func cloneBooking(b *schedule.Booking) *schedule.Booking {
	return schedule.ReconstructBooking(
		b.ID(), b.ResourceID(), b.RequesterID(),
		b.ProductType(), b.QuantityKg(), b.Interval(),
		b.Status(), b.IsClosed(), b.Contact(),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// CommandReads

func (s *memStore) LineByID(_ context.Context, id uuid.UUID) (*catalog.ProductionLine, error) {
	l, ok := s.lines[id]
	if !ok {
		return nil, notFound("line not found")
	}
	return l, nil
}

func (s *memStore) TankByID(_ context.Context, id uuid.UUID) (*catalog.Tank, error) {
	t, ok := s.tanks[id]
	if !ok {
		return nil, notFound("tank not found")
	}
	return t, nil
}

func (s *memStore) BookingByID(_ context.Context, id uuid.UUID) (*schedule.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (s *memStore) BookingsInWindow(_ context.Context, lineID uuid.UUID, from, to time.Time) ([]*schedule.Booking, error) {
	var out []*schedule.Booking
	for _, b := range s.bookings {
		iv := b.Interval()
		if b.ResourceID() == lineID && iv.Start().Before(to) && iv.End().After(from) {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (s *memStore) LotsByIDs(_ context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error) {
	var out []batch.IntakeLot
	for _, id := range ids {
		if lot, ok := s.lots[id]; ok {
			out = append(out, lot)
		}
	}
	return out, nil
}

func (s *memStore) MappingsByInput(_ context.Context, input catalog.ProductID) ([]mapping.DefaultMapping, error) {
	var out []mapping.DefaultMapping
	for _, m := range s.mappings {
		if m.InputProduct == input {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUoW struct {
	store *memStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return fn(ctx, u.store)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.store
}

type fakeTx struct {
	store *memStore
}

func (t *fakeTx) Bookings() shared.BookingRepository { return bookingRepo{t.store} }
func (t *fakeTx) Tanks() shared.TankRepository       { return tankRepo{t.store} }
func (t *fakeTx) Lots() shared.LotRepository         { return lotRepo{t.store} }
func (t *fakeTx) Batches() shared.BatchRepository    { return batchRepo{t.store} }
func (t *fakeTx) Mappings() shared.MappingRepository { return mappingRepo{t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return t.store }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type bookingRepo struct{ s *memStore }

func (r bookingRepo) LockLine(_ context.Context, lineID uuid.UUID) error {
	r.s.lockedLines = append(r.s.lockedLines, lineID)
	return nil
}

func (r bookingRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Booking, error) {
	return r.s.BookingByID(ctx, id)
}

func (r bookingRepo) Create(_ context.Context, b *schedule.Booking) error {
	r.s.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *schedule.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	r.s.bookings[b.ID()] = cloneBooking(b)
	return nil
}

type tankRepo struct{ s *memStore }

func (r tankRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Tank, error) {
	return r.s.TankByID(ctx, id)
}

func (r tankRepo) ApplyStockDelta(_ context.Context, id uuid.UUID, deltaKg decimal.Decimal, product catalog.ProductID, owner uuid.UUID) error {
	t, ok := r.s.tanks[id]
	if !ok {
		return notFound("tank not found")
	}
	next, err := catalog.NewTank(t.ID(), t.Name(), t.CapacityKg(), t.StockKg().Add(deltaKg), &product, &owner)
	if err != nil {
		return err
	}
	r.s.tanks[id] = next
	return nil
}

type lotRepo struct{ s *memStore }

func (r lotRepo) GetForUpdate(ctx context.Context, ids []uuid.UUID) ([]batch.IntakeLot, error) {
	return r.s.LotsByIDs(ctx, ids)
}

func (r lotRepo) MarkMilled(_ context.Context, ids []uuid.UUID, batchID uuid.UUID) error {
	for _, id := range ids {
		lot, ok := r.s.lots[id]
		if !ok || lot.AlreadyMilled {
			return infra.WrapRepoErr("intake lot already milled", nil, infra.KindConflict)
		}
		lot.AlreadyMilled = true
		r.s.lots[id] = lot
		r.s.milledBy[id] = batchID
	}
	return nil
}

type batchRepo struct{ s *memStore }

func (r batchRepo) Record(_ context.Context, rec shared.BatchRecord) error {
	r.s.batches = append(r.s.batches, rec)
	return nil
}

type mappingRepo struct{ s *memStore }

func (r mappingRepo) LockInput(_ context.Context, input catalog.ProductID) error {
	r.s.lockedInputs = append(r.s.lockedInputs, input)
	return nil
}

func (r mappingRepo) SaveDefaults(_ context.Context, input catalog.ProductID, group []mapping.DefaultMapping) error {
	for i, m := range r.s.mappings {
		if m.InputProduct != input {
			continue
		}
		r.s.mappings[i].IsDefault = false
		for _, g := range group {
			if g.OutputProduct == m.OutputProduct {
				r.s.mappings[i].IsDefault = g.IsDefault
			}
		}
	}
	return nil
}

type fakeLedger struct {
	appended []shared.Movement
	err      error
}

func (l *fakeLedger) Append(_ context.Context, m shared.Movement) error {
	if l.err != nil {
		return l.err
	}
	l.appended = append(l.appended, m)
	return nil
}

var errLedgerDown = errors.New("ledger unavailable")
