//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateLine(t *testing.T, db DBLike, name string, throughputKgPerHour int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO production_lines (name, throughput_kg_per_hour) VALUES ($1, $2) RETURNING id",
		name, throughputKgPerHour).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTank(t *testing.T, db DBLike, name string, capacityKg, stockKg int64, product *int64, owner *uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO tanks (name, capacity_kg, stock_kg, assigned_product, assigned_owner) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		name, capacityKg, stockKg, product, owner).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateLot(t *testing.T, db DBLike, inputProduct, quantityKg int64, origin string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO intake_lots (input_product, quantity_kg, origin) VALUES ($1, $2, $3) RETURNING id",
		inputProduct, quantityKg, origin).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateMapping(t *testing.T, db DBLike, input, output int64, isDefault bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO default_mappings (input_product, output_product, is_default) VALUES ($1, $2, $3)",
		input, output, isDefault)
	require.NoError(t, err)
}

func LotMilledBy(t *testing.T, db DBLike, lotID uuid.UUID) *uuid.UUID {
	t.Helper()

	var batchID *uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT milled_batch_id FROM intake_lots WHERE id = $1", lotID).Scan(&batchID)
	require.NoError(t, err)
	return batchID
}

func TankStock(t *testing.T, db DBLike, tankID uuid.UUID) string {
	t.Helper()

	var stock string
	err := db.QueryRow(context.Background(), "SELECT trim_scale(stock_kg)::text FROM tanks WHERE id = $1", tankID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func BatchYieldRatio(t *testing.T, db DBLike, batchID uuid.UUID) string {
	t.Helper()

	var ratio string
	err := db.QueryRow(context.Background(), "SELECT trim_scale(yield_ratio)::text FROM milling_batches WHERE id = $1", batchID).Scan(&ratio)
	require.NoError(t, err)
	return ratio
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO default_mappings (input_product, output_product, is_default) VALUES
		    (1, 10, true),
		    (1, 11, false)
		ON CONFLICT (input_product, output_product) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
