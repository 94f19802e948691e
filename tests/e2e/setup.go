//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"olive-mill/cmd/bootstrap"
	"olive-mill/cmd/bootstrap/components"
	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/config"
	"olive-mill/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "mill"
	pgPassword = "mill-e2e"
	pgPort     = nat.Port("5432/tcp")
	schemaFile = "migrations/schema.sql"
)

// endpoint is where the shared Postgres container listens on the host.
type endpoint struct {
	Host string
	Port string
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port, database)
}

// One container serves every suite in the test binary. Each suite gets its
// own database inside it, so suites can run in parallel.
var sharedPostgres = sync.OnceValues(func() (endpoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresRequest(),
		Started:          true,
	})
	if err != nil {
		return endpoint{}, fmt.Errorf("start postgres: %w", err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, fmt.Errorf("postgres host: %w", err)
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return endpoint{}, fmt.Errorf("postgres port: %w", err)
	}
	// Ryuk reaps the container when the test binary exits.
	return endpoint{Host: host, Port: port.Port()}, nil
})

// postgresRequest trades durability for speed: data lives in tmpfs and
// nothing is fsynced.
func postgresRequest() testcontainers.ContainerRequest {
	flags := map[string]string{
		"fsync":              "off",
		"full_page_writes":   "off",
		"synchronous_commit": "off",
		"shared_buffers":     "256MB",
		"max_connections":    "200",
		"log_statement":      "none",
	}
	cmd := []string{"postgres"}
	for k, v := range flags {
		cmd = append(cmd, "-c", k+"="+v)
	}

	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return endpoint{Host: host, Port: port.Port()}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"app": "olive-mill", "purpose": "e2e"},
	}
}

// createDatabase makes a fresh database for one suite and drops it on cleanup.
// CREATE DATABASE contends on the template database when suites start
// together, so it is retried with a growing pause.
func createDatabase(t *testing.T, ep endpoint) string {
	t.Helper()
	name := "mill_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	pause := 250 * time.Millisecond
	for attempt := 1; ; attempt++ {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil || attempt == 5 {
			break
		}
		slog.Warn("create test database failed, retrying", "database", name, "attempt", attempt, "error", err)
		time.Sleep(pause)
		pause *= 2
	}
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("drop test database: connect failed", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database failed", "database", name, "error", err)
		}
	})
	return name
}

// locate walks up from the package directory until rel exists, since go test
// runs each package from its own directory.
func locate(rel string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found above the test directory", rel)
		}
		dir = parent
	}
}

func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	path, err := locate(schemaFile)
	if err != nil {
		return err
	}
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// startApp wires the production modules around the suite's pool and config
// and returns the router they registered routes on.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.LedgerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop application", "error", err)
		}
	})
	return router
}

// SharedSuite gives each e2e suite its own database, seeded reference data and
// a fully wired router. Every subtest starts from a reset database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	ep, err := sharedPostgres()
	require.NoError(t, err)

	s.Config = config.NewTestConfig()
	s.Config.DB = config.DBConfig{
		Host:     ep.Host,
		Port:     ep.Port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   createDatabase(t, ep),
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, _, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "connect to suite database")
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, applySchema(ctx, pool))
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	s.DB = pool
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
