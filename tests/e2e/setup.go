//go:build e2e

// Package e2e runs the HTTP API and the postgres repositories against a real
// database. One postgres:17 container serves a whole test binary: the schema is
// migrated once into a template database and every suite gets its own clone.
package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"fieldservice/cmd/bootstrap"
	"fieldservice/cmd/bootstrap/components"
	"fieldservice/internal/infra/db"
	"fieldservice/internal/pkg/config"
	"fieldservice/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for wait.ForSQL
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgImage    = "postgres:17"
	pgUser     = "fieldservice"
	pgPassword = "fieldservice"
	pgPort     = nat.Port("5432/tcp")
	templateDB = "fieldservice_template"
)

type pgServer struct {
	container testcontainers.Container
	host      string
	port      nat.Port
}

var (
	serverOnce sync.Once
	server     *pgServer
	serverErr  error
)

func (p *pgServer) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, p.host, p.port.Port(), dbName)
}

// sharedServer starts the container on first use. Ryuk reaps it when the test
// binary exits.
func sharedServer(t *testing.T) *pgServer {
	t.Helper()
	serverOnce.Do(func() {
		server, serverErr = startServer()
	})
	require.NoError(t, serverErr, "postgres container unavailable")
	return server
}

func startServer() (*pgServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// Durability is irrelevant for throwaway data.
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return (&pgServer{host: host, port: port}).dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "fieldservice-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", pgImage, err)
	}

	srv := &pgServer{container: c}
	if srv.host, err = c.Host(ctx); err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	if srv.port, err = c.MappedPort(ctx, pgPort); err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}
	if err := srv.buildTemplate(ctx); err != nil {
		_ = c.Terminate(context.Background())
		return nil, err
	}
	return srv, nil
}

// buildTemplate migrates templateDB. The pool is closed before returning
// because postgres refuses to clone a template that has open sessions.
func (p *pgServer) buildTemplate(ctx context.Context) error {
	admin, err := pgxpool.New(ctx, p.dsn("postgres"))
	if err != nil {
		return fmt.Errorf("admin connection: %w", err)
	}
	defer admin.Close()
	if _, err := admin.Exec(ctx, "CREATE DATABASE "+templateDB); err != nil {
		return fmt.Errorf("create template: %w", err)
	}

	files, err := migrationFiles()
	if err != nil {
		return err
	}
	tpl, err := pgxpool.New(ctx, p.dsn(templateDB))
	if err != nil {
		return fmt.Errorf("template connection: %w", err)
	}
	defer tpl.Close()
	for _, f := range files {
		body, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := tpl.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationFiles lists migrations/*.sql of the module in apply order. Test
// binaries run from their package directory, so the module root is found by
// walking up to go.mod.
func migrationFiles() ([]string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("go.mod not found above the test directory")
		}
		dir = parent
	}
	files, err := filepath.Glob(filepath.Join(dir, "migrations", "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations in %s", filepath.Join(dir, "migrations"))
	}
	sort.Strings(files)
	return files, nil
}

// cloneDatabase creates a fresh database from the template and drops it when
// the test finishes.
func (p *pgServer) cloneDatabase(t *testing.T) config.DBConfig {
	t.Helper()
	name := "fs_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, p.dsn("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// Two clones started at the same moment make postgres report the template
	// as busy; back off and retry.
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s TEMPLATE %s", name, templateDB)); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to clone template database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, p.dsn("postgres"))
		if err != nil {
			t.Logf("drop %s: %v", name, err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			t.Logf("drop %s: %v", name, err)
		}
	})

	return config.DBConfig{
		Host:     p.host,
		Port:     p.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// startApp wires the HTTP stack on top of pool. The expiry worker is left
// out; tests drive scans through the admin endpoint.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("stop fx app: %v", err)
		}
	})
	return router
}

// SharedSuite gives each suite its own database and a running API.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.Config = config.NewTestConfig()
	s.Config.DB = sharedServer(t).cloneDatabase(t)

	pool, closePool, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	s.DB = pool
	s.Router = startApp(t, pool, s.Config)
}

// SetupSubTest truncates every table and reseeds the catalog.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
