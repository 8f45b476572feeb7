package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"imobiliaria-backend/internal/config"
	"imobiliaria-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config

	sqliteSeq atomic.Int64
)

// Tables in truncation order (children first)
var tables = []string{
	"prestacoes_contas",
	"contratos",
	"imoveis",
	"locatarios",
	"locadores",
	"empresas",
}

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// ------------------------------
// Public helpers
// ------------------------------

// NewSQLiteDB opens a private in-memory SQLite database with the full schema and
// foreign keys enforced. It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:imob_test_%d?mode=memory&cache=shared&_foreign_keys=on", sqliteSeq.Add(1))
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       database.DriverSQLite,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// SetupTestSuite initializes (once) the shared Postgres container and returns a per-suite wrapper.
// Call this in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
// This is automatically called by TestMain in main_test.go
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB truncates the application tables if they exist
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
}

// ------------------------------
// Shared Postgres container init
// ------------------------------

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=testpass",
			"POSTGRES_USER=testuser",
			"POSTGRES_DB=imobiliaria_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	cfg := &config.Config{
		Port:             "8080",
		LogLevel:         "debug",
		Environment:      "test",
		DatabaseDriver:   database.DriverPostgres,
		DatabaseHost:     "127.0.0.1",
		DatabasePort:     resource.GetPort("5432/tcp"),
		DatabaseUser:     "testuser",
		DatabasePassword: "testpass",
		DatabaseName:     "imobiliaria_test",
		DefaultCompanyID: 1,
		SearchGroupLimit: 25,
	}
	cfg.DatabaseURL = config.BuildDatabaseURL(cfg)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		// Ping with database/sql first (fast readiness)
		std, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer std.Close()

		deadline := time.Now().Add(15 * time.Second)
		for {
			if err := std.Ping(); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("postgres not ready to accept connections")
			}
			time.Sleep(250 * time.Millisecond)
		}

		gdb, err := database.Connect(database.OptionsFromConfig(cfg), nil)
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = cfg
	log.Printf("Shared Postgres ready on %s", cfg.DatabasePort)
	return nil
}
