package testdb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dessertbook/internal/database"
)

var seq atomic.Int64

// New returns a migrated, private in-memory sqlite database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := database.Connect(dsn, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewPostgres starts a disposable postgres container. The test is skipped unless
// DESSERTBOOK_PG_TESTS=1, or when no container runtime is reachable.
func NewPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("DESSERTBOOK_PG_TESTS") != "1" {
		t.Skip("set DESSERTBOOK_PG_TESTS=1 to run postgres integration tests")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "dessertbook",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/dessertbook?sslmode=disable", host, port.Port())
	db, err := database.Connect(dsn, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}
