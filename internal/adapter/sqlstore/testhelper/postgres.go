//go:build integration

package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/ainotes/internal/adapter/sqlstore"
	"github.com/heartmarshall/ainotes/internal/config"
)

var (
	pgOnce    sync.Once
	sharedDSN string
	initErr   error
)

// SetupPostgresDB starts a shared PostgreSQL container (once for the entire
// test run), applies migrations and returns a handle closed via t.Cleanup.
// The container lives until the process exits.
func SetupPostgresDB(t *testing.T) *sqlstore.DB {
	t.Helper()

	pgOnce.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup postgres: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlstore.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		DSN:          sharedDSN,
		MaxOpenConns: 4,
	})
	if err != nil {
		t.Fatalf("testhelper: open postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := sqlstore.Open(ctx, config.DatabaseConfig{Driver: config.DriverPostgres, DSN: dsn, MaxOpenConns: 2})
	if err != nil {
		return "", err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return "", err
	}

	return dsn, nil
}
