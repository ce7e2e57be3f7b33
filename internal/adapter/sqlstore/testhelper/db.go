// Package testhelper provides migrated databases for repository tests.
package testhelper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/ainotes/internal/adapter/sqlstore"
	"github.com/heartmarshall/ainotes/internal/config"
)

// SetupTestDB opens a fresh SQLite database in a temp directory, applies
// the embedded migrations and closes it via t.Cleanup.
func SetupTestDB(t *testing.T) *sqlstore.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlstore.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "notes.db"),
		MaxOpenConns: 4,
	})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}

	return db
}
