// Package sqlstore holds the relational persistence layer shared by the
// user and note repositories. SQLite is the default backend; PostgreSQL is
// selected with database.driver = postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" for database/sql
	_ "modernc.org/sqlite"             // registers "sqlite" for database/sql

	"github.com/heartmarshall/ainotes/internal/config"
)

// sqlitePragmas are applied to every SQLite connection.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// DB is a database handle paired with the statement builder for its dialect.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
}

// Open connects to the configured database and pings it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	driverName, dsn, err := driverDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return Wrap(db, cfg.Driver), nil
}

// Wrap pairs an existing handle with the builder for driver.
func Wrap(db *sql.DB, driver string) *DB {
	placeholder := sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}
	return &DB{
		DB:      db,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Driver returns the configured driver name (sqlite or postgres).
func (d *DB) Driver() string { return d.driver }

// Builder returns a squirrel builder using the dialect's placeholders.
func (d *DB) Builder() sq.StatementBuilderType { return d.builder }

func driverDSN(cfg config.DatabaseConfig) (string, string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return "sqlite", sqliteDSN(cfg.DSN), nil
	case config.DriverPostgres:
		return "pgx", cfg.DSN, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return dsn + "?" + sqlitePragmas
}
