// Package repomanager vends dialect-specific repositories and runs the
// embedded migrations for the chosen database.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/itnewcomer/Memento/internal/dbx"
	"github.com/itnewcomer/Memento/internal/repositories/metadata"
	"github.com/itnewcomer/Memento/internal/repositories/records"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RepositoryManager builds repositories bound to either the pool or a
// transaction, so callers can compose them inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Records(db dbx.DBTX) records.Repository
	Metadata(db dbx.DBTX) metadata.Repository
	Dialect() string
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to dsn, picks the matching manager and brings the schema
// up to date. PostgreSQL URLs use pgx; anything else is a SQLite path.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		m      RepositoryManager
		driver string
	)
	if IsPostgresDSN(dsn) {
		m, driver = NewPostgresRepositoryManager(), "pgx"
	} else {
		m, driver = NewSQLiteRepositoryManager(), "sqlite"
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s database: %w", m.Dialect(), err)
	}
	if driver == "sqlite" {
		// one writer keeps :memory: databases on a single connection
		db.SetMaxOpenConns(1)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s database: %w", m.Dialect(), err)
	}
	return db, m, nil
}
