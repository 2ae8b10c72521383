package repomanager

import (
	"context"
	"database/sql"

	"github.com/itnewcomer/Memento/internal/dbx"
	"github.com/itnewcomer/Memento/internal/migrations"
	"github.com/itnewcomer/Memento/internal/repositories/metadata"
	"github.com/itnewcomer/Memento/internal/repositories/records"
	"github.com/pressly/goose/v3"
)

// SQLiteRepositoryManager backs the local journal file.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Dialect() string { return "sqlite" }

func (m *SQLiteRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
