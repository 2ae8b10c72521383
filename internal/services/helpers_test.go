package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	db, rm, err := repomanager.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, rm
}

type testServices struct {
	journal  *JournalService
	goals    *GoalService
	settings *SettingsService
	backup   *BackupService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	db, rm := openTestDB(t)
	l := logging.NewNop()
	j := NewJournalService(db, rm, l)
	g := NewGoalService(db, rm, l)
	st := NewSettingsService(db, rm, l)
	return testServices{
		journal:  j,
		goals:    g,
		settings: st,
		backup:   NewBackupService(db, rm, j, g, st, l),
	}
}
