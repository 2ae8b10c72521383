package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	for name, fsys := range map[string]fs.FS{"sqlite": SQLite, "postgres": Postgres} {
		entries, err := fs.ReadDir(fsys, name)
		require.NoError(t, err, name)
		require.NotEmpty(t, entries, name)

		body, err := fs.ReadFile(fsys, name+"/"+entries[0].Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up")
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS records")
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS metadata")
	}
}
