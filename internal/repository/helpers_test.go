package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/recoverly/recoverly/internal/db"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "recoverly.db")
	database, err := db.Init(ctx, db.DriverSQLite, path)
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close(database) })

	require.NoError(t, db.RunMigrations(ctx, database.DB, db.DriverSQLite), "apply migrations")
	return database
}
