package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoverly/recoverly/internal/db"
)

func TestMigrationsUpAndDown(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "recoverly.db")

	database, err := db.Init(ctx, db.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	require.NoError(t, db.RunMigrations(ctx, database.DB, db.DriverSQLite))

	version, err := db.Version(ctx, database.DB, db.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	var tables int
	err = database.GetContext(ctx, &tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('exercise_sessions', 'lesson_completions', 'daily_records', 'user_achievements')`)
	require.NoError(t, err)
	assert.Equal(t, 4, tables)

	// Re-running is a no-op.
	require.NoError(t, db.RunMigrations(ctx, database.DB, db.DriverSQLite))

	require.NoError(t, db.MigrateDown(ctx, database.DB, db.DriverSQLite))
	version, err = db.Version(ctx, database.DB, db.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestMigrationsUnsupportedDriver(t *testing.T) {
	err := db.RunMigrations(context.Background(), nil, "oracle")
	assert.ErrorContains(t, err, "unsupported database driver")
}
