package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabicon/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestFaviconIndexRepository_UpsertGetListDelete(t *testing.T) {
	ctx := indexTestCtx()
	dbPath := filepath.Join(t.TempDir(), "tabicon.db")

	db, err := sqlite.OpenIndex(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewFaviconIndexRepository(db)

	missing, err := repo.Get(ctx, "example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	older := entity.NewFaviconIndexEntry("example.com", "https://example.com/", 12, 12, 16)
	older.UpdatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Upsert(ctx, older))

	newer := entity.NewFaviconIndexEntry("github.com", "https://github.com/", 32, 32, 16)
	require.NoError(t, repo.Upsert(ctx, newer))

	// Replacing keeps one row per domain.
	replaced := entity.NewFaviconIndexEntry("example.com", "https://example.com/about", 16, 16, 16)
	replaced.UpdatedAt = time.Now().Add(-30 * time.Minute)
	require.NoError(t, repo.Upsert(ctx, replaced))

	got, err := repo.Get(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://example.com/about", got.PageURL)
	assert.Equal(t, 16, got.SrcWidth)
	assert.True(t, got.Exact())
	assert.WithinDuration(t, replaced.UpdatedAt, got.UpdatedAt, time.Millisecond)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "github.com", all[0].Domain)
	assert.Equal(t, "example.com", all[1].Domain)

	require.NoError(t, repo.Delete(ctx, "github.com"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestOpenIndex_RequiresPath(t *testing.T) {
	_, err := sqlite.OpenIndex(indexTestCtx(), "")
	assert.ErrorIs(t, err, sqlite.ErrEmptyPath)
}

func TestOpenIndex_MigratesOnceAndLeavesNoWAL(t *testing.T) {
	ctx := indexTestCtx()
	dir := filepath.Join(t.TempDir(), "nested dir")
	dbPath := filepath.Join(dir, "tabicon.db")

	db, err := sqlite.OpenIndex(ctx, dbPath)
	require.NoError(t, err)
	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "truncate", mode)

	require.NoError(t, sqlite.NewFaviconIndexRepository(db).
		Upsert(ctx, entity.NewFaviconIndexEntry("example.com", "https://example.com/", 16, 16, 16)))
	require.NoError(t, sqlite.Close(db))
	assert.NoFileExists(t, dbPath+"-wal")

	// Reopening keeps the schema version and the rows.
	db, err = sqlite.OpenIndex(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	version, err = sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	got, err := sqlite.NewFaviconIndexRepository(db).Get(ctx, "example.com")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
