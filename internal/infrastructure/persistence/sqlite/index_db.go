// Package sqlite stores the favicon index in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
	"github.com/pressly/goose/v3"

	"github.com/bnema/tabicon/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// indexPragmas is the connection profile for a short CLI run. Each run opens
// the index, writes a handful of rows and exits, so a rollback journal is
// used instead of WAL to leave no -wal/-shm files behind. busy_timeout lets a
// purge wait for a replay still committing in another process.
var indexPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(truncate)",
	"synchronous(full)",
}

// ErrEmptyPath is returned by OpenIndex when no database path is configured.
var ErrEmptyPath = errors.New("favicon index path is empty")

// OpenIndex opens the favicon index at dbPath, creating the file and its
// directory on first use, and migrates the favicon_index table.
func OpenIndex(ctx context.Context, dbPath string) (*sql.DB, error) {
	const dbDirPerm = 0o750
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create favicon index directory: %w", err)
	}

	dsn, err := indexDSN(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open favicon index: %w", err)
	}
	// One run issues its statements sequentially; a single connection keeps
	// the pragmas above in effect for all of them.
	db.SetMaxOpenConns(1)

	version, err := migrateIndex(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug().
		Str("path", dbPath).
		Int64("schema_version", version).
		Msg("favicon index opened")
	return db, nil
}

func indexDSN(dbPath string) (string, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return "", fmt.Errorf("resolve favicon index path: %w", err)
	}
	q := url.Values{"_pragma": indexPragmas}
	return "file:" + (&url.URL{Path: filepath.ToSlash(abs)}).EscapedPath() + "?" + q.Encode(), nil
}

// migrateIndex applies pending favicon_index migrations and returns the
// resulting schema version.
func migrateIndex(ctx context.Context, db *sql.DB) (int64, error) {
	log := logging.FromContext(ctx)

	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate favicon index: %w", err)
	}
	for _, res := range results {
		log.Info().
			Int64("version", res.Source.Version).
			Str("migration", res.Source.Path).
			Dur("took", res.Duration).
			Msg("favicon index migrated")
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read favicon index schema version: %w", err)
	}
	return version, nil
}

// SchemaVersion reports the applied favicon_index schema version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("favicon index migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("favicon index migrations: %w", err)
	}
	return provider, nil
}

// Close closes the favicon index. A nil db is a no-op.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
