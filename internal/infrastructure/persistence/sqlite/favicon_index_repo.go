package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/domain/repository"
	"github.com/bnema/tabicon/internal/logging"
)

const (
	upsertFaviconIndexSQL = `
INSERT INTO favicon_index (domain, page_url, src_width, src_height, ideal_size, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(domain) DO UPDATE SET
    page_url   = excluded.page_url,
    src_width  = excluded.src_width,
    src_height = excluded.src_height,
    ideal_size = excluded.ideal_size,
    updated_at = excluded.updated_at`

	getFaviconIndexSQL = `
SELECT domain, page_url, src_width, src_height, ideal_size, updated_at
FROM favicon_index WHERE domain = ?`

	listFaviconIndexSQL = `
SELECT domain, page_url, src_width, src_height, ideal_size, updated_at
FROM favicon_index ORDER BY updated_at DESC, domain ASC`

	deleteFaviconIndexSQL = `DELETE FROM favicon_index WHERE domain = ?`
)

type faviconIndexRepo struct {
	db *sql.DB
}

// NewFaviconIndexRepository creates a new SQLite-backed favicon index repository.
func NewFaviconIndexRepository(db *sql.DB) repository.FaviconIndexRepository {
	return &faviconIndexRepo{db: db}
}

func (r *faviconIndexRepo) Upsert(ctx context.Context, entry *entity.FaviconIndexEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("domain", entry.Domain).
		Int("src_width", entry.SrcWidth).
		Int("src_height", entry.SrcHeight).
		Msg("indexing favicon")

	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertFaviconIndexSQL,
		entry.Domain,
		entry.PageURL,
		entry.SrcWidth,
		entry.SrcHeight,
		entry.IdealSize,
		updatedAt.UnixMilli(),
	)
	return err
}

func (r *faviconIndexRepo) Get(ctx context.Context, domain string) (*entity.FaviconIndexEntry, error) {
	row := r.db.QueryRowContext(ctx, getFaviconIndexSQL, domain)
	entry, err := scanFaviconIndex(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *faviconIndexRepo) List(ctx context.Context) ([]*entity.FaviconIndexEntry, error) {
	rows, err := r.db.QueryContext(ctx, listFaviconIndexSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.FaviconIndexEntry
	for rows.Next() {
		entry, err := scanFaviconIndex(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *faviconIndexRepo) Delete(ctx context.Context, domain string) error {
	_, err := r.db.ExecContext(ctx, deleteFaviconIndexSQL, domain)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFaviconIndex(s rowScanner) (*entity.FaviconIndexEntry, error) {
	var (
		entry     entity.FaviconIndexEntry
		updatedAt int64
	)
	if err := s.Scan(
		&entry.Domain,
		&entry.PageURL,
		&entry.SrcWidth,
		&entry.SrcHeight,
		&entry.IdealSize,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	entry.UpdatedAt = time.UnixMilli(updatedAt)
	return &entry, nil
}
