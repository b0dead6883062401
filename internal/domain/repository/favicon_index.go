// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/tabicon/internal/domain/entity"
)

// FaviconIndexRepository persists which icon was last kept per domain.
type FaviconIndexRepository interface {
	// Upsert saves or replaces the entry for entry.Domain.
	Upsert(ctx context.Context, entry *entity.FaviconIndexEntry) error

	// Get retrieves the entry for a domain.
	// Returns nil if the domain has never been indexed.
	Get(ctx context.Context, domain string) (*entity.FaviconIndexEntry, error)

	// List returns all entries, most recently updated first.
	List(ctx context.Context) ([]*entity.FaviconIndexEntry, error)

	// Delete removes the entry for a domain.
	Delete(ctx context.Context, domain string) error
}
