package entity

import "time"

// FaviconIndexEntry records the icon last kept for a domain.
type FaviconIndexEntry struct {
	Domain    string // Domain name (e.g., "github.com")
	PageURL   string // Page the kept candidate arrived on
	SrcWidth  int    // Intrinsic size of the kept candidate
	SrcHeight int
	IdealSize int // Edge length the icon was held at
	UpdatedAt time.Time
}

// NewFaviconIndexEntry creates an index entry stamped with the current time.
func NewFaviconIndexEntry(domain, pageURL string, srcWidth, srcHeight, idealSize int) *FaviconIndexEntry {
	return &FaviconIndexEntry{
		Domain:    domain,
		PageURL:   pageURL,
		SrcWidth:  srcWidth,
		SrcHeight: srcHeight,
		IdealSize: idealSize,
		UpdatedAt: time.Now(),
	}
}

// Exact reports whether the kept candidate already had the ideal size.
func (e *FaviconIndexEntry) Exact() bool {
	return e.SrcWidth == e.IdealSize && e.SrcHeight == e.IdealSize
}
