// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the engine, the image backend and storage so the favicon
// use cases stay independent of any concrete implementation.
package port

import (
	"context"
	"image"

	"github.com/bnema/tabicon/internal/domain/entity"
)

// ImageScaler produces a new raster of exactly width×height.
type ImageScaler interface {
	Scale(ctx context.Context, src image.Image, width, height int) (image.Image, error)
}

// FaviconNotifier receives every accepted candidate, kept or not, in delivery order.
type FaviconNotifier interface {
	NotifyFaviconUpdated(ctx context.Context, icon image.Image)
}

// FaviconObserver is a tab observer interested in favicon updates.
// The icon is shared and must not be mutated.
type FaviconObserver interface {
	OnFaviconUpdated(ctx context.Context, tabID entity.TabID, icon image.Image)
}

// TabPage is the read side of a tab the favicon binding depends on.
type TabPage interface {
	ID() entity.TabID
	CurrentURL() string
	IsNativePage() bool
}

// FaviconFallback supplies an icon for a page when the tab holds none for it,
// the way the engine keeps its own favicon database.
type FaviconFallback interface {
	FaviconForURL(ctx context.Context, pageURL string) image.Image
}

// FaviconStore persists kept icons.
type FaviconStore interface {
	StoreFavicon(ctx context.Context, pageURL string, icon image.Image) error
}

// FaviconEvictor drops stored icons for a domain.
type FaviconEvictor interface {
	Evict(ctx context.Context, domain string) error
}

// CandidateOutcome classifies what happened to a candidate.
type CandidateOutcome string

const (
	// CandidateKept means the candidate replaced the held icon.
	CandidateKept CandidateOutcome = "kept"
	// CandidateRejected means the held icon was preferred.
	CandidateRejected CandidateOutcome = "rejected"
	// CandidateIgnored means the candidate was nil or had no pixels.
	CandidateIgnored CandidateOutcome = "ignored"
	// CandidateRescaleFailed means the candidate won but could not be rescaled.
	CandidateRescaleFailed CandidateOutcome = "rescale_failed"
)

// FaviconMetrics counts candidate outcomes.
type FaviconMetrics interface {
	RecordCandidate(outcome CandidateOutcome)
}
