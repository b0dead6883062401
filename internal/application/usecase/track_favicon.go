// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"image"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/domain/favicon"
	"github.com/bnema/tabicon/internal/logging"
)

// ErrInvalidIdealSize is returned when a tracker is created with an ideal size below 1.
var ErrInvalidIdealSize = errors.New("ideal favicon size must be at least 1")

// TrackerState is the lifecycle state of a FaviconTracker.
type TrackerState int

const (
	// TrackerEmpty means no icon has been kept yet.
	TrackerEmpty TrackerState = iota
	// TrackerHolding means one icon is held.
	TrackerHolding
	// TrackerDead means Destroy was called.
	TrackerDead
)

// String returns a human-readable representation of the state.
func (s TrackerState) String() string {
	switch s {
	case TrackerEmpty:
		return "empty"
	case TrackerHolding:
		return "holding"
	case TrackerDead:
		return "dead"
	default:
		return "unknown"
	}
}

// KeepHook is called after a candidate has been kept.
type KeepHook func(ctx context.Context, held favicon.Held)

// TrackerOption configures a FaviconTracker.
type TrackerOption func(*FaviconTracker)

// WithKeepHook registers a function invoked synchronously after every keep.
func WithKeepHook(hook KeepHook) TrackerOption {
	return func(t *FaviconTracker) {
		t.onKeep = hook
	}
}

// WithMetrics records candidate outcomes.
func WithMetrics(metrics port.FaviconMetrics) TrackerOption {
	return func(t *FaviconTracker) {
		t.metrics = metrics
	}
}

// FaviconTracker picks a tab's representative favicon out of the candidates
// the engine delivers while pages load, and holds it at idealSize×idealSize.
//
// A tracker is confined to the host's UI thread: it takes no locks and every
// method runs to completion synchronously.
type FaviconTracker struct {
	idealSize int
	scaler    port.ImageScaler
	notifier  port.FaviconNotifier
	onKeep    KeepHook
	metrics   port.FaviconMetrics

	held  favicon.Held
	state TrackerState
}

// NewFaviconTracker creates a tracker holding icons at idealSize×idealSize.
// notifier may be nil.
func NewFaviconTracker(
	idealSize int,
	scaler port.ImageScaler,
	notifier port.FaviconNotifier,
	opts ...TrackerOption,
) (*FaviconTracker, error) {
	if idealSize < 1 {
		return nil, ErrInvalidIdealSize
	}
	if scaler == nil {
		return nil, errors.New("favicon tracker requires an image scaler")
	}

	t := &FaviconTracker{
		idealSize: idealSize,
		scaler:    scaler,
		notifier:  notifier,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// IdealSize returns the edge length held icons are scaled to.
func (t *FaviconTracker) IdealSize() int {
	return t.idealSize
}

// State returns the lifecycle state.
func (t *FaviconTracker) State() TrackerState {
	return t.state
}

// Held returns a snapshot of the held icon. ok is false when nothing is held.
func (t *FaviconTracker) Held() (held favicon.Held, ok bool) {
	if t.state != TrackerHolding {
		return favicon.Held{}, false
	}
	return t.held, true
}

// OnCandidate offers an icon the engine just produced for pageURL.
// Invalid candidates and candidates that cannot be rescaled are dropped
// without notifying observers. Every other candidate is broadcast unscaled,
// whether it was kept or not.
func (t *FaviconTracker) OnCandidate(ctx context.Context, icon image.Image, width, height int, pageURL string) {
	log := logging.FromContext(ctx)

	if t.state == TrackerDead {
		log.Debug().Str("url", pageURL).Msg("favicon candidate after destroy, ignoring")
		return
	}

	candidate := favicon.Candidate{
		Image:   icon,
		Size:    favicon.Size{Width: width, Height: height},
		PageURL: pageURL,
	}
	if !candidate.Valid() {
		log.Trace().Int("width", width).Int("height", height).Msg("invalid favicon candidate ignored")
		t.record(port.CandidateIgnored)
		return
	}

	var current *favicon.Held
	if t.state == TrackerHolding {
		current = &t.held
	}

	if favicon.ShouldKeep(current, candidate, t.idealSize) {
		if !t.keep(ctx, candidate) {
			t.record(port.CandidateRescaleFailed)
			return
		}
		t.record(port.CandidateKept)
	} else {
		log.Trace().
			Int("width", width).
			Int("height", height).
			Int("held_width", t.held.Source.Width).
			Int("held_height", t.held.Source.Height).
			Msg("favicon candidate rejected")
		t.record(port.CandidateRejected)
	}

	if t.notifier != nil {
		t.notifier.NotifyFaviconUpdated(ctx, icon)
	}
}

func (t *FaviconTracker) keep(ctx context.Context, c favicon.Candidate) bool {
	log := logging.FromContext(ctx)

	scaled, err := t.scaler.Scale(ctx, c.Image, t.idealSize, t.idealSize)
	if err != nil {
		log.Debug().Err(err).Str("url", c.PageURL).Msg("favicon rescale failed")
		return false
	}
	if got := favicon.SizeOf(scaled); got.Width != t.idealSize || got.Height != t.idealSize {
		log.Debug().
			Int("width", got.Width).
			Int("height", got.Height).
			Int("ideal", t.idealSize).
			Msg("favicon rescale returned wrong size")
		return false
	}

	t.held = favicon.Held{
		Image:     scaled,
		Source:    c.Size,
		SourceURL: c.PageURL,
	}
	t.state = TrackerHolding

	log.Debug().
		Str("url", c.PageURL).
		Int("src_width", c.Size.Width).
		Int("src_height", c.Size.Height).
		Int("ideal", t.idealSize).
		Msg("favicon kept")

	if t.onKeep != nil {
		t.onKeep(ctx, t.held)
	}
	return true
}

// Current returns the held icon if it may be displayed for currentPageURL.
// It returns nil for native pages, tabs without content, when nothing is
// held, or when the held icon belongs to another URL.
func (t *FaviconTracker) Current(currentPageURL string, isNativePage, hasContent bool) image.Image {
	if isNativePage || !hasContent {
		return nil
	}
	if t.state != TrackerHolding {
		return nil
	}
	if t.held.SourceURL != currentPageURL {
		return nil
	}
	return t.held.Image
}

// Destroy releases the held icon. The tracker ignores candidates afterwards.
func (t *FaviconTracker) Destroy() {
	t.held = favicon.Held{}
	t.state = TrackerDead
}

func (t *FaviconTracker) record(outcome port.CandidateOutcome) {
	if t.metrics != nil {
		t.metrics.RecordCandidate(outcome)
	}
}
