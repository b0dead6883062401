package usecase

import (
	"context"
	"errors"
	"image"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/domain/favicon"
	"github.com/bnema/tabicon/internal/domain/repository"
	domainurl "github.com/bnema/tabicon/internal/domain/url"
	"github.com/bnema/tabicon/internal/logging"
)

// TabFaviconOptions carries the collaborators of a TabFavicon.
// Only IdealSize is required.
type TabFaviconOptions struct {
	IdealSize int
	Fallback  port.FaviconFallback
	Store     port.FaviconStore
	Index     repository.FaviconIndexRepository
	Metrics   port.FaviconMetrics
}

// TabFavicon binds one tab to its favicon tracker and observers.
// The tab owns it and destroys it on teardown.
type TabFavicon struct {
	tab       port.TabPage
	tracker   *FaviconTracker
	observers *ObserverList
	fallback  port.FaviconFallback
	store     port.FaviconStore
	index     repository.FaviconIndexRepository
	attached  bool
}

// NewTabFavicon creates the favicon binding for tab.
func NewTabFavicon(tab port.TabPage, scaler port.ImageScaler, opts TabFaviconOptions) (*TabFavicon, error) {
	if tab == nil {
		return nil, errors.New("tab favicon requires a tab")
	}

	tf := &TabFavicon{
		tab:       tab,
		observers: NewObserverList(),
		fallback:  opts.Fallback,
		store:     opts.Store,
		index:     opts.Index,
	}

	trackerOpts := []TrackerOption{WithKeepHook(tf.persist)}
	if opts.Metrics != nil {
		trackerOpts = append(trackerOpts, WithMetrics(opts.Metrics))
	}

	tracker, err := NewFaviconTracker(opts.IdealSize, scaler, tf, trackerOpts...)
	if err != nil {
		return nil, err
	}
	tf.tracker = tracker
	return tf, nil
}

// TabID returns the id of the owning tab.
func (tf *TabFavicon) TabID() entity.TabID {
	return tf.tab.ID()
}

// Tracker exposes the underlying tracker.
func (tf *TabFavicon) Tracker() *FaviconTracker {
	return tf.tracker
}

// AttachWebContents marks the tab as having engine content.
func (tf *TabFavicon) AttachWebContents(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("tab_id", string(tf.tab.ID())).Msg("favicon web contents attached")
	tf.attached = true
}

// DetachWebContents marks the tab as having no content. The held icon is kept
// and becomes visible again once content is re-attached on the same URL.
func (tf *TabFavicon) DetachWebContents(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("tab_id", string(tf.tab.ID())).Msg("favicon web contents detached")
	tf.attached = false
}

// HasContent reports whether web contents are attached.
func (tf *TabFavicon) HasContent() bool {
	return tf.attached
}

// OnFaviconAvailable offers an icon decoded by the engine for the tab's current page.
func (tf *TabFavicon) OnFaviconAvailable(ctx context.Context, icon image.Image) {
	if icon == nil {
		return
	}
	size := favicon.SizeOf(icon)
	tf.tracker.OnCandidate(ctx, icon, size.Width, size.Height, tf.tab.CurrentURL())
}

// Favicon returns the icon to display for the tab's current page.
// When the held icon belongs to another page the fallback is consulted.
func (tf *TabFavicon) Favicon(ctx context.Context) image.Image {
	pageURL := tf.tab.CurrentURL()
	native := tf.tab.IsNativePage()
	if native || !tf.attached {
		return nil
	}

	if icon := tf.tracker.Current(pageURL, native, tf.attached); icon != nil {
		return icon
	}
	if tf.fallback == nil {
		return nil
	}
	return tf.fallback.FaviconForURL(ctx, pageURL)
}

// AddObserver registers an observer for favicon updates.
func (tf *TabFavicon) AddObserver(observer port.FaviconObserver) {
	tf.observers.Add(observer)
}

// RemoveObserver unregisters an observer.
func (tf *TabFavicon) RemoveObserver(observer port.FaviconObserver) {
	tf.observers.Remove(observer)
}

// NotifyFaviconUpdated implements port.FaviconNotifier for the tab's tracker.
func (tf *TabFavicon) NotifyFaviconUpdated(ctx context.Context, icon image.Image) {
	tf.observers.Notify(ctx, tf.tab.ID(), icon)
}

// Destroy releases the held icon.
func (tf *TabFavicon) Destroy(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("tab_id", string(tf.tab.ID())).Msg("favicon tracker destroyed")
	tf.attached = false
	tf.tracker.Destroy()
}

// persist writes a kept icon to the store and the index. Failures are logged
// and never affect the selection.
func (tf *TabFavicon) persist(ctx context.Context, held favicon.Held) {
	log := logging.FromContext(ctx)

	if tf.store != nil {
		if err := tf.store.StoreFavicon(ctx, held.SourceURL, held.Image); err != nil {
			log.Warn().Err(err).Str("url", held.SourceURL).Msg("failed to store favicon")
		}
	}

	if tf.index == nil {
		return
	}
	domain := domainurl.ExtractDomain(held.SourceURL)
	if domain == "" {
		return
	}
	entry := entity.NewFaviconIndexEntry(
		domain,
		held.SourceURL,
		held.Source.Width,
		held.Source.Height,
		tf.tracker.IdealSize(),
	)
	if err := tf.index.Upsert(ctx, entry); err != nil {
		log.Warn().Err(err).Str("domain", domain).Msg("failed to index favicon")
	}
}
