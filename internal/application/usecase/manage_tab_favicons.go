package usecase

import (
	"context"
	"sync"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/logging"
)

// ManageTabFaviconsUseCase owns the favicon binding of every open tab.
type ManageTabFaviconsUseCase struct {
	scaler port.ImageScaler
	opts   TabFaviconOptions

	mu   sync.Mutex
	tabs map[entity.TabID]*TabFavicon
}

// NewManageTabFaviconsUseCase creates the owner. opts is the template used
// for every tab opened through it.
func NewManageTabFaviconsUseCase(scaler port.ImageScaler, opts TabFaviconOptions) *ManageTabFaviconsUseCase {
	return &ManageTabFaviconsUseCase{
		scaler: scaler,
		opts:   opts,
		tabs:   make(map[entity.TabID]*TabFavicon),
	}
}

// Open returns the binding for tab, creating it on first use.
func (uc *ManageTabFaviconsUseCase) Open(ctx context.Context, tab port.TabPage) (*TabFavicon, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if tf, ok := uc.tabs[tab.ID()]; ok {
		return tf, nil
	}

	tf, err := NewTabFavicon(tab, uc.scaler, uc.opts)
	if err != nil {
		return nil, err
	}
	uc.tabs[tab.ID()] = tf

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID())).
		Int("ideal_size", uc.opts.IdealSize).
		Msg("favicon binding created")
	return tf, nil
}

// Get returns the binding for id, or nil if the tab was never opened.
func (uc *ManageTabFaviconsUseCase) Get(id entity.TabID) *TabFavicon {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tabs[id]
}

// Close destroys the binding for id. It reports whether one existed.
func (uc *ManageTabFaviconsUseCase) Close(ctx context.Context, id entity.TabID) bool {
	uc.mu.Lock()
	tf, ok := uc.tabs[id]
	delete(uc.tabs, id)
	uc.mu.Unlock()

	if ok {
		tf.Destroy(ctx)
	}
	return ok
}

// CloseAll destroys every binding.
func (uc *ManageTabFaviconsUseCase) CloseAll(ctx context.Context) {
	uc.mu.Lock()
	tabs := uc.tabs
	uc.tabs = make(map[entity.TabID]*TabFavicon)
	uc.mu.Unlock()

	for _, tf := range tabs {
		tf.Destroy(ctx)
	}
}

// Count returns the number of open bindings.
func (uc *ManageTabFaviconsUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.tabs)
}

// SetIdealSize changes the ideal size for tabs opened from now on.
// Existing trackers keep the size they were created with.
func (uc *ManageTabFaviconsUseCase) SetIdealSize(size int) {
	if size < 1 {
		return
	}
	uc.mu.Lock()
	uc.opts.IdealSize = size
	uc.mu.Unlock()
}

// IdealSize returns the ideal size used for new tabs.
func (uc *ManageTabFaviconsUseCase) IdealSize() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.opts.IdealSize
}
