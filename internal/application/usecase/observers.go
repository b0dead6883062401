package usecase

import (
	"context"
	"image"
	"slices"
	"sync"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/domain/entity"
)

type observerEntry struct {
	observer port.FaviconObserver
	removed  bool
}

// ObserverList holds favicon observers for one tab.
// Notify broadcasts to the observers registered when it starts; observers
// removed mid-broadcast are skipped and observers added mid-broadcast wait
// for the next one.
type ObserverList struct {
	mu      sync.Mutex
	entries []*observerEntry
}

// NewObserverList creates an empty observer list.
func NewObserverList() *ObserverList {
	return &ObserverList{}
}

// Add registers an observer. Adding the same observer twice is a no-op.
func (l *ObserverList) Add(observer port.FaviconObserver) {
	if observer == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.observer == observer {
			return
		}
	}
	l.entries = append(l.entries, &observerEntry{observer: observer})
}

// Remove unregisters an observer and reports whether it was registered.
func (l *ObserverList) Remove(observer port.FaviconObserver) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.observer == observer {
			e.removed = true
			l.entries = slices.Delete(l.entries, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (l *ObserverList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Notify calls OnFaviconUpdated on every observer of the current snapshot.
func (l *ObserverList) Notify(ctx context.Context, tabID entity.TabID, icon image.Image) {
	l.mu.Lock()
	snapshot := slices.Clone(l.entries)
	l.mu.Unlock()

	for _, e := range snapshot {
		if l.isRemoved(e) {
			continue
		}
		e.observer.OnFaviconUpdated(ctx, tabID, icon)
	}
}

func (l *ObserverList) isRemoved(e *observerEntry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return e.removed
}
