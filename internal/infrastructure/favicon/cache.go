package favicon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	domainurl "github.com/bnema/tabicon/internal/domain/url"
	"github.com/bnema/tabicon/internal/logging"
)

const (
	// diskWriteBufferSize defines the capacity of the favicon write channel.
	diskWriteBufferSize = 100
	// File permissions for favicon cache.
	diskCacheDirPerm  = 0750
	diskCacheFilePerm = 0600
)

// diskWrite represents a favicon to be written to disk asynchronously.
type diskWrite struct {
	domain string
	data   []byte
}

// Cache stores kept favicons as PNG per domain, in memory and on disk.
// It implements port.FaviconStore, port.FaviconFallback and port.FaviconEvictor.
type Cache struct {
	memCache  map[string][]byte
	diskDir   string
	writeChan chan diskWrite
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
}

// NewCache creates a new favicon cache.
// If diskDir is empty, only in-memory caching is used.
func NewCache(diskDir string) *Cache {
	c := &Cache{
		memCache:  make(map[string][]byte),
		diskDir:   diskDir,
		writeChan: make(chan diskWrite, diskWriteBufferSize),
		done:      make(chan struct{}),
	}

	// Start background writer goroutine if disk caching is enabled
	if diskDir != "" {
		go c.diskWriter()
	} else {
		close(c.done)
	}

	return c
}

// Get retrieves PNG bytes for a domain.
// Checks memory cache first, then disk cache.
func (c *Cache) Get(domain string) ([]byte, bool) {
	if domain == "" {
		return nil, false
	}

	c.mu.RLock()
	data, ok := c.memCache[domain]
	c.mu.RUnlock()
	if ok {
		return data, true
	}

	data = c.loadFromDisk(domain)
	if data != nil {
		c.mu.Lock()
		c.memCache[domain] = data
		c.mu.Unlock()
		return data, true
	}

	return nil, false
}

// Set stores PNG bytes for a domain.
// Writes to memory cache immediately and queues async disk write.
func (c *Cache) Set(domain string, data []byte) {
	if domain == "" || len(data) == 0 {
		return
	}

	c.mu.Lock()
	c.memCache[domain] = data
	c.mu.Unlock()

	c.queueDiskWrite(domain, data)
}

// SetImage encodes img as PNG and stores it for domain.
func (c *Cache) SetImage(domain string, img image.Image) error {
	if domain == "" || img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode favicon png: %w", err)
	}
	c.Set(domain, buf.Bytes())
	return nil
}

// Image returns the decoded icon for domain, or nil.
func (c *Cache) Image(domain string) image.Image {
	data, ok := c.Get(domain)
	if !ok {
		return nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}

// StoreFavicon stores a kept icon under the domain of pageURL.
// Pages without a host are skipped.
func (c *Cache) StoreFavicon(ctx context.Context, pageURL string, icon image.Image) error {
	domain := domainurl.ExtractDomain(pageURL)
	if domain == "" {
		logging.FromContext(ctx).Trace().Str("url", pageURL).Msg("no domain, favicon not cached")
		return nil
	}
	return c.SetImage(domain, icon)
}

// FaviconForURL returns the cached icon for the domain of pageURL, or nil.
func (c *Cache) FaviconForURL(_ context.Context, pageURL string) image.Image {
	return c.Image(domainurl.ExtractDomain(pageURL))
}

// DiskPathPNG returns the filesystem path for a domain's PNG favicon.
// Returns empty string if disk caching is disabled or domain is empty.
func (c *Cache) DiskPathPNG(domain string) string {
	if c.diskDir == "" || domain == "" {
		return ""
	}
	return filepath.Join(c.diskDir, domainurl.SanitizeDomainForPNG(domain))
}

// HasPNGOnDisk checks if a PNG favicon exists on disk for the given domain.
func (c *Cache) HasPNGOnDisk(domain string) bool {
	path := c.DiskPathPNG(domain)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Close stops the background writer and waits for queued writes to land.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.writeChan)
		<-c.done
	})
}

// Evict removes the domain's icon from memory and disk.
// A write still queued for the domain may land afterwards.
func (c *Cache) Evict(ctx context.Context, domain string) error {
	c.mu.Lock()
	delete(c.memCache, domain)
	c.mu.Unlock()

	path := c.DiskPathPNG(domain)
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("evict %s: %w", domain, err)
	}
	logging.FromContext(ctx).Debug().Str("domain", domain).Msg("favicon evicted")
	return nil
}

// Clear removes all entries from the in-memory cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.memCache = make(map[string][]byte)
	c.mu.Unlock()
}

// Size returns the number of entries in the in-memory cache.
func (c *Cache) Size() int {
	c.mu.RLock()
	size := len(c.memCache)
	c.mu.RUnlock()
	return size
}

// loadFromDisk attempts to load favicon bytes from disk cache.
func (c *Cache) loadFromDisk(domain string) []byte {
	path := c.DiskPathPNG(domain)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

// writeToDisk atomically writes favicon data to disk.
func (c *Cache) writeToDisk(domain string, data []byte) {
	if c.diskDir == "" || len(data) == 0 {
		return
	}

	if err := os.MkdirAll(c.diskDir, diskCacheDirPerm); err != nil {
		return
	}

	finalPath := c.DiskPathPNG(domain)
	tempPath := finalPath + ".tmp"

	if err := os.WriteFile(tempPath, data, diskCacheFilePerm); err != nil {
		return
	}

	// Atomic rename
	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
	}
}

// queueDiskWrite sends favicon data to be written asynchronously.
func (c *Cache) queueDiskWrite(domain string, data []byte) {
	if c.diskDir == "" {
		return
	}
	select {
	case c.writeChan <- diskWrite{domain: domain, data: data}:
		// queued successfully
	default:
		// channel full, skip write
	}
}

// diskWriter processes async write requests.
func (c *Cache) diskWriter() {
	defer close(c.done)
	for write := range c.writeChan {
		c.writeToDisk(write.domain, write.data)
	}
}
