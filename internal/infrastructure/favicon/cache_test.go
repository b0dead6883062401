package favicon

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MemoryOnly(t *testing.T) {
	c := NewCache("")
	defer c.Close()

	_, ok := c.Get("example.com")
	assert.False(t, ok)

	c.Set("example.com", []byte{1, 2, 3})
	data, ok := c.Get("example.com")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, 1, c.Size())
	assert.Empty(t, c.DiskPathPNG("example.com"))

	c.Set("", []byte{1})
	c.Set("empty.com", nil)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCache_StoreAndFallbackRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCache("")
	defer c.Close()

	require.NoError(t, c.StoreFavicon(ctx, "https://www.example.com/a", solid(16, 16, color.White)))

	img := c.FaviconForURL(ctx, "https://example.com/other")
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())

	assert.Nil(t, c.FaviconForURL(ctx, "https://unknown.example/"))
}

func TestCache_StoreSkipsHostlessURL(t *testing.T) {
	c := NewCache("")
	defer c.Close()

	require.NoError(t, c.StoreFavicon(context.Background(), "about:blank", solid(4, 4, color.White)))
	assert.Equal(t, 0, c.Size())
}

func TestCache_PersistsToDisk(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)
	require.NoError(t, c.SetImage("example.com", solid(8, 8, color.White)))
	c.Close()

	assert.True(t, c.HasPNGOnDisk("example.com"))
	assert.FileExists(t, c.DiskPathPNG("example.com"))

	reopened := NewCache(dir)
	defer reopened.Close()
	img := reopened.Image("example.com")
	require.NotNil(t, img)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestCache_ImageIgnoresCorruptData(t *testing.T) {
	c := NewCache("")
	defer c.Close()

	c.Set("example.com", []byte("not png"))
	assert.Nil(t, c.Image("example.com"))
}

func TestCache_Evict(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)
	require.NoError(t, c.SetImage("example.com", solid(8, 8, color.White)))
	c.Close()
	require.True(t, c.HasPNGOnDisk("example.com"))

	require.NoError(t, c.Evict(context.Background(), "example.com"))

	assert.False(t, c.HasPNGOnDisk("example.com"))
	assert.Nil(t, c.Image("example.com"))
	assert.NoError(t, c.Evict(context.Background(), "example.com"), "evicting twice is not an error")
}
