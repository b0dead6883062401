package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabicon/internal/domain/entity"
	"github.com/bnema/tabicon/internal/infrastructure/config"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now))
	}
}

func TestIndexRenderer(t *testing.T) {
	r := NewIndexRenderer(NewTheme())

	assert.Contains(t, r.Render(nil, nil), "favicon index is empty")

	entries := []*entity.FaviconIndexEntry{
		entity.NewFaviconIndexEntry("example.com", "https://example.com/", 16, 16, 16),
	}
	out := r.Render(entries, func(string) bool { return true })
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "16x16")
}

func TestReplayRenderer(t *testing.T) {
	out := NewReplayRenderer(NewTheme()).Render(16, []ReplayRow{
		{TabID: "a", PageURL: "https://a.test/", Held: true, SourceWidth: 32, SourceHeight: 32, SourceURL: "https://a.test/", Showing: true, Notifications: 2},
		{TabID: "b", PageURL: "https://b.test/"},
	})

	assert.Contains(t, out, "32x32")
	assert.Contains(t, out, "2 notifications")
	assert.Contains(t, out, "no favicon held")
}

func TestConfigRenderer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Favicon.Density = 2

	out, err := NewConfigRenderer(NewTheme()).Render("/tmp/config.toml", cfg)

	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/config.toml")
	assert.Contains(t, out, "32x32")
	assert.Contains(t, out, "ideal_size_dp = 16")
}
