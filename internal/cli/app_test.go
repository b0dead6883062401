package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/infrastructure/config"
)

func testAppConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Favicon.CacheDir = filepath.Join(dir, "favicons")
	cfg.Database.Path = filepath.Join(dir, "tabicon.sqlite")
	cfg.Logging.Level = "disabled"
	return cfg
}

func TestApp_ReplayPersistsKeptIcons(t *testing.T) {
	cfg := testAppConfig(t)
	app, err := NewAppFromConfig(cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	writeIcon(t, dir, "8.png", 8, 8)
	writeIcon(t, dir, "16.png", 16, 16)
	script, err := ParseScript([]byte(`
[[tab]]
id = "t"
[[tab.event]]
url = "https://www.example.com/page"
icon = "8.png"
[[tab.event]]
icon = "16.png"
`), dir)
	require.NoError(t, err)

	results, err := app.NewReplayer().Run(app.Ctx(), script)
	require.NoError(t, err)
	require.True(t, results[0].HasHeld)

	entry, err := app.Index.Get(app.Ctx(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 16, entry.SrcWidth)
	assert.Equal(t, 16, entry.IdealSize)
	assert.True(t, entry.Exact())

	counts, err := app.Metrics.Counts()
	require.NoError(t, err)
	assert.InDelta(t, 2, counts[port.CandidateKept], 0.001)

	metricsPath := filepath.Join(dir, "tabicon.prom")
	require.NoError(t, app.Metrics.WriteTextfile(metricsPath))
	assert.FileExists(t, metricsPath)

	require.NoError(t, app.Close())
	assert.True(t, app.Cache.HasPNGOnDisk("example.com"), "disk writes are flushed on close")
}

func TestApp_ConfigReloadAffectsNewTabsOnly(t *testing.T) {
	cfg := testAppConfig(t)
	app, err := NewAppFromConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	first, err := app.Tabs.Open(app.Ctx(), &replayTab{id: "first"})
	require.NoError(t, err)

	reloaded := *cfg
	reloaded.Favicon.Density = 2
	app.applyConfig(&reloaded)

	second, err := app.Tabs.Open(app.Ctx(), &replayTab{id: "second"})
	require.NoError(t, err)

	assert.Equal(t, 16, first.Tracker().IdealSize())
	assert.Equal(t, 32, second.Tracker().IdealSize())
}

func TestNewApp_LoadsConfigDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	configDir := filepath.Join(root, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[favicon]
ideal_size_dp = 24

[logging]
level = "disabled"
`), 0o644))

	app, err := NewApp(configDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, 24, app.Tabs.IdealSize())
	assert.Equal(t, filepath.Join(configDir, "config.toml"), app.ConfigManager.GetConfigFile())
	assert.FileExists(t, filepath.Join(root, "data", "tabicon", "tabicon.sqlite"))
}

func TestNewAppFromConfig_RejectsUnknownFilter(t *testing.T) {
	cfg := testAppConfig(t)
	cfg.Favicon.Filter = "lanczos"

	_, err := NewAppFromConfig(cfg)
	assert.Error(t, err)
}
