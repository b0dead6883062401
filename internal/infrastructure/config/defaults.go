package config

const (
	defaultIdealSizeDP = 16
	defaultDensity     = 1.0
	defaultFilter      = "catmullrom"
	defaultFit         = "stretch"
)

// DefaultConfig returns the built-in configuration.
// Paths are resolved from the XDG directories when available.
func DefaultConfig() *Config {
	cacheDir, _ := GetFaviconCacheDir()
	dbPath, _ := GetDefaultDatabasePath()

	return &Config{
		Favicon: FaviconConfig{
			IdealSizeDP: defaultIdealSizeDP,
			Density:     defaultDensity,
			Filter:      defaultFilter,
			Fit:         defaultFit,
			CacheDir:    cacheDir,
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}
