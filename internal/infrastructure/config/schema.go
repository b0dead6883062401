// Package config loads tabicon configuration with viper.
package config

import "math"

// Config is the complete tabicon configuration.
type Config struct {
	Favicon  FaviconConfig  `mapstructure:"favicon" toml:"favicon"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
}

// FaviconConfig controls favicon selection and storage.
type FaviconConfig struct {
	// IdealSizeDP is the favicon edge length in density-independent pixels.
	IdealSizeDP int `mapstructure:"ideal_size_dp" toml:"ideal_size_dp"`
	// Density is the display scale factor applied to IdealSizeDP.
	Density float64 `mapstructure:"density" toml:"density"`
	// Filter is the rescale interpolator: catmullrom, bilinear, approxbilinear or nearest.
	Filter string `mapstructure:"filter" toml:"filter"`
	// Fit is how a source maps to the square target: stretch or crop.
	Fit string `mapstructure:"fit" toml:"fit"`
	// CacheDir holds kept icons as PNG. Empty disables the disk cache.
	CacheDir string `mapstructure:"cache_dir" toml:"cache_dir"`
}

const (
	// MaxIdealSizeDP bounds favicon.ideal_size_dp.
	MaxIdealSizeDP = 512
	// MaxIdealSizePx bounds the computed pixel size; every kept icon is
	// rescaled to a square raster of this edge.
	MaxIdealSizePx = 1024
)

// IdealSizePx returns the ideal edge length in physical pixels, clamped to
// [1, MaxIdealSizePx]. Validation rejects configs outside that range.
func (f FaviconConfig) IdealSizePx() int {
	px := f.idealSizePx()
	switch {
	case px < 1:
		return 1
	case px > MaxIdealSizePx:
		return MaxIdealSizePx
	}
	return int(px)
}

// idealSizePx is the unclamped pixel size. Computed in float64 so a huge
// ideal_size_dp cannot overflow into a small value.
func (f FaviconConfig) idealSizePx() float64 {
	return math.Round(float64(f.IdealSizeDP) * f.Density)
}

// DatabaseConfig locates the favicon index database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level"`
	Format     string `mapstructure:"format" toml:"format"`
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}
