package config

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	validFilters    = []string{"catmullrom", "bilinear", "approxbilinear", "nearest"}
	validFits       = []string{"stretch", "crop"}
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateFavicon(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateFavicon(config *Config) []string {
	var validationErrors []string
	f := config.Favicon
	if f.IdealSizeDP < 1 {
		validationErrors = append(validationErrors, "favicon.ideal_size_dp must be at least 1")
	}
	if f.IdealSizeDP > MaxIdealSizeDP {
		validationErrors = append(validationErrors,
			fmt.Sprintf("favicon.ideal_size_dp must be at most %d", MaxIdealSizeDP))
	}
	if !(f.Density > 0) || math.IsInf(f.Density, 0) {
		validationErrors = append(validationErrors, "favicon.density must be positive")
	} else if f.IdealSizeDP >= 1 {
		if px := f.idealSizePx(); px < 1 || px > MaxIdealSizePx {
			validationErrors = append(validationErrors,
				fmt.Sprintf("favicon.ideal_size_dp * favicon.density must be between 1 and %d pixels, got %.0f",
					MaxIdealSizePx, px))
		}
	}
	if !slices.Contains(validFilters, f.Filter) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("favicon.filter must be one of %s", strings.Join(validFilters, ", ")))
	}
	if !slices.Contains(validFits, f.Fit) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("favicon.fit must be one of %s", strings.Join(validFits, ", ")))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging rotation limits must be non-negative")
	}
	return validationErrors
}
