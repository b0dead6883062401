package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/tabicon/internal/infrastructure/config"
)

// ConfigRenderer renders the effective configuration.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// Render renders the config file path, the derived ideal size and the config as TOML.
func (r *ConfigRenderer) Render(path string, cfg *config.Config) (string, error) {
	body, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path)))
	sb.WriteString(fmt.Sprintf("  %s Ideal size %s\n\n",
		iconStyle.Render(IconInfo),
		r.theme.SizeBadge(cfg.Favicon.IdealSizePx(), cfg.Favicon.IdealSizePx()),
	))
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		sb.WriteString("  " + r.theme.Normal.Render(line) + "\n")
	}
	return sb.String(), nil
}
