package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReplayRow is the outcome of one replayed tab.
type ReplayRow struct {
	TabID         string
	PageURL       string
	Held          bool
	SourceWidth   int
	SourceHeight  int
	SourceURL     string
	Showing       bool
	Notifications int
	OutputPath    string
}

// ReplayRenderer renders replay results.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// Render renders one block per tab.
func (r *ReplayRenderer) Render(idealSize int, rows []ReplayRow) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconImage),
		r.theme.Title.Render("Replay"),
		r.theme.MutedBadge(fmt.Sprintf("ideal %dx%d", idealSize, idealSize)),
	))

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
			iconStyle.Render(IconGlobe),
			r.theme.Highlight.Render(row.TabID),
			r.theme.Subtle.Render(row.PageURL),
		))
		if !row.Held {
			sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.Subtle.Render("no favicon held")))
		} else {
			status := r.theme.SuccessStyle.Render(IconCheck)
			if !row.Showing {
				status = r.theme.WarningStyle.Render(IconInfo)
			}
			sb.WriteString(fmt.Sprintf("    %s held %s from %s\n",
				status,
				r.theme.SizeBadge(row.SourceWidth, row.SourceHeight),
				r.theme.Subtle.Render(row.SourceURL),
			))
		}
		sb.WriteString(fmt.Sprintf("    %s %s\n",
			r.theme.Subtle.Render(IconArrow),
			r.theme.Subtle.Render(fmt.Sprintf("%d notifications", row.Notifications)),
		))
		if row.OutputPath != "" {
			sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.Subtle.Render(IconArrow), r.theme.Normal.Render(row.OutputPath)))
		}
	}
	return sb.String()
}
