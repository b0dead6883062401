package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabicon/internal/domain/entity"
)

// IndexRenderer renders favicon index listings.
type IndexRenderer struct {
	theme *Theme
}

// NewIndexRenderer creates a new index renderer with the given theme.
func NewIndexRenderer(theme *Theme) *IndexRenderer {
	return &IndexRenderer{theme: theme}
}

// Render renders entries as a table. onDisk reports whether a PNG is cached for a domain.
func (r *IndexRenderer) Render(entries []*entity.FaviconIndexEntry, onDisk func(domain string) bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if len(entries) == 0 {
		return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconDatabase), r.theme.Subtle.Render("favicon index is empty"))
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		exact := ""
		if e.Exact() {
			exact = IconCheck
		}
		cached := IconX
		if onDisk != nil && onDisk(e.Domain) {
			cached = IconCheck
		}
		rows = append(rows, []string{
			e.Domain,
			fmt.Sprintf("%dx%d", e.SrcWidth, e.SrcHeight),
			fmt.Sprintf("%d", e.IdealSize),
			exact,
			cached,
			RelativeTime(e.UpdatedAt, timeNow()),
		})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconDatabase),
		r.theme.Title.Render("Favicon index"),
		r.theme.MutedBadge(fmt.Sprintf("%d", len(entries))),
	))
	sb.WriteString(NewStyledTable(r.theme,
		[]string{"Domain", "Source", "Ideal", "Exact", "PNG", "Updated"},
		rows,
	).String())
	sb.WriteString("\n")
	return sb.String()
}
