package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexis/internal/ui/theme"
)

// ProgressBar is a horizontal bar drawn with block characters so it stays
// readable when colors are stripped.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Fraction   float64 // 0..1
	Width      int     // bar cells, excluding label and percentage
	Fill       color.Color
}

// NewProgressBar creates a bar with the default fill color.
func NewProgressBar(label string, fraction float64, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Fraction: fraction,
		Width:    width,
		Fill:     theme.Secondary,
	}
}

// View renders the bar followed by the rounded percentage.
func (p ProgressBar) View() string {
	width := max(p.Width, 4)
	frac := min(max(p.Fraction, 0), 1)

	filled := int(float64(width)*frac + 0.5)
	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Label.Width(max(p.LabelWidth, lipgloss.Width(p.Label))).Render(p.Label))
		b.WriteString("  ")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled)))
	b.WriteString(theme.Label.Render(fmt.Sprintf(" %3d%%", int(frac*100+0.5))))
	return b.String()
}
