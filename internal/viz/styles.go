package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles derive from CurrentTheme on every call so theme switches apply on
// the next frame.

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Secondary).MarginBottom(1)
}

func latticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(CurrentTheme.UpSpin).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Muted)
}

func statsStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 2).
		Width(48)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(14)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true)
}

func statusStyle(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Warning)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Italic(true).MarginTop(1)
}

// ProgressBar renders fraction in [0, 1] as a bar of the given width.
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(width, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(bar)
}

// Row renders one label/value line of the stats panel.
func Row(label, value string) string {
	return labelStyle().Render(label) + valueStyle().Render(value) + "\n"
}
