package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(1, 2)
	Title       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	StatusOn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	StatusOff   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4488ff"))
	MetricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Width(20)
	KeyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
	GraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	Hot         = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	Warm        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	Cool        = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

// Metric renders a label/value pair on one line.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}

// ThermoBar renders celsius on a bar spanning [lo, hi], coloured by how far
// along the range the value is.
func ThermoBar(celsius, lo, hi float64, width int) string {
	if width <= 0 || hi <= lo {
		return ""
	}
	frac := (celsius - lo) / (hi - lo)
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case frac > 0.66:
		return Hot.Render(bar)
	case frac > 0.33:
		return Warm.Render(bar)
	default:
		return Cool.Render(bar)
	}
}
