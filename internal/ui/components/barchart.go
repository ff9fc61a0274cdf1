package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gmatize/gmatize/internal/ui/theme"
)

// Bar is one row in a BarChart.
type Bar struct {
	Label string
	Value int
	Color color.Color
}

// BarChart renders horizontal bars scaled against a shared maximum.
type BarChart struct {
	Bars  []Bar
	Max   int
	Width int
}

// NewBarChart creates a chart. Bars with a zero Color fall back to the
// secondary theme color.
func NewBarChart(bars []Bar, max, width int) BarChart {
	return BarChart{Bars: bars, Max: max, Width: width}
}

// View renders the chart, one labeled bar per line.
func (b BarChart) View() string {
	if b.Max <= 0 || len(b.Bars) == 0 {
		return ""
	}

	labelWidth := 0
	for _, bar := range b.Bars {
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
	}

	// label + gap + bar + gap + value
	barWidth := b.Width - labelWidth - 8
	if barWidth < 4 {
		barWidth = 4
	}

	var s strings.Builder
	for _, bar := range b.Bars {
		val := bar.Value
		if val < 0 {
			val = 0
		}
		if val > b.Max {
			val = b.Max
		}
		filled := val * barWidth / b.Max

		barColor := bar.Color
		if barColor == nil {
			barColor = theme.Secondary
		}

		label := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(labelWidth).
			Render(bar.Label)
		fill := theme.BarFilled.
			Background(barColor).
			Render(strings.Repeat(" ", filled))
		rest := theme.BarEmpty.
			Render(strings.Repeat(" ", barWidth-filled))
		value := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d", bar.Value))

		s.WriteString(label + "  " + fill + rest + value + "\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
