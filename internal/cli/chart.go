package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adiwerna/duita/internal/model"
)

// ratio bar colors, in essentials/savings/wants order
var ratioColors = [3]lipgloss.Color{ColorBlue, ColorGreen, ColorPurple}

var ratioLabels = [3]string{"Essentials", "Savings", "Wants"}

// RenderRatioChart renders a 3-vector of allocation ratios as labelled
// horizontal bars with percentages.
func RenderRatioChart(ratios [3]float64, width int) string {
	if width <= 0 {
		width = 30
	}
	max := ratios[0]
	for _, r := range ratios[1:] {
		if r > max {
			max = r
		}
	}

	var b strings.Builder
	for i, r := range ratios {
		bar := RenderHorizontalBar(r, max, width)
		style := lipgloss.NewStyle().Foreground(ratioColors[i])
		fmt.Fprintf(&b, "  %-10s %s %s\n",
			ratioLabels[i],
			style.Render(bar),
			mutedStyle.Render(FormatPercent(r)),
		)
	}
	return b.String()
}

// RenderSpendingChart renders the daily spending series as a sparkline
// plus per-day rows. Zero days render as empty bars, keeping the calendar
// shape visible.
func RenderSpendingChart(days []model.DaySpend, currency string) string {
	if len(days) == 0 {
		return ""
	}

	values := make([]float64, len(days))
	max := 0.0
	for i, d := range days {
		values[i] = d.Total
		if d.Total > max {
			max = d.Total
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorAccent).Render(RenderSparkline(values)))
	b.WriteString("\n\n")

	for _, d := range days {
		bar := RenderHorizontalBar(d.Total, max, 24)
		fmt.Fprintf(&b, "  %s %s  %-24s %s\n",
			mutedStyle.Render(d.Date.Format("2006-01-02")),
			dimStyle.Render(FormatDayOfWeek(int(d.Date.Weekday()))),
			lipgloss.NewStyle().Foreground(ColorOrange).Render(bar),
			valueStyle.Render(FormatMoney(d.Total, currency)),
		)
	}
	return b.String()
}
