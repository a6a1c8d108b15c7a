package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepProgress renders "STEP 3 / 7" above a segmented bar.
func StepProgress(s Styles, step, total int, name string) string {
	var bar strings.Builder
	for i := 1; i <= total; i++ {
		if i <= step {
			bar.WriteString(s.Selected.Render("━━━"))
		} else {
			bar.WriteString(s.Divider.Render("━━━"))
		}
		if i < total {
			bar.WriteString(" ")
		}
	}
	label := s.Muted.Render(fmt.Sprintf("STEP %d / %d", step, total)) + "  " + s.Bold.Render(strings.ToUpper(name))
	return label + "\n" + bar.String()
}

// TabBar renders tab labels with the active one highlighted.
func TabBar(s Styles, labels []string, active int) string {
	cells := make([]string, len(labels))
	for i, l := range labels {
		text := fmt.Sprintf("%d %s", i+1, l)
		if i == active {
			cells[i] = s.ActiveTab.Render(text)
		} else {
			cells[i] = s.Tab.Render(text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// ChartSlice is one row of a budget chart.
type ChartSlice struct {
	Label    string
	Amount   string
	Color    string
	Fraction float64
}

// BudgetChart renders horizontal bars sized by fraction, each in its
// category color.
func BudgetChart(s Styles, slices []ChartSlice, width int) string {
	if len(slices) == 0 {
		return s.Muted.Render("No budget breakdown.")
	}

	labelW := 0
	for _, sl := range slices {
		labelW = max(labelW, lipgloss.Width(sl.Label))
	}
	barW := max(10, width-labelW-24)

	var b strings.Builder
	for _, sl := range slices {
		n := int(math.Round(min(1, max(0, sl.Fraction)) * float64(barW)))
		filled := lipgloss.NewStyle().Foreground(lipgloss.Color(sl.Color)).Render(strings.Repeat("█", n))
		empty := s.Divider.Render(strings.Repeat("░", barW-n))
		label := s.Body.Width(labelW + 1).Render(sl.Label)
		fmt.Fprintf(&b, "%s %s%s %s %s\n", label, filled, empty,
			s.Muted.Render(fmt.Sprintf("%3.0f%%", sl.Fraction*100)), s.Bold.Render(sl.Amount))
	}
	return b.String()
}
