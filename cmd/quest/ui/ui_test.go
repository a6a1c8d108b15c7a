package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDetectTheme_Env(t *testing.T) {
	t.Setenv("QUEST_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
	t.Setenv("QUEST_DARK_MODE", "0")
	assert.False(t, DetectTheme().IsDark)
}

func TestChoiceAndRadio(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Contains(t, s.Choice("Vegan", true, false), "[x] Vegan")
	assert.Contains(t, s.Choice("Vegan", false, true), "▸")
	assert.Contains(t, s.Radio("Packed", true, false), "(•) Packed")
	assert.Contains(t, s.Radio("Packed", false, false), "( ) Packed")
}

func TestStepProgress(t *testing.T) {
	s := NewStyles(LightTheme())
	out := StepProgress(s, 3, 7, "Companions")
	assert.Contains(t, out, "STEP 3 / 7")
	assert.Contains(t, out, "COMPANIONS")
	assert.Equal(t, 7, strings.Count(out, "━━━"))
}

func TestTabBar(t *testing.T) {
	s := NewStyles(LightTheme())
	out := TabBar(s, []string{"Overview", "Budget"}, 1)
	assert.Contains(t, out, "1 Overview")
	assert.Contains(t, out, "2 Budget")
}

func TestBudgetChart(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Contains(t, BudgetChart(s, nil, 80), "No budget breakdown.")

	out := BudgetChart(s, []ChartSlice{
		{Label: "Hotel", Amount: "₹129,500", Color: "#6366f1", Fraction: 0.75},
		{Label: "Food", Amount: "₹21,000", Color: "#f59e0b", Fraction: 0.25},
	}, 80)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "75%")
	assert.Contains(t, lines[1], "₹21,000")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1])-lipgloss.Width("₹21,000")+lipgloss.Width("₹129,500"))
}

func TestSimpleTable(t *testing.T) {
	s := NewStyles(LightTheme())
	tbl := NewSimpleTable("Trip Summary", "Field", "Value")
	assert.Empty(t, tbl.View(s))

	tbl.AddRow("Destination", "Goa")
	tbl.AddRow("Travelers", "2")
	out := tbl.View(s)
	assert.Contains(t, out, "Trip Summary")
	assert.Contains(t, out, "Destination")
	assert.Contains(t, out, "Goa")
}
