package tui

import (
	"fmt"
	"strconv"
	"strings"

	"auraquest/cmd/quest/ui"
	"auraquest/internal/currency"
	"auraquest/internal/present"
	"auraquest/internal/printer"
	"auraquest/internal/trip"
	"auraquest/internal/wizard"

	"github.com/charmbracelet/lipgloss"
)

var stepPrompts = map[wizard.Step]string{
	wizard.StepDestination: "Where does your quest begin and end?",
	wizard.StepDates:       "When are you travelling?",
	wizard.StepCompanions:  "Who is coming along?",
	wizard.StepStyle:       "How do you like to travel?",
	wizard.StepInterests:   "What makes your heart race?",
	wizard.StepDining:      "Any dietary needs?",
	wizard.StepBudget:      "What is the budget?",
}

func (m Model) View() string {
	switch m.ctrl.View() {
	case wizard.ViewLanding:
		return m.viewLanding()
	case wizard.ViewWizard:
		return m.viewWizard()
	case wizard.ViewLoading:
		return m.viewLoading()
	case wizard.ViewResult:
		return m.viewResult()
	}
	return ""
}

func (m Model) viewLanding() string {
	s := m.styles
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left,
		ui.Logo(s),
		"",
		s.Muted.Render("REDEFINING GLOBAL EXPLORATION"),
		s.Title.Render("JOURNEYS WOVEN WITH INTELLIGENCE"),
		s.Body.Render("Escape the chaos of planning. Our multi-agent AI synthesizes your desires\ninto the ultimate odyssey in under five minutes."),
		"",
		s.Badge.Render("Forge Your Quest ›"),
		"",
		s.KeyHelp("enter", "start", "q", "quit"),
	))
}

func (m Model) viewWizard() string {
	s := m.styles
	step := m.ctrl.Step()
	prefs := m.ctrl.Prefs()

	var b strings.Builder
	b.WriteString(ui.Logo(s) + "\n\n")
	b.WriteString(ui.StepProgress(s, int(step), int(wizard.LastStep), step.String()) + "\n\n")
	b.WriteString(s.Title.Render(stepPrompts[step]) + "\n")

	if notice := m.ctrl.Notice(); notice != "" {
		b.WriteString(s.Warning.Render(notice))
		if d := m.errorDetail(); d != "" {
			b.WriteString(" " + s.Muted.Render(d))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.stepHeader(prefs))

	for i, r := range m.rows() {
		b.WriteString(m.renderRow(prefs, r, i == m.focus) + "\n")
	}

	b.WriteString(m.stepFooter(prefs))

	if verr := m.ctrl.Err(); verr != nil {
		b.WriteString("\n" + s.Error.Render("⚠ "+verr.Message) + "\n")
	}

	next := "continue"
	if step == wizard.LastStep {
		next = "generate my trip"
	}
	b.WriteString("\n" + s.KeyHelp(m.stepKeys(next)...))
	return s.Content.Render(b.String())
}

func (m Model) stepKeys(next string) []string {
	keys := []string{"enter", next, "esc", "back", "↑/↓", "move"}
	switch m.ctrl.Step() {
	case wizard.StepCompanions:
		keys = append(keys, "+/-", "people", "space", "select")
	case wizard.StepStyle:
		keys = append(keys, "←/→", "comfort", "space", "select")
	case wizard.StepInterests, wizard.StepDining:
		keys = append(keys, "space", "toggle")
	case wizard.StepDestination:
		keys = append(keys, "←/→ space", "quick pick")
	}
	return append(keys, "ctrl+c", "quit")
}

// stepHeader renders step content that sits above the focusable rows.
func (m Model) stepHeader(p trip.Preferences) string {
	s := m.styles
	switch m.ctrl.Step() {
	case wizard.StepCompanions:
		return s.Bold.Render("Number of People") + "  " +
			s.Key.Render("‹ ") + s.Title.UnsetMarginBottom().Render(strconv.Itoa(p.Travelers)) + s.Key.Render(" ›") +
			"\n\n" + s.Bold.Render("Trip Type") + "\n"
	case wizard.StepStyle:
		sym := currency.Infer(p.Destination).Symbol
		stars := strings.Repeat("★", p.LuxuryLevel) + strings.Repeat("☆", trip.MaxLuxury-p.LuxuryLevel)
		return s.Bold.Render("Comfort Tier") + "  " + s.Selected.Render(stars) + "  " +
			s.Body.Render(trip.LuxuryLabel(p.LuxuryLevel, sym)) +
			"\n\n" + s.Bold.Render("Trip Pace") + "\n"
	case wizard.StepBudget:
		return s.Muted.Render("Budget in "+currency.Infer(p.Destination).Name) + "\n\n"
	}
	return ""
}

// stepFooter renders step content below the rows.
func (m Model) stepFooter(p trip.Preferences) string {
	s := m.styles
	switch m.ctrl.Step() {
	case wizard.StepDates:
		if n, err := p.Nights(); err == nil && n >= 0 {
			return "\n" + s.Muted.Render(fmt.Sprintf("%d nights", n)) + "\n"
		}
	case wizard.StepBudget:
		cur := currency.Infer(p.Destination)
		t := ui.NewSimpleTable("Trip Summary")
		t.AddRow("Destination", p.Destination)
		t.AddRow("Dates", p.StartDate+" → "+p.EndDate)
		t.AddRow("Travelers", fmt.Sprintf("%d (%s)", p.Travelers, p.TravelType))
		t.AddRow("Comfort", trip.LuxuryLabel(p.LuxuryLevel, cur.Symbol))
		t.AddRow("Pace", p.Pace.Short())
		t.AddRow("Budget", cur.Format(p.Budget))
		return "\n" + t.View(s)
	}
	return ""
}

func (m Model) renderRow(p trip.Preferences, r row, focused bool) string {
	s := m.styles
	switch r.kind {
	case rowInput:
		ti := m.inputs.get(r.field)
		label := r.label
		if r.field == fieldBudget {
			label += " (" + currency.Infer(p.Destination).Symbol + ")"
		}
		cursor := "  "
		if focused {
			cursor = s.Cursor.Render("▸ ")
		}
		line := cursor + s.Bold.Render(label) + "\n  " + ti.View()
		if ti.Err != nil {
			line += "  " + s.Error.Render("numbers only")
		}
		return line
	case rowToggle:
		return s.Choice(r.label, checked(p, r), focused)
	case rowRadio:
		return s.Radio(r.label, checked(p, r), focused)
	case rowQuick:
		cells := make([]string, len(trip.QuickDestinations))
		for i, d := range trip.QuickDestinations {
			if focused && i == m.quick {
				cells[i] = s.Badge.Render(d)
			} else {
				cells[i] = s.Muted.Render(d)
			}
		}
		cursor := "  "
		if focused {
			cursor = s.Cursor.Render("▸ ")
		}
		return "\n" + cursor + s.Muted.Render("Quick picks: ") + strings.Join(cells, " ")
	}
	return ""
}

func (m Model) viewLoading() string {
	s := m.styles
	prefs := m.ctrl.Prefs()

	var b strings.Builder
	b.WriteString(ui.Logo(s) + "\n\n")
	b.WriteString(m.spinner.View() + " " + s.Title.Render("Crafting Masterpiece...") + "\n")
	b.WriteString(s.Muted.Render("Synthesizing ultra-intelligent data streams for "+prefs.Destination) + "\n\n")
	for _, st := range m.ctrl.Statuses() {
		b.WriteString(s.Success.Render("• ") + s.Body.Render(st) + "\n")
	}
	return s.Content.Render(b.String())
}

func (m Model) viewResult() string {
	s := m.styles
	if m.result == nil {
		return ""
	}

	labels := make([]string, 0, 5)
	for _, t := range present.Tabs() {
		labels = append(labels, t.String())
	}

	var b strings.Builder
	b.WriteString(ui.Logo(s) + "  " + s.Title.UnsetMarginBottom().Render(m.result.Title()) + "\n")
	b.WriteString(ui.TabBar(s, labels, int(m.result.Active())) + "\n")
	b.WriteString(s.RenderDivider(m.viewport.Width) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	if m.status != "" {
		b.WriteString(s.Muted.Render(m.status) + "\n")
	}
	b.WriteString(s.KeyHelp("←/→ 1-5", "tabs", "↑/↓", "scroll", "p", "save as "+m.printLabel(), "n", "new trip", "h", "home", "q", "quit"))
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) printLabel() string {
	switch m.printer.(type) {
	case *printer.PDFPrinter:
		return "pdf"
	case *printer.HTMLPrinter:
		return "html"
	case *printer.TerminalPrinter:
		return "text"
	}
	return "markdown"
}

// refreshResult re-renders the active tab into the viewport.
func (m *Model) refreshResult() {
	if m.result == nil {
		return
	}
	section := m.result.ActiveSection()
	content, err := printer.RenderTerminal(section, m.sectionWidth(), m.style)
	if err != nil {
		content = section
	}

	if m.result.Active() == present.TabBudget {
		cur := m.result.Currency()
		var slices []ui.ChartSlice
		for _, sh := range m.result.BudgetShares() {
			slices = append(slices, ui.ChartSlice{
				Label:    sh.Name,
				Amount:   cur.Format(sh.Amount),
				Color:    sh.Color,
				Fraction: sh.Fraction,
			})
		}
		content = ui.BudgetChart(m.styles, slices, m.sectionWidth()) + "\n" + content
	}

	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
