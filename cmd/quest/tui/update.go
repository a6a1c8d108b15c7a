package tui

import (
	"fmt"
	"strings"

	"auraquest/internal/logging"
	"auraquest/internal/present"
	"auraquest/internal/trip"
	"auraquest/internal/wizard"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case statusTickMsg:
		if _, more := m.ctrl.Tick(msg.epoch); more {
			return m, m.tick(msg.epoch)
		}
		return m, nil

	case generatedMsg:
		return m.handleGenerated(msg)

	case printedMsg:
		m.printing = false
		if msg.err != nil {
			m.status = "Print failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Saved to " + msg.location
		if msg.output != "" {
			m.status = "Printed below"
			return m, tea.Println(msg.output)
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.View() != wizard.ViewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ctrl.View() {
	case wizard.ViewLanding:
		switch msg.String() {
		case "enter", "s":
			if err := m.ctrl.Start(); err != nil {
				return m, nil
			}
			return m, m.enterStep()
		case "q", "esc":
			return m, tea.Quit
		}

	case wizard.ViewWizard:
		return m.handleWizardKey(msg)

	case wizard.ViewLoading:
		// Edits are refused until the generation settles.
		if msg.String() == "q" {
			return m, tea.Quit
		}

	case wizard.ViewResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m Model) handleWizardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur, _ := m.focused()

	switch msg.String() {
	case "esc":
		_ = m.ctrl.Back()
		if m.ctrl.View() == wizard.ViewWizard {
			return m, m.enterStep()
		}
		return m, nil
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	case "enter":
		if cur.kind == rowInput && cur.field == fieldCustom && strings.TrimSpace(m.inputs.custom.Value()) != "" {
			text := m.inputs.custom.Value()
			m.edit(func(p *trip.Preferences) { p.AddCustomInterest(text) })
			m.inputs.custom.SetValue("")
			m.focus = len(m.rows()) - 1
			return m, nil
		}
		return m.continueStep()
	}

	if cur.kind == rowInput {
		ti := m.inputs.get(cur.field)
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		m.applyInput(cur.field)
		return m, cmd
	}

	step := m.ctrl.Step()
	switch msg.String() {
	case " ", "x":
		m.activate(cur)
	case "left":
		if cur.kind == rowQuick {
			m.quick = (m.quick + len(trip.QuickDestinations) - 1) % len(trip.QuickDestinations)
		} else if step == wizard.StepStyle {
			m.edit(func(p *trip.Preferences) { p.SetLuxuryLevel(p.LuxuryLevel - 1) })
		}
	case "right":
		if cur.kind == rowQuick {
			m.quick = (m.quick + 1) % len(trip.QuickDestinations)
		} else if step == wizard.StepStyle {
			m.edit(func(p *trip.Preferences) { p.SetLuxuryLevel(p.LuxuryLevel + 1) })
		}
	case "+", "=":
		if step == wizard.StepCompanions {
			m.edit(func(p *trip.Preferences) { p.IncrementTravelers() })
		}
	case "-", "_":
		if step == wizard.StepCompanions {
			m.edit(func(p *trip.Preferences) { p.DecrementTravelers() })
		}
	}
	return m, nil
}

// continueStep advances the wizard, starting generation from the last step.
func (m Model) continueStep() (tea.Model, tea.Cmd) {
	sub, err := m.ctrl.Continue()
	if err != nil {
		// The controller holds the validation error for the view.
		return m, nil
	}
	if sub == nil {
		return m, m.enterStep()
	}

	m.result = nil
	m.lastErr = nil
	m.status = ""
	for _, ti := range m.inputs.all() {
		ti.Blur()
	}
	return m, tea.Batch(m.spinner.Tick, m.tick(sub.Epoch), m.generate(sub))
}

func (m Model) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.ctrl.Fail(msg.epoch, msg.err) {
			m.lastErr = msg.err
			return m, m.enterStep()
		}
		return m, nil
	}
	if m.ctrl.Complete(msg.epoch, msg.itinerary) {
		it, prefs := m.ctrl.Itinerary()
		m.result = present.New(it, prefs)
		m.refreshResult()
	}
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "right", "tab", "l":
		m.result.Next()
	case "left", "shift+tab":
		m.result.Prev()
	case "1", "2", "3", "4", "5":
		m.result.Select(present.Tab(key[0] - '1'))
	case "p":
		if m.printer == nil || m.printing {
			return m, nil
		}
		m.printing = true
		m.status = "Printing..."
		return m, m.print()
	case "n":
		if err := m.ctrl.NewTrip(); err == nil {
			return m, m.enterStep()
		}
		return m, nil
	case "h":
		_ = m.ctrl.Home()
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.refreshResult()
	return m, nil
}

func (m *Model) edit(fn func(*trip.Preferences)) {
	if err := m.ctrl.Edit(fn); err != nil {
		logging.Get(logging.CategoryUI).Debug("edit refused: %v", err)
	}
}

func (m *Model) resize() {
	m.viewport.Width = max(20, m.width-4)
	m.viewport.Height = max(5, m.height-10)
	if m.result != nil {
		m.refreshResult()
	}
}

func (m *Model) sectionWidth() int {
	return max(20, m.viewport.Width-2)
}

// errorDetail is shown under the failure notice.
func (m Model) errorDetail() string {
	if m.lastErr == nil {
		return ""
	}
	return fmt.Sprintf("(%v)", m.lastErr)
}
