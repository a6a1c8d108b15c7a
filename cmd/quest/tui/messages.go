package tui

import (
	"bytes"
	"time"

	"auraquest/internal/itinerary"
	"auraquest/internal/logging"
	"auraquest/internal/printer"
	"auraquest/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTickMsg advances the loading status feed for one epoch.
type statusTickMsg struct {
	epoch uint64
}

// generatedMsg carries the outcome of one generation attempt.
type generatedMsg struct {
	epoch     uint64
	itinerary *itinerary.Itinerary
	err       error
}

// printedMsg reports a finished print. output is set for terminal printing.
type printedMsg struct {
	location string
	output   string
	err      error
}

func (m Model) tick(epoch uint64) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return statusTickMsg{epoch: epoch}
	})
}

func (m Model) generate(sub *wizard.Submission) tea.Cmd {
	ctx, p := m.ctx, m.planner
	return func() tea.Msg {
		it, err := p.Generate(ctx, sub.ID, sub.Prefs)
		return generatedMsg{epoch: sub.Epoch, itinerary: it, err: err}
	}
}

func (m Model) print() tea.Cmd {
	ctx, p := m.ctx, m.printer
	doc := printer.Document{Title: m.result.Title(), Markdown: m.result.PrintDocument()}
	return func() tea.Msg {
		if tp, ok := p.(*printer.TerminalPrinter); ok {
			var buf bytes.Buffer
			local := *tp
			local.Out = &buf
			_, err := local.Print(ctx, doc)
			return printedMsg{location: "terminal", output: buf.String(), err: err}
		}
		loc, err := p.Print(ctx, doc)
		if err != nil {
			logging.Get(logging.CategoryPrint).Error("print failed: %v", err)
		}
		return printedMsg{location: loc, err: err}
	}
}
