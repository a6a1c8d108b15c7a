package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"auraquest/cmd/quest/ui"
	"auraquest/internal/config"
	"auraquest/internal/itinerary"
	"auraquest/internal/present"
	"auraquest/internal/printer"
	"auraquest/internal/trip"
	"auraquest/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanner struct {
	mu    sync.Mutex
	it    *itinerary.Itinerary
	err   error
	calls []trip.Preferences
}

func (f *fakePlanner) Generate(_ context.Context, _ string, prefs trip.Preferences) (*itinerary.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, prefs)
	return f.it, f.err
}

type fakePrinter struct {
	docs []printer.Document
}

func (f *fakePrinter) Print(_ context.Context, doc printer.Document) (string, error) {
	f.docs = append(f.docs, doc)
	return "/tmp/trip.md", nil
}

func fixture(t *testing.T) *itinerary.Itinerary {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "goa.json"))
	require.NoError(t, err)
	it, err := itinerary.Decode(string(data))
	require.NoError(t, err)
	return it
}

func newModel(t *testing.T, p Planner, pr printer.Printer, resume string) Model {
	t.Helper()
	styles := ui.NewStyles(ui.LightTheme())
	return New(context.Background(), Options{
		Planner:        p,
		Printer:        pr,
		ResumeStep:     resume,
		StatusInterval: time.Millisecond,
		GlamourStyle:   "notty",
		Styles:         &styles,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds keys through Update and returns the model and the last command.
func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

// collect runs cmd, flattening batches, and returns the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// toLastStep walks from landing to the budget step with destination Goa.
func toLastStep(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, "enter", "G", "o", "a", "enter")
	for m.ctrl.Step() < wizard.LastStep {
		m, _ = send(t, m, "enter")
	}
	require.Equal(t, wizard.ViewWizard, m.ctrl.View())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestLandingToFirstStep(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	assert.Contains(t, m.View(), "JOURNEYS WOVEN WITH INTELLIGENCE")

	m, _ = send(t, m, "enter")
	assert.Equal(t, wizard.StepDestination, m.ctrl.Step())
	assert.Contains(t, m.View(), "STEP 1 / 7")
}

func TestDestinationValidationShown(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "enter")
	assert.Equal(t, wizard.StepDestination, m.ctrl.Step())
	assert.Contains(t, m.View(), "We need to know where you're going first.")

	m, _ = send(t, m, "P", "a", "r", "i", "s")
	assert.NotContains(t, m.View(), "where you're going first", "typing clears the error")
	m, _ = send(t, m, "enter")
	assert.Equal(t, wizard.StepDates, m.ctrl.Step())
	assert.Equal(t, "Paris", m.ctrl.Prefs().Destination)
}

func TestQuickPick(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "tab", "tab", "right", "space")
	assert.Equal(t, "Goa", m.ctrl.Prefs().Destination)
	assert.Equal(t, "Goa", m.inputs.destination.Value())
}

func TestDateOrderValidation(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "G", "o", "a", "enter", "tab")
	// Replace the return date with one before departure.
	m.inputs.end.SetValue("")
	m, _ = send(t, m, "2", "0", "2", "6", "-", "0", "1", "-", "1", "3", "enter")
	assert.Equal(t, wizard.StepDates, m.ctrl.Step())
	assert.Contains(t, m.View(), "time travel")
}

func TestCompanionsAndStyleKeys(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "G", "o", "a", "enter", "enter")
	require.Equal(t, wizard.StepCompanions, m.ctrl.Step())

	m, _ = send(t, m, "-", "-", "-", "-")
	assert.Equal(t, 1, m.ctrl.Prefs().Travelers, "never below one")
	m, _ = send(t, m, "+", "+")
	assert.Equal(t, 3, m.ctrl.Prefs().Travelers)

	m, _ = send(t, m, "down", "down", "space")
	assert.Equal(t, trip.TravelFamily, m.ctrl.Prefs().TravelType)

	m, _ = send(t, m, "enter")
	require.Equal(t, wizard.StepStyle, m.ctrl.Step())
	m, _ = send(t, m, "right", "right", "right", "right")
	assert.Equal(t, trip.MaxLuxury, m.ctrl.Prefs().LuxuryLevel)
	m, _ = send(t, m, "space")
	assert.Equal(t, trip.PaceRelaxed, m.ctrl.Prefs().Pace)
	assert.Contains(t, m.View(), "Exclusive (~₹75k+/day)")
}

func TestInterestsToggleAndCustom(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "G", "o", "a", "enter", "enter", "enter", "enter")
	require.Equal(t, wizard.StepInterests, m.ctrl.Step())

	m, _ = send(t, m, "space")
	assert.Equal(t, []string{"museums"}, m.ctrl.Prefs().Interests)
	m, _ = send(t, m, "space")
	assert.Empty(t, m.ctrl.Prefs().Interests, "toggle is its own inverse")

	m, _ = send(t, m, "up") // wraps to the custom input
	m, _ = send(t, m, "k", "a", "y", "a", "k", "enter")
	assert.Equal(t, []string{"kayak"}, m.ctrl.Prefs().Interests)
	assert.Equal(t, wizard.StepInterests, m.ctrl.Step(), "enter with text adds instead of continuing")
	assert.Contains(t, m.View(), "[x] kayak")

	m, _ = send(t, m, "enter")
	assert.Equal(t, wizard.StepDining, m.ctrl.Step())
}

func TestBackFromFirstStep(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	m, _ = send(t, m, "enter", "esc")
	assert.Equal(t, wizard.ViewLanding, m.ctrl.View())
}

func TestGenerationSuccess(t *testing.T) {
	fp := &fakePlanner{it: fixture(t)}
	pr := &fakePrinter{}
	m := toLastStep(t, newModel(t, fp, pr, ""))

	m, cmd := send(t, m, "enter")
	require.Equal(t, wizard.ViewLoading, m.ctrl.View())
	assert.Contains(t, m.View(), "Crafting Masterpiece...")

	// Keys are inert while loading.
	m, _ = send(t, m, "esc", "x", "enter")
	assert.Equal(t, wizard.ViewLoading, m.ctrl.View())

	msgs := collect(cmd)
	tick, ok := find[statusTickMsg](msgs)
	require.True(t, ok)
	m, next := update(t, m, tick)
	assert.NotNil(t, next, "feed keeps ticking")
	assert.Contains(t, m.View(), wizard.StatusMessages[0])

	gen, ok := find[generatedMsg](msgs)
	require.True(t, ok)
	require.Len(t, fp.calls, 1)
	assert.Equal(t, "Goa", fp.calls[0].Destination)

	m, _ = update(t, m, gen)
	require.Equal(t, wizard.ViewResult, m.ctrl.View())
	assert.Contains(t, m.View(), "Sun, Sand and Susegad")

	// Ticks after leaving Loading stop the feed.
	_, next = update(t, m, tick)
	assert.Nil(t, next)

	// All five tabs are selectable.
	for i, tab := range present.Tabs() {
		m, _ = send(t, m, string(rune('1'+i)))
		assert.Equal(t, tab, m.result.Active())
	}
	m, _ = send(t, m, "right")
	assert.Equal(t, present.TabOverview, m.result.Active())

	// Printing covers every tab whichever is active.
	m, _ = send(t, m, "3")
	m, cmd = send(t, m, "p")
	printed := collect(cmd)
	require.Len(t, pr.docs, 1)
	for _, tab := range present.Tabs() {
		assert.Contains(t, pr.docs[0].Markdown, "## "+tab.String())
	}
	m, _ = update(t, m, printed[0])
	assert.Contains(t, m.View(), "Saved to /tmp/trip.md")

	m, _ = send(t, m, "n")
	assert.Equal(t, wizard.StepDestination, m.ctrl.Step())
	assert.Equal(t, "Goa", m.inputs.destination.Value())
}

func TestGenerationFailure(t *testing.T) {
	fp := &fakePlanner{err: errors.New("upstream 500")}
	m := toLastStep(t, newModel(t, fp, nil, ""))
	before := m.ctrl.Prefs()

	m, cmd := send(t, m, "enter")
	gen, ok := find[generatedMsg](collect(cmd))
	require.True(t, ok)

	m, _ = update(t, m, gen)
	assert.Equal(t, wizard.StepDestination, m.ctrl.Step())
	assert.Equal(t, before, m.ctrl.Prefs())
	assert.Contains(t, m.View(), wizard.FailureNotice)
	assert.Equal(t, "Goa", m.inputs.destination.Value())
}

func TestGenerationFailure_ResumeLast(t *testing.T) {
	fp := &fakePlanner{err: errors.New("boom")}
	m := toLastStep(t, newModel(t, fp, nil, config.ResumeLast))

	m, cmd := send(t, m, "enter")
	gen, _ := find[generatedMsg](collect(cmd))
	m, _ = update(t, m, gen)
	assert.Equal(t, wizard.StepBudget, m.ctrl.Step())
}

func TestStaleGenerationIgnored(t *testing.T) {
	m := toLastStep(t, newModel(t, &fakePlanner{}, nil, ""))
	m, _ = send(t, m, "enter")

	m, _ = update(t, m, generatedMsg{epoch: 42, itinerary: fixture(t)})
	assert.Equal(t, wizard.ViewLoading, m.ctrl.View())
}

func TestBudgetTabShowsChart(t *testing.T) {
	m := toLastStep(t, newModel(t, &fakePlanner{it: fixture(t)}, nil, ""))
	m, cmd := send(t, m, "enter")
	gen, _ := find[generatedMsg](collect(cmd))
	m, _ = update(t, m, gen)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	m, _ = send(t, m, "5")
	view := m.View()
	assert.Contains(t, view, "█")
	assert.Contains(t, view, "₹129,500")
}

func TestQuit(t *testing.T) {
	m := newModel(t, &fakePlanner{}, nil, "")
	_, cmd := send(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
