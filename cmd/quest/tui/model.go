// Package tui is the interactive AuraQuest terminal application: a landing
// screen, the seven-step planning wizard, a loading screen with the status
// feed, and the tabbed result viewer.
//
// All state transitions go through wizard.Controller from inside Update. The
// generation call runs as a tea.Cmd and reports back with the epoch it was
// submitted under, so late results and ticks from an abandoned attempt are
// dropped by the controller.
package tui

import (
	"context"
	"time"

	"auraquest/cmd/quest/ui"
	"auraquest/internal/itinerary"
	"auraquest/internal/present"
	"auraquest/internal/printer"
	"auraquest/internal/trip"
	"auraquest/internal/wizard"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

// Planner generates an itinerary; *planner.Planner satisfies it.
type Planner interface {
	Generate(ctx context.Context, requestID string, prefs trip.Preferences) (*itinerary.Itinerary, error)
}

// Options configures a Model.
type Options struct {
	Planner Planner
	Printer printer.Printer

	// Prefs seeds the wizard; zero value means trip.Defaults().
	Prefs *trip.Preferences

	ResumeStep     string
	StatusInterval time.Duration

	// GlamourStyle is a glamour standard style name; empty auto-detects.
	GlamourStyle string
	Styles       *ui.Styles
}

// Model is the bubbletea model.
type Model struct {
	ctx      context.Context
	ctrl     *wizard.Controller
	planner  Planner
	printer  printer.Printer
	interval time.Duration
	style    string
	styles   ui.Styles

	inputs inputs
	focus  int
	quick  int

	spinner  spinner.Model
	viewport viewport.Model
	result   *present.Result

	lastErr  error
	status   string
	printing bool

	width, height int
}

// New builds the model on the landing screen.
func New(ctx context.Context, opts Options) Model {
	prefs := trip.Defaults()
	if opts.Prefs != nil {
		prefs = opts.Prefs.Clone()
	}
	interval := opts.StatusInterval
	if interval <= 0 {
		interval = time.Second
	}
	styles := ui.DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	m := Model{
		ctx:      ctx,
		ctrl:     wizard.New(prefs, wizard.Options{ResumeStep: opts.ResumeStep}),
		planner:  opts.Planner,
		printer:  opts.Printer,
		interval: interval,
		style:    opts.GlamourStyle,
		styles:   styles,
		inputs:   newInputs(),
		spinner:  sp,
		viewport: viewport.New(defaultWidth-4, defaultHeight-10),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.loadInputs()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the wizard state.
func (m Model) Controller() *wizard.Controller {
	return m.ctrl
}

// Result returns the current result, or nil.
func (m Model) Result() *present.Result {
	return m.result
}
