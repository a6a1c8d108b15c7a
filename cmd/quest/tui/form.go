package tui

import (
	"strconv"
	"strings"

	"auraquest/internal/trip"
	"auraquest/internal/wizard"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field string

const (
	fieldDestination field = "destination"
	fieldOrigin      field = "origin"
	fieldStart       field = "startDate"
	fieldEnd         field = "endDate"
	fieldCustom      field = "custom"
	fieldBudget      field = "budget"
	fieldRequests    field = "requests"
	fieldEmail       field = "email"

	fieldInterest   field = "interest"
	fieldDietary    field = "dietary"
	fieldTravelType field = "travelType"
	fieldPace       field = "pace"
	fieldQuick      field = "quick"
)

type rowKind int

const (
	rowInput rowKind = iota
	rowToggle
	rowRadio
	rowQuick
)

// row is one focusable line of a step form.
type row struct {
	kind  rowKind
	field field
	value string
	label string
}

type inputs struct {
	destination, origin, start, end textinput.Model
	custom, budget, requests, email textinput.Model
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 48
	return ti
}

func newInputs() inputs {
	in := inputs{
		destination: newInput("Your dream destination...", 80),
		origin:      newInput("Where are you starting from?", 80),
		start:       newInput("YYYY-MM-DD", 10),
		end:         newInput("YYYY-MM-DD", 10),
		custom:      newInput("Any specific activities?", 60),
		budget:      newInput("50000", 14),
		requests:    newInput("E.g. I need a quiet workspace, sunrise spots...", 200),
		email:       newInput("you@example.com", 120),
	}
	in.budget.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := parseAmount(s)
		return err
	}
	return in
}

func (in *inputs) get(f field) *textinput.Model {
	switch f {
	case fieldDestination:
		return &in.destination
	case fieldOrigin:
		return &in.origin
	case fieldStart:
		return &in.start
	case fieldEnd:
		return &in.end
	case fieldCustom:
		return &in.custom
	case fieldBudget:
		return &in.budget
	case fieldRequests:
		return &in.requests
	case fieldEmail:
		return &in.email
	}
	return nil
}

func (in *inputs) all() []*textinput.Model {
	return []*textinput.Model{
		&in.destination, &in.origin, &in.start, &in.end,
		&in.custom, &in.budget, &in.requests, &in.email,
	}
}

var inputLabels = map[field]string{
	fieldDestination: "Where to? *",
	fieldOrigin:      "Starting City",
	fieldStart:       "Travel Date",
	fieldEnd:         "Return Date",
	fieldCustom:      "Add your own",
	fieldBudget:      "Total Budget",
	fieldRequests:    "Special Requests",
	fieldEmail:       "Email (optional)",
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// rows lists the focusable lines of the current step.
func (m *Model) rows() []row {
	prefs := m.ctrl.Prefs()
	input := func(f field) row { return row{kind: rowInput, field: f, label: inputLabels[f]} }

	switch m.ctrl.Step() {
	case wizard.StepDestination:
		return []row{input(fieldDestination), input(fieldOrigin), {kind: rowQuick, field: fieldQuick}}
	case wizard.StepDates:
		return []row{input(fieldStart), input(fieldEnd)}
	case wizard.StepCompanions:
		out := make([]row, 0, len(trip.TravelTypes))
		for _, t := range trip.TravelTypes {
			out = append(out, row{kind: rowRadio, field: fieldTravelType, value: string(t), label: string(t)})
		}
		return out
	case wizard.StepStyle:
		out := make([]row, 0, len(trip.Paces))
		for _, p := range trip.Paces {
			out = append(out, row{kind: rowRadio, field: fieldPace, value: string(p), label: string(p)})
		}
		return out
	case wizard.StepInterests:
		out := make([]row, 0, len(trip.InterestCatalog)+2)
		for _, i := range trip.InterestCatalog {
			out = append(out, row{kind: rowToggle, field: fieldInterest, value: i.ID, label: i.Label})
		}
		for _, c := range prefs.CustomInterests() {
			out = append(out, row{kind: rowToggle, field: fieldInterest, value: c, label: c})
		}
		return append(out, input(fieldCustom))
	case wizard.StepDining:
		out := make([]row, 0, len(trip.DietaryCatalog))
		for _, d := range trip.DietaryCatalog {
			out = append(out, row{kind: rowToggle, field: fieldDietary, value: d, label: d})
		}
		return out
	case wizard.StepBudget:
		return []row{input(fieldBudget), input(fieldRequests), input(fieldEmail)}
	}
	return nil
}

func (m *Model) focused() (row, bool) {
	rows := m.rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return row{}, false
	}
	return rows[m.focus], true
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.rows())
	if n == 0 {
		return nil
	}
	m.focus = (m.focus + delta + n) % n
	return m.syncFocus()
}

// syncFocus focuses the text input under the cursor and blurs the rest.
func (m *Model) syncFocus() tea.Cmd {
	for _, ti := range m.inputs.all() {
		ti.Blur()
	}
	if r, ok := m.focused(); ok && r.kind == rowInput {
		return m.inputs.get(r.field).Focus()
	}
	return nil
}

// enterStep resets the form for the controller's current step.
func (m *Model) enterStep() tea.Cmd {
	m.focus = 0
	m.quick = 0
	m.loadInputs()
	return m.syncFocus()
}

// loadInputs copies the preferences into the text inputs.
func (m *Model) loadInputs() {
	p := m.ctrl.Prefs()
	m.inputs.destination.SetValue(p.Destination)
	m.inputs.origin.SetValue(p.Origin)
	m.inputs.start.SetValue(p.StartDate)
	m.inputs.end.SetValue(p.EndDate)
	m.inputs.budget.SetValue(strconv.FormatFloat(p.Budget, 'f', -1, 64))
	m.inputs.requests.SetValue(p.AdditionalRequests)
	m.inputs.email.SetValue(p.Email)
	m.inputs.custom.SetValue("")
}

// applyInput writes a text input back into the preferences.
func (m *Model) applyInput(f field) {
	in := &m.inputs
	switch f {
	case fieldDestination:
		m.edit(func(p *trip.Preferences) { p.Destination = in.destination.Value() })
	case fieldOrigin:
		m.edit(func(p *trip.Preferences) { p.Origin = in.origin.Value() })
	case fieldStart, fieldEnd:
		m.edit(func(p *trip.Preferences) { p.SetDates(in.start.Value(), in.end.Value()) })
	case fieldBudget:
		if in.budget.Err != nil {
			return
		}
		amount, _ := parseAmount(in.budget.Value())
		m.edit(func(p *trip.Preferences) { p.SetBudget(amount) })
	case fieldRequests:
		m.edit(func(p *trip.Preferences) { p.AdditionalRequests = in.requests.Value() })
	case fieldEmail:
		m.edit(func(p *trip.Preferences) { p.Email = strings.TrimSpace(in.email.Value()) })
	}
}

// activate toggles or selects the focused choice row.
func (m *Model) activate(r row) {
	switch r.field {
	case fieldInterest:
		m.edit(func(p *trip.Preferences) { p.ToggleInterest(r.value) })
		if n := len(m.rows()); m.focus >= n {
			m.focus = n - 1
		}
	case fieldDietary:
		m.edit(func(p *trip.Preferences) { p.ToggleDietary(r.value) })
	case fieldTravelType:
		m.edit(func(p *trip.Preferences) { p.SetTravelType(trip.TravelType(r.value)) })
	case fieldPace:
		m.edit(func(p *trip.Preferences) { p.SetPace(trip.Pace(r.value)) })
	case fieldQuick:
		dest := trip.QuickDestinations[m.quick]
		m.edit(func(p *trip.Preferences) { p.Destination = dest })
		m.inputs.destination.SetValue(dest)
	}
}

// checked reports whether a choice row is currently selected.
func checked(p trip.Preferences, r row) bool {
	switch r.field {
	case fieldInterest:
		return p.HasInterest(r.value)
	case fieldDietary:
		return p.HasDietary(r.value)
	case fieldTravelType:
		return string(p.TravelType) == r.value
	case fieldPace:
		return string(p.Pace) == r.value
	}
	return false
}
