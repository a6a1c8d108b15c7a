package wizard

import (
	"fmt"
	"time"

	"auraquest/internal/trip"
)

// View is the enclosing screen the application is on.
type View int

const (
	ViewLanding View = iota
	ViewWizard
	ViewLoading
	ViewResult
)

func (v View) String() string {
	switch v {
	case ViewLanding:
		return "landing"
	case ViewWizard:
		return "wizard"
	case ViewLoading:
		return "loading"
	case ViewResult:
		return "result"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Step is a wizard question set, numbered from 1.
type Step int

const (
	StepDestination Step = iota + 1
	StepDates
	StepCompanions
	StepStyle
	StepInterests
	StepDining
	StepBudget
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep = StepDestination
	LastStep  = StepBudget
)

var stepTitles = map[Step]string{
	StepDestination: "Destination",
	StepDates:       "Dates",
	StepCompanions:  "Companions",
	StepStyle:       "Style",
	StepInterests:   "Interests",
	StepDining:      "Dining",
	StepBudget:      "Budget",
}

func (s Step) String() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Steps returns all steps in order.
func Steps() []Step {
	out := make([]Step, 0, LastStep)
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, s)
	}
	return out
}

// StatusMessages is the cosmetic progress feed shown while Loading.
var StatusMessages = []string{
	"Initializing High-Level Neural Agents...",
	"Scanning hyperscale flight networks...",
	"Selecting premium sanctuary spots...",
	"Extracting local secrets with Deep AI...",
	"Calibrating taste-bud preferences...",
	"Finalizing your masterpiece...",
}

// FailureNotice is shown after a failed generation.
const FailureNotice = "Neural sync error. Please retry your request."

// Submission is a generation request handed to the planner. Prefs is a
// snapshot; later edits to the controller do not reach it.
type Submission struct {
	ID          string
	Epoch       uint64
	Prefs       trip.Preferences
	SubmittedAt time.Time
}
