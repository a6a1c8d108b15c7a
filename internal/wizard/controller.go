// Package wizard implements the planning state machine: a landing screen, seven
// gated steps, a loading phase with a cosmetic status feed, and the result.
//
// The Controller is not safe for concurrent use. The terminal UI only touches it
// from its Update loop; generation results come back as messages carrying the
// epoch they were submitted under, and anything from an older epoch is ignored.
package wizard

import (
	"strings"
	"time"

	"auraquest/internal/config"
	"auraquest/internal/itinerary"
	"auraquest/internal/logging"
	"auraquest/internal/trip"

	"github.com/google/uuid"
)

// Options tunes controller behaviour.
type Options struct {
	// ResumeStep is config.ResumeFirst (default) or config.ResumeLast.
	ResumeStep string
}

// Controller owns the Preferences record and the view state.
type Controller struct {
	opts Options

	view  View
	step  Step
	prefs trip.Preferences

	err    *ValidationError
	notice string

	epoch    uint64
	statuses []string

	itinerary *itinerary.Itinerary
	submitted trip.Preferences

	now func() time.Time
}

// New returns a controller on the landing view holding prefs.
func New(prefs trip.Preferences, opts Options) *Controller {
	return &Controller{
		opts:  opts,
		view:  ViewLanding,
		step:  FirstStep,
		prefs: prefs.Clone(),
		now:   time.Now,
	}
}

func (c *Controller) View() View     { return c.view }
func (c *Controller) Step() Step     { return c.step }
func (c *Controller) Epoch() uint64  { return c.epoch }
func (c *Controller) Notice() string { return c.notice }

// Prefs returns a copy of the current preferences.
func (c *Controller) Prefs() trip.Preferences { return c.prefs.Clone() }

// Err returns the validation error blocking the current step, if any.
func (c *Controller) Err() *ValidationError { return c.err }

// Statuses returns the status messages shown so far in this Loading phase.
func (c *Controller) Statuses() []string {
	return append([]string(nil), c.statuses...)
}

// Itinerary returns the completed itinerary and the preferences it was
// generated from. It is nil until a generation succeeds.
func (c *Controller) Itinerary() (*itinerary.Itinerary, trip.Preferences) {
	return c.itinerary, c.submitted.Clone()
}

// Start moves from the landing view to step 1.
func (c *Controller) Start() error {
	if c.view != ViewLanding {
		return ErrNotEditing
	}
	c.enterStep(FirstStep)
	return nil
}

// Edit applies fn to the preferences. Edits are refused while Loading and
// outside the wizard steps.
func (c *Controller) Edit(fn func(*trip.Preferences)) error {
	switch c.view {
	case ViewWizard:
	case ViewLoading:
		return ErrBusy
	default:
		return ErrNotEditing
	}
	fn(&c.prefs)
	c.err = nil
	return nil
}

// Continue validates the current step and advances. From the last step it
// enters Loading and returns the Submission to generate.
func (c *Controller) Continue() (*Submission, error) {
	if c.view == ViewLoading {
		return nil, ErrBusy
	}
	if c.view != ViewWizard {
		return nil, ErrNotEditing
	}

	if verr := c.validate(); verr != nil {
		c.err = verr
		logging.Get(logging.CategoryWizard).Debug("step %s blocked: %s", c.step, verr.Field)
		return nil, verr
	}
	c.err = nil

	if c.step < LastStep {
		c.enterStep(c.step + 1)
		return nil, nil
	}
	return c.submit(), nil
}

// Back moves to the previous step, or to landing from step 1.
func (c *Controller) Back() error {
	if c.view == ViewLoading {
		return ErrBusy
	}
	if c.view != ViewWizard {
		return ErrNotEditing
	}
	c.err = nil
	if c.step == FirstStep {
		c.view = ViewLanding
		return nil
	}
	c.enterStep(c.step - 1)
	return nil
}

// Complete delivers a successful generation. It reports false and changes
// nothing if epoch is stale or the controller is not Loading.
func (c *Controller) Complete(epoch uint64, it *itinerary.Itinerary) bool {
	if !c.current(epoch) || it == nil {
		return false
	}
	c.itinerary = it
	c.view = ViewResult
	c.notice = ""
	logging.Get(logging.CategoryWizard).Info("generation %d complete: %s", epoch, it.TripTitle)
	return true
}

// Fail delivers a failed generation. Preferences are kept and the wizard
// returns to step 1 (or the last step with ResumeLast) with a notice.
func (c *Controller) Fail(epoch uint64, err error) bool {
	if !c.current(epoch) {
		return false
	}
	resume := FirstStep
	if c.opts.ResumeStep == config.ResumeLast {
		resume = LastStep
	}
	c.enterStep(resume)
	c.notice = FailureNotice
	logging.Get(logging.CategoryWizard).Warn("generation %d failed: %v", epoch, err)
	return true
}

// Tick appends the next status message. It returns the message and whether
// another tick should be scheduled; a stale epoch or a view other than
// Loading yields ("", false).
func (c *Controller) Tick(epoch uint64) (string, bool) {
	if !c.current(epoch) || len(c.statuses) >= len(StatusMessages) {
		return "", false
	}
	msg := StatusMessages[len(c.statuses)]
	c.statuses = append(c.statuses, msg)
	return msg, len(c.statuses) < len(StatusMessages)
}

// NewTrip leaves the result for step 1, keeping the preferences.
func (c *Controller) NewTrip() error {
	if c.view != ViewResult {
		return ErrNotEditing
	}
	c.enterStep(FirstStep)
	return nil
}

// Home returns to the landing view from the wizard or the result.
func (c *Controller) Home() error {
	if c.view == ViewLoading {
		return ErrBusy
	}
	c.view = ViewLanding
	c.err = nil
	c.notice = ""
	return nil
}

func (c *Controller) validate() *ValidationError {
	switch c.step {
	case StepDestination:
		if strings.TrimSpace(c.prefs.Destination) == "" {
			return &ValidationError{
				Step:    c.step,
				Field:   FieldDestination,
				Message: "Hold on! We need to know where you're going first.",
			}
		}
	case StepDates:
		start, err := trip.ParseDate(c.prefs.StartDate)
		if err != nil {
			return &ValidationError{Step: c.step, Field: FieldStartDate, Message: "Departure date must look like YYYY-MM-DD."}
		}
		end, err := trip.ParseDate(c.prefs.EndDate)
		if err != nil {
			return &ValidationError{Step: c.step, Field: FieldEndDate, Message: "Return date must look like YYYY-MM-DD."}
		}
		if end.Before(start) {
			return &ValidationError{
				Step:    c.step,
				Field:   FieldEndDate,
				Message: "Wait a minute... Are you trying to time travel? Your return date can't be before your departure!",
			}
		}
	}
	return nil
}

func (c *Controller) submit() *Submission {
	c.epoch++
	c.view = ViewLoading
	c.statuses = nil
	c.notice = ""
	c.submitted = c.prefs.Clone()

	sub := &Submission{
		ID:          uuid.NewString(),
		Epoch:       c.epoch,
		Prefs:       c.prefs.Clone(),
		SubmittedAt: c.now(),
	}
	logging.Get(logging.CategoryWizard).With("request_id", sub.ID).
		Info("submitting generation %d for %s", sub.Epoch, sub.Prefs.Destination)
	return sub
}

func (c *Controller) enterStep(s Step) {
	c.view = ViewWizard
	c.step = s
	c.err = nil
}

func (c *Controller) current(epoch uint64) bool {
	return c.view == ViewLoading && epoch == c.epoch
}
