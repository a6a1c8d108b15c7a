package wizard

import "errors"

var (
	// ErrBusy is returned for edits attempted while a generation is outstanding.
	ErrBusy = errors.New("generation in progress")

	// ErrNotEditing is returned for wizard actions outside the wizard view.
	ErrNotEditing = errors.New("not on a wizard step")
)

// Field names reported by ValidationError.
const (
	FieldDestination = "destination"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
)

// ValidationError blocks a step from advancing.
type ValidationError struct {
	Step    Step
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
