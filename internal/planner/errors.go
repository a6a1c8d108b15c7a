package planner

import "fmt"

// ErrorKind classifies a failed generation.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // the service call itself failed
	KindEmpty     ErrorKind = "empty"     // the service returned no content
	KindMalformed ErrorKind = "malformed" // content did not parse as an itinerary
)

// GenerationError is the single error type returned by Planner.Generate.
type GenerationError struct {
	Kind      ErrorKind
	RequestID string
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("itinerary generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
