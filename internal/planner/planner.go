// Package planner turns a Preferences snapshot into an Itinerary with one
// schema-constrained call to a hosted model. There is no retry: every failure
// comes back as a *GenerationError for the caller to surface.
package planner

import (
	"context"
	"errors"
	"time"

	"auraquest/internal/currency"
	"auraquest/internal/itinerary"
	"auraquest/internal/logging"
	"auraquest/internal/trip"
)

// Planner runs the itinerary request pipeline.
type Planner struct {
	gen Generator
}

// New returns a Planner backed by gen.
func New(gen Generator) *Planner {
	return &Planner{gen: gen}
}

// Generate makes exactly one generation attempt for prefs. requestID is only
// used for log correlation.
func (p *Planner) Generate(ctx context.Context, requestID string, prefs trip.Preferences) (*itinerary.Itinerary, error) {
	log := logging.Get(logging.CategoryAPI).With("request_id", requestID, "generator", p.gen.Name())

	cur := currency.Infer(prefs.Destination)
	prompt := BuildPrompt(prefs, cur)
	log.Info("generating itinerary for %q in %s (prompt %d bytes)", prefs.Destination, cur.Name, len(prompt))

	start := time.Now()
	text, err := p.gen.Generate(ctx, Request{Prompt: prompt, Schema: itinerary.Schema()})
	elapsed := time.Since(start)
	if err != nil {
		log.Error("transport failure after %s: %v", elapsed, err)
		return nil, &GenerationError{Kind: KindTransport, RequestID: requestID, Err: err}
	}

	it, err := itinerary.Decode(text)
	if err != nil {
		kind := KindMalformed
		if errors.Is(err, itinerary.ErrEmpty) {
			kind = KindEmpty
		}
		log.Error("%s response after %s: %v", kind, elapsed, err)
		return nil, &GenerationError{Kind: kind, RequestID: requestID, Err: err}
	}

	log.Info("itinerary %q received in %s: %d days", it.TripTitle, elapsed, len(it.Days))
	return it, nil
}
