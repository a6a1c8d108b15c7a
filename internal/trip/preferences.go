// Package trip holds the traveller's planning preferences collected by the wizard.
// Preferences is plain data; every mutation is an idempotent method so the wizard
// can apply edits atomically without re-validating the whole record.
package trip

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for StartDate and EndDate.
const DateLayout = "2006-01-02"

// TravelType describes who is travelling.
type TravelType string

const (
	TravelSolo     TravelType = "Solo adventure"
	TravelCouple   TravelType = "Couple/Romantic getaway"
	TravelFamily   TravelType = "Family trip"
	TravelFriends  TravelType = "Friends group"
	TravelBusiness TravelType = "Business + leisure"
)

// TravelTypes lists the choices in display order.
var TravelTypes = []TravelType{TravelSolo, TravelCouple, TravelFamily, TravelFriends, TravelBusiness}

// Pace is the activity density per day.
type Pace string

const (
	PaceRelaxed  Pace = "Relaxed (2-3 activities/day)"
	PaceBalanced Pace = "Balanced (3-4 activities/day)"
	PacePacked   Pace = "Packed (5+ activities/day)"
)

// Paces lists the choices in display order.
var Paces = []Pace{PaceRelaxed, PaceBalanced, PacePacked}

// Short returns the first word of the pace label ("Relaxed", "Balanced", "Packed").
func (p Pace) Short() string {
	s := string(p)
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}

const (
	MinLuxury = 1
	MaxLuxury = 5
)

// Preferences is the mutable record of user choices for one planning session.
type Preferences struct {
	Origin             string     `json:"origin" yaml:"origin"`
	Destination        string     `json:"destination" yaml:"destination"`
	StartDate          string     `json:"startDate" yaml:"start_date"`
	EndDate            string     `json:"endDate" yaml:"end_date"`
	Travelers          int        `json:"travelers" yaml:"travelers"`
	TravelType         TravelType `json:"travelType" yaml:"travel_type"`
	LuxuryLevel        int        `json:"luxuryLevel" yaml:"luxury_level"`
	Pace               Pace       `json:"pace" yaml:"pace"`
	Interests          []string   `json:"interests" yaml:"interests"`
	Dietary            []string   `json:"dietary" yaml:"dietary"`
	Budget             float64    `json:"budget" yaml:"budget"`
	Email              string     `json:"email" yaml:"email"`
	AdditionalRequests string     `json:"additionalRequests" yaml:"additional_requests"`
}

// Defaults returns the preferences a fresh session starts from.
func Defaults() Preferences {
	return Preferences{
		StartDate:   "2026-01-14",
		EndDate:     "2026-01-21",
		Travelers:   2,
		TravelType:  TravelCouple,
		LuxuryLevel: 3,
		Pace:        PaceBalanced,
		Interests:   []string{},
		Dietary:     []string{NoRestrictions},
		Budget:      50000,
	}
}

// Clone returns a deep copy. Set-valued fields are copied so the snapshot does not
// observe later edits.
func (p Preferences) Clone() Preferences {
	c := p
	c.Interests = slices.Clone(p.Interests)
	c.Dietary = slices.Clone(p.Dietary)
	if c.Interests == nil {
		c.Interests = []string{}
	}
	if c.Dietary == nil {
		c.Dietary = []string{}
	}
	return c
}

// HasInterest reports whether id is selected.
func (p *Preferences) HasInterest(id string) bool {
	return slices.Contains(p.Interests, id)
}

// ToggleInterest adds id when absent and removes it when present.
func (p *Preferences) ToggleInterest(id string) {
	p.Interests = toggle(p.Interests, id)
}

// AddCustomInterest appends free text as an interest. Blank text and duplicates
// are ignored; the return value reports whether the set changed.
func (p *Preferences) AddCustomInterest(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || p.HasInterest(text) {
		return false
	}
	p.Interests = append(p.Interests, text)
	return true
}

// CustomInterests returns the selected interests that are not catalog ids,
// in insertion order.
func (p *Preferences) CustomInterests() []string {
	var out []string
	for _, i := range p.Interests {
		if _, ok := LookupInterest(i); !ok {
			out = append(out, i)
		}
	}
	return out
}

// HasDietary reports whether tag is selected.
func (p *Preferences) HasDietary(tag string) bool {
	return slices.Contains(p.Dietary, tag)
}

// ToggleDietary adds tag when absent and removes it when present.
func (p *Preferences) ToggleDietary(tag string) {
	p.Dietary = toggle(p.Dietary, tag)
}

// IncrementTravelers adds one traveller.
func (p *Preferences) IncrementTravelers() {
	p.Travelers++
}

// DecrementTravelers removes one traveller, never going below one.
func (p *Preferences) DecrementTravelers() {
	p.Travelers = max(1, p.Travelers-1)
}

// SetLuxuryLevel stores level clamped to [MinLuxury, MaxLuxury].
func (p *Preferences) SetLuxuryLevel(level int) {
	p.LuxuryLevel = min(MaxLuxury, max(MinLuxury, level))
}

// SetTravelType stores t.
func (p *Preferences) SetTravelType(t TravelType) {
	p.TravelType = t
}

// SetPace stores pace.
func (p *Preferences) SetPace(pace Pace) {
	p.Pace = pace
}

// SetDates stores both dates as given; ordering is checked by the wizard.
func (p *Preferences) SetDates(start, end string) {
	p.StartDate = strings.TrimSpace(start)
	p.EndDate = strings.TrimSpace(end)
}

// SetBudget stores a non-negative budget.
func (p *Preferences) SetBudget(amount float64) {
	p.Budget = max(0, amount)
}

// Nights returns the number of nights between StartDate and EndDate.
func (p *Preferences) Nights() (int, error) {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}
