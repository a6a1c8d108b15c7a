// Package present projects a completed itinerary into the five result tabs.
// Every section renders as Markdown so the same text feeds the terminal view
// and every print backend.
package present

import (
	"fmt"
	"strings"

	"auraquest/internal/currency"
	"auraquest/internal/itinerary"
	"auraquest/internal/trip"
)

// Tab is a result section.
type Tab int

const (
	TabOverview Tab = iota
	TabItinerary
	TabDining
	TabTips
	TabBudget
)

var tabLabels = [...]string{
	TabOverview:  "Overview",
	TabItinerary: "Itinerary",
	TabDining:    "Dining",
	TabTips:      "Safety & Tips",
	TabBudget:    "Budget",
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabLabels) {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabLabels[t]
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabItinerary, TabDining, TabTips, TabBudget}
}

// Result is a read-only view over an itinerary with one piece of state: the
// active tab.
type Result struct {
	it     *itinerary.Itinerary
	prefs  trip.Preferences
	cur    currency.Currency
	active Tab
}

// New builds a Result on the overview tab. prefs should be the snapshot the
// itinerary was generated from.
func New(it *itinerary.Itinerary, prefs trip.Preferences) *Result {
	return &Result{
		it:    it,
		prefs: prefs.Clone(),
		cur:   currency.Infer(prefs.Destination),
	}
}

func (r *Result) Itinerary() *itinerary.Itinerary { return r.it }
func (r *Result) Currency() currency.Currency     { return r.cur }
func (r *Result) Active() Tab                     { return r.active }

// Select makes t active. Unknown tabs are ignored.
func (r *Result) Select(t Tab) bool {
	if t < TabOverview || t > TabBudget {
		return false
	}
	r.active = t
	return true
}

// Next and Prev cycle through the tabs, wrapping at either end.
func (r *Result) Next() { r.active = (r.active + 1) % Tab(len(tabLabels)) }
func (r *Result) Prev() { r.active = (r.active + Tab(len(tabLabels)) - 1) % Tab(len(tabLabels)) }

// Title is the document title used for print output and file names.
func (r *Result) Title() string {
	if r.it.TripTitle != "" {
		return r.it.TripTitle
	}
	return r.prefs.Destination
}

// ActiveSection renders the active tab.
func (r *Result) ActiveSection() string {
	return r.Section(r.active)
}

// PrintDocument renders every tab in order, independent of the active tab.
func (r *Result) PrintDocument() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title())
	for i, t := range Tabs() {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString(r.Section(t))
	}
	return b.String()
}
