package present

import (
	"fmt"
	"strings"

	"auraquest/internal/itinerary"
)

// Section renders one tab as Markdown, headed by the tab label.
func (r *Result) Section(t Tab) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t)
	switch t {
	case TabOverview:
		r.overview(&b)
	case TabItinerary:
		r.days(&b)
	case TabDining:
		r.dining(&b)
	case TabTips:
		r.tips(&b)
	case TabBudget:
		r.budget(&b)
	}
	return b.String()
}

func (r *Result) overview(b *strings.Builder) {
	it := r.it
	dest := it.Destination
	if dest == "" {
		dest = r.prefs.Destination
	}
	dates := it.Dates
	if dates == "" {
		dates = r.prefs.StartDate + " to " + r.prefs.EndDate
	}

	fmt.Fprintf(b, "**%s** · %s · %d travelers\n\n", dest, dates, r.prefs.Travelers)

	fmt.Fprintf(b, "### Stay: %s\n\n", it.Hotel.Name)
	if it.Hotel.Location != "" {
		fmt.Fprintf(b, "%s", it.Hotel.Location)
		if it.Hotel.Rating > 0 {
			fmt.Fprintf(b, " · %.1f★", it.Hotel.Rating)
		}
		b.WriteString("\n\n")
	}
	if len(it.Hotel.Features) > 0 {
		fmt.Fprintf(b, "%s\n\n", strings.Join(it.Hotel.Features, " · "))
	}
	if it.Hotel.Description != "" {
		fmt.Fprintf(b, "%s\n\n", it.Hotel.Description)
	}
	fmt.Fprintf(b, "Nightly cost: **%s**\n\n", r.cur.Format(it.Hotel.PricePerNight))

	b.WriteString("### Flights\n\n")
	r.flight(b, "Outbound", &it.OutboundFlight)
	if it.ReturnFlight != nil {
		r.flight(b, "Return", it.ReturnFlight)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "### Style\n\n%s Exploration Pace.\n\n", r.prefs.Pace.Short())
	fmt.Fprintf(b, "### Trip Summary\n\n- Target: %s\n- Total Cost: **%s**\n", dest, r.cur.Format(it.TotalEstimate))
}

func (r *Result) flight(b *strings.Builder, label string, f *itinerary.Flight) {
	fmt.Fprintf(b, "- %s: **%s**", label, f.Airline)
	if f.FlightNumber != "" {
		fmt.Fprintf(b, " %s", f.FlightNumber)
	}
	if f.DepartureTime != "" || f.ArrivalTime != "" {
		fmt.Fprintf(b, ", %s to %s", f.DepartureTime, f.ArrivalTime)
	}
	if f.Duration != "" {
		fmt.Fprintf(b, " (%s)", f.Duration)
	}
	if f.Layovers != "" {
		fmt.Fprintf(b, ", %s", f.Layovers)
	}
	fmt.Fprintf(b, ", %s\n", r.cur.Format(f.Price))
}

func (r *Result) days(b *strings.Builder) {
	for i, d := range r.it.Days {
		n := d.Day
		if n == 0 {
			n = i + 1
		}
		fmt.Fprintf(b, "### Day %02d", n)
		if d.Title != "" {
			fmt.Fprintf(b, ": %s", d.Title)
		}
		b.WriteString("\n\n")
		if d.Date != "" {
			fmt.Fprintf(b, "_%s_\n\n", d.Date)
		}
		for _, a := range d.Activities {
			marker := ""
			if a.IsTip {
				marker = " 💡 Tip"
			}
			fmt.Fprintf(b, "- **%s** %s%s", a.Time, a.Title, marker)
			if a.Cost > 0 {
				fmt.Fprintf(b, " (%s)", r.cur.Format(a.Cost))
			}
			b.WriteString("\n")
			if a.Description != "" {
				fmt.Fprintf(b, "  %s\n", a.Description)
			}
			if a.Location != "" {
				fmt.Fprintf(b, "  📍 %s\n", a.Location)
			}
		}
		b.WriteString("\n")
	}
	if len(r.it.Days) == 0 {
		b.WriteString("No days planned.\n")
	}
}

func (r *Result) dining(b *strings.Builder) {
	if len(r.it.DiningRecommendations) == 0 {
		b.WriteString("No dining recommendations.\n")
		return
	}
	for _, d := range r.it.DiningRecommendations {
		fmt.Fprintf(b, "### %s", d.Name)
		if d.PriceLevel != "" {
			fmt.Fprintf(b, " (%s)", d.PriceLevel)
		}
		b.WriteString("\n\n")
		var kind []string
		for _, s := range []string{d.Cuisine, d.Type} {
			if s != "" {
				kind = append(kind, s)
			}
		}
		if len(kind) > 0 {
			fmt.Fprintf(b, "%s\n\n", strings.Join(kind, " • "))
		}
		if d.Reason != "" {
			fmt.Fprintf(b, "> %s\n\n", d.Reason)
		}
	}
}

func (r *Result) tips(b *strings.Builder) {
	b.WriteString("### Safety Rules\n\n")
	bullets(b, r.it.SafetyTips())
	b.WriteString("\n### Local Info\n\n")
	bullets(b, r.it.LocalTips())
}

func bullets(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("_None._\n")
		return
	}
	for _, s := range items {
		fmt.Fprintf(b, "- %s\n", s)
	}
}

func (r *Result) budget(b *strings.Builder) {
	b.WriteString("### Cost Breakdown\n\n")
	shares := r.BudgetShares()
	if len(shares) == 0 {
		b.WriteString("No budget breakdown.\n\n")
	} else {
		b.WriteString("| Category | Amount | Share | |\n|---|---:|---:|---|\n")
		for _, s := range shares {
			fmt.Fprintf(b, "| %s | %s | %.0f%% | %s |\n",
				s.Name, r.cur.Format(s.Amount), s.Fraction*100, Bar(s.Fraction, barWidth))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "### Grand Total\n\n**%s**\n\n", r.cur.Format(r.it.TotalEstimate))
	fmt.Fprintf(b, "Optimized for %d people in %s", r.prefs.Travelers, r.prefs.Destination)
	if r.prefs.Travelers > 0 {
		fmt.Fprintf(b, " (%s per person)", r.cur.Format(roundCents(r.it.TotalEstimate/float64(r.prefs.Travelers))))
	}
	b.WriteString("\n")
}
