package planner

import (
	"fmt"
	"strings"

	"auraquest/internal/currency"
	"auraquest/internal/trip"
)

// BuildPrompt renders the generation instruction for prefs. All costs are
// requested in cur, which must be inferred from the same destination.
func BuildPrompt(p trip.Preferences, cur currency.Currency) string {
	dest := p.Destination
	interests := strings.Join(p.Interests, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "You are a specialized Local Travel Expert for the destination: %s.\n\n", dest)

	b.WriteString("CRITICAL INSTRUCTION:\n")
	fmt.Fprintf(&b, "Your task is to create an itinerary that captures the AUTHENTIC essence of %s.\n", dest)
	b.WriteString("For example, if the destination is GOA, you MUST include its world-famous beaches (Palolem, Baga), " +
		"Portuguese heritage sites (Old Goa, Basilica of Bom Jesus), and vibrant shack culture.\n")
	b.WriteString("DO NOT use generic \"Museum\" or \"Gallery\" descriptions that could be in any city.\n")
	fmt.Fprintf(&b, "Match the user's interests (below) to the SPECIFIC local versions of those activities in %s.\n\n", dest)

	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- Origin: %s\n", p.Origin)
	fmt.Fprintf(&b, "- Destination: %s\n", dest)
	fmt.Fprintf(&b, "- Dates: %s to %s\n", p.StartDate, p.EndDate)
	fmt.Fprintf(&b, "- Travelers: %d (%s)\n", p.Travelers, p.TravelType)
	fmt.Fprintf(&b, "- Luxury Level: %d/%d\n", p.LuxuryLevel, trip.MaxLuxury)
	fmt.Fprintf(&b, "- Travel Pace: %s\n", p.Pace)
	fmt.Fprintf(&b, "- Interests: %s\n", interests)
	fmt.Fprintf(&b, "- Dietary Needs: %s\n", strings.Join(p.Dietary, ", "))
	fmt.Fprintf(&b, "- Target Budget per person: %s in %s\n", formatBudget(p.Budget), cur.Name)
	fmt.Fprintf(&b, "- Custom Requests: %s\n\n", p.AdditionalRequests)

	b.WriteString("Structure the itinerary day-by-day:\n")
	fmt.Fprintf(&b, "1. Identify the top 5 most iconic, non-negotiable landmarks for %s and ensure they are included.\n", dest)
	fmt.Fprintf(&b, "2. Weave in the user's specific interests (%s) using only local, relevant venues.\n", interests)
	fmt.Fprintf(&b, "3. Ensure all names of restaurants, hotels, and sights are real and famous within %s.\n", dest)
	fmt.Fprintf(&b, "4. All costs must be in %s.\n", cur.Name)

	return b.String()
}

// formatBudget drops a zero fraction so 50000 renders as "50000".
func formatBudget(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00")
}
