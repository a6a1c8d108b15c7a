package trip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := Defaults()
	assert.Equal(t, "2026-01-14", p.StartDate)
	assert.Equal(t, "2026-01-21", p.EndDate)
	assert.Equal(t, 2, p.Travelers)
	assert.Equal(t, TravelCouple, p.TravelType)
	assert.Equal(t, 3, p.LuxuryLevel)
	assert.Equal(t, PaceBalanced, p.Pace)
	assert.Empty(t, p.Interests)
	assert.Equal(t, []string{NoRestrictions}, p.Dietary)
	assert.Equal(t, 50000.0, p.Budget)
}

func TestToggleInterest_IsItsOwnInverse(t *testing.T) {
	ids := []string{"museums", "nightlife", "Sunrise kayaking"}
	for _, in := range InterestCatalog {
		ids = append(ids, in.ID)
	}

	for _, id := range ids {
		p := Defaults()
		p.Interests = []string{"food", "cafe"}
		before := p.Clone()

		p.ToggleInterest(id)
		p.ToggleInterest(id)

		if id == "food" || id == "cafe" {
			// Removing and re-adding moves the entry to the end; membership is what matters.
			assert.ElementsMatch(t, before.Interests, p.Interests, "id %q", id)
			continue
		}
		if diff := cmp.Diff(before.Interests, p.Interests); diff != "" {
			t.Errorf("toggle twice on %q changed interests (-want +got):\n%s", id, diff)
		}
	}
}

func TestToggleInterest_NoDuplicates(t *testing.T) {
	p := Defaults()
	p.ToggleInterest("wine")
	p.ToggleInterest("wine")
	p.ToggleInterest("wine")
	assert.Equal(t, []string{"wine"}, p.Interests)
}

func TestAddCustomInterest(t *testing.T) {
	p := Defaults()

	assert.True(t, p.AddCustomInterest("  street food tours "))
	assert.False(t, p.AddCustomInterest("street food tours"), "duplicate must be rejected")
	assert.False(t, p.AddCustomInterest("   "), "blank must be rejected")
	p.ToggleInterest("history")

	assert.Equal(t, []string{"street food tours", "history"}, p.Interests)
	assert.Equal(t, []string{"street food tours"}, p.CustomInterests())

	p.ToggleInterest("street food tours")
	assert.Equal(t, []string{"history"}, p.Interests)
}

func TestToggleDietary(t *testing.T) {
	p := Defaults()
	p.ToggleDietary("Vegan")
	assert.Equal(t, []string{NoRestrictions, "Vegan"}, p.Dietary)
	p.ToggleDietary(NoRestrictions)
	assert.Equal(t, []string{"Vegan"}, p.Dietary)
	p.ToggleDietary("Vegan")
	assert.Empty(t, p.Dietary)
}

func TestDecrementTravelers_NeverBelowOne(t *testing.T) {
	p := Defaults()
	for range 10 {
		p.DecrementTravelers()
		require.GreaterOrEqual(t, p.Travelers, 1)
	}
	assert.Equal(t, 1, p.Travelers)
	p.IncrementTravelers()
	assert.Equal(t, 2, p.Travelers)
}

func TestSetLuxuryLevel_Clamps(t *testing.T) {
	p := Defaults()
	p.SetLuxuryLevel(9)
	assert.Equal(t, MaxLuxury, p.LuxuryLevel)
	p.SetLuxuryLevel(-3)
	assert.Equal(t, MinLuxury, p.LuxuryLevel)
	p.SetLuxuryLevel(4)
	assert.Equal(t, 4, p.LuxuryLevel)
}

func TestClone_IsolatesSets(t *testing.T) {
	p := Defaults()
	p.ToggleInterest("nature")
	snap := p.Clone()

	p.ToggleInterest("wine")
	p.ToggleDietary("Halal")
	p.Destination = "Goa"

	assert.Equal(t, []string{"nature"}, snap.Interests)
	assert.Equal(t, []string{NoRestrictions}, snap.Dietary)
	assert.Empty(t, snap.Destination)
}

func TestNights(t *testing.T) {
	p := Defaults()
	n, err := p.Nights()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	p.SetDates("2026-01-14", "not-a-date")
	_, err = p.Nights()
	assert.Error(t, err)
}

func TestPaceShort(t *testing.T) {
	assert.Equal(t, "Relaxed", PaceRelaxed.Short())
	assert.Equal(t, "Balanced", PaceBalanced.Short())
	assert.Equal(t, "Packed", PacePacked.Short())
}

func TestLuxuryLabel(t *testing.T) {
	assert.Equal(t, "Comfort (~₹15k/day)", LuxuryLabel(3, "₹"))
	assert.Equal(t, "Comfort (~$350/day)", LuxuryLabel(3, "€"))
	assert.Equal(t, "Backpacker (~$50/day)", LuxuryLabel(0, "$"))
	assert.Equal(t, "Exclusive (~₹75k+/day)", LuxuryLabel(12, "₹"))
}

func TestLookupInterest(t *testing.T) {
	in, ok := LookupInterest("cafe")
	require.True(t, ok)
	assert.Equal(t, "Café Culture", in.Label)

	_, ok = LookupInterest("skydiving")
	assert.False(t, ok)
}
