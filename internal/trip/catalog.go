package trip

// Interest is a selectable catalog entry on the Interests step.
type Interest struct {
	ID    string
	Label string
}

// InterestCatalog is the fixed set of interests offered by the wizard.
var InterestCatalog = []Interest{
	{ID: "museums", Label: "Museums & Galleries"},
	{ID: "history", Label: "Historical Sites"},
	{ID: "food", Label: "Fine Dining"},
	{ID: "nature", Label: "Parks & Nature"},
	{ID: "shopping", Label: "Shopping"},
	{ID: "nightlife", Label: "Nightlife"},
	{ID: "romantic", Label: "Romantic Spots"},
	{ID: "photography", Label: "Photography"},
	{ID: "wine", Label: "Wine Tasting"},
	{ID: "cafe", Label: "Café Culture"},
}

// LookupInterest finds a catalog entry by id.
func LookupInterest(id string) (Interest, bool) {
	for _, in := range InterestCatalog {
		if in.ID == id {
			return in, true
		}
	}
	return Interest{}, false
}

// NoRestrictions is the default dietary tag.
const NoRestrictions = "No restrictions"

// DietaryCatalog is the fixed set of dietary tags.
var DietaryCatalog = []string{
	"Vegetarian", "Vegan", "Gluten-free", "Halal", "Kosher", NoRestrictions,
}

// QuickDestinations are offered as one-key shortcuts on the Destination step.
var QuickDestinations = []string{"Jaipur", "Goa", "Paris", "Tokyo", "Bali"}

type luxuryTier struct {
	name  string
	rupee string
	other string
}

var luxuryTiers = [MaxLuxury]luxuryTier{
	{"Backpacker", "~₹2k/day", "~$50/day"},
	{"Essential", "~₹5k/day", "~$150/day"},
	{"Comfort", "~₹15k/day", "~$350/day"},
	{"Premium", "~₹35k/day", "~$800/day"},
	{"Exclusive", "~₹75k+/day", "~$1,800+/day"},
}

// LuxuryLabel describes a comfort tier with a per-day spend hint. Rupee
// destinations get rupee hints, everything else dollar hints.
func LuxuryLabel(level int, symbol string) string {
	level = min(MaxLuxury, max(MinLuxury, level))
	tier := luxuryTiers[level-1]
	hint := tier.other
	if symbol == "₹" {
		hint = tier.rupee
	}
	return tier.name + " (" + hint + ")"
}
