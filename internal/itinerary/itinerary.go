// Package itinerary defines the structured trip plan returned by the generation
// service, the response schema that constrains it, and a strict decoder.
//
// The content is trusted verbatim. Decode only checks that the document has the
// expected shape; it never cross-checks values against the traveller's preferences.
package itinerary

// Flight is one leg of the trip.
type Flight struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber,omitempty"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`
	Duration      string  `json:"duration,omitempty"`
	Price         float64 `json:"price"`
	Layovers      string  `json:"layovers,omitempty"`
}

// Hotel is the single accommodation recommendation.
type Hotel struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating,omitempty"`
	PricePerNight float64  `json:"pricePerNight"`
	Features      []string `json:"features,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// Activity is one entry in a day plan. IsTip marks advisory entries that are not
// bookable.
type Activity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
	IsTip       bool    `json:"isTip,omitempty"`
}

// Day is one day of the plan.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

// Dining is a restaurant recommendation.
type Dining struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Cuisine    string `json:"cuisine,omitempty"`
	PriceLevel string `json:"priceLevel,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// BudgetCategory is one slice of the budget breakdown.
type BudgetCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color,omitempty"`
}

// Itinerary is the complete plan.
type Itinerary struct {
	TripTitle             string           `json:"tripTitle"`
	Destination           string           `json:"destination,omitempty"`
	Dates                 string           `json:"dates,omitempty"`
	OutboundFlight        Flight           `json:"outboundFlight"`
	ReturnFlight          *Flight          `json:"returnFlight,omitempty"`
	Hotel                 Hotel            `json:"hotel"`
	Days                  []Day            `json:"days"`
	DiningRecommendations []Dining         `json:"diningRecommendations,omitempty"`
	TravelTips            []string         `json:"travelTips,omitempty"`
	BudgetCategories      []BudgetCategory `json:"budgetCategories,omitempty"`
	TotalEstimate         float64          `json:"totalEstimate"`
}

// safetyTipCount is how many leading tips are shown under "Safety Rules".
const safetyTipCount = 4

// SafetyTips returns the leading tips, conventionally safety advice.
func (it *Itinerary) SafetyTips() []string {
	if len(it.TravelTips) <= safetyTipCount {
		return it.TravelTips
	}
	return it.TravelTips[:safetyTipCount]
}

// LocalTips returns the tips after the safety block.
func (it *Itinerary) LocalTips() []string {
	if len(it.TravelTips) <= safetyTipCount {
		return nil
	}
	return it.TravelTips[safetyTipCount:]
}

// CategoryTotal sums the budget categories. It is independent of TotalEstimate;
// the two are not reconciled.
func (it *Itinerary) CategoryTotal() float64 {
	var sum float64
	for _, c := range it.BudgetCategories {
		sum += c.Amount
	}
	return sum
}
