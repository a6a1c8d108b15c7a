package present

import (
	"math"
	"strings"
)

const barWidth = 20

// DefaultColor is used for categories without a color.
const DefaultColor = "#3b82f6"

// Share is one budget category's portion of the category sum.
type Share struct {
	Name     string
	Amount   float64
	Color    string
	Fraction float64
}

// BudgetShares returns each category's share of the sum of all categories.
// Shares are independent of the itinerary's total estimate. Negative amounts
// count as zero; an all-zero breakdown yields zero fractions.
func (r *Result) BudgetShares() []Share {
	cats := r.it.BudgetCategories
	var sum float64
	for _, c := range cats {
		sum += max(0, c.Amount)
	}

	out := make([]Share, 0, len(cats))
	for _, c := range cats {
		s := Share{Name: c.Name, Amount: c.Amount, Color: c.Color}
		if s.Color == "" {
			s.Color = DefaultColor
		}
		if sum > 0 {
			s.Fraction = max(0, c.Amount) / sum
		}
		out = append(out, s)
	}
	return out
}

// Bar draws fraction as a fixed-width text bar.
func Bar(fraction float64, width int) string {
	filled := int(math.Round(min(1, max(0, fraction)) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
