// Package currency infers a display currency from a free-text destination.
//
// Matching is a lower-cased substring test against an ordered keyword table;
// the first matching row wins. It is a heuristic: "york" anywhere matches US
// dollars and "uk" also matches inside words such as "Phuket". Both the UI
// symbol and the prompt's currency name come from the same row, so they can
// never disagree.
package currency

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is the inferred display currency.
type Currency struct {
	Symbol string
	Name   string
	Code   string
}

type rule struct {
	keywords []string
	currency Currency
}

var table = []rule{
	{[]string{"india", "mumbai", "chennai", "jaipur", "delhi", "goa"}, Currency{"₹", "Indian Rupees (INR)", "INR"}},
	{[]string{"usa", "york", "bali", "thailand"}, Currency{"$", "US Dollars (USD)", "USD"}},
	{[]string{"france", "paris", "italy", "europe", "germany"}, Currency{"€", "Euros (EUR)", "EUR"}},
	{[]string{"london", "uk"}, Currency{"£", "British Pounds (GBP)", "GBP"}},
	{[]string{"japan", "tokyo"}, Currency{"¥", "Japanese Yen (JPY)", "JPY"}},
}

// Default is returned when no keyword matches.
var Default = Currency{Symbol: "$", Name: "Local Currency"}

// Infer maps destination to a currency.
func Infer(destination string) Currency {
	d := strings.ToLower(destination)
	for _, r := range table {
		for _, kw := range r.keywords {
			if strings.Contains(d, kw) {
				return r.currency
			}
		}
	}
	return Default
}

// Keywords returns the keywords recognised for code, in table order.
func Keywords(code string) []string {
	for _, r := range table {
		if r.currency.Code == code {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// Largest magnitude a float64 holds without losing whole-number precision.
const maxExactInt = 1 << 53

// Format renders amount with the currency symbol and thousands separators.
// Whole amounts drop the fraction.
func (c Currency) Format(amount float64) string {
	if amount == math.Trunc(amount) && math.Abs(amount) < maxExactInt {
		return c.Symbol + humanize.Comma(int64(amount))
	}
	return c.Symbol + humanize.CommafWithDigits(amount, 2)
}
