package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type currencyPair struct {
	from string
	to   string
}

// demoRates is the fixed demo table. It is built once and never written to.
var demoRates = map[currencyPair]decimal.Decimal{
	{"USD", "EUR"}: decimal.RequireFromString("0.9"),
	{"EUR", "USD"}: decimal.RequireFromString("1.1"),
	{"USD", "RUB"}: decimal.RequireFromString("90"),
	{"RUB", "USD"}: decimal.RequireFromString("0.011"),
}

// RateEntry is a single row of the demo table.
type RateEntry struct {
	From string
	To   string
	Rate decimal.Decimal
}

// Rate returns the multiplier converting from into to. Codes are case-insensitive.
// Equal codes give 1. Pairs missing from the table also give 1; callers cannot tell
// an unsupported pair from a 1:1 rate.
func Rate(from, to string) decimal.Decimal {
	from, to = NormalizeCurrency(from), NormalizeCurrency(to)
	if from == to {
		return decimal.NewFromInt(1)
	}
	if rate, ok := demoRates[currencyPair{from, to}]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// Convert applies Rate to amount and returns the result in the normalized target currency.
func Convert(amount decimal.Decimal, from, to string) Money {
	return NewMoney(amount.Mul(Rate(from, to)), to)
}

// Rates lists the demo table ordered by source then target code.
func Rates() []RateEntry {
	entries := make([]RateEntry, 0, len(demoRates))
	for pair, rate := range demoRates {
		entries = append(entries, RateEntry{From: pair.from, To: pair.to, Rate: rate})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].From != entries[j].From {
			return entries[i].From < entries[j].From
		}
		return entries[i].To < entries[j].To
	})
	return entries
}

