package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable quotes each currency as units per one unit of Base.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Source    string                     `json:"source"`
	FetchedAt time.Time                  `json:"fetched_at"`
}

// Lookup returns the quote for code and whether it is usable.
func (t *RateTable) Lookup(code string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	q, ok := t.Rates[code]
	if !ok || !q.IsPositive() {
		return decimal.Zero, false
	}
	return q, true
}

// Codes returns the quoted currency codes in sorted order.
func (t *RateTable) Codes() []string {
	codes := make([]string, 0, len(t.Rates))
	for c := range t.Rates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
