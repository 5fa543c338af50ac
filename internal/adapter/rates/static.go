// Package rates provides exchange-rate sources: a fixed table and an HTTP
// client for a live quote endpoint.
package rates

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/pkg/money"

	"github.com/shopspring/decimal"
)

// StaticSource serves a fixed rate table.
type StaticSource struct {
	table domain.RateTable
}

// NewStaticSource builds a source quoting each code as units per one unit of base.
// The base is always quoted at exactly 1.
func NewStaticSource(base string, quotes map[string]decimal.Decimal) (*StaticSource, error) {
	base = money.NormalizeCurrency(base)
	if !money.ValidCurrencyCode(base) {
		return nil, fmt.Errorf("invalid base currency %q", base)
	}
	table := domain.RateTable{
		Base:      base,
		Rates:     make(map[string]decimal.Decimal, len(quotes)+1),
		Source:    "static",
		FetchedAt: time.Now().UTC(),
	}
	for code, q := range quotes {
		code = money.NormalizeCurrency(code)
		if !money.ValidCurrencyCode(code) {
			return nil, fmt.Errorf("invalid currency code %q", code)
		}
		if !q.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive", code)
		}
		table.Rates[code] = q
	}
	table.Rates[base] = money.One
	return &StaticSource{table: table}, nil
}

func (s *StaticSource) Name() string { return "static" }

// Rates returns a copy of the table.
func (s *StaticSource) Rates(_ context.Context) (*domain.RateTable, error) {
	return copyTable(&s.table), nil
}

func copyTable(t *domain.RateTable) *domain.RateTable {
	c := *t
	c.Rates = make(map[string]decimal.Decimal, len(t.Rates))
	for k, v := range t.Rates {
		c.Rates[k] = v
	}
	return &c
}
