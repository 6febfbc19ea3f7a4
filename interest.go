package exledger

import (
	"errors"
	"fmt"
	"slices"
)

// InterestQuery tells AggregateInterest where interest is found in a ledger.
type InterestQuery struct {
	TypeColumn        string // column holding the transaction type label
	InterestLabel     string // label of interest rows
	AssetColumn       string // column holding the asset received
	AssetAmountColumn string // column holding the amount of asset received
	FiatValueColumn   string // column holding the fiat-equivalent value
	FiatCurrency      string // currency of FiatValueColumn, for display only
}

// Validate checks that every column of the query is set.
func (q InterestQuery) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"type column", q.TypeColumn},
		{"interest label", q.InterestLabel},
		{"asset column", q.AssetColumn},
		{"asset amount column", q.AssetAmountColumn},
		{"fiat value column", q.FiatValueColumn},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s is not set", f.name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid interest query: %w", err)
	}
	return nil
}

// AssetInterest is the interest received in one asset.
type AssetInterest struct {
	Asset  string
	Amount Quantity // in asset unit
	Value  Money    // fiat-equivalent at reception time
}

// InterestSummary is the interest received per asset.
//
// Assets are kept in order of first occurrence in the ledger.
type InterestSummary struct {
	currency string
	assets   []AssetInterest
	index    map[string]int
}

// Assets returns the per asset totals.
func (s *InterestSummary) Assets() []AssetInterest { return slices.Clone(s.assets) }

// Len returns the number of assets that earned interest.
func (s *InterestSummary) Len() int { return len(s.assets) }

// Asset returns the totals for 'asset', and false if it earned no interest.
func (s *InterestSummary) Asset(asset string) (AssetInterest, bool) {
	i, ok := s.index[asset]
	if !ok {
		return AssetInterest{}, false
	}
	return s.assets[i], true
}

// Currency returns the fiat currency of the values.
func (s *InterestSummary) Currency() string { return s.currency }

// Total returns the sum of all asset values. It is exactly zero when no interest was received.
func (s *InterestSummary) Total() Money {
	total := M(0, s.currency)
	for _, a := range s.assets {
		total = total.Add(a.Value)
	}
	return total
}

// AggregateInterest sums, per asset, the interest rows of l.
//
// Rows whose q.TypeColumn equals q.InterestLabel are grouped by
// q.AssetColumn; amounts and fiat values are summed independently using
// exact decimal arithmetic. Other rows are ignored.
//
// A *MalformedAmountError is returned as is when an amount cannot be parsed,
// and a *SchemaViolationError when a row lacks a queried column.
func AggregateInterest(l *Ledger, q InterestQuery) (*InterestSummary, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s := &InterestSummary{
		currency: q.FiatCurrency,
		index:    make(map[string]int),
	}
	for _, row := range l.rows {
		label, ok := row.Field(q.TypeColumn)
		if !ok {
			return nil, &SchemaViolationError{Row: row.Index(), Column: q.TypeColumn}
		}
		if label != q.InterestLabel {
			continue
		}
		asset, ok := row.Field(q.AssetColumn)
		if !ok {
			return nil, &SchemaViolationError{Row: row.Index(), Column: q.AssetColumn}
		}
		amount, err := row.Decimal(q.AssetAmountColumn)
		if err != nil {
			return nil, err
		}
		value, err := row.Decimal(q.FiatValueColumn)
		if err != nil {
			return nil, err
		}

		i, exists := s.index[asset]
		if !exists {
			i = len(s.assets)
			s.index[asset] = i
			s.assets = append(s.assets, AssetInterest{Asset: asset, Value: M(0, q.FiatCurrency)})
		}
		a := &s.assets[i]
		a.Amount = a.Amount.Add(Q(amount))
		a.Value = a.Value.Add(M(value, q.FiatCurrency))
	}
	return s, nil
}
