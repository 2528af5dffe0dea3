package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one marginal-rate slice of a progressive table.
// A nil Max marks the open-ended top bracket.
type Bracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min" toml:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
}

// Upper returns the bracket's upper bound and whether it is bounded
func (b Bracket) Upper() (decimal.Decimal, bool) {
	if b.Max == nil {
		return decimal.Zero, false
	}
	return *b.Max, true
}

// BracketTable is an ordered progressive rate schedule
type BracketTable []Bracket

// Validate enforces contiguous ascending bounds starting at zero,
// non-decreasing rates below 100%, and an open-ended top bracket.
func (t BracketTable) Validate(name string) error {
	if len(t) == 0 {
		return &InvalidTableError{Table: name, Index: -1, Reason: "table is empty"}
	}
	if !t[0].Min.IsZero() {
		return &InvalidTableError{Table: name, Index: 0, Reason: "first bracket must start at 0"}
	}
	one := decimal.NewFromInt(1)
	for i, b := range t {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(one) {
			return &InvalidTableError{Table: name, Index: i, Reason: fmt.Sprintf("rate %s must be in [0, 1)", b.Rate.String())}
		}
		if i > 0 && b.Rate.LessThan(t[i-1].Rate) {
			return &InvalidTableError{Table: name, Index: i, Reason: "rates must be non-decreasing"}
		}
		upper, bounded := b.Upper()
		last := i == len(t)-1
		switch {
		case !bounded && !last:
			return &InvalidTableError{Table: name, Index: i, Reason: "only the last bracket may be open-ended"}
		case bounded && last:
			return &InvalidTableError{Table: name, Index: i, Reason: "last bracket must be open-ended"}
		case bounded && upper.LessThanOrEqual(b.Min):
			return &InvalidTableError{Table: name, Index: i, Reason: "upper bound must exceed lower bound"}
		case bounded && !t[i+1].Min.Equal(upper):
			return &InvalidTableError{Table: name, Index: i + 1, Reason: fmt.Sprintf("lower bound %s does not continue from %s", t[i+1].Min.String(), upper.String())}
		}
	}
	return nil
}

// NewBracketTable builds a table from ascending thresholds and rates.
// thresholds[i] is the lower bound of the bracket taxed at rates[i].
func NewBracketTable(thresholds []int64, rates []float64) BracketTable {
	t := make(BracketTable, len(thresholds))
	for i := range thresholds {
		t[i] = Bracket{Min: decimal.NewFromInt(thresholds[i]), Rate: decimal.NewFromFloat(rates[i])}
		if i+1 < len(thresholds) {
			upper := decimal.NewFromInt(thresholds[i+1])
			t[i].Max = &upper
		}
	}
	return t
}
