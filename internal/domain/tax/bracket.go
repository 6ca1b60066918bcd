// Package tax implements the Armenian payroll and business tax formulas:
// stamp duty brackets, gross/net salary conversion, turnover tax with a
// minimum-tax floor, the 79-row profit tax statement and project cost
// estimation. Everything here is pure: no I/O, no shared state, decimal
// arithmetic only.
package tax

import "github.com/shopspring/decimal"

// BracketEntry is one threshold of a step table. A nil UpperBound marks the
// unbounded last bracket.
type BracketEntry struct {
	UpperBound *decimal.Decimal // inclusive; nil = no upper bound
	Value      decimal.Decimal  // flat AMD amount for this bracket
}

// BracketTable is an ordered threshold -> value lookup. Entries are sorted
// ascending by UpperBound and exactly one entry, the last, is unbounded.
// Tables are static configuration built once at package init; NewBracketTable
// panics on a malformed table because that is a programming error, not user
// input.
type BracketTable struct {
	entries []BracketEntry
}

// NewBracketTable validates and builds a table.
func NewBracketTable(entries []BracketEntry) *BracketTable {
	if len(entries) == 0 {
		panic("tax: empty bracket table")
	}
	for i, e := range entries {
		last := i == len(entries)-1
		if last {
			if e.UpperBound != nil {
				panic("tax: last bracket entry must be unbounded")
			}
			continue
		}
		if e.UpperBound == nil {
			panic("tax: only the last bracket entry may be unbounded")
		}
		if i > 0 && !entries[i-1].UpperBound.LessThan(*e.UpperBound) {
			panic("tax: bracket entries must be sorted ascending by upper bound")
		}
	}
	return &BracketTable{entries: entries}
}

// Lookup returns the first entry whose upper bound is >= amount, or the
// unbounded entry. Negative amounts are clamped to zero so the lookup stays
// total; callers reject negative money before reaching here.
func (t *BracketTable) Lookup(amount decimal.Decimal) BracketEntry {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	for _, e := range t.entries {
		if e.UpperBound == nil || amount.LessThanOrEqual(*e.UpperBound) {
			return e
		}
	}
	// unreachable: the constructor guarantees an unbounded last entry
	return t.entries[len(t.entries)-1]
}

func bound(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// StampDutyTable holds the statutory monthly stamp duty steps. The same
// thresholds are applied whether the amount being classified is a gross or a
// net salary; the source system uses one table for both directions.
var StampDutyTable = NewBracketTable([]BracketEntry{
	{UpperBound: bound(100_000), Value: decimal.NewFromInt(1_500)},
	{UpperBound: bound(200_000), Value: decimal.NewFromInt(3_000)},
	{UpperBound: bound(500_000), Value: decimal.NewFromInt(5_500)},
	{UpperBound: bound(1_000_000), Value: decimal.NewFromInt(8_500)},
	{UpperBound: nil, Value: decimal.NewFromInt(15_000)},
})
