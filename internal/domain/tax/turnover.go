package tax

import (
	"github.com/shopspring/decimal"

	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// ActivityRow is one business activity line of a turnover tax return.
// Percentages are plain numbers where 1.5 means 1.5%.
type ActivityRow struct {
	Turnover         decimal.Decimal
	DirectCosts      decimal.Decimal
	AdminCosts       decimal.Decimal
	TaxRatePercent   decimal.Decimal
	DeductionPercent decimal.Decimal // ignored when IsFixedRate
	MinTaxPercent    decimal.Decimal // ignored when IsFixedRate
	IsFixedRate      bool
}

// ActivityResult is the computed tax for a single row.
type ActivityResult struct {
	Turnover         decimal.Decimal
	MinTaxAmount     decimal.Decimal
	ActualTaxPercent decimal.Decimal
	TaxPayable       decimal.Decimal
}

// TurnoverResult aggregates per-row results for the whole return.
type TurnoverResult struct {
	Rows              []ActivityResult
	TotalTaxPayable   decimal.Decimal
	TotalTurnover     decimal.Decimal
	OverallTaxPercent decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeTurnoverTax evaluates every activity row and the aggregate.
// Deductible costs reduce the calculated tax but never push it below the
// minimum-tax floor (MinTaxPercent of turnover). Fixed-rate activities skip
// both the deduction and the floor.
func ComputeTurnoverTax(rows []ActivityRow) (*TurnoverResult, error) {
	result := &TurnoverResult{
		Rows:              make([]ActivityResult, 0, len(rows)),
		TotalTaxPayable:   decimal.Zero,
		TotalTurnover:     decimal.Zero,
		OverallTaxPercent: decimal.Zero,
	}

	for _, row := range rows {
		if row.Turnover.IsNegative() || row.DirectCosts.IsNegative() || row.AdminCosts.IsNegative() ||
			row.TaxRatePercent.IsNegative() || row.DeductionPercent.IsNegative() || row.MinTaxPercent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}

		r := computeActivityRow(row)
		result.Rows = append(result.Rows, r)
		result.TotalTaxPayable = result.TotalTaxPayable.Add(r.TaxPayable)
		result.TotalTurnover = result.TotalTurnover.Add(row.Turnover)
	}

	if result.TotalTurnover.IsPositive() {
		result.OverallTaxPercent = result.TotalTaxPayable.Div(result.TotalTurnover).Mul(hundred).Round(4)
	}
	return result, nil
}

func computeActivityRow(row ActivityRow) ActivityResult {
	if row.IsFixedRate {
		return ActivityResult{
			Turnover:         row.Turnover,
			MinTaxAmount:     decimal.Zero,
			ActualTaxPercent: row.TaxRatePercent,
			TaxPayable:       row.Turnover.Mul(row.TaxRatePercent).Div(hundred).Round(2),
		}
	}

	calculated := row.Turnover.Mul(row.TaxRatePercent).Div(hundred).
		Sub(row.DirectCosts.Add(row.AdminCosts).Mul(row.DeductionPercent).Div(hundred)).
		Round(2)
	minTax := row.Turnover.Mul(row.MinTaxPercent).Div(hundred).Round(2)

	payable := calculated
	if minTax.GreaterThan(payable) {
		payable = minTax
	}

	actualPercent := decimal.Zero
	if row.Turnover.IsPositive() {
		actualPercent = payable.Div(row.Turnover).Mul(hundred).Round(4)
	}

	return ActivityResult{
		Turnover:         row.Turnover,
		MinTaxAmount:     minTax,
		ActualTaxPercent: actualPercent,
		TaxPayable:       payable,
	}
}
