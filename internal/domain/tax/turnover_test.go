package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashiv-am/hashiv-api/internal/domain"
	"github.com/hashiv-am/hashiv-api/internal/domain/tax"
)

func pct(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
func amd(n int64) decimal.Decimal   { return decimal.NewFromInt(n) }

// Fixed-rate activity: 1,000,000 at 0.5% → 5,000 payable, no floor.
func TestComputeTurnoverTax_FixedRate(t *testing.T) {
	res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
		Turnover:       amd(1_000_000),
		TaxRatePercent: pct(0.5),
		IsFixedRate:    true,
	}})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, "5000.00", row.TaxPayable.StringFixed(2))
	assert.Equal(t, "0.00", row.MinTaxAmount.StringFixed(2))
	assert.Equal(t, "0.5000", row.ActualTaxPercent.StringFixed(4))
}

// Non-fixed activity where the calculated tax beats the floor:
// 1,000,000 × 1.5% = 15,000 vs floor 1,000,000 × 0.5% = 5,000.
func TestComputeTurnoverTax_CalculatedAboveFloor(t *testing.T) {
	res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
		Turnover:         amd(1_000_000),
		TaxRatePercent:   pct(1.5),
		DeductionPercent: pct(0.3),
		MinTaxPercent:    pct(0.5),
	}})
	require.NoError(t, err)

	row := res.Rows[0]
	assert.Equal(t, "15000.00", row.TaxPayable.StringFixed(2))
	assert.Equal(t, "5000.00", row.MinTaxAmount.StringFixed(2))
	assert.Equal(t, "1.5000", row.ActualTaxPercent.StringFixed(4))
}

// Heavy deductible costs push the calculated tax below the floor; the floor wins.
func TestComputeTurnoverTax_FloorApplies(t *testing.T) {
	res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
		Turnover:         amd(1_000_000),
		DirectCosts:      amd(3_000_000),
		AdminCosts:       amd(1_000_000),
		TaxRatePercent:   pct(1.5),
		DeductionPercent: pct(0.3),
		MinTaxPercent:    pct(0.5),
	}})
	require.NoError(t, err)

	row := res.Rows[0]
	// calculated = 15,000 − 4,000,000 × 0.3% = 3,000 < floor 5,000
	assert.Equal(t, "5000.00", row.TaxPayable.StringFixed(2))
	assert.True(t, row.TaxPayable.GreaterThanOrEqual(row.MinTaxAmount))
}

// TestComputeTurnoverTax_FloorInvariant: for any non-fixed row the payable
// tax never lands below the minimum-tax floor.
func TestComputeTurnoverTax_FloorInvariant(t *testing.T) {
	for costs := int64(0); costs <= 10_000_000; costs += 500_000 {
		res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
			Turnover:         amd(2_000_000),
			DirectCosts:      amd(costs),
			TaxRatePercent:   pct(5),
			DeductionPercent: pct(4),
			MinTaxPercent:    pct(1.5),
		}})
		require.NoError(t, err)
		row := res.Rows[0]
		assert.True(t, row.TaxPayable.GreaterThanOrEqual(row.MinTaxAmount),
			"payable %s below floor %s at costs=%d", row.TaxPayable, row.MinTaxAmount, costs)
	}
}

// Zero turnover must not divide by zero and yields zero tax.
func TestComputeTurnoverTax_ZeroTurnover(t *testing.T) {
	res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
		Turnover:       decimal.Zero,
		TaxRatePercent: pct(1.5),
		MinTaxPercent:  pct(0.5),
	}})
	require.NoError(t, err)

	row := res.Rows[0]
	assert.Equal(t, "0.00", row.TaxPayable.StringFixed(2))
	assert.Equal(t, "0.0000", row.ActualTaxPercent.StringFixed(4))
	assert.Equal(t, "0.0000", res.OverallTaxPercent.StringFixed(4))
}

func TestComputeTurnoverTax_Aggregate(t *testing.T) {
	res, err := tax.ComputeTurnoverTax([]tax.ActivityRow{
		{Turnover: amd(1_000_000), TaxRatePercent: pct(0.5), IsFixedRate: true},
		{Turnover: amd(1_000_000), TaxRatePercent: pct(1.5), MinTaxPercent: pct(0.5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "20000.00", res.TotalTaxPayable.StringFixed(2))
	assert.Equal(t, "2000000.00", res.TotalTurnover.StringFixed(2))
	assert.Equal(t, "1.0000", res.OverallTaxPercent.StringFixed(4))
}

func TestComputeTurnoverTax_RejectsNegatives(t *testing.T) {
	_, err := tax.ComputeTurnoverTax([]tax.ActivityRow{{
		Turnover:       amd(-1),
		TaxRatePercent: pct(1.5),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
