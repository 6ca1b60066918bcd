package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashiv-am/hashiv-api/internal/domain"
	"github.com/hashiv-am/hashiv-api/internal/domain/tax"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reference scenario: 300,000 AMD gross, social contributor, regular company.
//
//	income tax   = 300,000 × 0.20          = 60,000
//	social       = 300,000 × 0.05          = 15,000   (below the 500,000 band)
//	stamp duty   = bracket(300,000)        =  5,500
//	deductions   =                           80,500
//	net          = 300,000 − 80,500        = 219,500
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertSalary_GrossToNet_ReferenceScenario(t *testing.T) {
	res, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:              decimal.NewFromInt(300_000),
		Direction:           tax.DirectionGrossToNet,
		IsSocialContributor: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "60000.00", res.IncomeTax.StringFixed(2))
	assert.Equal(t, "15000.00", res.SocialContribution.StringFixed(2))
	assert.Equal(t, "5500.00", res.StampDuty.StringFixed(2))
	assert.Equal(t, "80500.00", res.TotalDeductions.StringFixed(2))
	assert.Equal(t, "219500.00", res.Net.StringFixed(2))
	assert.Equal(t, "300000.00", res.Gross.StringFixed(2))
}

// TestConvertSalary_GrossToNet_Identity checks the result invariant
// gross = net + total deductions for a spread of amounts and flag combos.
func TestConvertSalary_GrossToNet_Identity(t *testing.T) {
	amounts := []int64{0, 85_000, 150_000, 499_999, 500_000, 750_000, 1_124_999, 1_125_000, 2_500_000}
	for _, social := range []bool{false, true} {
		for _, it := range []bool{false, true} {
			for _, amount := range amounts {
				res, err := tax.ConvertSalary(tax.PayrollInput{
					Amount:              decimal.NewFromInt(amount),
					Direction:           tax.DirectionGrossToNet,
					IsSocialContributor: social,
					IsITCompany:         it,
				})
				require.NoError(t, err)
				assert.True(t, res.Gross.Equal(res.Net.Add(res.TotalDeductions)),
					"gross != net + deductions for amount=%d social=%v it=%v", amount, social, it)
				assert.True(t, res.TotalDeductions.Equal(
					res.IncomeTax.Add(res.SocialContribution).Add(res.StampDuty)))
			}
		}
	}
}

func TestConvertSalary_ITCompanyRate(t *testing.T) {
	res, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:      decimal.NewFromInt(300_000),
		Direction:   tax.DirectionGrossToNet,
		IsITCompany: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "30000.00", res.IncomeTax.StringFixed(2), "IT companies withhold 10%")
	assert.Equal(t, "0.00", res.SocialContribution.StringFixed(2), "non-contributor pays no social")
}

// TestSocialContribution_BandBoundary verifies the bands are near-continuous
// at 500,000: 499,999 × 0.05 ≈ 25,000 and 500,000 × 0.10 − 25,000 = 25,000.
func TestSocialContribution_BandBoundary(t *testing.T) {
	below, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:              decimal.NewFromInt(499_999),
		Direction:           tax.DirectionGrossToNet,
		IsSocialContributor: true,
	})
	require.NoError(t, err)
	at, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:              decimal.NewFromInt(500_000),
		Direction:           tax.DirectionGrossToNet,
		IsSocialContributor: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "24999.95", below.SocialContribution.StringFixed(2))
	assert.Equal(t, "25000.00", at.SocialContribution.StringFixed(2))

	// And the cap band: at 1,125,000 the contribution is flat 87,500.
	capped, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:              decimal.NewFromInt(1_125_000),
		Direction:           tax.DirectionGrossToNet,
		IsSocialContributor: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "87500.00", capped.SocialContribution.StringFixed(2))
}

// TestConvertSalary_RoundTrip_LowBand feeds a gross→net result back through
// net→gross with ±1 AMD tolerance. The inverse looks the stamp duty up
// against the net amount, so the trip only stays within tolerance when net
// and gross share a stamp bracket, as these amounts do. Crossing a bracket
// boundary drifts by the bracket difference (known source approximation).
func TestConvertSalary_RoundTrip_LowBand(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, amount := range []int64{300_000, 350_000, 420_000, 450_000} {
		gross := decimal.NewFromInt(amount)
		forward, err := tax.ConvertSalary(tax.PayrollInput{
			Amount:              gross,
			Direction:           tax.DirectionGrossToNet,
			IsSocialContributor: true,
		})
		require.NoError(t, err)

		back, err := tax.ConvertSalary(tax.PayrollInput{
			Amount:              forward.Net,
			Direction:           tax.DirectionNetToGross,
			IsSocialContributor: true,
		})
		require.NoError(t, err)

		diff := back.Gross.Sub(gross).Abs()
		assert.True(t, diff.LessThanOrEqual(one),
			"round trip for %d drifted by %s", amount, diff)
		assert.True(t, back.Net.Equal(forward.Net), "net must be echoed back unchanged")
	}
}

// TestConvertSalary_NetToGross_StampFromNet documents the source behavior:
// the stamp duty bracket is looked up against the net input, not the derived
// gross, and is not revisited after solving.
func TestConvertSalary_NetToGross_StampFromNet(t *testing.T) {
	res, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:    decimal.NewFromInt(450_000), // derived gross lands above 500,000
		Direction: tax.DirectionNetToGross,
	})
	require.NoError(t, err)

	// bracket(450,000) = 5,500 even though bracket(gross) would be 8,500
	assert.Equal(t, "5500.00", res.StampDuty.StringFixed(2))
	assert.True(t, res.Gross.GreaterThan(decimal.NewFromInt(500_000)))
}

func TestConvertSalary_NetToGross_NonContributor(t *testing.T) {
	// gross = (net + stamp) / (1 - 0.20): (219,500 + 5,500) / 0.8 = 281,250
	res, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:    decimal.NewFromInt(219_500),
		Direction: tax.DirectionNetToGross,
	})
	require.NoError(t, err)
	assert.Equal(t, "281250.00", res.Gross.StringFixed(2))
	assert.Equal(t, "219500.00", res.Net.StringFixed(2))
}

func TestConvertSalary_InvalidInput(t *testing.T) {
	_, err := tax.ConvertSalary(tax.PayrollInput{
		Amount:    decimal.NewFromInt(-1),
		Direction: tax.DirectionGrossToNet,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = tax.ConvertSalary(tax.PayrollInput{
		Amount:    decimal.NewFromInt(100),
		Direction: "sideways",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
