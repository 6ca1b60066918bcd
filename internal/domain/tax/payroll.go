package tax

import (
	"github.com/shopspring/decimal"

	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// Direction selects which way a salary conversion runs.
type Direction string

const (
	DirectionGrossToNet Direction = "grossToNet"
	DirectionNetToGross Direction = "netToGross"
)

// PayrollInput is one salary conversion request. Amount is the gross salary
// for grossToNet and the net salary for netToGross, always AMD.
type PayrollInput struct {
	Amount              decimal.Decimal
	Direction           Direction
	IsSocialContributor bool
	IsITCompany         bool // certified IT companies withhold 10% income tax instead of 20%
}

// PayrollResult is the full breakdown of a conversion.
// Invariant for grossToNet: Gross = Net + TotalDeductions and
// TotalDeductions = IncomeTax + SocialContribution + StampDuty.
type PayrollResult struct {
	Gross              decimal.Decimal
	Net                decimal.Decimal
	IncomeTax          decimal.Decimal
	SocialContribution decimal.Decimal
	StampDuty          decimal.Decimal
	TotalDeductions    decimal.Decimal
}

// Statutory payroll rates and thresholds, AMD.
var (
	incomeTaxRate   = decimal.NewFromFloat(0.20)
	incomeTaxRateIT = decimal.NewFromFloat(0.10)

	socialLowRate    = decimal.NewFromFloat(0.05)
	socialHighRate   = decimal.NewFromFloat(0.10)
	socialLowBound   = decimal.NewFromInt(500_000)   // below: 5% of gross
	socialHighBound  = decimal.NewFromInt(1_125_000) // at or above: flat cap
	socialAdjustment = decimal.NewFromInt(25_000)    // 10% of gross minus this, middle band
	socialFlatCap    = decimal.NewFromInt(87_500)
)

// ConvertSalary converts between gross and net salary under Armenian payroll
// rules. The stamp duty bracket is looked up against the input amount in both
// directions (gross for grossToNet, net for netToGross), so the net-side
// lookup is a known approximation. netToGross is a one-shot algebraic
// inverse: the social
// contribution band is chosen once while solving and never re-checked against
// the derived gross.
func ConvertSalary(in PayrollInput) (*PayrollResult, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Direction {
	case DirectionGrossToNet:
		return grossToNet(in), nil
	case DirectionNetToGross:
		return netToGross(in), nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

func taxRateFor(in PayrollInput) decimal.Decimal {
	if in.IsITCompany {
		return incomeTaxRateIT
	}
	return incomeTaxRate
}

// socialContribution applies the progressive pension formula to a gross salary.
func socialContribution(gross decimal.Decimal, contributes bool) decimal.Decimal {
	if !contributes {
		return decimal.Zero
	}
	switch {
	case gross.LessThan(socialLowBound):
		return gross.Mul(socialLowRate).Round(2)
	case gross.LessThan(socialHighBound):
		return gross.Mul(socialHighRate).Sub(socialAdjustment).Round(2)
	default:
		return socialFlatCap
	}
}

func grossToNet(in PayrollInput) *PayrollResult {
	gross := in.Amount
	incomeTax := gross.Mul(taxRateFor(in)).Round(2)
	social := socialContribution(gross, in.IsSocialContributor)
	stamp := StampDutyTable.Lookup(gross).Value

	total := incomeTax.Add(social).Add(stamp)
	return &PayrollResult{
		Gross:              gross,
		Net:                gross.Sub(total),
		IncomeTax:          incomeTax,
		SocialContribution: social,
		StampDuty:          stamp,
		TotalDeductions:    total,
	}
}

func netToGross(in PayrollInput) *PayrollResult {
	net := in.Amount
	taxRate := taxRateFor(in)
	stamp := StampDutyTable.Lookup(net).Value
	one := decimal.NewFromInt(1)

	var gross decimal.Decimal
	if in.IsSocialContributor {
		// Cascade through the social bands: solve assuming a band, keep the
		// solution if it lands inside that band, otherwise try the next one.
		gross = net.Add(stamp).Div(one.Sub(taxRate).Sub(socialLowRate))
		if !gross.LessThan(socialLowBound) {
			gross = net.Add(stamp).Add(socialAdjustment).Div(one.Sub(taxRate).Sub(socialHighRate))
			if !gross.LessThan(socialHighBound) {
				gross = net.Add(stamp).Add(socialFlatCap).Div(one.Sub(taxRate))
			}
		}
	} else {
		gross = net.Add(stamp).Div(one.Sub(taxRate))
	}
	gross = gross.Round(2)

	// The breakdown is recomputed from the derived gross; only the stamp duty
	// keeps its net-side lookup.
	incomeTax := gross.Mul(taxRate).Round(2)
	social := socialContribution(gross, in.IsSocialContributor)
	total := incomeTax.Add(social).Add(stamp)

	return &PayrollResult{
		Gross:              gross,
		Net:                net,
		IncomeTax:          incomeTax,
		SocialContribution: social,
		StampDuty:          stamp,
		TotalDeductions:    total,
	}
}
