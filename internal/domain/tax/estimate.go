package tax

import (
	"github.com/shopspring/decimal"

	"github.com/hashiv-am/hashiv-api/internal/domain"
)

// PositionKind selects how a position's monthly salary is derived.
type PositionKind string

const (
	PositionHourly  PositionKind = "hourly"
	PositionDaily   PositionKind = "daily"
	PositionMonthly PositionKind = "monthly"
)

// Position is one staffed role in a project estimate. Only the fields
// matching Kind are read; the DTO layer enforces their presence.
type Position struct {
	Kind          PositionKind
	HourlyRate    decimal.Decimal
	HoursPerDay   decimal.Decimal
	DaysPerMonth  decimal.Decimal
	DailyRate     decimal.Decimal
	MonthlySalary decimal.Decimal
}

// ExpenseItem is a named non-salary project expense.
type ExpenseItem struct {
	Name  string
	Value decimal.Decimal
}

// EstimateInput is a project estimation request.
type EstimateInput struct {
	Positions           []Position
	Expenses            []ExpenseItem
	ProfitMarginPercent decimal.Decimal
	IsVATPayer          bool
}

// EstimateResult is the full cost build-up of a project price.
type EstimateResult struct {
	SalaryFundNet        decimal.Decimal
	PositionsCount       int
	StampDuty            decimal.Decimal
	GrossAmount          decimal.Decimal
	IncomeTax            decimal.Decimal
	SocialPayment        decimal.Decimal
	TotalSalaryWithTaxes decimal.Decimal
	ExpensesTotal        decimal.Decimal
	ProfitValue          decimal.Decimal
	ServiceValue         decimal.Decimal
	VAT                  decimal.Decimal
	FinalTotal           decimal.Decimal
}

// Estimator constants. The estimator deliberately uses a simplified flat tax
// model (25% combined load, per-head stamp duty) instead of the bracket-based
// payroll stack; the source site ships both models side by side.
var (
	estimateStampPerHead = decimal.NewFromInt(3_000)
	estimateNetShare     = decimal.NewFromFloat(0.75) // 1 - flat 25% tax+social load
	estimateIncomeRate   = decimal.NewFromFloat(0.20)
	estimateSocialRate   = decimal.NewFromFloat(0.05)
	vatRate              = decimal.NewFromFloat(0.20)
	profitRetention      = decimal.NewFromFloat(0.82) // share of raw profit priced in (additive model)
)

// MarginStrategy turns a base cost and a margin percent into the service
// value and the profit embedded in it. The two implementations are separate
// products on the source site and must not be merged.
type MarginStrategy interface {
	Name() string
	Apply(baseCost, marginPercent decimal.Decimal) (serviceValue, profitValue decimal.Decimal, err error)
}

// AdditiveMarginEstimator adds the margin on top of cost, pricing in only
// profitRetention (82%) of the raw profit value.
type AdditiveMarginEstimator struct{}

func (AdditiveMarginEstimator) Name() string { return "additive" }

func (AdditiveMarginEstimator) Apply(baseCost, marginPercent decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	profit := baseCost.Mul(marginPercent).Div(hundred).Round(2)
	service := baseCost.Add(profit.Mul(profitRetention)).Round(2)
	return service, profit, nil
}

// DivisiveMarginEstimator treats the margin as a share of the final price:
// service = cost / (1 - margin). A margin at or above 100% has no solution.
type DivisiveMarginEstimator struct{}

func (DivisiveMarginEstimator) Name() string { return "divisive" }

func (DivisiveMarginEstimator) Apply(baseCost, marginPercent decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	marginShare := marginPercent.Div(hundred)
	if !marginShare.LessThan(decimal.NewFromInt(1)) {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	service := baseCost.Div(decimal.NewFromInt(1).Sub(marginShare)).Round(2)
	return service, service.Sub(baseCost), nil
}

// EstimateProject composes the salary fund of the given positions into a
// fully loaded, margin-adjusted service price.
func EstimateProject(in EstimateInput, strategy MarginStrategy) (*EstimateResult, error) {
	if strategy == nil || in.ProfitMarginPercent.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	salaryFund := decimal.Zero
	positionsCount := 0
	for _, p := range in.Positions {
		monthly, err := monthlySalary(p)
		if err != nil {
			return nil, err
		}
		salaryFund = salaryFund.Add(monthly)
		if monthly.IsPositive() {
			positionsCount++
		}
	}

	expensesTotal := decimal.Zero
	for _, e := range in.Expenses {
		if e.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expensesTotal = expensesTotal.Add(e.Value)
	}

	stamp := estimateStampPerHead.Mul(decimal.NewFromInt(int64(positionsCount)))
	gross := salaryFund.Add(stamp).Div(estimateNetShare).Round(2)
	incomeTax := gross.Mul(estimateIncomeRate).Round(2)
	social := gross.Mul(estimateSocialRate).Round(2)
	totalSalary := salaryFund.Add(incomeTax).Add(social).Add(stamp)

	baseCost := totalSalary.Add(expensesTotal)
	service, profit, err := strategy.Apply(baseCost, in.ProfitMarginPercent)
	if err != nil {
		return nil, err
	}

	vat := decimal.Zero
	if in.IsVATPayer {
		vat = service.Mul(vatRate).Round(2)
	}

	return &EstimateResult{
		SalaryFundNet:        salaryFund,
		PositionsCount:       positionsCount,
		StampDuty:            stamp,
		GrossAmount:          gross,
		IncomeTax:            incomeTax,
		SocialPayment:        social,
		TotalSalaryWithTaxes: totalSalary,
		ExpensesTotal:        expensesTotal,
		ProfitValue:          profit,
		ServiceValue:         service,
		VAT:                  vat,
		FinalTotal:           service.Add(vat),
	}, nil
}

// monthlySalary derives a position's monthly net salary from its kind.
func monthlySalary(p Position) (decimal.Decimal, error) {
	switch p.Kind {
	case PositionHourly:
		if p.HourlyRate.IsNegative() || p.HoursPerDay.IsNegative() || p.DaysPerMonth.IsNegative() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return p.HourlyRate.Mul(p.HoursPerDay).Mul(p.DaysPerMonth), nil
	case PositionDaily:
		if p.DailyRate.IsNegative() || p.DaysPerMonth.IsNegative() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return p.DailyRate.Mul(p.DaysPerMonth), nil
	case PositionMonthly:
		if p.MonthlySalary.IsNegative() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return p.MonthlySalary, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}
