package dto

import "github.com/shopspring/decimal"

// PositionRequest one staffed role. Only the fields matching Kind are
// required; pointers distinguish "absent" from zero.
type PositionRequest struct {
	Kind          string           `json:"kind" validate:"required,oneof=hourly daily monthly"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursPerDay   *decimal.Decimal `json:"hours_per_day,omitempty"`
	DaysPerMonth  *decimal.Decimal `json:"days_per_month,omitempty"`
	DailyRate     *decimal.Decimal `json:"daily_rate,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
}

// ExpenseRequest one named non-salary expense.
type ExpenseRequest struct {
	Name  string          `json:"name" validate:"required"`
	Value decimal.Decimal `json:"value"`
}

// EstimateRequest input for a project estimation. Strategy picks the margin
// model: "additive" (margin on cost) or "divisive" (margin of price).
type EstimateRequest struct {
	Positions           []PositionRequest `json:"positions" validate:"required,min=1"`
	Expenses            []ExpenseRequest  `json:"expenses"`
	ProfitMarginPercent decimal.Decimal   `json:"profit_margin_percent"`
	IsVATPayer          bool              `json:"is_vat_payer"`
	Strategy            string            `json:"strategy" validate:"required,oneof=additive divisive"`
}

// EstimateResponse full cost build-up of the project price.
type EstimateResponse struct {
	SalaryFundNet        decimal.Decimal `json:"salary_fund_net"`
	PositionsCount       int             `json:"positions_count"`
	StampDuty            decimal.Decimal `json:"stamp_duty"`
	GrossAmount          decimal.Decimal `json:"gross_amount"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	SocialPayment        decimal.Decimal `json:"social_payment"`
	TotalSalaryWithTaxes decimal.Decimal `json:"total_salary_with_taxes"`
	ExpensesTotal        decimal.Decimal `json:"expenses_total"`
	ProfitValue          decimal.Decimal `json:"profit_value"`
	ServiceValue         decimal.Decimal `json:"service_value"`
	VAT                  decimal.Decimal `json:"vat"`
	FinalTotal           decimal.Decimal `json:"final_total"`
	Strategy             string          `json:"strategy"`
}
