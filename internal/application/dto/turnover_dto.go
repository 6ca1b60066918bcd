package dto

import "github.com/shopspring/decimal"

// ActivityRowRequest one business activity line. Percentages are plain
// numbers where 1.5 means 1.5%.
type ActivityRowRequest struct {
	Turnover         decimal.Decimal `json:"turnover"`
	DirectCosts      decimal.Decimal `json:"direct_costs"`
	AdminCosts       decimal.Decimal `json:"admin_costs"`
	TaxRatePercent   decimal.Decimal `json:"tax_rate_percent"`
	DeductionPercent decimal.Decimal `json:"deduction_percent"`
	MinTaxPercent    decimal.Decimal `json:"min_tax_percent"`
	IsFixedRate      bool            `json:"is_fixed_rate"`
}

// TurnoverRequest input for a turnover tax computation.
type TurnoverRequest struct {
	Rows []ActivityRowRequest `json:"rows" validate:"required,min=1"`
}

// ActivityRowResponse computed tax for one row.
type ActivityRowResponse struct {
	Turnover         decimal.Decimal `json:"turnover"`
	MinTaxAmount     decimal.Decimal `json:"min_tax_amount"`
	ActualTaxPercent decimal.Decimal `json:"actual_tax_percent"`
	TaxPayable       decimal.Decimal `json:"tax_payable"`
}

// TurnoverResponse per-row results plus the aggregate.
type TurnoverResponse struct {
	Rows              []ActivityRowResponse `json:"rows"`
	TotalTaxPayable   decimal.Decimal       `json:"total_tax_payable"`
	TotalTurnover     decimal.Decimal       `json:"total_turnover"`
	OverallTaxPercent decimal.Decimal       `json:"overall_tax_percent"`
}
