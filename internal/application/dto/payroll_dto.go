package dto

import "github.com/shopspring/decimal"

// PayrollRequest input for a salary conversion. Amount is gross for
// grossToNet and net for netToGross, AMD.
type PayrollRequest struct {
	Amount              decimal.Decimal `json:"amount"`
	Direction           string          `json:"direction" validate:"required,oneof=grossToNet netToGross"`
	IsSocialContributor bool            `json:"is_social_contributor"`
	IsITCompany         bool            `json:"is_it_company"`
}

// PayrollResponse full breakdown of the conversion.
type PayrollResponse struct {
	Gross              decimal.Decimal `json:"gross"`
	Net                decimal.Decimal `json:"net"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	SocialContribution decimal.Decimal `json:"social_contribution"`
	StampDuty          decimal.Decimal `json:"stamp_duty"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
}
