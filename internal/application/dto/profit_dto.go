package dto

import "github.com/shopspring/decimal"

// ProfitRequest input rows of the profit tax statement, keyed by row number.
// Only input-kind rows are read; values for derived rows are ignored.
type ProfitRequest struct {
	Inputs map[int]decimal.Decimal `json:"inputs"`
}

// ProfitRowResponse one evaluated statement row.
type ProfitRowResponse struct {
	Number int             `json:"number"`
	Label  string          `json:"label"`
	Kind   string          `json:"kind"`
	Value  decimal.Decimal `json:"value"`
}

// ProfitResponse all 79 rows in statement order.
type ProfitResponse struct {
	Rows       []ProfitRowResponse `json:"rows"`
	PayableTax decimal.Decimal     `json:"payable_tax"`
}
