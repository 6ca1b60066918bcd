package entity

import "time"

// Calculation kinds recorded in history.
const (
	CalculationPayroll  = "payroll"
	CalculationTurnover = "turnover"
	CalculationProfit   = "profit"
	CalculationEstimate = "estimate"
)

// Calculation is one recorded calculator invocation: the raw request and
// result payloads as submitted/returned, kept for the dashboard's history
// view. The record is an audit snapshot, never re-evaluated.
type Calculation struct {
	ID        string
	Kind      string // payroll, turnover, profit, estimate
	Request   []byte // JSON snapshot of the request body
	Result    []byte // JSON snapshot of the response body
	CreatedAt time.Time
}
