package dto

import (
	"encoding/json"
	"time"
)

// CalculationResponse one recorded calculator invocation. Request and Result
// are the original JSON payloads, re-emitted verbatim.
type CalculationResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// CalculationListResponse paged history listing.
type CalculationListResponse struct {
	Items []CalculationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
