package usecase

import (
	"encoding/json"

	"github.com/hashiv-am/hashiv-api/internal/application/dto"
	"github.com/hashiv-am/hashiv-api/internal/domain"
	"github.com/hashiv-am/hashiv-api/internal/domain/entity"
	"github.com/hashiv-am/hashiv-api/internal/domain/repository"
)

// HistoryUseCase read side of the calculation history for the dashboard.
type HistoryUseCase struct {
	calcRepo repository.CalculationRepository
}

// NewHistoryUseCase builds the use case with the persistence port.
func NewHistoryUseCase(calcRepo repository.CalculationRepository) *HistoryUseCase {
	return &HistoryUseCase{calcRepo: calcRepo}
}

var validKinds = map[string]bool{
	entity.CalculationPayroll:  true,
	entity.CalculationTurnover: true,
	entity.CalculationProfit:   true,
	entity.CalculationEstimate: true,
}

// List returns a page of history records, newest first. kind filters when
// non-empty; an unknown kind is rejected.
func (uc *HistoryUseCase) List(kind string, page dto.PageRequest) (*dto.CalculationListResponse, error) {
	if kind != "" && !validKinds[kind] {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	records, err := uc.calcRepo.List(kind, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.calcRepo.CountByKind(kind)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CalculationResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toCalculationResponse(r))
	}
	return &dto.CalculationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID fetches one record. Returns nil when not found.
func (uc *HistoryUseCase) GetByID(id string) (*dto.CalculationResponse, error) {
	record, err := uc.calcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	resp := toCalculationResponse(record)
	return &resp, nil
}

func toCalculationResponse(c *entity.Calculation) dto.CalculationResponse {
	return dto.CalculationResponse{
		ID:        c.ID,
		Kind:      c.Kind,
		Request:   json.RawMessage(c.Request),
		Result:    json.RawMessage(c.Result),
		CreatedAt: c.CreatedAt,
	}
}
