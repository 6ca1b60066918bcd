package repository

import "github.com/hashiv-am/hashiv-api/internal/domain/entity"

// CalculationRepository is the persistence port for calculation history.
type CalculationRepository interface {
	Create(calc *entity.Calculation) error
	GetByID(id string) (*entity.Calculation, error)
	// List returns records newest first; kind filters when non-empty.
	List(kind string, limit, offset int) ([]*entity.Calculation, error)
	CountByKind(kind string) (int, error)
}
