package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hashiv-am/hashiv-api/internal/domain/entity"
	"github.com/hashiv-am/hashiv-api/internal/domain/repository"
)

var _ repository.CalculationRepository = (*CalculationRepo)(nil)

// CalculationRepo implements CalculationRepository (usable with pool or tx).
type CalculationRepo struct {
	q Querier
}

// NewCalculationRepository builds the adapter. Pass a pool or tx (Querier).
func NewCalculationRepository(q Querier) *CalculationRepo {
	return &CalculationRepo{q: q}
}

// Create persists one history record.
func (r *CalculationRepo) Create(calc *entity.Calculation) error {
	query := `
		INSERT INTO calculations (id, kind, request, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		calc.ID, calc.Kind, calc.Request, calc.Result, calc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// GetByID fetches one record by ID.
func (r *CalculationRepo) GetByID(id string) (*entity.Calculation, error) {
	query := `
		SELECT id, kind, request, result, created_at
		FROM calculations WHERE id = $1`
	var c entity.Calculation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Kind, &c.Request, &c.Result, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calculation: %w", err)
	}
	return &c, nil
}

// List returns records newest first; kind filters when non-empty.
func (r *CalculationRepo) List(kind string, limit, offset int) ([]*entity.Calculation, error) {
	query := `
		SELECT id, kind, request, result, created_at
		FROM calculations
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Calculation
	for rows.Next() {
		var c entity.Calculation
		if err := rows.Scan(&c.ID, &c.Kind, &c.Request, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return list, nil
}

// CountByKind counts records; kind filters when non-empty.
func (r *CalculationRepo) CountByKind(kind string) (int, error) {
	query := `SELECT COUNT(*) FROM calculations WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := r.q.QueryRow(context.Background(), query, kind).Scan(&total); err != nil {
		return 0, fmt.Errorf("count calculations: %w", err)
	}
	return total, nil
}
