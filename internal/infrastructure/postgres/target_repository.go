package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

var _ repository.TargetRepository = (*TargetRepo)(nil)

// TargetRepo implementación de TargetRepository sobre PostgreSQL.
// La tabla target_growth tiene UNIQUE (month, year) con month en minúsculas.
type TargetRepo struct {
	q Querier
}

// NewTargetRepository construye el adaptador.
func NewTargetRepository(q Querier) *TargetRepo {
	return &TargetRepo{q: q}
}

// Get devuelve la meta de (month, year). nil sin error si no hay meta.
func (r *TargetRepo) Get(ctx context.Context, month string, year int) (*entity.TargetGrowth, error) {
	query := `
		SELECT id, month, year, target_growth, target_rkap, created_at, updated_at
		FROM target_growth
		WHERE month = $1 AND year = $2`
	var t entity.TargetGrowth
	err := r.q.QueryRow(ctx, query, strings.ToLower(month), year).Scan(
		&t.ID, &t.Month, &t.Year, &t.TargetGrowth, &t.TargetRkap, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get target: %w", err)
	}
	return &t, nil
}

// Upsert crea o sobreescribe la meta en una sola sentencia. xmax = 0 solo es
// cierto para filas recién insertadas, así se distingue alta de actualización
// sin una consulta previa.
func (r *TargetRepo) Upsert(ctx context.Context, month string, year int, targetGrowth, targetRkap decimal.Decimal) (*entity.TargetGrowth, bool, error) {
	query := `
		INSERT INTO target_growth (month, year, target_growth, target_rkap, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (month, year) DO UPDATE SET
			target_growth = EXCLUDED.target_growth,
			target_rkap   = EXCLUDED.target_rkap,
			updated_at    = now()
		RETURNING id, month, year, target_growth, target_rkap, created_at, updated_at, (xmax = 0) AS created`
	var t entity.TargetGrowth
	var created bool
	err := r.q.QueryRow(ctx, query, strings.ToLower(month), year, targetGrowth, targetRkap).Scan(
		&t.ID, &t.Month, &t.Year, &t.TargetGrowth, &t.TargetRkap, &t.CreatedAt, &t.UpdatedAt, &created,
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert target: %w", err)
	}
	return &t, created, nil
}
