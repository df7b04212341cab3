package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// TargetRepository define el puerto para las metas mensuales.
type TargetRepository interface {
	// Get devuelve la meta de (month, year); month se compara en minúsculas.
	// Si no hay meta configurada devuelve nil SIN error: el motor de tracking
	// trabaja entonces con metas cero.
	Get(ctx context.Context, month string, year int) (*entity.TargetGrowth, error)
	// Upsert crea o sobreescribe la meta de (lower(month), year) en una sola
	// sentencia atómica (ON CONFLICT). created indica si la fila es nueva;
	// solo afecta al mensaje de éxito, no al estado.
	Upsert(ctx context.Context, month string, year int, targetGrowth, targetRkap decimal.Decimal) (target *entity.TargetGrowth, created bool, err error)
}
