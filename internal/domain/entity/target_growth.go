package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TargetGrowth guarda las metas mensuales: una fila por (mes, año).
// Month se persiste siempre en minúsculas para que el upsert sea
// case-insensitive.
type TargetGrowth struct {
	ID           int64
	Month        string // nombre de mes en indonesio, minúsculas
	Year         int
	TargetGrowth decimal.Decimal // meta de crecimiento
	TargetRkap   decimal.Decimal // meta RKAP (plan anual de presupuesto)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
