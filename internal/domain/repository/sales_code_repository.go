package repository

import (
	"context"
	"time"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// RecentSalesCode fila del widget "códigos recientes" del dashboard: Kode ya
// viene resuelto (kode_agen o kode_baru según la fecha de alta vs el cutoff
// del renombramiento).
type RecentSalesCode struct {
	Kode      string
	MitraNama string
	CreatedAt time.Time
}

// SalesCodeRepository define el puerto de persistencia para SalesCode.
type SalesCodeRepository interface {
	Create(ctx context.Context, code *entity.SalesCode) error
	GetByID(ctx context.Context, id int64) (*entity.SalesCode, error)
	Update(ctx context.Context, code *entity.SalesCode) error
	Delete(ctx context.Context, id int64) error
	TruncateAll(ctx context.Context) error
	List(ctx context.Context, limit, offset int) ([]entity.SalesCode, int, error)
	CreateBatch(ctx context.Context, codes []*entity.SalesCode) (int, error)
	Count(ctx context.Context, from, to *time.Time) (int, error)
	// Recent devuelve los últimos códigos dados de alta; cutoff decide qué
	// columna de código se muestra (antes del cutoff → kode_agen).
	Recent(ctx context.Context, limit int, cutoff time.Time) ([]RecentSalesCode, error)
}
