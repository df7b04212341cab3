package repository

import (
	"context"
	"time"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// OrderSummary columnas del listado paginado (no se devuelve la fila entera:
// la tabla original tiene ~50 columnas y el índice solo muestra estas).
type OrderSummary struct {
	ID       int64
	OrderID  string
	Regional string
	Witel    string
	Datel    string
	STO      string
}

// RecentOrder fila del widget "pedidos recientes" del dashboard.
type RecentOrder struct {
	OrderID      string
	CustomerName string
	OrderDate    *time.Time
}

// OrderRepository define el puerto de persistencia CRUD para Order.
// Las consultas de agregación viven en ReportRepository.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	// TruncateAll borra todas las filas y reinicia el id autoincremental.
	TruncateAll(ctx context.Context) error
	// List devuelve una página del listado y el total de filas.
	List(ctx context.Context, limit, offset int) ([]OrderSummary, int, error)
	// CreateBatch inserta el lote completo en una transacción (import xlsx):
	// o entran todas las filas o ninguna. Devuelve cuántas insertó.
	CreateBatch(ctx context.Context, orders []*entity.Order) (int, error)
	// Count cuenta pedidos, opcionalmente filtrando por status y/o rango de TglPS.
	Count(ctx context.Context, status string, from, to *time.Time) (int, error)
	// Recent devuelve los últimos pedidos por ORDER_ID descendente.
	Recent(ctx context.Context, limit int) ([]RecentOrder, error)
	// ExistsOrderID indica si ya hay un pedido con ese ORDER_ID.
	ExistsOrderID(ctx context.Context, orderID string) (bool, error)
}
