package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderColumns columnas persistidas de data_ps, en el orden de scanOrder.
const orderColumns = `
	id, order_id, regional, witel, datel, sto,
	order_date, tgl_ps, last_updated_date,
	status_message, bulan_ps, type_trans, package_name,
	kode_sales, nama_sa, mitra, ekosistem,
	customer_name, addon, created_at, updated_at`

// OrderRepo implementación CRUD de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido nuevo. ORDER_ID tiene constraint único.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO data_ps (
			order_id, regional, witel, datel, sto,
			order_date, tgl_ps, last_updated_date,
			status_message, bulan_ps, type_trans, package_name,
			kode_sales, nama_sa, mitra, ekosistem,
			customer_name, addon, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.OrderID, o.Regional, o.Witel, o.Datel, o.STO,
		o.OrderDate, o.TglPS, o.LastUpdatedDate,
		o.StatusMessage, o.BulanPS, o.TypeTrans, o.PackageName,
		o.KodeSales, o.NamaSA, o.Mitra, o.Ekosistem,
		o.CustomerName, o.Addon, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderID
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por id interno. nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM data_ps WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update sobreescribe todos los campos editables del pedido.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE data_ps SET
			order_id = $2, regional = $3, witel = $4, datel = $5, sto = $6,
			order_date = $7, tgl_ps = $8, last_updated_date = $9,
			status_message = $10, bulan_ps = $11, type_trans = $12, package_name = $13,
			kode_sales = $14, nama_sa = $15, mitra = $16, ekosistem = $17,
			customer_name = $18, addon = $19, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.OrderID, o.Regional, o.Witel, o.Datel, o.STO,
		o.OrderDate, o.TglPS, o.LastUpdatedDate,
		o.StatusMessage, o.BulanPS, o.TypeTrans, o.PackageName,
		o.KodeSales, o.NamaSA, o.Mitra, o.Ekosistem,
		o.CustomerName, o.Addon,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderID
		}
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por id.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM data_ps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TruncateAll borra todo y reinicia el autoincremental.
func (r *OrderRepo) TruncateAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE TABLE data_ps RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate data_ps: %w", err)
	}
	return nil
}

// List devuelve una página del listado (columnas resumidas) y el total de filas.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]repository.OrderSummary, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM data_ps`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `
		SELECT id, order_id, regional, witel, datel, sto
		FROM data_ps
		ORDER BY id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var results []repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		if err := rows.Scan(&s.ID, &s.OrderID, &s.Regional, &s.Witel, &s.Datel, &s.STO); err != nil {
			return nil, 0, fmt.Errorf("list orders scan: %w", err)
		}
		results = append(results, s)
	}
	return results, total, rows.Err()
}

// CreateBatch inserta el lote en una transacción propia: o entra completo o
// no entra nada (semántica del import de Excel).
func (r *OrderRepo) CreateBatch(ctx context.Context, orders []*entity.Order) (int, error) {
	starter, ok := r.q.(txStarter)
	if !ok {
		// Ya estamos dentro de una tx: insertar directo.
		return r.insertAll(ctx, r.q, orders)
	}
	t, err := starter.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = t.Rollback(ctx) }()

	n, err := r.insertAll(ctx, t, orders)
	if err != nil {
		return 0, err
	}
	if err := t.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) insertAll(ctx context.Context, q Querier, orders []*entity.Order) (int, error) {
	query := `
		INSERT INTO data_ps (
			order_id, regional, witel, datel, sto,
			order_date, tgl_ps, last_updated_date,
			status_message, bulan_ps, type_trans, package_name,
			kode_sales, nama_sa, mitra, ekosistem,
			customer_name, addon, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,now(),now())`
	for i, o := range orders {
		if _, err := q.Exec(ctx, query,
			o.OrderID, o.Regional, o.Witel, o.Datel, o.STO,
			o.OrderDate, o.TglPS, o.LastUpdatedDate,
			o.StatusMessage, o.BulanPS, o.TypeTrans, o.PackageName,
			o.KodeSales, o.NamaSA, o.Mitra, o.Ekosistem,
			o.CustomerName, o.Addon,
		); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("fila %d: %w", i+1, domain.ErrDuplicateOrderID)
			}
			return 0, fmt.Errorf("import fila %d: %w", i+1, err)
		}
	}
	return len(orders), nil
}

// Count cuenta pedidos; status filtra por STATUS_MESSAGE y from/to por TGL_PS.
func (r *OrderRepo) Count(ctx context.Context, status string, from, to *time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM data_ps
		WHERE ($1 = '' OR status_message = $1)
		  AND ($2::timestamptz IS NULL OR tgl_ps >= $2)
		  AND ($3::timestamptz IS NULL OR tgl_ps <= $3)`
	var total int
	if err := r.q.QueryRow(ctx, query, status, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// Recent devuelve los últimos pedidos por ORDER_ID descendente.
func (r *OrderRepo) Recent(ctx context.Context, limit int) ([]repository.RecentOrder, error) {
	query := `
		SELECT order_id, customer_name, order_date
		FROM data_ps
		ORDER BY order_id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentOrder
	for rows.Next() {
		var o repository.RecentOrder
		if err := rows.Scan(&o.OrderID, &o.CustomerName, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("recent orders scan: %w", err)
		}
		results = append(results, o)
	}
	return results, rows.Err()
}

// ExistsOrderID indica si ya hay un pedido con ese ORDER_ID.
func (r *OrderRepo) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM data_ps WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists order_id: %w", err)
	}
	return exists, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.OrderID, &o.Regional, &o.Witel, &o.Datel, &o.STO,
		&o.OrderDate, &o.TglPS, &o.LastUpdatedDate,
		&o.StatusMessage, &o.BulanPS, &o.TypeTrans, &o.PackageName,
		&o.KodeSales, &o.NamaSA, &o.Mitra, &o.Ekosistem,
		&o.CustomerName, &o.Addon, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
