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

var _ repository.SalesCodeRepository = (*SalesCodeRepo)(nil)

const salesCodeColumns = `id, sto, kode_agen, kode_baru, mitra_nama, created_at, updated_at`

// SalesCodeRepo implementación de SalesCodeRepository sobre PostgreSQL.
type SalesCodeRepo struct {
	q Querier
}

// NewSalesCodeRepository construye el adaptador.
func NewSalesCodeRepository(q Querier) *SalesCodeRepo {
	return &SalesCodeRepo{q: q}
}

// Create persiste una asignación nueva.
func (r *SalesCodeRepo) Create(ctx context.Context, c *entity.SalesCode) error {
	query := `
		INSERT INTO sales_codes (sto, kode_agen, kode_baru, mitra_nama, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.STO, c.KodeAgen, c.KodeBaru, c.MitraNama).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales code: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por id. nil, nil si no existe.
func (r *SalesCodeRepo) GetByID(ctx context.Context, id int64) (*entity.SalesCode, error) {
	query := `SELECT ` + salesCodeColumns + ` FROM sales_codes WHERE id = $1`
	c, err := scanSalesCode(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales code: %w", err)
	}
	return c, nil
}

// Update sobreescribe la asignación completa.
func (r *SalesCodeRepo) Update(ctx context.Context, c *entity.SalesCode) error {
	query := `
		UPDATE sales_codes SET
			sto = $2, kode_agen = $3, kode_baru = $4, mitra_nama = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.STO, c.KodeAgen, c.KodeBaru, c.MitraNama)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sales code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una asignación por id.
func (r *SalesCodeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TruncateAll borra todo y reinicia el autoincremental.
func (r *SalesCodeRepo) TruncateAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE TABLE sales_codes RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate sales_codes: %w", err)
	}
	return nil
}

// List devuelve una página de asignaciones y el total de filas.
func (r *SalesCodeRepo) List(ctx context.Context, limit, offset int) ([]entity.SalesCode, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales_codes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales codes: %w", err)
	}

	query := `SELECT ` + salesCodeColumns + ` FROM sales_codes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales codes: %w", err)
	}
	defer rows.Close()

	var results []entity.SalesCode
	for rows.Next() {
		var c entity.SalesCode
		if err := rows.Scan(&c.ID, &c.STO, &c.KodeAgen, &c.KodeBaru, &c.MitraNama, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("list sales codes scan: %w", err)
		}
		results = append(results, c)
	}
	return results, total, rows.Err()
}

// CreateBatch inserta el lote en una transacción propia (import de Excel).
func (r *SalesCodeRepo) CreateBatch(ctx context.Context, codes []*entity.SalesCode) (int, error) {
	starter, ok := r.q.(txStarter)
	if !ok {
		// Ya estamos dentro de una tx: insertar directo.
		return r.insertAll(ctx, r.q, codes)
	}
	t, err := starter.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = t.Rollback(ctx) }()

	n, err := r.insertAll(ctx, t, codes)
	if err != nil {
		return 0, err
	}
	if err := t.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

func (r *SalesCodeRepo) insertAll(ctx context.Context, q Querier, codes []*entity.SalesCode) (int, error) {
	query := `
		INSERT INTO sales_codes (sto, kode_agen, kode_baru, mitra_nama, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`
	for i, c := range codes {
		if _, err := q.Exec(ctx, query, c.STO, c.KodeAgen, c.KodeBaru, c.MitraNama); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("fila %d: %w", i+1, domain.ErrDuplicate)
			}
			return 0, fmt.Errorf("import fila %d: %w", i+1, err)
		}
	}
	return len(codes), nil
}

// Count cuenta asignaciones, opcionalmente por rango de fecha de alta.
func (r *SalesCodeRepo) Count(ctx context.Context, from, to *time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM sales_codes
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)`
	var total int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sales codes: %w", err)
	}
	return total, nil
}

// Recent devuelve los últimos códigos dados de alta. El CASE elige qué
// columna mostrar: altas antes del cutoff del renombramiento muestran el
// código viejo (kode_agen), las posteriores el nuevo.
func (r *SalesCodeRepo) Recent(ctx context.Context, limit int, cutoff time.Time) ([]repository.RecentSalesCode, error) {
	query := `
		SELECT CASE WHEN created_at < $2 THEN kode_agen ELSE kode_baru END AS kode,
		       mitra_nama, created_at
		FROM sales_codes
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit, cutoff)
	if err != nil {
		return nil, fmt.Errorf("recent sales codes: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentSalesCode
	for rows.Next() {
		var c repository.RecentSalesCode
		if err := rows.Scan(&c.Kode, &c.MitraNama, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("recent sales codes scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func scanSalesCode(row pgx.Row) (*entity.SalesCode, error) {
	var c entity.SalesCode
	err := row.Scan(&c.ID, &c.STO, &c.KodeAgen, &c.KodeBaru, &c.MitraNama, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
