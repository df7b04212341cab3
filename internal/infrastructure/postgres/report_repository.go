package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only del motor de reportes. Todo el GROUP BY se
// resuelve en SQL; el pivoteo/densificado se hace en los use cases.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ── Listados distinct ─────────────────────────────────────────────────────────

func (r *ReportRepo) DistinctSTO(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT sto FROM data_ps ORDER BY sto ASC`)
}

func (r *ReportRepo) DistinctBulanPS(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT bulan_ps FROM data_ps ORDER BY bulan_ps ASC`)
}

func (r *ReportRepo) DistinctMitra(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT mitra FROM data_ps ORDER BY mitra ASC`)
}

func (r *ReportRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("distinct scan: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// DistinctDates fechas PS únicas (solo fecha), ascendente.
func (r *ReportRepo) DistinctDates(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT DISTINCT tgl_ps::date AS tanggal
		FROM data_ps
		WHERE tgl_ps IS NOT NULL
		ORDER BY tanggal ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("distinct dates scan: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ── Agrupaciones ──────────────────────────────────────────────────────────────

// StoBulanCounts agrupa por (STO, Bulan_PS). sto/bulan filtran si no vacíos.
func (r *ReportRepo) StoBulanCounts(ctx context.Context, sto, bulan string) ([]repository.StoBulanCount, error) {
	query := `
		SELECT sto, bulan_ps, COUNT(*) AS total
		FROM data_ps
		WHERE ($1 = '' OR sto = $1)
		  AND ($2 = '' OR bulan_ps = $2)
		GROUP BY sto, bulan_ps
		ORDER BY sto ASC, bulan_ps ASC`
	rows, err := r.q.Query(ctx, query, sto, bulan)
	if err != nil {
		return nil, fmt.Errorf("sto-bulan counts: %w", err)
	}
	defer rows.Close()

	var results []repository.StoBulanCount
	for rows.Next() {
		var c repository.StoBulanCount
		if err := rows.Scan(&c.STO, &c.BulanPS, &c.Total); err != nil {
			return nil, fmt.Errorf("sto-bulan scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// StoCalendarCounts agrupa por (STO, año, mes) de TGL_PS. Las filas con
// TGL_PS NULL salen con año/mes 0: el STO sigue presente en la matriz aunque
// no aporte al año consultado.
func (r *ReportRepo) StoCalendarCounts(ctx context.Context, sto string) ([]repository.StoCalendarCount, error) {
	query := `
		SELECT sto,
		       COALESCE(EXTRACT(YEAR  FROM tgl_ps)::int, 0) AS yr,
		       COALESCE(EXTRACT(MONTH FROM tgl_ps)::int, 0) AS mo,
		       COUNT(*) AS total
		FROM data_ps
		WHERE ($1 = '' OR sto = $1)
		GROUP BY sto, yr, mo
		ORDER BY sto ASC, yr ASC, mo ASC`
	rows, err := r.q.Query(ctx, query, sto)
	if err != nil {
		return nil, fmt.Errorf("sto calendar counts: %w", err)
	}
	defer rows.Close()

	var results []repository.StoCalendarCount
	for rows.Next() {
		var c repository.StoCalendarCount
		if err := rows.Scan(&c.STO, &c.Year, &c.Month, &c.Total); err != nil {
			return nil, fmt.Errorf("sto calendar scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// MonthStoCounts agrupa por (Bulan_PS, STO), ordenado por mes y STO.
func (r *ReportRepo) MonthStoCounts(ctx context.Context, bulan string) ([]repository.MonthStoCount, error) {
	query := `
		SELECT bulan_ps, sto, COUNT(*) AS total
		FROM data_ps
		WHERE ($1 = '' OR bulan_ps = $1)
		GROUP BY bulan_ps, sto
		ORDER BY bulan_ps ASC, sto ASC`
	rows, err := r.q.Query(ctx, query, bulan)
	if err != nil {
		return nil, fmt.Errorf("month-sto counts: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthStoCount
	for rows.Next() {
		var c repository.MonthStoCount
		if err := rows.Scan(&c.BulanPS, &c.STO, &c.Total); err != nil {
			return nil, fmt.Errorf("month-sto scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// CodeGroups left join con sales_codes aplicando la regla de período.
//
// La regla llega como dos listas de nombres de período (una por columna de
// código) y se parametriza con = ANY($n): el SQL nunca interpola texto de
// configuración. Un período fuera de ambas listas produce kode_selected NULL
// y el use case cae al Kode_sales del pedido.
//
// COUNT(DISTINCT o.id) protege contra el join multiplicando filas si hay
// más de un sales_code candidato para el mismo (sto, kode).
func (r *ReportRepo) CodeGroups(ctx context.Context, sto, bulan string, rule period.Rule) ([]repository.CodeGroupRow, error) {
	agenPeriods := lowerAll(rule.Periods(period.ColumnKodeAgen))
	baruPeriods := lowerAll(rule.Periods(period.ColumnKodeBaru))

	query := `
		SELECT o.bulan_ps, o.sto, o.kode_sales, o.nama_sa,
		       CASE
		           WHEN LOWER(o.bulan_ps) = ANY($1) THEN sc.kode_agen
		           WHEN LOWER(o.bulan_ps) = ANY($2) THEN sc.kode_baru
		           ELSE NULL
		       END AS kode_selected,
		       COUNT(DISTINCT o.id) AS total
		FROM data_ps o
		LEFT JOIN sales_codes sc
		       ON o.sto = sc.sto
		      AND ((LOWER(o.bulan_ps) = ANY($1) AND o.kode_sales = sc.kode_agen)
		        OR (LOWER(o.bulan_ps) = ANY($2) AND o.kode_sales = sc.kode_baru))
		WHERE ($3 = '' OR o.sto = $3)
		  AND ($4 = '' OR o.bulan_ps = $4)
		GROUP BY o.bulan_ps, o.sto, o.kode_sales, o.nama_sa, kode_selected
		ORDER BY o.bulan_ps ASC, o.sto ASC, kode_selected ASC NULLS LAST`
	rows, err := r.q.Query(ctx, query, agenPeriods, baruPeriods, sto, bulan)
	if err != nil {
		return nil, fmt.Errorf("code groups: %w", err)
	}
	defer rows.Close()

	var results []repository.CodeGroupRow
	for rows.Next() {
		var c repository.CodeGroupRow
		if err := rows.Scan(&c.BulanPS, &c.STO, &c.KodeSales, &c.NamaSA, &c.KodeSelected, &c.Total); err != nil {
			return nil, fmt.Errorf("code groups scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// MitraCounts agrupa por Mitra. COUNT(DISTINCT id) por simetría con el
// análisis por código (un pedido cuenta una vez).
func (r *ReportRepo) MitraCounts(ctx context.Context, sto, bulan string) ([]repository.LabelCount, error) {
	query := `
		SELECT mitra, COUNT(DISTINCT id) AS total
		FROM data_ps
		WHERE ($1 = '' OR sto = $1)
		  AND ($2 = '' OR bulan_ps = $2)
		GROUP BY mitra
		ORDER BY mitra ASC`
	return r.labelCounts(ctx, query, sto, bulan)
}

// StoCounts agrupa por STO para los charts.
func (r *ReportRepo) StoCounts(ctx context.Context, bulan, mitra string) ([]repository.LabelCount, error) {
	query := `
		SELECT sto, COUNT(*) AS total
		FROM data_ps
		WHERE ($1 = '' OR bulan_ps = $1)
		  AND ($2 = '' OR mitra = $2)
		GROUP BY sto
		ORDER BY sto ASC`
	return r.labelCounts(ctx, query, bulan, mitra)
}

// BulanCounts pedidos por mes para el chart de barras del dashboard. La
// etiqueta es Bulan_PS; si está vacía, cae al número de mes calendario de
// TGL_PS (el use case lo traduce a nombre).
func (r *ReportRepo) BulanCounts(ctx context.Context) ([]repository.LabelCount, error) {
	query := `
		SELECT COALESCE(NULLIF(bulan_ps, ''), EXTRACT(MONTH FROM tgl_ps)::text, '') AS bulan,
		       COUNT(*) AS total
		FROM data_ps
		GROUP BY bulan
		ORDER BY bulan ASC`
	return r.labelCounts(ctx, query)
}

// StatusCounts pedidos por STATUS_MESSAGE para el chart de pie.
func (r *ReportRepo) StatusCounts(ctx context.Context) ([]repository.LabelCount, error) {
	query := `
		SELECT status_message, COUNT(*) AS total
		FROM data_ps
		GROUP BY status_message
		ORDER BY status_message ASC`
	return r.labelCounts(ctx, query)
}

func (r *ReportRepo) labelCounts(ctx context.Context, query string, args ...any) ([]repository.LabelCount, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("label counts: %w", err)
	}
	defer rows.Close()

	var results []repository.LabelCount
	for rows.Next() {
		var c repository.LabelCount
		if err := rows.Scan(&c.Label, &c.Total); err != nil {
			return nil, fmt.Errorf("label counts scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// ── Series temporales ─────────────────────────────────────────────────────────

// DailyCounts conteo por día calendario de TGL_PS para (mes, año).
func (r *ReportRepo) DailyCounts(ctx context.Context, month, year int) ([]repository.DayCount, error) {
	query := `
		SELECT EXTRACT(DAY FROM tgl_ps)::int AS day, COUNT(*) AS total
		FROM data_ps
		WHERE tgl_ps IS NOT NULL
		  AND EXTRACT(MONTH FROM tgl_ps) = $1
		  AND EXTRACT(YEAR  FROM tgl_ps) = $2
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	defer rows.Close()

	var results []repository.DayCount
	for rows.Next() {
		var c repository.DayCount
		if err := rows.Scan(&c.Day, &c.Total); err != nil {
			return nil, fmt.Errorf("daily counts scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// DatePage página de fechas distintas con su total, más cuántas fechas hay.
func (r *ReportRepo) DatePage(ctx context.Context, limit, offset int) ([]repository.DateCount, int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(DISTINCT tgl_ps::date) FROM data_ps WHERE tgl_ps IS NOT NULL`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count distinct dates: %w", err)
	}

	query := `
		SELECT tgl_ps::date AS tanggal, COUNT(*) AS total
		FROM data_ps
		WHERE tgl_ps IS NOT NULL
		GROUP BY tanggal
		ORDER BY tanggal ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("date page: %w", err)
	}
	defer rows.Close()

	var results []repository.DateCount
	for rows.Next() {
		var c repository.DateCount
		if err := rows.Scan(&c.Date, &c.Total); err != nil {
			return nil, 0, fmt.Errorf("date page scan: %w", err)
		}
		results = append(results, c)
	}
	return results, total, rows.Err()
}

// DetailsByDates detalle de pedidos de las fechas dadas. Una sola consulta
// para toda la página (la fuente original hacía una por fecha); el orden
// (fecha, ORDER_ID) mantiene estable la paginación.
func (r *ReportRepo) DetailsByDates(ctx context.Context, dates []time.Time) ([]repository.OrderDayDetail, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	query := `
		SELECT tgl_ps::date AS tanggal, order_id, sto, customer_name, addon, kode_sales, nama_sa
		FROM data_ps
		WHERE tgl_ps::date = ANY($1::date[])
		ORDER BY tanggal ASC, order_id ASC`
	rows, err := r.q.Query(ctx, query, dates)
	if err != nil {
		return nil, fmt.Errorf("details by dates: %w", err)
	}
	defer rows.Close()

	var results []repository.OrderDayDetail
	for rows.Next() {
		var d repository.OrderDayDetail
		if err := rows.Scan(&d.Date, &d.OrderID, &d.STO, &d.CustomerName, &d.Addon, &d.KodeSales, &d.NamaSA); err != nil {
			return nil, fmt.Errorf("details by dates scan: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
