package repository

import (
	"context"
	"time"

	"github.com/jhoicas/salesops-api/internal/domain/period"
)

// Filas crudas de las consultas de agregación. Las produce la DB (GROUP BY);
// el motor de reportes las organiza en DTOs.

// StoBulanCount conteo por (STO, Bulan_PS) — variante por etiqueta de período.
type StoBulanCount struct {
	STO     string
	BulanPS string
	Total   int
}

// StoCalendarCount conteo por (STO, año, mes calendario de TGL_PS).
// Year/Month son 0 cuando TGL_PS es NULL; la fila conserva el STO para que
// éste aparezca en la matriz aunque no aporte al año consultado.
type StoCalendarCount struct {
	STO   string
	Year  int
	Month int
	Total int
}

// MonthStoCount conteo por (Bulan_PS, STO).
type MonthStoCount struct {
	BulanPS string
	STO     string
	Total   int
}

// CodeGroupRow fila del análisis por código: el grupo crudo del join con
// sales_codes. KodeSelected es nil cuando el período del pedido no casó con
// ninguna columna de código (regla period.Rule).
type CodeGroupRow struct {
	BulanPS      string
	STO          string
	KodeSales    string
	NamaSA       string
	KodeSelected *string
	Total        int // COUNT(DISTINCT id): el join puede multiplicar filas
}

// LabelCount par etiqueta/total para charts y breakdowns simples.
type LabelCount struct {
	Label string
	Total int
}

// DayCount conteo de pedidos por día calendario dentro de un mes.
type DayCount struct {
	Day   int
	Total int
}

// DateCount una fecha PS distinta y cuántos pedidos tiene.
type DateCount struct {
	Date  time.Time
	Total int
}

// OrderDayDetail columnas de detalle del análisis por día.
type OrderDayDetail struct {
	Date         time.Time
	OrderID      string
	STO          string
	CustomerName string
	Addon        string
	KodeSales    string
	NamaSA       string
}

// ReportRepository define las consultas read-only del motor de reportes.
// Todas agrupan/cuentan en SQL y devuelven filas planas.
type ReportRepository interface {
	// DistinctSTO / DistinctBulanPS / DistinctMitra devuelven los valores
	// únicos ordenados ascendente. Lista vacía significa "sin datos": el
	// caller decide cómo reportarlo (domain.ErrEmptyResult).
	DistinctSTO(ctx context.Context) ([]string, error)
	DistinctBulanPS(ctx context.Context) ([]string, error)
	DistinctMitra(ctx context.Context) ([]string, error)
	// DistinctDates fechas PS únicas (solo fecha, sin hora), ascendente.
	DistinctDates(ctx context.Context) ([]time.Time, error)

	// StoBulanCounts agrupa por (STO, Bulan_PS); sto/bulan filtran si no vacíos.
	StoBulanCounts(ctx context.Context, sto, bulan string) ([]StoBulanCount, error)
	// StoCalendarCounts agrupa por (STO, año, mes) de TGL_PS; sto filtra si no vacío.
	StoCalendarCounts(ctx context.Context, sto string) ([]StoCalendarCount, error)
	// MonthStoCounts agrupa por (Bulan_PS, STO) ordenado por mes y STO.
	MonthStoCounts(ctx context.Context, bulan string) ([]MonthStoCount, error)
	// CodeGroups ejecuta el left join con sales_codes aplicando la regla de
	// período y agrupa por (Bulan_PS, STO, Kode_sales, Nama_SA, kode_selected).
	CodeGroups(ctx context.Context, sto, bulan string, rule period.Rule) ([]CodeGroupRow, error)
	// MitraCounts agrupa por Mitra (COUNT DISTINCT id); sto/bulan filtran.
	MitraCounts(ctx context.Context, sto, bulan string) ([]LabelCount, error)
	// StoCounts agrupa por STO; bulan/mitra filtran.
	StoCounts(ctx context.Context, bulan, mitra string) ([]LabelCount, error)
	// BulanCounts agrupa por Bulan_PS con fallback al mes calendario de TGL_PS
	// cuando la etiqueta está vacía (chart de barras del dashboard).
	BulanCounts(ctx context.Context) ([]LabelCount, error)
	// StatusCounts agrupa por STATUS_MESSAGE (chart de pie del dashboard).
	StatusCounts(ctx context.Context) ([]LabelCount, error)

	// DailyCounts conteo por día calendario de TGL_PS para (mes, año).
	DailyCounts(ctx context.Context, month, year int) ([]DayCount, error)
	// DatePage página de fechas PS distintas (ascendente) con su total de
	// pedidos, más el número total de fechas distintas.
	DatePage(ctx context.Context, limit, offset int) ([]DateCount, int, error)
	// DetailsByDates detalle de pedidos de las fechas dadas, ordenado por
	// (fecha, ORDER_ID) para que la paginación sea estable.
	DetailsByDates(ctx context.Context, dates []time.Time) ([]OrderDayDetail, error)
}
