// Package report contiene el motor de agregación: transforma los conteos
// crudos del repositorio en las vistas de análisis (matriz STO×mes, mes×STO,
// código de agente, mitra, charts y análisis por día).
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// DayPageSize tamaño de página fijo del análisis por día.
const DayPageSize = 9

// UseCase motor de agregación. Stateless: cada llamada consulta el
// repositorio y organiza los resultados en memoria.
type UseCase struct {
	reports repository.ReportRepository
	rule    period.Rule
}

// NewUseCase construye el motor con la regla de período configurada.
func NewUseCase(reports repository.ReportRepository, rule period.Rule) *UseCase {
	return &UseCase{reports: reports, rule: rule}
}

// ── Listados de facetas ───────────────────────────────────────────────────────

// StoList valores únicos de STO. domain.ErrEmptyResult si la tabla está vacía.
func (uc *UseCase) StoList(ctx context.Context) ([]string, error) {
	return uc.facet(uc.reports.DistinctSTO)(ctx)
}

// BulanList valores únicos de Bulan_PS.
func (uc *UseCase) BulanList(ctx context.Context) ([]string, error) {
	return uc.facet(uc.reports.DistinctBulanPS)(ctx)
}

// MitraList valores únicos de Mitra.
func (uc *UseCase) MitraList(ctx context.Context) ([]string, error) {
	return uc.facet(uc.reports.DistinctMitra)(ctx)
}

// DateList fechas PS únicas formateadas YYYY-MM-DD.
func (uc *UseCase) DateList(ctx context.Context) ([]string, error) {
	dates, err := uc.reports.DistinctDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("date list: %w", err)
	}
	if len(dates) == 0 {
		return nil, domain.ErrEmptyResult
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return out, nil
}

func (uc *UseCase) facet(fetch func(context.Context) ([]string, error)) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		values, err := fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("facet: %w", err)
		}
		if len(values) == 0 {
			return nil, domain.ErrEmptyResult
		}
		return values, nil
	}
}

// ── Matriz STO × mes ──────────────────────────────────────────────────────────

// StoAnalysis construye la matriz STO×mes. sto filtra ("" o "all" = todos).
// Con year > 0 se usa la variante anual: las columnas cuentan por mes
// calendario de TGL_PS dentro de ese año y el gran total queda acotado al
// año. Con year == 0 las columnas casan la etiqueta Bulan_PS contra los doce
// meses; las etiquetas desconocidas no caen en ninguna columna pero sí suman
// al gran total.
func (uc *UseCase) StoAnalysis(ctx context.Context, sto string, year int) (*dto.StoAnalysisResponse, error) {
	filter := normalizeFilter(sto)

	stoList, err := uc.reports.DistinctSTO(ctx)
	if err != nil {
		return nil, fmt.Errorf("sto analysis: %w", err)
	}
	if len(stoList) == 0 {
		return nil, domain.ErrEmptyResult
	}

	var rows []dto.StoAnalysisRow
	if year > 0 {
		counts, err := uc.reports.StoCalendarCounts(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("sto analysis: %w", err)
		}
		rows = pivotCalendar(counts, year)
	} else {
		counts, err := uc.reports.StoBulanCounts(ctx, filter, "")
		if err != nil {
			return nil, fmt.Errorf("sto analysis: %w", err)
		}
		rows = pivotLabels(counts)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyResult
	}

	resp := &dto.StoAnalysisResponse{
		StoAnalysis: rows,
		StoList:     stoList,
		SelectedSto: selectedLabel(filter),
		ViewType:    "table",
	}
	if year > 0 {
		resp.SelectedYear = year
	}
	return resp, nil
}

// pivotLabels variante por etiqueta Bulan_PS. Los counts llegan ordenados
// por (sto, bulan_ps); las filas conservan el orden de STO ascendente.
func pivotLabels(counts []repository.StoBulanCount) []dto.StoAnalysisRow {
	index := make(map[string]int)
	var rows []dto.StoAnalysisRow
	for _, c := range counts {
		i, ok := index[c.STO]
		if !ok {
			i = len(rows)
			index[c.STO] = i
			rows = append(rows, dto.StoAnalysisRow{STO: c.STO, Months: emptyMonths()})
		}
		if n, known := period.MonthNumber(c.BulanPS); known {
			rows[i].Months[period.MonthName(n)] += c.Total
		}
		// Etiquetas fuera del calendario cuentan solo en el gran total.
		rows[i].GrandTotal += c.Total
	}
	return rows
}

// pivotCalendar variante anual por TGL_PS. Los counts cubren toda la tabla;
// cada STO aparece aunque no aporte al año pedido (fila en ceros).
func pivotCalendar(counts []repository.StoCalendarCount, year int) []dto.StoAnalysisRow {
	index := make(map[string]int)
	var rows []dto.StoAnalysisRow
	for _, c := range counts {
		i, ok := index[c.STO]
		if !ok {
			i = len(rows)
			index[c.STO] = i
			rows = append(rows, dto.StoAnalysisRow{STO: c.STO, Months: emptyMonths()})
		}
		if c.Year != year || c.Month < 1 || c.Month > 12 {
			continue
		}
		rows[i].Months[period.MonthName(c.Month)] += c.Total
		rows[i].GrandTotal += c.Total
	}
	return rows
}

func emptyMonths() map[string]int {
	m := make(map[string]int, len(period.Months))
	for _, name := range period.Months {
		m[name] = 0
	}
	return m
}

// ── Análisis por mes ──────────────────────────────────────────────────────────

// MonthAnalysis pares (mes, sto) con total. bulan filtra si no vacío.
func (uc *UseCase) MonthAnalysis(ctx context.Context, bulan string) (*dto.MonthAnalysisResponse, error) {
	filter := normalizeFilter(bulan)

	counts, err := uc.reports.MonthStoCounts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("month analysis: %w", err)
	}
	if len(counts) == 0 {
		return nil, domain.ErrEmptyResult
	}
	bulanList, err := uc.reports.DistinctBulanPS(ctx)
	if err != nil {
		return nil, fmt.Errorf("month analysis: %w", err)
	}

	items := make([]dto.MonthStoItem, 0, len(counts))
	for _, c := range counts {
		items = append(items, dto.MonthStoItem{Month: c.BulanPS, Sto: c.STO, Total: c.Total})
	}
	return &dto.MonthAnalysisResponse{
		MonthAnalysis: items,
		BulanList:     bulanList,
		SelectedBulan: filter,
	}, nil
}

// ── Análisis por código ───────────────────────────────────────────────────────

// CodeAnalysis acumula pedidos por código efectivo de agente. El código
// efectivo es el seleccionado por la regla de período (join con sales_codes);
// si el período no casó con ninguna columna, cae al Kode_sales del pedido.
func (uc *UseCase) CodeAnalysis(ctx context.Context, sto, bulan string) (*dto.CodeAnalysisResponse, error) {
	stoFilter := normalizeFilter(sto)
	bulanFilter := normalizeFilter(bulan)

	groups, err := uc.reports.CodeGroups(ctx, stoFilter, bulanFilter, uc.rule)
	if err != nil {
		return nil, fmt.Errorf("code analysis: %w", err)
	}
	if len(groups) == 0 {
		return nil, domain.ErrEmptyResult
	}

	// Facetas en paralelo, al estilo del dashboard.
	type facetResult struct {
		values []string
		err    error
	}
	bulanCh := make(chan facetResult, 1)
	stoCh := make(chan facetResult, 1)
	go func() {
		v, err := uc.reports.DistinctBulanPS(ctx)
		bulanCh <- facetResult{v, err}
	}()
	go func() {
		v, err := uc.reports.DistinctSTO(ctx)
		stoCh <- facetResult{v, err}
	}()
	bulanRes := <-bulanCh
	stoRes := <-stoCh
	if bulanRes.err != nil {
		return nil, fmt.Errorf("code analysis: bulan list: %w", bulanRes.err)
	}
	if stoRes.err != nil {
		return nil, fmt.Errorf("code analysis: sto list: %w", stoRes.err)
	}

	return &dto.CodeAnalysisResponse{
		AnalysisPerCode: organizeByCode(groups),
		BulanList:       bulanRes.values,
		StoList:         stoRes.values,
		SelectedSto:     stoFilter,
		SelectedBulan:   bulanFilter,
	}, nil
}

// organizeByCode acumula los grupos por código efectivo en orden de llegada.
// El nombre de agente asociado a un código es el del primer grupo visto;
// los grupos posteriores solo suman al total.
func organizeByCode(groups []repository.CodeGroupRow) []dto.CodeTotal {
	index := make(map[string]int)
	var out []dto.CodeTotal
	for _, g := range groups {
		code := g.KodeSales
		if g.KodeSelected != nil && *g.KodeSelected != "" {
			code = *g.KodeSelected
		}
		i, ok := index[code]
		if !ok {
			i = len(out)
			index[code] = i
			out = append(out, dto.CodeTotal{Kode: code, Nama: g.NamaSA})
		}
		out[i].Total += g.Total
	}
	return out
}

// ── Análisis por mitra ────────────────────────────────────────────────────────

// MitraAnalysis totales por mitra más las tres listas de facetas.
func (uc *UseCase) MitraAnalysis(ctx context.Context) (*dto.MitraAnalysisResponse, error) {
	counts, err := uc.reports.MitraCounts(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("mitra analysis: %w", err)
	}
	if len(counts) == 0 {
		return nil, domain.ErrEmptyResult
	}

	type facetResult struct {
		values []string
		err    error
	}
	bulanCh := make(chan facetResult, 1)
	stoCh := make(chan facetResult, 1)
	mitraCh := make(chan facetResult, 1)
	go func() {
		v, err := uc.reports.DistinctBulanPS(ctx)
		bulanCh <- facetResult{v, err}
	}()
	go func() {
		v, err := uc.reports.DistinctSTO(ctx)
		stoCh <- facetResult{v, err}
	}()
	go func() {
		v, err := uc.reports.DistinctMitra(ctx)
		mitraCh <- facetResult{v, err}
	}()
	bulanRes := <-bulanCh
	stoRes := <-stoCh
	mitraRes := <-mitraCh
	for _, r := range []facetResult{bulanRes, stoRes, mitraRes} {
		if r.err != nil {
			return nil, fmt.Errorf("mitra analysis: facetas: %w", r.err)
		}
	}

	items := make([]dto.MitraTotal, 0, len(counts))
	for _, c := range counts {
		items = append(items, dto.MitraTotal{Mitra: c.Label, Total: c.Total})
	}
	return &dto.MitraAnalysisResponse{
		BulanList:     bulanRes.values,
		StoList:       stoRes.values,
		MitraList:     mitraRes.values,
		MitraAnalysis: items,
	}, nil
}

// ── Charts ────────────────────────────────────────────────────────────────────

// StoChart serie etiqueta/valor por STO; bulan y mitra filtran si no vacíos.
func (uc *UseCase) StoChart(ctx context.Context, bulan, mitra string) (*dto.ChartResponse, error) {
	counts, err := uc.reports.StoCounts(ctx, normalizeFilter(bulan), normalizeFilter(mitra))
	if err != nil {
		return nil, fmt.Errorf("sto chart: %w", err)
	}
	return toChart(counts)
}

// MitraChart serie etiqueta/valor por mitra; sto y bulan filtran si no vacíos.
func (uc *UseCase) MitraChart(ctx context.Context, sto, bulan string) (*dto.ChartResponse, error) {
	counts, err := uc.reports.MitraCounts(ctx, normalizeFilter(sto), normalizeFilter(bulan))
	if err != nil {
		return nil, fmt.Errorf("mitra chart: %w", err)
	}
	return toChart(counts)
}

func toChart(counts []repository.LabelCount) (*dto.ChartResponse, error) {
	if len(counts) == 0 {
		return nil, domain.ErrEmptyResult
	}
	resp := &dto.ChartResponse{
		Labels: make([]string, 0, len(counts)),
		Data:   make([]int, 0, len(counts)),
	}
	for _, c := range counts {
		resp.Labels = append(resp.Labels, c.Label)
		resp.Data = append(resp.Data, c.Total)
	}
	return resp, nil
}

// ── Análisis por día ──────────────────────────────────────────────────────────

// DayAnalysis página de fechas PS con el detalle de sus pedidos. El total y
// el detalle de cada fecha se resuelven en una sola pasada (dos consultas
// por página; el orden (fecha, ORDER_ID) mantiene estable la paginación).
func (uc *UseCase) DayAnalysis(ctx context.Context, page int) (*dto.DayAnalysisResponse, error) {
	if page < 1 {
		page = 1
	}
	dateCounts, totalDates, err := uc.reports.DatePage(ctx, DayPageSize, (page-1)*DayPageSize)
	if err != nil {
		return nil, fmt.Errorf("day analysis: %w", err)
	}
	if len(dateCounts) == 0 {
		return nil, domain.ErrEmptyResult
	}

	dates := make([]time.Time, 0, len(dateCounts))
	for _, dc := range dateCounts {
		dates = append(dates, dc.Date)
	}
	details, err := uc.reports.DetailsByDates(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("day analysis: detalle: %w", err)
	}

	byDate := make(map[string][]dto.DayOrderDetail, len(dateCounts))
	for _, d := range details {
		key := d.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], dto.DayOrderDetail{
			OrderID:      d.OrderID,
			STO:          d.STO,
			CustomerName: d.CustomerName,
			Addon:        d.Addon,
			KodeSales:    d.KodeSales,
			NamaSA:       d.NamaSA,
		})
	}

	items := make([]dto.DayAnalysisItem, 0, len(dateCounts))
	for _, dc := range dateCounts {
		key := dc.Date.Format("2006-01-02")
		items = append(items, dto.DayAnalysisItem{
			TglPS:   key,
			Total:   dc.Total,
			Details: byDate[key],
		})
	}
	return &dto.DayAnalysisResponse{
		Data:       items,
		Pagination: dto.NewPagination(page, DayPageSize, totalDates),
	}, nil
}

// normalizeFilter trata "" y "all" (cualquier caja) como sin filtro.
func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

func selectedLabel(filter string) string {
	if filter == "" {
		return "all"
	}
	return filter
}
