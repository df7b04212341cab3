// Package dashboard arma el resumen por rol (totales, widgets de recientes y
// charts) y los totales públicos de la página de inicio.
package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// Valores de STATUS_MESSAGE que alimentan los totales de completados y
// pendientes. La columna es texto libre; estos son los valores del feed.
const (
	statusCompleted = "Completed"
	statusPending   = "Pending"
)

const recentWidgetSize = 5

// UseCase resumen del dashboard. codeCutoff decide qué columna de código se
// muestra en el widget de códigos recientes (renombramiento puntual).
type UseCase struct {
	orders     repository.OrderRepository
	salesCodes repository.SalesCodeRepository
	reports    repository.ReportRepository
	codeCutoff time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orders repository.OrderRepository,
	salesCodes repository.SalesCodeRepository,
	reports repository.ReportRepository,
	codeCutoff time.Time,
) *UseCase {
	return &UseCase{orders: orders, salesCodes: salesCodes, reports: reports, codeCutoff: codeCutoff}
}

// Summary construye el dashboard completo. from/to acotan los totales si no
// son nil; los widgets y charts siempre cubren toda la tabla.
//
// Las consultas independientes corren en paralelo.
func (uc *UseCase) Summary(ctx context.Context, from, to *time.Time) (*dto.DashboardResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	type recentCodesResult struct {
		rows []repository.RecentSalesCode
		err  error
	}
	type recentOrdersResult struct {
		rows []repository.RecentOrder
		err  error
	}
	type chartResult struct {
		rows []repository.LabelCount
		err  error
	}

	codesCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)
	completedCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	recentCodesCh := make(chan recentCodesResult, 1)
	recentOrdersCh := make(chan recentOrdersResult, 1)
	barCh := make(chan chartResult, 1)
	pieCh := make(chan chartResult, 1)

	go func() {
		n, err := uc.salesCodes.Count(ctx, from, to)
		codesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.orders.Count(ctx, "", from, to)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.orders.Count(ctx, statusCompleted, from, to)
		completedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.orders.Count(ctx, statusPending, from, to)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.salesCodes.Recent(ctx, recentWidgetSize, uc.codeCutoff)
		recentCodesCh <- recentCodesResult{rows, err}
	}()
	go func() {
		rows, err := uc.orders.Recent(ctx, recentWidgetSize)
		recentOrdersCh <- recentOrdersResult{rows, err}
	}()
	go func() {
		rows, err := uc.reports.BulanCounts(ctx)
		barCh <- chartResult{rows, err}
	}()
	go func() {
		rows, err := uc.reports.StatusCounts(ctx)
		pieCh <- chartResult{rows, err}
	}()

	codes := <-codesCh
	orders := <-ordersCh
	completed := <-completedCh
	pending := <-pendingCh
	recentCodes := <-recentCodesCh
	recentOrders := <-recentOrdersCh
	bar := <-barCh
	pie := <-pieCh

	for _, r := range []countResult{codes, orders, completed, pending} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: totales: %w", r.err)
		}
	}
	if recentCodes.err != nil {
		return nil, fmt.Errorf("dashboard: códigos recientes: %w", recentCodes.err)
	}
	if recentOrders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos recientes: %w", recentOrders.err)
	}
	if bar.err != nil {
		return nil, fmt.Errorf("dashboard: chart de meses: %w", bar.err)
	}
	if pie.err != nil {
		return nil, fmt.Errorf("dashboard: chart de estados: %w", pie.err)
	}

	resp := &dto.DashboardResponse{
		TotalSalesCodes: codes.n,
		TotalOrders:     orders.n,
		TotalCompleted:  completed.n,
		TotalPending:    pending.n,
		BarChart:        monthChart(bar.rows),
		PieChart:        labelChart(pie.rows),
	}
	for _, c := range recentCodes.rows {
		resp.RecentSalesCodes = append(resp.RecentSalesCodes, dto.RecentSalesCodeDTO{
			Kode: c.Kode, MitraNama: c.MitraNama, CreatedAt: c.CreatedAt,
		})
	}
	for _, o := range recentOrders.rows {
		resp.RecentOrders = append(resp.RecentOrders, dto.RecentOrderDTO{
			OrderID: o.OrderID, CustomerName: o.CustomerName, OrderDate: o.OrderDate,
		})
	}
	return resp, nil
}

// Landing totales públicos de la página de inicio.
func (uc *UseCase) Landing(ctx context.Context) (*dto.LandingResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	ordersCh := make(chan countResult, 1)
	completedCh := make(chan countResult, 1)
	codesCh := make(chan countResult, 1)

	go func() {
		n, err := uc.orders.Count(ctx, "", nil, nil)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.orders.Count(ctx, statusCompleted, nil, nil)
		completedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.salesCodes.Count(ctx, nil, nil)
		codesCh <- countResult{n, err}
	}()

	orders := <-ordersCh
	completed := <-completedCh
	codes := <-codesCh
	for _, r := range []countResult{orders, completed, codes} {
		if r.err != nil {
			return nil, fmt.Errorf("landing: totales: %w", r.err)
		}
	}
	return &dto.LandingResponse{
		TotalOrders:     orders.n,
		TotalCompleted:  completed.n,
		TotalSalesCodes: codes.n,
	}, nil
}

// monthChart arma el chart de barras. Las etiquetas que llegaron como número
// de mes calendario (fallback de Bulan_PS vacío) se traducen a su nombre.
func monthChart(rows []repository.LabelCount) dto.ChartResponse {
	chart := dto.ChartResponse{Labels: []string{}, Data: []int{}}
	for _, r := range rows {
		label := r.Label
		if n, err := strconv.Atoi(label); err == nil {
			if name := period.MonthName(n); name != "" {
				label = name
			}
		}
		if label == "" {
			label = "Sin mes"
		}
		chart.Labels = append(chart.Labels, label)
		chart.Data = append(chart.Data, r.Total)
	}
	return chart
}

func labelChart(rows []repository.LabelCount) dto.ChartResponse {
	chart := dto.ChartResponse{Labels: []string{}, Data: []int{}}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, r.Label)
		chart.Data = append(chart.Data, r.Total)
	}
	return chart
}
