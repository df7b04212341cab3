// Package tracking contiene el motor de seguimiento de metas: la serie
// diaria densificada del mes, el acumulado MTD, el flag "gimmick" por día y
// las métricas de logro contra las metas de crecimiento y RKAP.
package tracking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// Umbral de pedidos por día de la semana para el flag gimmick.
var gimmickThresholds = map[time.Weekday]int{
	time.Monday:    7,
	time.Tuesday:   7,
	time.Wednesday: 7,
	time.Thursday:  7,
	time.Friday:    7,
	time.Saturday:  6,
	time.Sunday:    5,
}

const gimmickFallback = 7

// UseCase motor de seguimiento. now se inyecta para que el cómputo sea una
// función pura de sus entradas (testeable sin mockear el reloj).
type UseCase struct {
	reports repository.ReportRepository
	targets repository.TargetRepository
	now     func() time.Time
}

// NewUseCase construye el motor. now == nil usa time.Now.
func NewUseCase(reports repository.ReportRepository, targets repository.TargetRepository, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{reports: reports, targets: targets, now: now}
}

// Track calcula el seguimiento del (mes, año) pedido contra el mes anterior.
// monthParam acepta número 1..12 o nombre de mes en indonesio (cualquier
// caja); vacío usa el mes actual. year == 0 usa el año actual. viewType
// "table" incluye las series diarias completas de ambos meses.
func (uc *UseCase) Track(ctx context.Context, monthParam string, year int, viewType string) (*dto.TargetTrackingResponse, error) {
	now := uc.now()

	month, err := resolveMonth(monthParam, now)
	if err != nil {
		return nil, err
	}
	if year <= 0 {
		year = now.Year()
	}
	if viewType == "" {
		viewType = "table"
	}

	prevMonth, prevYear := month-1, year
	if prevMonth < 1 {
		prevMonth, prevYear = 12, year-1
	}

	// Serie del mes actual y del anterior en paralelo.
	type seriesResult struct {
		counts []repository.DayCount
		err    error
	}
	currentCh := make(chan seriesResult, 1)
	previousCh := make(chan seriesResult, 1)
	go func() {
		c, err := uc.reports.DailyCounts(ctx, month, year)
		currentCh <- seriesResult{c, err}
	}()
	go func() {
		c, err := uc.reports.DailyCounts(ctx, prevMonth, prevYear)
		previousCh <- seriesResult{c, err}
	}()
	current := <-currentCh
	previous := <-previousCh
	if current.err != nil {
		return nil, fmt.Errorf("tracking: mes actual: %w", current.err)
	}
	if previous.err != nil {
		return nil, fmt.Errorf("tracking: mes anterior: %w", previous.err)
	}

	target, err := uc.targets.Get(ctx, period.MonthName(month), year)
	if err != nil {
		return nil, fmt.Errorf("tracking: meta: %w", err)
	}
	// Sin meta configurada el cómputo sigue con metas cero.
	targetGrowth, targetRkap := decimal.Zero, decimal.Zero
	if target != nil {
		targetGrowth, targetRkap = target.TargetGrowth, target.TargetRkap
	}

	currentSeries, currentTotal := buildSeries(month, year, current.counts)
	previousSeries, previousTotal := buildSeries(prevMonth, prevYear, previous.counts)

	resp := &dto.TargetTrackingResponse{
		PerformanceData: dto.PerformanceData{
			DailyTargetAverage:      dailyAverage(currentTotal, now.Day()),
			MtdRealization:          currentTotal,
			AchievementTargetGrowth: achievementPct(currentTotal, targetGrowth),
			AchievementTargetRkap:   achievementPct(currentTotal, targetRkap),
		},
		CurrentMonth: dto.MonthSeries{
			Month:    period.MonthName(month),
			Year:     year,
			TotalMtd: currentTotal,
		},
		PreviousMonth: dto.MonthSeries{
			Month:    period.MonthName(prevMonth),
			Year:     prevYear,
			TotalMtd: previousTotal,
		},
		Comparison: dto.Comparison{GapMtd: currentTotal - previousTotal},
		ViewType:   viewType,
	}
	if viewType == "table" {
		resp.CurrentMonth.Data = currentSeries
		resp.PreviousMonth.Data = previousSeries
	}
	return resp, nil
}

// SaveTarget valida y persiste la meta de (mes, año). El mes acepta nombre o
// número; se guarda siempre el nombre en minúsculas. created distingue alta
// de actualización (solo cambia el mensaje).
func (uc *UseCase) SaveTarget(ctx context.Context, req dto.SaveTargetRequest) (*dto.TargetDTO, bool, error) {
	if req.Month == "" {
		return nil, false, fmt.Errorf("%w: month es requerido", domain.ErrInvalidInput)
	}
	month, err := resolveMonth(req.Month, uc.now())
	if err != nil {
		return nil, false, err
	}
	year := req.Year
	if year <= 0 {
		return nil, false, fmt.Errorf("%w: year es requerido", domain.ErrInvalidInput)
	}
	if req.TargetGrowth.IsNegative() || req.TargetRkap.IsNegative() {
		return nil, false, fmt.Errorf("%w: las metas no pueden ser negativas", domain.ErrInvalidInput)
	}

	saved, created, err := uc.targets.Upsert(ctx, period.MonthName(month), year, req.TargetGrowth, req.TargetRkap)
	if err != nil {
		return nil, false, fmt.Errorf("guardar meta: %w", err)
	}
	return &dto.TargetDTO{
		ID:           saved.ID,
		Month:        saved.Month,
		Year:         saved.Year,
		TargetGrowth: saved.TargetGrowth,
		TargetRkap:   saved.TargetRkap,
	}, created, nil
}

// resolveMonth acepta número 1..12 o nombre de mes indonesio; vacío usa el
// mes de now. Cualquier otra cosa es domain.ErrInvalidMonth.
func resolveMonth(param string, now time.Time) (int, error) {
	if param == "" {
		return int(now.Month()), nil
	}
	if n, err := strconv.Atoi(param); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, param)
		}
		return n, nil
	}
	if n, ok := period.MonthNumber(param); ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, param)
}

// buildSeries densifica los conteos a exactamente los días del mes (faltantes
// en cero), acumula el MTD y marca el gimmick por día. Devuelve la serie y el
// total del mes.
func buildSeries(month, year int, counts []repository.DayCount) ([]dto.DailyPoint, int) {
	byDay := make(map[int]int, len(counts))
	for _, c := range counts {
		byDay[c.Day] = c.Total
	}

	days := daysInMonth(month, year)
	series := make([]dto.DailyPoint, 0, days)
	cumulative := 0
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		total := byDay[day]
		cumulative += total
		series = append(series, dto.DailyPoint{
			Day:        day,
			Date:       date.Format("2006-01-02"),
			DayName:    date.Weekday().String(),
			Total:      total,
			Cumulative: cumulative,
			Gimmick:    gimmick(date.Weekday(), total),
		})
	}
	return series, cumulative
}

func daysInMonth(month, year int) int {
	// Día 0 del mes siguiente == último día del mes.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func gimmick(weekday time.Weekday, total int) string {
	threshold, ok := gimmickThresholds[weekday]
	if !ok {
		threshold = gimmickFallback
	}
	if total >= threshold {
		return "Achieve"
	}
	return "Not Achieve"
}

// dailyAverage total acumulado entre los días transcurridos del mes real.
func dailyAverage(total, elapsedDays int) decimal.Decimal {
	if elapsedDays <= 0 || total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(int64(elapsedDays))).
		Round(2)
}

// achievementPct total/meta*100 a 2 decimales; nil cuando la meta o el total
// son cero (el JSON lo serializa como null, contrato original del API).
func achievementPct(total int, target decimal.Decimal) *decimal.Decimal {
	if target.IsZero() || total == 0 {
		return nil
	}
	pct := decimal.NewFromInt(int64(total)).
		Div(target).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	return &pct
}
