package tracking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeDaily implementa solo DailyCounts; el resto del ReportRepository no se
// usa en este motor.
type fakeDaily struct {
	repository.ReportRepository
	counts map[[2]int][]repository.DayCount // clave (mes, año)
}

func (f *fakeDaily) DailyCounts(_ context.Context, month, year int) ([]repository.DayCount, error) {
	return f.counts[[2]int{month, year}], nil
}

type fakeTargets struct {
	stored map[string]*entity.TargetGrowth
	upserts int
}

func targetKey(month string, year int) string {
	return fmt.Sprintf("%s|%d", month, year)
}

func (f *fakeTargets) Get(_ context.Context, month string, year int) (*entity.TargetGrowth, error) {
	return f.stored[targetKey(month, year)], nil
}

func (f *fakeTargets) Upsert(_ context.Context, month string, year int, growth, rkap decimal.Decimal) (*entity.TargetGrowth, bool, error) {
	f.upserts++
	key := targetKey(month, year)
	created := f.stored[key] == nil
	if f.stored == nil {
		f.stored = map[string]*entity.TargetGrowth{}
	}
	f.stored[key] = &entity.TargetGrowth{
		ID: int64(len(f.stored) + 1), Month: month, Year: year,
		TargetGrowth: growth, TargetRkap: rkap,
	}
	return f.stored[key], created, nil
}

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

// agosto 2024: 31 días; el 1 de agosto de 2024 fue jueves.
var now2024 = time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)

func newEngine(daily map[[2]int][]repository.DayCount, targets *fakeTargets) *UseCase {
	if targets == nil {
		targets = &fakeTargets{}
	}
	return NewUseCase(&fakeDaily{counts: daily}, targets, fixedNow(now2024))
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie densificada y acumulado
// ──────────────────────────────────────────────────────────────────────────────

func TestTrack_SerieDensificadaCompleta(t *testing.T) {
	daily := map[[2]int][]repository.DayCount{
		{8, 2024}: {{Day: 1, Total: 3}, {Day: 5, Total: 7}},
	}
	uc := newEngine(daily, nil)

	resp, err := uc.Track(context.Background(), "8", 2024, "table")
	require.NoError(t, err)

	// Agosto tiene 31 días: la serie nunca omite un día.
	require.Len(t, resp.CurrentMonth.Data, 31)
	// Julio (mes anterior) igual, aunque no tenga datos.
	require.Len(t, resp.PreviousMonth.Data, 31)

	// Acumulado = prefijo no decreciente de la columna diaria.
	cumulative := 0
	for i, p := range resp.CurrentMonth.Data {
		assert.Equal(t, i+1, p.Day)
		assert.GreaterOrEqual(t, p.Total, 0)
		cumulative += p.Total
		assert.Equal(t, cumulative, p.Cumulative)
	}
	assert.Equal(t, 10, resp.CurrentMonth.TotalMtd)
}

func TestTrack_SerieDeFebreroBisiesto(t *testing.T) {
	daily := map[[2]int][]repository.DayCount{
		{2, 2024}: {{Day: 29, Total: 4}},
	}
	uc := newEngine(daily, nil)

	resp, err := uc.Track(context.Background(), "2", 2024, "table")
	require.NoError(t, err)

	// Febrero 2024 es bisiesto: 29 entradas exactas, ni 28 ni 30.
	require.Len(t, resp.CurrentMonth.Data, 29)
	last := resp.CurrentMonth.Data[28]
	assert.Equal(t, 29, last.Day)
	assert.Equal(t, "2024-02-29", last.Date)
	assert.Equal(t, 4, last.Total)
	assert.Equal(t, 4, last.Cumulative)
	// Enero (mes anterior) conserva sus 31 días.
	require.Len(t, resp.PreviousMonth.Data, 31)

	// Y un febrero común queda en 28.
	resp, err = uc.Track(context.Background(), "Februari", 2023, "table")
	require.NoError(t, err)
	require.Len(t, resp.CurrentMonth.Data, 28)
}

func TestTrack_ViewTypeChartOmiteSeries(t *testing.T) {
	uc := newEngine(nil, nil)

	resp, err := uc.Track(context.Background(), "8", 2024, "chart")
	require.NoError(t, err)
	assert.Nil(t, resp.CurrentMonth.Data)
	assert.Nil(t, resp.PreviousMonth.Data)
	assert.Equal(t, "chart", resp.ViewType)
}

func TestTrack_WraparoundDeEnero(t *testing.T) {
	uc := newEngine(nil, nil)

	resp, err := uc.Track(context.Background(), "Januari", 2025, "table")
	require.NoError(t, err)
	assert.Equal(t, "Januari", resp.CurrentMonth.Month)
	assert.Equal(t, 2025, resp.CurrentMonth.Year)
	assert.Equal(t, "Desember", resp.PreviousMonth.Month)
	assert.Equal(t, 2024, resp.PreviousMonth.Year)
}

func TestTrack_MesInvalido(t *testing.T) {
	uc := newEngine(nil, nil)

	_, err := uc.Track(context.Background(), "Acuario", 2024, "table")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, err = uc.Track(context.Background(), "13", 2024, "table")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestTrack_DefaultsDeMesYAno(t *testing.T) {
	uc := newEngine(nil, nil)

	resp, err := uc.Track(context.Background(), "", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "Agustus", resp.CurrentMonth.Month, "mes por defecto: el de now")
	assert.Equal(t, 2024, resp.CurrentMonth.Year)
	assert.Equal(t, "table", resp.ViewType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gimmick
// ──────────────────────────────────────────────────────────────────────────────

func TestTrack_GimmickPorUmbralSemanal(t *testing.T) {
	// Agosto 2024: día 3 sábado, día 4 domingo, día 7 miércoles.
	daily := map[[2]int][]repository.DayCount{
		{8, 2024}: {
			{Day: 3, Total: 6}, // sábado, umbral 6
			{Day: 4, Total: 5}, // domingo, umbral 5
			{Day: 7, Total: 6}, // miércoles, umbral 7
			{Day: 10, Total: 5}, // sábado, umbral 6
		},
	}
	uc := newEngine(daily, nil)

	resp, err := uc.Track(context.Background(), "8", 2024, "table")
	require.NoError(t, err)

	series := resp.CurrentMonth.Data
	assert.Equal(t, "Saturday", series[2].DayName)
	assert.Equal(t, "Achieve", series[2].Gimmick)
	assert.Equal(t, "Achieve", series[3].Gimmick)
	assert.Equal(t, "Not Achieve", series[6].Gimmick)
	assert.Equal(t, "Not Achieve", series[9].Gimmick)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas agregadas
// ──────────────────────────────────────────────────────────────────────────────

func TestTrack_MetricasConMeta(t *testing.T) {
	daily := map[[2]int][]repository.DayCount{
		{8, 2024}: {{Day: 1, Total: 30}},
		{7, 2024}: {{Day: 1, Total: 12}},
	}
	targets := &fakeTargets{stored: map[string]*entity.TargetGrowth{
		targetKey("Agustus", 2024): {
			Month: "agustus", Year: 2024,
			TargetGrowth: decimal.NewFromInt(120),
			TargetRkap:   decimal.NewFromInt(60),
		},
	}}
	uc := newEngine(daily, targets)

	resp, err := uc.Track(context.Background(), "8", 2024, "chart")
	require.NoError(t, err)

	perf := resp.PerformanceData
	assert.Equal(t, 30, perf.MtdRealization)
	// 30 pedidos / 15 días transcurridos (now fijo al 15 de agosto).
	assert.True(t, decimal.NewFromInt(2).Equal(perf.DailyTargetAverage))
	// 30/120*100 = 25.00 ; 30/60*100 = 50.00
	require.NotNil(t, perf.AchievementTargetGrowth)
	assert.True(t, decimal.NewFromInt(25).Equal(*perf.AchievementTargetGrowth))
	require.NotNil(t, perf.AchievementTargetRkap)
	assert.True(t, decimal.NewFromInt(50).Equal(*perf.AchievementTargetRkap))
	// gap = 30 - 12
	assert.Equal(t, 18, resp.Comparison.GapMtd)
}

func TestTrack_SinMetaLosPorcentajesSonNull(t *testing.T) {
	daily := map[[2]int][]repository.DayCount{
		{8, 2024}: {{Day: 1, Total: 30}},
	}
	uc := newEngine(daily, nil)

	resp, err := uc.Track(context.Background(), "8", 2024, "chart")
	require.NoError(t, err)
	assert.Nil(t, resp.PerformanceData.AchievementTargetGrowth, "meta cero: sin división")
	assert.Nil(t, resp.PerformanceData.AchievementTargetRkap)
}

func TestTrack_SinRealizacionLosPorcentajesSonNull(t *testing.T) {
	targets := &fakeTargets{stored: map[string]*entity.TargetGrowth{
		targetKey("Agustus", 2024): {
			Month: "agustus", Year: 2024,
			TargetGrowth: decimal.NewFromInt(100),
			TargetRkap:   decimal.NewFromInt(100),
		},
	}}
	uc := newEngine(nil, targets)

	resp, err := uc.Track(context.Background(), "8", 2024, "chart")
	require.NoError(t, err)
	assert.Nil(t, resp.PerformanceData.AchievementTargetGrowth)
	assert.True(t, resp.PerformanceData.DailyTargetAverage.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardar meta
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveTarget_CreaYActualiza(t *testing.T) {
	targets := &fakeTargets{}
	uc := newEngine(nil, targets)

	req := dto.SaveTargetRequest{
		Month: "Januari", Year: 2025,
		TargetGrowth: decimal.NewFromInt(100),
		TargetRkap:   decimal.NewFromInt(80),
	}
	saved, created, err := uc.SaveTarget(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Januari", saved.Month)

	// Idempotente: el segundo guardado actualiza la misma fila.
	saved2, created2, err := uc.SaveTarget(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created2)
	assert.True(t, saved.TargetGrowth.Equal(saved2.TargetGrowth))
	assert.Equal(t, 2, targets.upserts)
}

func TestSaveTarget_Validaciones(t *testing.T) {
	uc := newEngine(nil, nil)

	_, _, err := uc.SaveTarget(context.Background(), dto.SaveTargetRequest{Year: 2025})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.SaveTarget(context.Background(), dto.SaveTargetRequest{Month: "Nomes", Year: 2025})
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, _, err = uc.SaveTarget(context.Background(), dto.SaveTargetRequest{Month: "Januari"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.SaveTarget(context.Background(), dto.SaveTargetRequest{
		Month: "Januari", Year: 2025, TargetGrowth: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El motor usa period.MonthName para persistir: verificación de contrato.
func TestSaveTarget_GuardaNombreDeMes(t *testing.T) {
	targets := &fakeTargets{}
	uc := newEngine(nil, targets)

	saved, _, err := uc.SaveTarget(context.Background(), dto.SaveTargetRequest{
		Month: "12", Year: 2025, TargetGrowth: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, period.MonthName(12), saved.Month)
}
