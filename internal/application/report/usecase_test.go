package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria de ReportRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeReports struct {
	stos        []string
	bulans      []string
	mitras      []string
	dates       []time.Time
	stoBulan    []repository.StoBulanCount
	stoCalendar []repository.StoCalendarCount
	monthSto    []repository.MonthStoCount
	codeGroups  []repository.CodeGroupRow
	mitraCounts []repository.LabelCount
	stoCounts   []repository.LabelCount
	bulanCounts []repository.LabelCount
	statuses    []repository.LabelCount
	daily       []repository.DayCount
	datePage    []repository.DateCount
	dateTotal   int
	details     []repository.OrderDayDetail
}

func (f *fakeReports) DistinctSTO(context.Context) ([]string, error)     { return f.stos, nil }
func (f *fakeReports) DistinctBulanPS(context.Context) ([]string, error) { return f.bulans, nil }
func (f *fakeReports) DistinctMitra(context.Context) ([]string, error)   { return f.mitras, nil }
func (f *fakeReports) DistinctDates(context.Context) ([]time.Time, error) {
	return f.dates, nil
}
func (f *fakeReports) StoBulanCounts(_ context.Context, sto, bulan string) ([]repository.StoBulanCount, error) {
	var out []repository.StoBulanCount
	for _, c := range f.stoBulan {
		if (sto == "" || c.STO == sto) && (bulan == "" || c.BulanPS == bulan) {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeReports) StoCalendarCounts(_ context.Context, sto string) ([]repository.StoCalendarCount, error) {
	var out []repository.StoCalendarCount
	for _, c := range f.stoCalendar {
		if sto == "" || c.STO == sto {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeReports) MonthStoCounts(_ context.Context, bulan string) ([]repository.MonthStoCount, error) {
	var out []repository.MonthStoCount
	for _, c := range f.monthSto {
		if bulan == "" || c.BulanPS == bulan {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeReports) CodeGroups(_ context.Context, _, _ string, _ period.Rule) ([]repository.CodeGroupRow, error) {
	return f.codeGroups, nil
}
func (f *fakeReports) MitraCounts(_ context.Context, _, _ string) ([]repository.LabelCount, error) {
	return f.mitraCounts, nil
}
func (f *fakeReports) StoCounts(_ context.Context, _, _ string) ([]repository.LabelCount, error) {
	return f.stoCounts, nil
}
func (f *fakeReports) BulanCounts(context.Context) ([]repository.LabelCount, error) {
	return f.bulanCounts, nil
}
func (f *fakeReports) StatusCounts(context.Context) ([]repository.LabelCount, error) {
	return f.statuses, nil
}
func (f *fakeReports) DailyCounts(_ context.Context, _, _ int) ([]repository.DayCount, error) {
	return f.daily, nil
}
func (f *fakeReports) DatePage(_ context.Context, _, _ int) ([]repository.DateCount, int, error) {
	return f.datePage, f.dateTotal, nil
}
func (f *fakeReports) DetailsByDates(_ context.Context, _ []time.Time) ([]repository.OrderDayDetail, error) {
	return f.details, nil
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Matriz STO × mes
// ──────────────────────────────────────────────────────────────────────────────

func TestStoAnalysis_MatrizPorEtiqueta(t *testing.T) {
	// Escenario: A tiene 2 pedidos en Agustus, B tiene 1 en September.
	fake := &fakeReports{
		stos: []string{"A", "B"},
		stoBulan: []repository.StoBulanCount{
			{STO: "A", BulanPS: "Agustus", Total: 2},
			{STO: "B", BulanPS: "September", Total: 1},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.StoAnalysis(context.Background(), "all", 0)
	require.NoError(t, err)
	require.Len(t, resp.StoAnalysis, 2)

	rowA := resp.StoAnalysis[0]
	assert.Equal(t, "A", rowA.STO)
	assert.Equal(t, 2, rowA.Months["Agustus"])
	assert.Equal(t, 0, rowA.Months["September"])
	assert.Equal(t, 2, rowA.GrandTotal)

	rowB := resp.StoAnalysis[1]
	assert.Equal(t, "B", rowB.STO)
	assert.Equal(t, 1, rowB.Months["September"])
	assert.Equal(t, 1, rowB.GrandTotal)

	assert.Equal(t, "all", resp.SelectedSto)
	assert.Equal(t, "table", resp.ViewType)
	assert.Equal(t, []string{"A", "B"}, resp.StoList)
}

func TestStoAnalysis_EtiquetaDesconocidaSoloSumaAlGranTotal(t *testing.T) {
	fake := &fakeReports{
		stos: []string{"A"},
		stoBulan: []repository.StoBulanCount{
			{STO: "A", BulanPS: "Agustus", Total: 3},
			{STO: "A", BulanPS: "TRIMESTRE-3", Total: 2}, // texto libre fuera del calendario
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.StoAnalysis(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, resp.StoAnalysis, 1)

	row := resp.StoAnalysis[0]
	assert.Equal(t, 3, row.Months["Agustus"])
	assert.Equal(t, 5, row.GrandTotal, "las etiquetas desconocidas cuentan en el gran total")
}

func TestStoAnalysis_VarianteAnual(t *testing.T) {
	fake := &fakeReports{
		stos: []string{"A", "B"},
		stoCalendar: []repository.StoCalendarCount{
			{STO: "A", Year: 2024, Month: 8, Total: 4},
			{STO: "A", Year: 2023, Month: 8, Total: 9}, // otro año: fuera de alcance
			{STO: "B", Year: 0, Month: 0, Total: 7},    // TGL_PS NULL: fila en ceros
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.StoAnalysis(context.Background(), "all", 2024)
	require.NoError(t, err)
	require.Len(t, resp.StoAnalysis, 2)

	rowA := resp.StoAnalysis[0]
	assert.Equal(t, 4, rowA.Months["Agustus"])
	assert.Equal(t, 4, rowA.GrandTotal, "el gran total queda acotado al año pedido")

	rowB := resp.StoAnalysis[1]
	assert.Equal(t, "B", rowB.STO, "el STO aparece aunque no aporte al año")
	assert.Equal(t, 0, rowB.GrandTotal)

	assert.Equal(t, 2024, resp.SelectedYear)
}

func TestStoAnalysis_GranTotalEsSumaDeColumnas(t *testing.T) {
	fake := &fakeReports{
		stos: []string{"A"},
		stoBulan: []repository.StoBulanCount{
			{STO: "A", BulanPS: "Januari", Total: 1},
			{STO: "A", BulanPS: "Mei", Total: 2},
			{STO: "A", BulanPS: "Desember", Total: 3},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.StoAnalysis(context.Background(), "", 0)
	require.NoError(t, err)

	row := resp.StoAnalysis[0]
	sum := 0
	for _, name := range period.Months {
		sum += row.Months[name]
	}
	assert.Equal(t, sum, row.GrandTotal)
}

func TestStoAnalysis_SinDatos(t *testing.T) {
	uc := NewUseCase(&fakeReports{}, period.DefaultRule())

	_, err := uc.StoAnalysis(context.Background(), "all", 0)
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

// ──────────────────────────────────────────────────────────────────────────────
// Análisis por código
// ──────────────────────────────────────────────────────────────────────────────

func TestCodeAnalysis_CodigoSeleccionadoPorRegla(t *testing.T) {
	// El join resolvió kode_agen para el período Agustus: el pedido se
	// atribuye al código del registro, no al Kode_sales crudo.
	fake := &fakeReports{
		stos:   []string{"A"},
		bulans: []string{"Agustus"},
		codeGroups: []repository.CodeGroupRow{
			{BulanPS: "Agustus", STO: "A", KodeSales: "RAW-1", NamaSA: "Budi", KodeSelected: strPtr("AGEN-1"), Total: 2},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.CodeAnalysis(context.Background(), "A", "Agustus")
	require.NoError(t, err)
	require.Len(t, resp.AnalysisPerCode, 1)
	assert.Equal(t, "AGEN-1", resp.AnalysisPerCode[0].Kode)
	assert.Equal(t, "Budi", resp.AnalysisPerCode[0].Nama)
	assert.Equal(t, 2, resp.AnalysisPerCode[0].Total)
}

func TestCodeAnalysis_PeriodoSinReglaCaeAlKodeSales(t *testing.T) {
	fake := &fakeReports{
		stos:   []string{"A"},
		bulans: []string{"Oktober"},
		codeGroups: []repository.CodeGroupRow{
			{BulanPS: "Oktober", STO: "A", KodeSales: "RAW-9", NamaSA: "Sari", KodeSelected: nil, Total: 1},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.CodeAnalysis(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, resp.AnalysisPerCode, 1)
	assert.Equal(t, "RAW-9", resp.AnalysisPerCode[0].Kode)
}

func TestCodeAnalysis_NombreDelPrimerGrupoVisto(t *testing.T) {
	// Dos grupos con el mismo código efectivo y nombres distintos: se
	// conserva el primer nombre y los totales se acumulan.
	fake := &fakeReports{
		stos:   []string{"A"},
		bulans: []string{"Agustus"},
		codeGroups: []repository.CodeGroupRow{
			{BulanPS: "Agustus", STO: "A", KodeSales: "X", NamaSA: "Primero", KodeSelected: strPtr("AGEN-1"), Total: 2},
			{BulanPS: "Agustus", STO: "A", KodeSales: "Y", NamaSA: "Segundo", KodeSelected: strPtr("AGEN-1"), Total: 3},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.CodeAnalysis(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, resp.AnalysisPerCode, 1)
	assert.Equal(t, "Primero", resp.AnalysisPerCode[0].Nama)
	assert.Equal(t, 5, resp.AnalysisPerCode[0].Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mes × STO, mitra y charts
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthAnalysis(t *testing.T) {
	fake := &fakeReports{
		bulans: []string{"Agustus", "September"},
		monthSto: []repository.MonthStoCount{
			{BulanPS: "Agustus", STO: "A", Total: 2},
			{BulanPS: "September", STO: "B", Total: 1},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.MonthAnalysis(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, resp.MonthAnalysis, 2)
	assert.Equal(t, "Agustus", resp.MonthAnalysis[0].Month)
	assert.Equal(t, "A", resp.MonthAnalysis[0].Sto)
	assert.Equal(t, []string{"Agustus", "September"}, resp.BulanList)
}

func TestMitraAnalysis(t *testing.T) {
	fake := &fakeReports{
		bulans:      []string{"Agustus"},
		stos:        []string{"A"},
		mitras:      []string{"MITRA-1", "MITRA-2"},
		mitraCounts: []repository.LabelCount{{Label: "MITRA-1", Total: 4}, {Label: "MITRA-2", Total: 1}},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.MitraAnalysis(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.MitraAnalysis, 2)
	assert.Equal(t, "MITRA-1", resp.MitraAnalysis[0].Mitra)
	assert.Equal(t, 4, resp.MitraAnalysis[0].Total)
	assert.Equal(t, []string{"MITRA-1", "MITRA-2"}, resp.MitraList)
}

func TestStoChart_ArreglosParalelos(t *testing.T) {
	fake := &fakeReports{
		stoCounts: []repository.LabelCount{{Label: "A", Total: 3}, {Label: "B", Total: 1}},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.StoChart(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, resp.Labels)
	assert.Equal(t, []int{3, 1}, resp.Data)
}

func TestStoChart_SinDatos(t *testing.T) {
	uc := NewUseCase(&fakeReports{}, period.DefaultRule())

	_, err := uc.StoChart(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

// ──────────────────────────────────────────────────────────────────────────────
// Análisis por día
// ──────────────────────────────────────────────────────────────────────────────

func TestDayAnalysis_AgrupaDetallePorFecha(t *testing.T) {
	d1 := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC)
	fake := &fakeReports{
		datePage:  []repository.DateCount{{Date: d1, Total: 2}, {Date: d2, Total: 1}},
		dateTotal: 20,
		details: []repository.OrderDayDetail{
			{Date: d1, OrderID: "ORD-1", STO: "A", CustomerName: "Andi"},
			{Date: d1, OrderID: "ORD-2", STO: "A", CustomerName: "Lina"},
			{Date: d2, OrderID: "ORD-3", STO: "B", CustomerName: "Rudi"},
		},
	}
	uc := NewUseCase(fake, period.DefaultRule())

	resp, err := uc.DayAnalysis(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, "2024-08-01", resp.Data[0].TglPS)
	assert.Equal(t, 2, resp.Data[0].Total)
	require.Len(t, resp.Data[0].Details, 2)
	assert.Equal(t, "ORD-1", resp.Data[0].Details[0].OrderID)

	assert.Equal(t, "2024-08-02", resp.Data[1].TglPS)
	require.Len(t, resp.Data[1].Details, 1)

	assert.Equal(t, 1, resp.Pagination.CurrentPage)
	assert.Equal(t, DayPageSize, resp.Pagination.PerPage)
	assert.Equal(t, 20, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.LastPage)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados de facetas
// ──────────────────────────────────────────────────────────────────────────────

func TestStoList_VaciaDevuelveSenalExplicita(t *testing.T) {
	uc := NewUseCase(&fakeReports{}, period.DefaultRule())

	_, err := uc.StoList(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

func TestDateList_Formateadas(t *testing.T) {
	fake := &fakeReports{dates: []time.Time{
		time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	}}
	uc := NewUseCase(fake, period.DefaultRule())

	dates, err := uc.DateList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-08-01", "2024-09-15"}, dates)
}
