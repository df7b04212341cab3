// Package pdf genera el reporte STO×mes en PDF (A4 horizontal): una fila por
// STO con sus doce columnas de mes y el gran total, el mismo dato que el
// endpoint de tabla.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain/period"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 8, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Grilla de 14 celdas: STO + 12 meses + gran total.
const gridSize = 14

// StoReportGenerator genera el PDF de la matriz STO×mes usando Maroto v2.
type StoReportGenerator struct{}

// NewStoReportGenerator construye el generador.
func NewStoReportGenerator() *StoReportGenerator { return &StoReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *StoReportGenerator) Generate(_ context.Context, report *dto.StoAnalysisResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(gridSize).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("Reporte Data PS por STO", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow())
	for _, r := range report.StoAnalysis {
		m.AddRows(dataRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte STO: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(report *dto.StoAnalysisResponse) core.Row {
	title := "Data PS por STO"
	if report.SelectedYear > 0 {
		title = fmt.Sprintf("%s — %d", title, report.SelectedYear)
	}
	subtitle := "STO: " + report.SelectedSto

	return row.New(12).Add(
		col.New(gridSize).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary}),
			text.New(subtitle, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func headerRow() core.Row {
	cols := make([]core.Col, 0, gridSize)
	cols = append(cols, headerCell("STO"))
	for _, name := range period.Months {
		// Tres letras para que quepan las doce columnas.
		cols = append(cols, headerCell(name[:3]))
	}
	cols = append(cols, headerCell("Total"))
	return row.New(6).Add(cols...)
}

func headerCell(label string) core.Col {
	return col.New(1).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorPrimary,
	}))
}

func dataRow(r dto.StoAnalysisRow) core.Row {
	cols := make([]core.Col, 0, gridSize)
	cols = append(cols, col.New(1).Add(text.New(r.STO, props.Text{Size: 7})))
	for _, name := range period.Months {
		cols = append(cols, numberCell(r.Months[name], false))
	}
	cols = append(cols, numberCell(r.GrandTotal, true))
	return row.New(5).Add(cols...)
}

func numberCell(n int, bold bool) core.Col {
	p := props.Text{Size: 7, Align: align.Center}
	if bold {
		p.Style = fontstyle.Bold
	}
	return col.New(1).Add(text.New(strconv.Itoa(n), p))
}

func footerRow() core.Row {
	generated := "Generado: " + time.Now().Format("02/01/2006 15:04")
	return row.New(5).Add(
		col.New(gridSize).Add(text.New(generated, props.Text{Size: 6, Color: colorGray})),
	)
}
