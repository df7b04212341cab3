package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/application/report"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// StoReportPDF genera el PDF de la matriz STO×mes.
type StoReportPDF interface {
	Generate(ctx context.Context, report *dto.StoAnalysisResponse) ([]byte, error)
}

// ReportHandler expone el motor de agregación. Un solo handler sirve los tres
// prefijos de rol; el rol solo decide qué rutas son alcanzables.
type ReportHandler struct {
	uc  *report.UseCase
	pdf StoReportPDF
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, pdf StoReportPDF, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, log: log}
}

// StoList godoc
// @Summary      Listar STOs únicos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/sto-list [get]
func (h *ReportHandler) StoList(c *fiber.Ctx) error {
	values, err := h.uc.StoList(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error al listar STOs", err)
	}
	return respondData(c, "Listado de STO", values)
}

// BulanList listado de valores únicos de Bulan_PS.
func (h *ReportHandler) BulanList(c *fiber.Ctx) error {
	values, err := h.uc.BulanList(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error al listar meses", err)
	}
	return respondData(c, "Listado de meses", values)
}

// MitraList listado de valores únicos de Mitra.
func (h *ReportHandler) MitraList(c *fiber.Ctx) error {
	values, err := h.uc.MitraList(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error al listar mitras", err)
	}
	return respondData(c, "Listado de mitras", values)
}

// DateList listado de fechas PS únicas.
func (h *ReportHandler) DateList(c *fiber.Ctx) error {
	values, err := h.uc.DateList(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error al listar fechas", err)
	}
	return respondData(c, "Listado de fechas", values)
}

// StoAnalysis godoc
// @Summary      Matriz STO por mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        sto   query  string  false  "Filtro de STO"  default(all)
// @Param        year  query  int     false  "Variante anual por TGL_PS"
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/analysis/sto [get]
func (h *ReportHandler) StoAnalysis(c *fiber.Ctx) error {
	sto := c.Query("sto", "all")
	year := c.QueryInt("year", 0)
	resp, err := h.uc.StoAnalysis(c.Context(), sto, year)
	if err != nil {
		return respondError(c, h.log, "Error en el análisis por STO", err)
	}
	return respondData(c, "Análisis por STO", resp)
}

// MonthAnalysis pares (mes, STO) con totales.
func (h *ReportHandler) MonthAnalysis(c *fiber.Ctx) error {
	resp, err := h.uc.MonthAnalysis(c.Context(), c.Query("month"))
	if err != nil {
		return respondError(c, h.log, "Error en el análisis por mes", err)
	}
	return respondData(c, "Análisis por mes", resp)
}

// CodeAnalysis totales por código efectivo de agente.
func (h *ReportHandler) CodeAnalysis(c *fiber.Ctx) error {
	resp, err := h.uc.CodeAnalysis(c.Context(), c.Query("sto"), c.Query("month"))
	if err != nil {
		return respondError(c, h.log, "Error en el análisis por código", err)
	}
	return respondData(c, "Análisis por código", resp)
}

// MitraAnalysis totales por mitra con facetas.
func (h *ReportHandler) MitraAnalysis(c *fiber.Ctx) error {
	resp, err := h.uc.MitraAnalysis(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error en el análisis por mitra", err)
	}
	return respondData(c, "Análisis por mitra", resp)
}

// StoChart serie por STO (barras o pie, mismos datos).
func (h *ReportHandler) StoChart(c *fiber.Ctx) error {
	resp, err := h.uc.StoChart(c.Context(), c.Query("month"), c.Query("mitra"))
	if err != nil {
		return respondError(c, h.log, "Error en el chart por STO", err)
	}
	return respondData(c, "Chart por STO", resp)
}

// MitraChart serie por mitra (barras o pie, mismos datos).
func (h *ReportHandler) MitraChart(c *fiber.Ctx) error {
	resp, err := h.uc.MitraChart(c.Context(), c.Query("sto"), c.Query("month"))
	if err != nil {
		return respondError(c, h.log, "Error en el chart por mitra", err)
	}
	return respondData(c, "Chart por mitra", resp)
}

// DayAnalysis godoc
// @Summary      Análisis por día (paginado, 9 fechas por página)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/day/analysis [get]
func (h *ReportHandler) DayAnalysis(c *fiber.Ctx) error {
	resp, err := h.uc.DayAnalysis(c.Context(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, h.log, "Error en el análisis por día", err)
	}
	return respondData(c, "Análisis por día", resp)
}

// StoReportPDF descarga la matriz STO×mes como PDF A4.
func (h *ReportHandler) StoReportPDF(c *fiber.Ctx) error {
	sto := c.Query("sto", "all")
	year := c.QueryInt("year", 0)
	data, err := h.uc.StoAnalysis(c.Context(), sto, year)
	if err != nil {
		return respondError(c, h.log, "Error al generar el reporte", err)
	}
	bytes, err := h.pdf.Generate(c.Context(), data)
	if err != nil {
		return respondError(c, h.log, "Error al generar el PDF", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="data-ps-sto.pdf"`)
	return c.Send(bytes)
}
