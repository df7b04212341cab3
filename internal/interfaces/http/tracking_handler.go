package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/application/tracking"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// TrackingHandler expone el seguimiento de metas y el guardado de metas.
type TrackingHandler struct {
	uc  *tracking.UseCase
	log *logger.Logger
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(uc *tracking.UseCase, log *logger.Logger) *TrackingHandler {
	return &TrackingHandler{uc: uc, log: log}
}

// Track godoc
// @Summary      Seguimiento de metas del mes
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        month      query  string  false  "Mes (1..12 o nombre indonesio); defecto el actual"
// @Param        year       query  int     false  "Año; defecto el actual"
// @Param        view_type  query  string  false  "table incluye las series diarias"  default(table)
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/target/tracking [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	resp, err := h.uc.Track(c.Context(), c.Query("month"), c.QueryInt("year", 0), c.Query("view_type", "table"))
	if err != nil {
		return respondError(c, h.log, "Error en el seguimiento de metas", err)
	}
	return respondData(c, "Seguimiento de metas", resp)
}

// SaveTarget godoc
// @Summary      Guardar meta mensual (upsert)
// @Tags         tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveTargetRequest  true  "Meta del mes"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/set-target [post]
func (h *TrackingHandler) SaveTarget(c *fiber.Ctx) error {
	var req dto.SaveTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	saved, created, err := h.uc.SaveTarget(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, "Error al guardar la meta", err)
	}
	message := "Meta actualizada"
	if created {
		message = "Meta creada"
	}
	return respondData(c, message, saved)
}
