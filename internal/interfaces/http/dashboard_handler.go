package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dashboard"
	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// DashboardHandler expone el resumen por rol y la página de inicio pública.
type DashboardHandler struct {
	uc  *dashboard.UseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Dashboard del rol
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Acota los totales (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Acota los totales (YYYY-MM-DD)"
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	from, err := queryDate(c, "start_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Fecha inválida", err.Error()))
	}
	to, err := queryDate(c, "end_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Fecha inválida", err.Error()))
	}
	if to != nil {
		// Fin de día inclusivo.
		end := to.Add(24*time.Hour - time.Second)
		to = &end
	}

	resp, err := h.uc.Summary(c.Context(), from, to)
	if err != nil {
		return respondError(c, h.log, "Error al armar el dashboard", err)
	}
	return respondData(c, "Dashboard", resp)
}

// Landing totales públicos de la página de inicio.
func (h *DashboardHandler) Landing(c *fiber.Ctx) error {
	resp, err := h.uc.Landing(c.Context())
	if err != nil {
		return respondError(c, h.log, "Error al armar la página de inicio", err)
	}
	return respondData(c, "Página de inicio", resp)
}

func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
