package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/application/salescodes"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// SalesCodeHandler CRUD e import de códigos de agente.
type SalesCodeHandler struct {
	uc  *salescodes.UseCase
	log *logger.Logger
}

// NewSalesCodeHandler construye el handler.
func NewSalesCodeHandler(uc *salescodes.UseCase, log *logger.Logger) *SalesCodeHandler {
	return &SalesCodeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Índice paginado de códigos
// @Tags         sales-codes
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/sales-codes [get]
func (h *SalesCodeHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, h.log, "Error al listar códigos", err)
	}
	return respondData(c, "Listado de códigos", resp)
}

// Get código por id.
func (h *SalesCodeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	resp, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, "Código no encontrado", err)
	}
	return respondData(c, "Código", resp)
}

// Create alta de una asignación.
func (h *SalesCodeHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveSalesCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, "Error al crear el código", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Código creado", resp))
}

// Update edición de una asignación.
func (h *SalesCodeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	var req dto.SaveSalesCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Update(c.Context(), id, req)
	if err != nil {
		return respondError(c, h.log, "Error al actualizar el código", err)
	}
	return respondData(c, "Código actualizado", resp)
}

// Delete elimina una asignación.
func (h *SalesCodeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, h.log, "Error al eliminar el código", err)
	}
	return respondData(c, "Código eliminado", nil)
}

// Truncate borra todas las asignaciones.
func (h *SalesCodeHandler) Truncate(c *fiber.Ctx) error {
	if err := h.uc.Truncate(c.Context()); err != nil {
		return respondError(c, h.log, "Error al vaciar la tabla de códigos", err)
	}
	return respondData(c, "Códigos eliminados", nil)
}

// Import import masivo de códigos desde xlsx.
func (h *SalesCodeHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Archivo requerido", "campo multipart \"file\""))
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Archivo ilegible", err.Error()))
	}
	defer f.Close()

	result, err := h.uc.Import(c.Context(), f)
	if err != nil {
		return respondError(c, h.log, "Error en el import de códigos", err)
	}
	h.log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("import de códigos completado")
	return respondData(c, "Import completado", result)
}
