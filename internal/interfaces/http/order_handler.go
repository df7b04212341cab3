package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/application/orders"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// OrderHandler CRUD e import del feed de pedidos Data PS.
type OrderHandler struct {
	uc  *orders.UseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Índice paginado de pedidos
// @Tags         data-ps
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"             default(1)
// @Param        per_page  query  int  false  "Filas por página"   default(10)
// @Success      200  {object}  dto.Envelope
// @Router       /api/{role}/data-ps [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), c.QueryInt("page", 1), c.QueryInt("per_page", orders.DefaultPerPage))
	if err != nil {
		return respondError(c, h.log, "Error al listar pedidos", err)
	}
	return respondData(c, "Listado de pedidos", resp)
}

// Get pedido por id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	resp, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, "Pedido no encontrado", err)
	}
	return respondData(c, "Pedido", resp)
}

// Create alta manual de un pedido.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, "Error al crear el pedido", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Pedido creado", resp))
}

// Update edición manual de un pedido.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	var req dto.SaveOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Update(c.Context(), id, req)
	if err != nil {
		return respondError(c, h.log, "Error al actualizar el pedido", err)
	}
	return respondData(c, "Pedido actualizado", resp)
}

// Delete elimina un pedido.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido", err.Error()))
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, h.log, "Error al eliminar el pedido", err)
	}
	return respondData(c, "Pedido eliminado", nil)
}

// Truncate borra todos los pedidos.
func (h *OrderHandler) Truncate(c *fiber.Ctx) error {
	if err := h.uc.Truncate(c.Context()); err != nil {
		return respondError(c, h.log, "Error al vaciar la tabla de pedidos", err)
	}
	return respondData(c, "Pedidos eliminados", nil)
}

// Import godoc
// @Summary      Import masivo de pedidos desde xlsx
// @Tags         data-ps
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo xlsx"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/{role}/data-ps/import [post]
func (h *OrderHandler) Import(c *fiber.Ctx) error {
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
		return respondError(c, h.log, "Error en el import de pedidos", err)
	}
	h.log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("import de pedidos completado")
	return respondData(c, "Import completado", result)
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
