package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// respondData 200 con sobre de éxito.
func respondData(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.OK(message, data))
}

// respondError traduce un error de dominio al sobre uniforme.
//
// Convención de estados: 400 entrada inválida, 401/403 auth, 404 entidad
// inexistente por id, 409 duplicados, 500 el resto. Las listas vacías
// (domain.ErrEmptyResult) no son errores: 200 con success:false.
func respondError(c *fiber.Ctx, log *logger.Logger, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return c.JSON(dto.Empty("No se encontraron datos"))
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidMonth):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(message, err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(message, err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrDuplicateOrderID):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(message, err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(message, err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(message, err.Error()))
	default:
		// Herramienta interna: el texto del error ayuda al operador.
		log.Error().Err(err).Str("path", c.Path()).Msg(message)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(message, err.Error()))
	}
}
