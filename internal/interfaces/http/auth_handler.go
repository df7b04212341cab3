package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/auth"
	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// AuthHandler login, registro (solo admin) y logout.
type AuthHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, "Credenciales inválidas", err)
	}
	h.log.Info().Str("username", resp.User.Username).Str("role", resp.Role).Msg("login exitoso")
	return respondData(c, "Sesión iniciada", resp)
}

// Register alta de usuario. La ruta ya viene restringida a admin por
// RequireRole.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido", err.Error()))
	}
	resp, err := h.uc.Register(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, "Error al registrar el usuario", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Usuario registrado", resp))
}

// Logout el token es stateless: el cliente lo descarta. El endpoint existe
// para que el flujo del cliente sea simétrico con login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return respondData(c, "Sesión cerrada", nil)
}
