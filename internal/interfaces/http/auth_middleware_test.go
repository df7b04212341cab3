package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/salesops-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/salesops-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "tester"
	testIssuer    = "salesops-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(body) > 0 {
		_ = json.Unmarshal(body, &decoded)
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp("admin")

	resp, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("admin")

	resp, _ := doRequest(t, app, "Token abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp("admin")

	resp, _ := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp("admin")

	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUsername, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp("admin")

	resp, body := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitido(t *testing.T) {
	for _, role := range []string{"admin", "sales", "user"} {
		app := buildTestApp(role)
		resp, _ := doRequest(t, app, tokenForRole(t, role))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol %s debe pasar su propio prefijo", role)
	}
}

func TestRequireRole_RolAjenoEsForbidden(t *testing.T) {
	app := buildTestApp("admin")

	resp, body := doRequest(t, app, tokenForRole(t, "user"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp("admin", "sales")

	resp, _ := doRequest(t, app, tokenForRole(t, "sales"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, tokenForRole(t, "user"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
