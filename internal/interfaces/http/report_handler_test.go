package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salesops-api/internal/application/auth"
	"github.com/jhoicas/salesops-api/internal/application/dashboard"
	"github.com/jhoicas/salesops-api/internal/application/orders"
	"github.com/jhoicas/salesops-api/internal/application/report"
	"github.com/jhoicas/salesops-api/internal/application/salescodes"
	"github.com/jhoicas/salesops-api/internal/application/tracking"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
	apphttp "github.com/jhoicas/salesops-api/internal/interfaces/http"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio para el stack completo (router + handlers + use cases)
// ──────────────────────────────────────────────────────────────────────────────

// stubReports implementa las consultas que tocan estos tests; el resto queda
// en la interfaz embebida (panic si algo inesperado la llama).
type stubReports struct {
	repository.ReportRepository
	stos     []string
	stoBulan []repository.StoBulanCount
	daily    []repository.DayCount
}

func (s *stubReports) DistinctSTO(ctx context.Context) ([]string, error) { return s.stos, nil }
func (s *stubReports) StoBulanCounts(ctx context.Context, sto, bulan string) ([]repository.StoBulanCount, error) {
	return s.stoBulan, nil
}
func (s *stubReports) DailyCounts(ctx context.Context, month, year int) ([]repository.DayCount, error) {
	return s.daily, nil
}

type stubTargets struct {
	target *entity.TargetGrowth
}

func (s *stubTargets) Get(ctx context.Context, month string, year int) (*entity.TargetGrowth, error) {
	return s.target, nil
}

func (s *stubTargets) Upsert(ctx context.Context, month string, year int, growth, rkap decimal.Decimal) (*entity.TargetGrowth, bool, error) {
	s.target = &entity.TargetGrowth{ID: 1, Month: month, Year: year, TargetGrowth: growth, TargetRkap: rkap}
	return s.target, true, nil
}

func buildAPI(t *testing.T, reports *stubReports) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	now := func() time.Time { return time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC) }

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Reports:    report.NewUseCase(reports, period.DefaultRule()),
		Tracking:   tracking.NewUseCase(reports, &stubTargets{}, now),
		Dashboard:  dashboard.NewUseCase(nil, nil, reports, time.Time{}),
		Orders:     orders.NewUseCase(nil, nil),
		SalesCodes: salescodes.NewUseCase(nil, nil),
		Auth:       auth.NewUseCase(nil, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return app
}

func apiGet(t *testing.T, app *fiber.App, path, token string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &decoded))
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobre uniforme y convención de vacíos
// ──────────────────────────────────────────────────────────────────────────────

func TestStoAnalysisEndpoint_SobreDeExito(t *testing.T) {
	reports := &stubReports{
		stos: []string{"A", "B"},
		stoBulan: []repository.StoBulanCount{
			{STO: "A", BulanPS: "Agustus", Total: 2},
			{STO: "B", BulanPS: "September", Total: 1},
		},
	}
	app := buildAPI(t, reports)

	resp, body := apiGet(t, app, "/api/admin/data-ps/analysis/sto", tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	rows, ok := data["stoAnalysis"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 2)
	assert.Equal(t, "all", data["selectedSto"])
}

func TestStoAnalysisEndpoint_VacioEs200SuccessFalse(t *testing.T) {
	app := buildAPI(t, &stubReports{})

	resp, body := apiGet(t, app, "/api/admin/data-ps/analysis/sto", tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "lista vacía no es un error HTTP")
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestTrackingEndpoint_MesInvalidoEs400(t *testing.T) {
	app := buildAPI(t, &stubReports{})

	resp, body := apiGet(t, app, "/api/sales/data-ps/target/tracking?month=Acuario", tokenForRole(t, "sales"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestTrackingEndpoint_SerieCompleta(t *testing.T) {
	reports := &stubReports{daily: []repository.DayCount{{Day: 1, Total: 5}}}
	app := buildAPI(t, reports)

	resp, body := apiGet(t, app, "/api/user/data-ps/target/tracking?month=8&year=2024", tokenForRole(t, "user"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	current := data["current_month"].(map[string]any)
	series := current["data"].([]any)
	assert.Len(t, series, 31, "agosto siempre densifica a 31 días")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcanzabilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestRutas_MismaLogicaEnLosTresPrefijos(t *testing.T) {
	reports := &stubReports{
		stos:     []string{"A"},
		stoBulan: []repository.StoBulanCount{{STO: "A", BulanPS: "Agustus", Total: 1}},
	}
	app := buildAPI(t, reports)

	for _, role := range []string{"admin", "sales", "user"} {
		resp, body := apiGet(t, app, "/api/"+role+"/data-ps/analysis/sto", tokenForRole(t, role))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "prefijo %s", role)
		assert.Equal(t, true, body["success"], "prefijo %s", role)
	}
}

func TestRutas_PrefijoAjenoEsForbidden(t *testing.T) {
	app := buildAPI(t, &stubReports{stos: []string{"A"}})

	resp, _ := apiGet(t, app, "/api/admin/data-ps/analysis/sto", tokenForRole(t, "user"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRutas_EscrituraNoRegistradaParaUser(t *testing.T) {
	app := buildAPI(t, &stubReports{})

	// El prefijo user no monta las rutas de escritura.
	req := httptest.NewRequest(http.MethodPost, "/api/user/data-ps/set-target", nil)
	req.Header.Set("Authorization", tokenForRole(t, "user"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
