package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salesops-api/internal/application/auth"
	"github.com/jhoicas/salesops-api/internal/application/dashboard"
	"github.com/jhoicas/salesops-api/internal/application/orders"
	"github.com/jhoicas/salesops-api/internal/application/report"
	"github.com/jhoicas/salesops-api/internal/application/salescodes"
	"github.com/jhoicas/salesops-api/internal/application/tracking"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports    *report.UseCase
	Tracking   *tracking.UseCase
	Dashboard  *dashboard.UseCase
	Orders     *orders.UseCase
	SalesCodes *salescodes.UseCase
	Auth       *auth.UseCase
	PDF        StoReportPDF
	JWTSecret  string
	Log        *logger.Logger
}

// Capacidades de escritura por rol. La lógica de lectura es idéntica para
// los tres roles: el prefijo solo decide alcanzabilidad.
var (
	orderWriters = map[string]bool{entity.RoleAdmin: true, entity.RoleSales: true}
	codeWriters  = map[string]bool{entity.RoleAdmin: true}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	reportHandler := NewReportHandler(deps.Reports, deps.PDF, deps.Log)
	trackingHandler := NewTrackingHandler(deps.Tracking, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Log)
	orderHandler := NewOrderHandler(deps.Orders, deps.Log)
	salesCodeHandler := NewSalesCodeHandler(deps.SalesCodes, deps.Log)
	authHandler := NewAuthHandler(deps.Auth, deps.Log)

	api := app.Group("/api")

	// Público
	api.Get("/landing-page", dashboardHandler.Landing)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Un prefijo por rol montando la misma familia de handlers.
	for _, role := range []string{entity.RoleAdmin, entity.RoleSales, entity.RoleUser} {
		g := api.Group("/"+role, AuthMiddleware(deps.JWTSecret), RequireRole(role))

		g.Get("/dashboard", dashboardHandler.Summary)

		dataPS := g.Group("/data-ps")
		dataPS.Get("/", orderHandler.List)
		dataPS.Get("/sto-list", reportHandler.StoList)
		dataPS.Get("/month-list", reportHandler.BulanList)
		dataPS.Get("/date-list", reportHandler.DateList)
		dataPS.Get("/mitra-list", reportHandler.MitraList)
		dataPS.Get("/analysis/sto", reportHandler.StoAnalysis)
		dataPS.Get("/analysis/month", reportHandler.MonthAnalysis)
		dataPS.Get("/analysis/code", reportHandler.CodeAnalysis)
		dataPS.Get("/analysis/mitra", reportHandler.MitraAnalysis)
		dataPS.Get("/sto/chart", reportHandler.StoChart)
		dataPS.Get("/sto/pie-chart", reportHandler.StoChart)
		dataPS.Get("/mitra/bar-chart", reportHandler.MitraChart)
		dataPS.Get("/mitra/pie-chart", reportHandler.MitraChart)
		dataPS.Get("/day/analysis", reportHandler.DayAnalysis)
		dataPS.Get("/target/tracking", trackingHandler.Track)
		dataPS.Get("/report/sto.pdf", reportHandler.StoReportPDF)

		if orderWriters[role] {
			dataPS.Post("/store", orderHandler.Create)
			dataPS.Post("/import", orderHandler.Import)
			dataPS.Post("/set-target", trackingHandler.SaveTarget)
			dataPS.Put("/:id", orderHandler.Update)
			dataPS.Delete("/:id", orderHandler.Delete)
			dataPS.Delete("/", orderHandler.Truncate)
		}
		// :id al final para no capturar las rutas fijas de arriba.
		dataPS.Get("/:id", orderHandler.Get)

		codes := g.Group("/sales-codes")
		codes.Get("/", salesCodeHandler.List)
		if codeWriters[role] {
			codes.Post("/store", salesCodeHandler.Create)
			codes.Post("/import", salesCodeHandler.Import)
			codes.Put("/update/:id", salesCodeHandler.Update)
			codes.Delete("/:id", salesCodeHandler.Delete)
			codes.Delete("/", salesCodeHandler.Truncate)
		}
		codes.Get("/:id", salesCodeHandler.Get)
	}
}
