package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/salesops-api/internal/application/auth"
	"github.com/jhoicas/salesops-api/internal/application/dashboard"
	"github.com/jhoicas/salesops-api/internal/application/orders"
	"github.com/jhoicas/salesops-api/internal/application/report"
	"github.com/jhoicas/salesops-api/internal/application/salescodes"
	"github.com/jhoicas/salesops-api/internal/application/tracking"
	"github.com/jhoicas/salesops-api/internal/domain/period"
	"github.com/jhoicas/salesops-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/salesops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/salesops-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/salesops-api/internal/interfaces/http"
	"github.com/jhoicas/salesops-api/pkg/config"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

const swaggerFilePath = "./docs/swagger.json"

// swaggerFilePresent indica si el archivo OpenAPI existe en disco.
func swaggerFilePresent(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	salesCodeRepo := postgres.NewSalesCodeRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	targetRepo := postgres.NewTargetRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Regla de períodos: qué etiqueta de Bulan_PS casa contra qué columna de
	// código. Configurable para absorber futuros renombramientos.
	rule := period.NewRule(map[string]period.CodeColumn{
		cfg.Report.PeriodKodeAgen: period.ColumnKodeAgen,
		cfg.Report.PeriodKodeBaru: period.ColumnKodeBaru,
	})

	codeCutoff, err := time.Parse("2006-01-02", cfg.Report.CodeCutoff)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Report.CodeCutoff).Msg("REPORT_CODE_CUTOFF inválido")
	}

	xlsxReader := excel.NewReader()

	reportUC := report.NewUseCase(reportRepo, rule)
	trackingUC := tracking.NewUseCase(reportRepo, targetRepo, nil)
	dashboardUC := dashboard.NewUseCase(orderRepo, salesCodeRepo, reportRepo, codeCutoff)
	orderUC := orders.NewUseCase(orderRepo, xlsxReader)
	salesCodeUC := salescodes.NewUseCase(salesCodeRepo, xlsxReader)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: exportación de la matriz STO × mes
	stoPDF := infrapdf.NewStoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la importación de xlsx puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el archivo no existe, así que solo se monta cuando está.
	if swaggerFilePresent(swaggerFilePath) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFilePath,
			Path:     "docs",
			Title:    "SalesOps API",
		}))
	} else {
		log.Warn().Str("path", swaggerFilePath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports:    reportUC,
		Tracking:   trackingUC,
		Dashboard:  dashboardUC,
		Orders:     orderUC,
		SalesCodes: salesCodeUC,
		Auth:       authUC,
		PDF:        stoPDF,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
