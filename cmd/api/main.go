package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/Wesley1888/InvenMate/internal/application/analytics"
	"github.com/Wesley1888/InvenMate/internal/application/auth"
	appinventory "github.com/Wesley1888/InvenMate/internal/application/inventory"
	appreport "github.com/Wesley1888/InvenMate/internal/application/report"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	infraexcel "github.com/Wesley1888/InvenMate/internal/infrastructure/excel"
	infrapdf "github.com/Wesley1888/InvenMate/internal/infrastructure/pdf"
	"github.com/Wesley1888/InvenMate/internal/infrastructure/postgres"
	httpRouter "github.com/Wesley1888/InvenMate/internal/interfaces/http"
	"github.com/Wesley1888/InvenMate/pkg/config"
	"github.com/Wesley1888/InvenMate/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		LogFile: cfg.App.LogFile,
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	partModelRepo := postgres.NewPartModelRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	stockOutRepo := postgres.NewStockOutRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	appDataRepo := postgres.NewAppDataRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	partModelUC := usecase.NewPartModelUseCase(partModelRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo, partModelRepo)
	stockInUC := usecase.NewStockInUseCase(stockInRepo, partModelRepo, orderRepo)
	stockOutUC := usecase.NewStockOutUseCase(stockOutRepo, partModelRepo)
	catalogUC := usecase.NewCatalogUseCase(departmentRepo, supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(appDataRepo)
	inventoryUC := appinventory.NewUseCase(partModelRepo, stockInRepo, stockOutRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(partModelRepo, orderRepo, stockInRepo, stockOutRepo)

	excelExporter := infraexcel.NewExporter()
	lowStockPDF := infrapdf.NewLowStockReport()
	reportUC := appreport.NewUseCase(inventoryUC, stockInUC, stockOutUC, settingsUC, excelExporter, lowStockPDF)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Respaldo JSON de datos de aplicación al arrancar, si hay directorio configurado.
	if cfg.Export.Dir != "" {
		go func() {
			data, name, err := reportUC.ExportAppDataJSON(context.Background())
			if err != nil {
				log.Warn().Err(err).Msg("respaldo de datos de aplicación")
				return
			}
			if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
				log.Warn().Err(err).Msg("crear directorio de respaldos")
				return
			}
			path := filepath.Join(cfg.Export.Dir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("escribir respaldo")
				return
			}
			log.Info().Str("path", path).Msg("respaldo de datos de aplicación escrito")
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InvenMate API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartModelUC: partModelUC,
		OrderUC:     orderUC,
		StockInUC:   stockInUC,
		StockOutUC:  stockOutUC,
		CatalogUC:   catalogUC,
		SettingsUC:  settingsUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
