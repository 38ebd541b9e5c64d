package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/analytics"
	"github.com/Wesley1888/InvenMate/internal/application/auth"
	"github.com/Wesley1888/InvenMate/internal/application/inventory"
	"github.com/Wesley1888/InvenMate/internal/application/report"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartModelUC *usecase.PartModelUseCase
	OrderUC     *usecase.OrderUseCase
	StockInUC   *usecase.StockInUseCase
	StockOutUC  *usecase.StockOutUseCase
	CatalogUC   *usecase.CatalogUseCase
	SettingsUC  *usecase.SettingsUseCase
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Part models (protegido; borrar solo admin)
	partModels := protected.Group("/part-models")
	partModelHandler := NewPartModelHandler(deps.PartModelUC)
	partModels.Post("/", partModelHandler.Create)
	partModels.Get("/", partModelHandler.List)
	partModels.Get("/:id", partModelHandler.GetByID)
	partModels.Put("/:id", partModelHandler.Update)
	partModels.Delete("/:id", RequireRole("admin"), partModelHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", RequireRole("admin"), orderHandler.Delete)
	orders.Post("/:id/items", orderHandler.AddItem)
	orders.Put("/:id/items/:itemId", orderHandler.UpdateItem)
	orders.Delete("/:id/items/:itemId", orderHandler.RemoveItem)

	// Stock in (protegido)
	stockIn := protected.Group("/stock-in")
	stockInHandler := NewStockInHandler(deps.StockInUC)
	stockIn.Post("/", stockInHandler.Create)
	stockIn.Get("/", stockInHandler.List)
	stockIn.Get("/:id", stockInHandler.GetByID)
	stockIn.Put("/:id", stockInHandler.Update)
	stockIn.Delete("/:id", RequireRole("admin"), stockInHandler.Delete)

	// Stock out (protegido)
	stockOut := protected.Group("/stock-out")
	stockOutHandler := NewStockOutHandler(deps.StockOutUC)
	stockOut.Post("/", stockOutHandler.Create)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Put("/:id", stockOutHandler.Update)
	stockOut.Delete("/:id", RequireRole("admin"), stockOutHandler.Delete)

	// Inventario derivado (protegido, solo lectura)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/alerts", inventoryHandler.LowStockAlerts)
	inv.Get("/:id", inventoryHandler.GetByPartModel)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/statistics", dashboardHandler.Statistics)
	dashboard.Get("/recent-activity", dashboardHandler.RecentActivity)
	dashboard.Get("/department-stats", dashboardHandler.DepartmentStats)
	dashboard.Get("/monthly-trend", dashboardHandler.MonthlyTrend)

	// Catálogos auxiliares (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	departments := protected.Group("/departments")
	departments.Post("/", catalogHandler.CreateDepartment)
	departments.Get("/", catalogHandler.ListDepartments)
	departments.Delete("/:id", RequireRole("admin"), catalogHandler.DeleteDepartment)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Put("/:id", catalogHandler.UpdateSupplier)
	suppliers.Delete("/:id", RequireRole("admin"), catalogHandler.DeleteSupplier)

	// Datos de aplicación (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.List)
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", settingsHandler.Set)
	settings.Delete("/:key", settingsHandler.Delete)

	// Reportes descargables (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.xlsx", reportHandler.ExportInventory)
	reports.Get("/stock-in.xlsx", reportHandler.ExportStockIn)
	reports.Get("/stock-out.xlsx", reportHandler.ExportStockOut)
	reports.Get("/low-stock.xlsx", reportHandler.ExportLowStockExcel)
	reports.Get("/low-stock.pdf", reportHandler.ExportLowStockPDF)
	reports.Get("/app-data.json", reportHandler.ExportAppData)
}
