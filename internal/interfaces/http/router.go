package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gyt-equipos/panol-api/internal/application/auth"
	"github.com/gyt-equipos/panol-api/internal/application/report"
	"github.com/gyt-equipos/panol-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	MinStockUC *usecase.MinStockUseCase
	AlertUC    *usecase.AlertUseCase
	ReportUC   *report.UseCase
	GateUC     *auth.GateUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): la clave del sector abre la sesión
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.GateUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Post("/:id/adjust", itemHandler.Adjust)
	items.Delete("/:id", itemHandler.Delete)

	// Reglas de stock mínimo (protegido)
	minstock := protected.Group("/minstock")
	minStockHandler := NewMinStockHandler(deps.MinStockUC)
	minstock.Get("/", minStockHandler.List)
	minstock.Put("/", minStockHandler.Set)
	minstock.Delete("/:id", minStockHandler.Delete)

	// Alertas (protegido)
	alertHandler := NewAlertHandler(deps.AlertUC)
	protected.Get("/alerts", alertHandler.Summary)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/critical-stock", reportHandler.CriticalStock)
}
