package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerograu/comisiones-api/internal/application/auth"
	"github.com/zerograu/comisiones-api/internal/application/report"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ReportUC  *report.ReportUseCase
	JWTSecret string
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	authGroup.Post("/login", authHandler.Login)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	reports.Get("/gauge-bands", reportHandler.GaugeBands)

	// Reporte del vendedor (requiere Bearer Token)
	reports.Get("/commissions", AuthMiddleware(deps.JWTSecret), reportHandler.Commissions)
}
