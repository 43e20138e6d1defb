package routers

import (
	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	analytics_handlers "github.com/Lovkumawat/Versal-Pulse/internal/handlers/analytics"
	"github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	"github.com/gofiber/fiber/v2"
)

func AnalyticsRouter(api fiber.Router, engine *analytics.Engine, dashboard dashboard_case.DashboardServiceContract, i18n *i18n.I18nService) {
	r := api.Group("/analytics")
	analyticsHandler := analytics_handlers.NewAnalyticsHandler(engine, dashboard, i18n)

	r.Get("/", analyticsHandler.GetSnapshot)
	r.Post("/refresh", analyticsHandler.Refresh)
	r.Put("/date-range", analyticsHandler.SetDateRange)
	r.Put("/preset", analyticsHandler.SetPreset)
	r.Patch("/filters", analyticsHandler.UpdateFilters)
	r.Patch("/view", analyticsHandler.UpdateViewSettings)
	r.Get("/charts", analyticsHandler.GetCharts)
	r.Post("/export", analyticsHandler.Export)
}
