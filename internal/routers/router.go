package routers

import (
	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	"github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	notification_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/notification-case"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the whole API surface under /api/v1.
func SetupRoutes(app *fiber.App, dashboard dashboard_case.DashboardServiceContract, notifications notification_case.NotificationServiceContract, team *store.TeamStore, notifs *store.NotificationStore, engine *analytics.Engine, i18n *i18n.I18nService) {
	api := app.Group("/api/v1")

	TeamRouter(api, dashboard, team, i18n)
	NotificationRouter(api, notifications, i18n)
	AnalyticsRouter(api, engine, dashboard, i18n)
	HealthRouter(api, team, notifs)
}
