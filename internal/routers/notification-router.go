package routers

import (
	notification_handlers "github.com/Lovkumawat/Versal-Pulse/internal/handlers/notification"
	"github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	notification_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/notification-case"
	"github.com/gofiber/fiber/v2"
)

func NotificationRouter(api fiber.Router, notifications notification_case.NotificationServiceContract, i18n *i18n.I18nService) {
	r := api.Group("/notifications")
	notificationHandler := notification_handlers.NewNotificationHandler(notifications, i18n)

	// Static segments first, the :notification_id wildcard last.
	r.Get("/", notificationHandler.List)
	r.Post("/", notificationHandler.Add)
	r.Get("/toasts", notificationHandler.Toasts)
	r.Delete("/toasts/:toast_id", notificationHandler.RemoveToast)
	r.Get("/settings", notificationHandler.GetSettings)
	r.Patch("/settings", notificationHandler.UpdateSettings)
	r.Patch("/read-all", notificationHandler.MarkAllRead)
	r.Delete("/old", notificationHandler.ClearOld)
	r.Post("/bulk/read", notificationHandler.BulkMarkRead)
	r.Post("/bulk/remove", notificationHandler.BulkRemove)
	r.Delete("/", notificationHandler.ClearAll)
	r.Patch("/:notification_id/read", notificationHandler.MarkRead)
	r.Delete("/:notification_id", notificationHandler.Remove)
}
