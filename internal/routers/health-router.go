package routers

import (
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	"github.com/gofiber/fiber/v2"
)

// HealthRouter registers liveness and readiness endpoints.
func HealthRouter(app fiber.Router, team *store.TeamStore, notifs *store.NotificationStore) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "service is alive",
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("alive")
	})

	// Readiness means the in-memory stores are seeded and answering.
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if team == nil || notifs == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "stores are not initialized",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ready",
			"members": len(team.Members()),
			"unread":  notifs.UnreadCount(),
		})
	})
}
