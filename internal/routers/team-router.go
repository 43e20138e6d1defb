package routers

import (
	team_handlers "github.com/Lovkumawat/Versal-Pulse/internal/handlers/team"
	"github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	"github.com/gofiber/fiber/v2"
)

func TeamRouter(api fiber.Router, dashboard dashboard_case.DashboardServiceContract, team *store.TeamStore, i18n *i18n.I18nService) {
	r := api.Group("/team")
	teamHandler := team_handlers.NewTeamHandler(dashboard, team, i18n)

	r.Get("/members", teamHandler.ListMembers)
	r.Patch("/view", teamHandler.UpdateView)
	r.Get("/members/:member_id", teamHandler.GetMember)
	r.Patch("/members/:member_id/status", teamHandler.UpdateMemberStatus)
	r.Post("/members/:member_id/tasks", teamHandler.AssignTask)
	r.Patch("/members/:member_id/tasks/:task_id/progress", teamHandler.UpdateProgress)
	r.Post("/members/:member_id/tasks/:task_id/time/start", teamHandler.StartTimeTracking)
	r.Post("/members/:member_id/tasks/:task_id/time/stop", teamHandler.StopTimeTracking)
	r.Post("/members/:member_id/tasks/:task_id/comments", teamHandler.AddComment)
	r.Patch("/members/:member_id/tasks/:task_id/priority", teamHandler.UpdatePriority)
	r.Patch("/members/:member_id/tasks/:task_id/category", teamHandler.UpdateCategory)
}
