package dashboard_case

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
)

type fixture struct {
	team    *store.TeamStore
	notifs  *store.NotificationStore
	engine  *analytics.Engine
	service DashboardServiceContract
}

func newFixture() *fixture {
	team := store.NewTeamStore([]*entity.MemberEntity{
		{ID: 1, Name: "John Doe", Status: entity.StatusWorking, Tasks: []*entity.TaskEntity{}},
		{ID: 2, Name: "Jane Smith", Status: entity.StatusOffline, Tasks: []*entity.TaskEntity{}},
	})
	notifs := store.NewNotificationStore(entity.DefaultNotificationSettings(), nil)
	engine := analytics.NewEngine(team)

	return &fixture{
		team:    team,
		notifs:  notifs,
		engine:  engine,
		service: NewDashboardService(team, notifs, engine),
	}
}

func assignRequest(priority string) *team_dto.AssignTaskRequest {
	return &team_dto.AssignTaskRequest{
		Title:          "Write integration tests",
		Description:    "Cover the API surface",
		DueDate:        time.Now().Add(72 * time.Hour),
		Priority:       priority,
		Category:       "testing",
		EstimatedHours: 5,
		AssignedBy:     "Jane Smith",
	}
}
