package seed

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
)

// Members returns the demo team the dashboard boots with. now anchors the
// relative dates so the seeded analytics are never empty.
func Members(now time.Time) []*entity.MemberEntity {
	day := 24 * time.Hour

	completedAt := now.Add(-2 * day)

	return []*entity.MemberEntity{
		{
			ID:     1,
			Name:   "John Doe",
			Status: entity.StatusWorking,
			Avatar: "👨‍💻",
			Tasks: []*entity.TaskEntity{
				{
					ID:             1,
					Title:          "Implement login page",
					Description:    "Build the login form with session handling",
					DueDate:        now.Add(3 * day),
					Progress:       60,
					Priority:       entity.PriorityHigh,
					Category:       entity.CategoryDevelopment,
					Status:         entity.TaskInProgress,
					EstimatedHours: 8,
					ActualHours:    5,
					AssignedBy:     "Sarah Wilson",
					AssignedTo:     "John Doe",
					CreatedAt:      now.Add(-5 * day),
					UpdatedAt:      now.Add(-1 * day),
					TimeTracking: entity.TimeTracking{
						TotalTime: 5 * time.Hour,
						Sessions: []entity.TrackingSession{
							{
								Start:    now.Add(-2 * day),
								End:      now.Add(-2*day + 5*time.Hour),
								Duration: 5 * time.Hour,
							},
						},
					},
					Tags: []string{"frontend", "auth"},
				},
				{
					ID:             2,
					Title:          "Fix payment gateway bug",
					Description:    "Transactions over 1000 fail silently",
					DueDate:        now.Add(1 * day),
					Progress:       20,
					Priority:       entity.PriorityUrgent,
					Category:       entity.CategoryDevelopment,
					Status:         entity.TaskInProgress,
					EstimatedHours: 4,
					AssignedBy:     "Sarah Wilson",
					AssignedTo:     "John Doe",
					CreatedAt:      now.Add(-1 * day),
					UpdatedAt:      now.Add(-6 * time.Hour),
					Tags:           []string{"backend", "payments"},
				},
			},
		},
		{
			ID:     2,
			Name:   "Jane Smith",
			Status: entity.StatusMeeting,
			Avatar: "👩‍🎨",
			Tasks: []*entity.TaskEntity{
				{
					ID:             3,
					Title:          "Design dashboard mockups",
					Description:    "High-fidelity mockups for the analytics page",
					DueDate:        now.Add(5 * day),
					Progress:       100,
					Priority:       entity.PriorityMedium,
					Category:       entity.CategoryDesign,
					Status:         entity.TaskCompleted,
					EstimatedHours: 12,
					ActualHours:    10,
					AssignedBy:     "Sarah Wilson",
					AssignedTo:     "Jane Smith",
					CreatedAt:      now.Add(-7 * day),
					UpdatedAt:      completedAt,
					CompletedAt:    &completedAt,
					TimeTracking: entity.TimeTracking{
						TotalTime: 10 * time.Hour,
					},
					Tags: []string{"design", "analytics"},
				},
			},
		},
		{
			ID:     3,
			Name:   "Mike Johnson",
			Status: entity.StatusBreak,
			Avatar: "🧑‍🔬",
			Tasks: []*entity.TaskEntity{
				{
					ID:             4,
					Title:          "Research caching strategies",
					Description:    "Evaluate approaches for the reporting layer",
					DueDate:        now.Add(10 * day),
					Progress:       0,
					Priority:       entity.PriorityLow,
					Category:       entity.CategoryResearch,
					Status:         entity.TaskNotStarted,
					EstimatedHours: 6,
					AssignedBy:     "Sarah Wilson",
					AssignedTo:     "Mike Johnson",
					CreatedAt:      now.Add(-3 * day),
					UpdatedAt:      now.Add(-3 * day),
					Tags:           []string{"research"},
				},
			},
		},
		{
			ID:     4,
			Name:   "Sarah Wilson",
			Status: entity.StatusOffline,
			Avatar: "👩‍💼",
			Tasks:  []*entity.TaskEntity{},
		},
	}
}

// Notifications returns the initial notification log, newest first.
func Notifications(now time.Time) []*entity.NotificationEntity {
	return []*entity.NotificationEntity{
		{
			ID:          2,
			Type:        entity.NotifTaskAssigned,
			Title:       "New Task Assigned",
			Message:     "John Doe has been assigned \"Fix payment gateway bug\" by Sarah Wilson",
			Timestamp:   now.Add(-24 * time.Hour),
			Priority:    entity.PriorityUrgent,
			RelatedUser: "John Doe",
			RelatedTask: 2,
			ActionURL:   "/tasks/2",
			Icon:        entity.NotificationIcon(entity.NotifTaskAssigned),
			Color:       entity.NotificationColor(entity.NotifTaskAssigned, entity.PriorityUrgent),
		},
		{
			ID:          1,
			Type:        entity.NotifTaskCompleted,
			Title:       "Task Completed",
			Message:     "Jane Smith completed \"Design dashboard mockups\"",
			Timestamp:   now.Add(-48 * time.Hour),
			IsRead:      true,
			Priority:    entity.PriorityMedium,
			RelatedUser: "Jane Smith",
			RelatedTask: 3,
			Icon:        entity.NotificationIcon(entity.NotifTaskCompleted),
			Color:       entity.NotificationColor(entity.NotifTaskCompleted, entity.PriorityMedium),
		},
	}
}
