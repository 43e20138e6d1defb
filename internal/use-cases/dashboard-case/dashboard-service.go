package dashboard_case

import (
	"fmt"
	"sync"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	analytics_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/analytics-dto"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	"github.com/rs/zerolog/log"
)

// DashboardService is the orchestration layer: every mutation reads the
// pre-state it needs, applies the entity-store operation, then derives
// notifications from the delta and invalidates the analytics cache. The
// stores never emit notifications themselves.
type DashboardService struct {
	team   *store.TeamStore
	notifs *store.NotificationStore
	engine *analytics.Engine

	remindedMu sync.Mutex
	reminded   map[int]bool // task ids already given a deadline reminder
}

func NewDashboardService(team *store.TeamStore, notifs *store.NotificationStore, engine *analytics.Engine) DashboardServiceContract {
	return &DashboardService{
		team:     team,
		notifs:   notifs,
		engine:   engine,
		reminded: make(map[int]bool),
	}
}

func (s *DashboardService) UpdateMemberStatus(memberID int, req *team_dto.UpdateStatusRequest) (*team_dto.MemberResponse, *app_errors.AppError) {
	// Read pre-state: a notification is only emitted on an actual change.
	before, err := s.team.Member(memberID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.MemberStatus(req.Status)
	if err := s.team.UpdateMemberStatus(memberID, newStatus); err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	var emitted []int
	if before.Status != newStatus && s.notifs.Settings().EnableStatusNotifications {
		// Toast only for transitions into Working or Offline.
		showToast := newStatus == entity.StatusWorking || newStatus == entity.StatusOffline
		emitted = s.emit(store.NotificationDraft{
			Type:        entity.NotifStatusChanged,
			Title:       "Status Updated",
			Message:     fmt.Sprintf("%s is now %s", before.Name, newStatus),
			Priority:    entity.PriorityLow,
			RelatedUser: before.Name,
			ShowAsToast: showToast,
		}, emitted)
	}

	member, err := s.team.Member(memberID)
	if err != nil {
		return nil, err
	}

	log.Info().Int("member_id", memberID).Str("status", req.Status).Msg("member status updated")

	return &team_dto.MemberResponse{Member: member, Notifications: emitted}, nil
}

func (s *DashboardService) AssignTask(memberID int, req *team_dto.AssignTaskRequest) (*team_dto.TaskResponse, *app_errors.AppError) {
	// Due-date sanity is a form-level concern, checked here rather than in
	// the store.
	if req.DueDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "due_date",
			Reason:     "past",
			MessageKey: "validation.due_date_past",
		}})
	}

	task, err := s.team.AssignTask(memberID, store.TaskDraft{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Priority:       entity.TaskPriority(req.Priority),
		Category:       entity.TaskCategory(req.Category),
		EstimatedHours: req.EstimatedHours,
		AssignedBy:     req.AssignedBy,
		Tags:           req.Tags,
	})
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	var emitted []int
	if s.notifs.Settings().EnableTaskNotifications {
		emitted = s.emit(store.NotificationDraft{
			Type:        entity.NotifTaskAssigned,
			Title:       "New Task Assigned",
			Message:     fmt.Sprintf("%s has been assigned %q by %s", task.AssignedTo, task.Title, task.AssignedBy),
			Priority:    notificationPriority(task.Priority),
			RelatedUser: task.AssignedTo,
			RelatedTask: task.ID,
			ActionURL:   fmt.Sprintf("/tasks/%d", task.ID),
			ShowAsToast: true,
		}, emitted)

		if task.AssignedBy != "" && task.AssignedBy != task.AssignedTo {
			emitted = s.emit(store.NotificationDraft{
				Type:        entity.NotifTaskAssigned,
				Title:       "Task Assignment Confirmed",
				Message:     fmt.Sprintf("You assigned %q to %s", task.Title, task.AssignedTo),
				Priority:    entity.PriorityLow,
				RelatedUser: task.AssignedBy,
				RelatedTask: task.ID,
			}, emitted)
		}
	}

	log.Info().Int("member_id", memberID).Int("task_id", task.ID).Str("priority", req.Priority).Msg("task assigned")

	return &team_dto.TaskResponse{MemberID: memberID, Task: task, Notifications: emitted}, nil
}

func (s *DashboardService) UpdateTaskProgress(memberID, taskID int, req *team_dto.UpdateProgressRequest) (*team_dto.TaskResponse, *app_errors.AppError) {
	// The one-shot crossing rules compare against the previous stored value,
	// never a running flag, so oscillation cannot refire them.
	before, err := s.team.Task(memberID, taskID)
	if err != nil {
		return nil, err
	}

	task, err := s.team.UpdateTaskProgress(memberID, taskID, req.Progress)
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	var emitted []int
	if s.notifs.Settings().EnableTaskNotifications {
		if before.Progress < 100 && task.Progress == 100 {
			emitted = s.emit(store.NotificationDraft{
				Type:        entity.NotifTaskCompleted,
				Title:       "Task Completed",
				Message:     fmt.Sprintf("%s completed %q", task.AssignedTo, task.Title),
				Priority:    entity.PriorityMedium,
				RelatedUser: task.AssignedTo,
				RelatedTask: task.ID,
				ShowAsToast: true,
			}, emitted)
		} else if before.Progress < 50 && task.Progress >= 50 && task.Progress < 100 {
			emitted = s.emit(store.NotificationDraft{
				Type:        entity.NotifTaskProgress,
				Title:       "Halfway There",
				Message:     fmt.Sprintf("%q reached %d%%", task.Title, task.Progress),
				Priority:    entity.PriorityMedium,
				RelatedUser: task.AssignedTo,
				RelatedTask: task.ID,
				ShowAsToast: true,
			}, emitted)
		}
	}

	return &team_dto.TaskResponse{MemberID: memberID, Task: task, Notifications: emitted}, nil
}

func (s *DashboardService) StartTimeTracking(memberID, taskID int) (*team_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.team.StartTimeTracking(memberID, taskID)
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	emitted := s.emit(store.NotificationDraft{
		Type:        entity.NotifTimeTracking,
		Title:       "Time Tracking Started",
		Message:     fmt.Sprintf("Tracking time on %q", task.Title),
		Priority:    entity.PriorityLow,
		RelatedUser: task.AssignedTo,
		RelatedTask: task.ID,
		AutoRead:    true,
	}, nil)

	return &team_dto.TaskResponse{MemberID: memberID, Task: task, Notifications: emitted}, nil
}

func (s *DashboardService) StopTimeTracking(memberID, taskID int) (*team_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.team.StopTimeTracking(memberID, taskID)
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	emitted := s.emit(store.NotificationDraft{
		Type:        entity.NotifTimeTracking,
		Title:       "Time Tracking Stopped",
		Message:     fmt.Sprintf("Stopped tracking %q at %.1fh total", task.Title, task.ActualHours),
		Priority:    entity.PriorityLow,
		RelatedUser: task.AssignedTo,
		RelatedTask: task.ID,
		AutoRead:    true,
	}, nil)

	return &team_dto.TaskResponse{MemberID: memberID, Task: task, Notifications: emitted}, nil
}

func (s *DashboardService) AddTaskComment(memberID, taskID int, req *team_dto.AddCommentRequest) (*team_dto.CommentResponse, *app_errors.AppError) {
	comment, err := s.team.AddTaskComment(memberID, taskID, req.Text, req.User)
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	task, err := s.team.Task(memberID, taskID)
	if err != nil {
		return nil, err
	}

	var emitted []int
	if s.notifs.Settings().EnableCommentNotifications {
		emitted = s.emit(store.NotificationDraft{
			Type:        entity.NotifCommentAdded,
			Title:       "New Comment",
			Message:     fmt.Sprintf("%s commented on %q", comment.User, task.Title),
			Priority:    entity.PriorityMedium,
			RelatedUser: comment.User,
			RelatedTask: task.ID,
			ActionURL:   fmt.Sprintf("/tasks/%d", task.ID),
			ShowAsToast: true,
		}, emitted)
	}

	return &team_dto.CommentResponse{MemberID: memberID, TaskID: taskID, Comment: comment, Notifications: emitted}, nil
}

func (s *DashboardService) UpdateTaskPriority(memberID, taskID int, req *team_dto.UpdatePriorityRequest) (*team_dto.TaskResponse, *app_errors.AppError) {
	before, err := s.team.Task(memberID, taskID)
	if err != nil {
		return nil, err
	}

	newPriority := entity.TaskPriority(req.Priority)
	task, err := s.team.UpdateTaskPriority(memberID, taskID, newPriority)
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	// Escalation to urgent/high notifies; de-escalation stays quiet.
	var emitted []int
	escalated := newPriority.Rank() > before.Priority.Rank() &&
		(newPriority == entity.PriorityUrgent || newPriority == entity.PriorityHigh)
	if escalated && s.notifs.Settings().EnableTaskNotifications {
		emitted = s.emit(store.NotificationDraft{
			Type:        entity.NotifPriorityChanged,
			Title:       "Priority Escalated",
			Message:     fmt.Sprintf("%q is now %s priority", task.Title, newPriority),
			Priority:    newPriority,
			RelatedUser: task.AssignedTo,
			RelatedTask: task.ID,
			ShowAsToast: true,
		}, emitted)
	}

	return &team_dto.TaskResponse{MemberID: memberID, Task: task, Notifications: emitted}, nil
}

func (s *DashboardService) UpdateTaskCategory(memberID, taskID int, req *team_dto.UpdateCategoryRequest) (*team_dto.TaskResponse, *app_errors.AppError) {
	task, err := s.team.UpdateTaskCategory(memberID, taskID, entity.TaskCategory(req.Category))
	if err != nil {
		return nil, err
	}
	s.engine.Invalidate()

	return &team_dto.TaskResponse{MemberID: memberID, Task: task}, nil
}

// SweepDeadlineReminders emits a one-shot deadline_approaching notification
// for every incomplete task due within the next 24 hours. The scheduler
// drives it; each tick re-reads live store state.
func (s *DashboardService) SweepDeadlineReminders() int {
	if !s.notifs.Settings().EnableDeadlineReminders {
		return 0
	}

	now := time.Now()
	horizon := now.Add(24 * time.Hour)
	count := 0

	for _, member := range s.team.Members() {
		for _, task := range member.Tasks {
			if task.Progress == 100 || task.DueDate.IsZero() {
				continue
			}
			if task.DueDate.Before(now) || task.DueDate.After(horizon) {
				continue
			}

			s.remindedMu.Lock()
			already := s.reminded[task.ID]
			if !already {
				s.reminded[task.ID] = true
			}
			s.remindedMu.Unlock()
			if already {
				continue
			}

			s.emit(store.NotificationDraft{
				Type:        entity.NotifDeadlineApproaching,
				Title:       "Deadline Reminder",
				Message:     fmt.Sprintf("Task %q assigned to %s is due soon", task.Title, member.Name),
				Priority:    entity.PriorityUrgent,
				RelatedUser: member.Name,
				RelatedTask: task.ID,
				ActionURL:   fmt.Sprintf("/tasks/%d", task.ID),
				ShowAsToast: true,
			}, nil)
			count++
		}
	}

	if count > 0 {
		log.Info().Int("reminders", count).Msg("deadline reminders emitted")
	}
	return count
}

func (s *DashboardService) ExportAnalytics(req *analytics_dto.ExportRequest) (string, []byte, *app_errors.AppError) {
	filename, data, err := s.engine.Export(req.Format)
	if err != nil {
		return "", nil, err
	}

	s.emit(store.NotificationDraft{
		Type:        entity.NotifSystemUpdate,
		Title:       "Analytics Export Complete",
		Message:     fmt.Sprintf("Analytics report exported successfully as %s", filename),
		Priority:    entity.PriorityMedium,
		ShowAsToast: true,
	}, nil)

	return filename, data, nil
}

// emit adds one notification and appends its id to acc. Emission failures
// are logged and swallowed: a notification must never roll back the entity
// mutation it trails.
func (s *DashboardService) emit(draft store.NotificationDraft, acc []int) []int {
	notif, err := s.notifs.AddNotification(draft)
	if err != nil {
		log.Warn().Str("type", string(draft.Type)).Str("reason", err.Type).Msg("notification dropped")
		return acc
	}
	return append(acc, notif.ID)
}

// notificationPriority mirrors the task priority onto the notification,
// capped to the urgent/high/medium band.
func notificationPriority(p entity.TaskPriority) entity.TaskPriority {
	switch p {
	case entity.PriorityUrgent, entity.PriorityHigh:
		return p
	default:
		return entity.PriorityMedium
	}
}
