package dashboard_case

import (
	analytics_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/analytics-dto"
	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
)

type DashboardServiceContract interface {
	UpdateMemberStatus(memberID int, req *team_dto.UpdateStatusRequest) (*team_dto.MemberResponse, *app_errors.AppError)
	AssignTask(memberID int, req *team_dto.AssignTaskRequest) (*team_dto.TaskResponse, *app_errors.AppError)
	UpdateTaskProgress(memberID, taskID int, req *team_dto.UpdateProgressRequest) (*team_dto.TaskResponse, *app_errors.AppError)
	StartTimeTracking(memberID, taskID int) (*team_dto.TaskResponse, *app_errors.AppError)
	StopTimeTracking(memberID, taskID int) (*team_dto.TaskResponse, *app_errors.AppError)
	AddTaskComment(memberID, taskID int, req *team_dto.AddCommentRequest) (*team_dto.CommentResponse, *app_errors.AppError)
	UpdateTaskPriority(memberID, taskID int, req *team_dto.UpdatePriorityRequest) (*team_dto.TaskResponse, *app_errors.AppError)
	UpdateTaskCategory(memberID, taskID int, req *team_dto.UpdateCategoryRequest) (*team_dto.TaskResponse, *app_errors.AppError)
	SweepDeadlineReminders() int
	ExportAnalytics(req *analytics_dto.ExportRequest) (string, []byte, *app_errors.AppError)
}
