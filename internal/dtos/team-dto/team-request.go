package team_dto

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/go-playground/validator/v10"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,memberStatus"`
}

type AssignTaskRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description,omitempty"`
	DueDate        time.Time `json:"due_date" validate:"required"`
	Priority       string    `json:"priority" validate:"required,taskPriority"`
	Category       string    `json:"category" validate:"required,taskCategory"`
	EstimatedHours float64   `json:"estimated_hours" validate:"required,gt=0"`
	AssignedBy     string    `json:"assigned_by" validate:"required"`
	Tags           []string  `json:"tags,omitempty"`
}

// UpdateProgressRequest carries raw progress; the store clamps it into
// [0,100], so no range validation here.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
	User string `json:"user" validate:"required"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required,taskPriority"`
}

type UpdateCategoryRequest struct {
	Category string `json:"category" validate:"required,taskCategory"`
}

// UpdateTeamViewRequest patches the list view preferences; nil fields keep
// the current value.
type UpdateTeamViewRequest struct {
	StatusFilter *string `json:"status_filter,omitempty" validate:"omitempty,oneof=all working break meeting offline"`
	SortBy       *string `json:"sort_by,omitempty" validate:"omitempty,oneof=name status tasks progress"`
}

type ParamMemberID struct {
	ID int `params:"member_id" validate:"required,min=1"`
}

type ParamTaskID struct {
	ID int `params:"task_id" validate:"required,min=1"`
}

func IsValidMemberStatus(fl validator.FieldLevel) bool {
	return entity.MemberStatus(fl.Field().String()).IsValid()
}

func IsValidTaskPriority(fl validator.FieldLevel) bool {
	return entity.TaskPriority(fl.Field().String()).IsValid()
}

func IsValidTaskCategory(fl validator.FieldLevel) bool {
	return entity.TaskCategory(fl.Field().String()).IsValid()
}
