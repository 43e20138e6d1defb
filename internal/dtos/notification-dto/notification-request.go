package notification_dto

import (
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/go-playground/validator/v10"
)

type AddNotificationRequest struct {
	Type        string `json:"type" validate:"required,notificationType"`
	Title       string `json:"title" validate:"required"`
	Message     string `json:"message" validate:"required"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	RelatedUser string `json:"related_user,omitempty"`
	RelatedTask int    `json:"related_task,omitempty"`
	ActionURL   string `json:"action_url,omitempty"`
	ShowAsToast bool   `json:"show_as_toast"`
	AutoRead    bool   `json:"auto_read"`
}

type BulkRequest struct {
	NotificationIDs []int `json:"notification_ids" validate:"required,min=1,dive,min=1"`
}

// UpdateSettingsRequest patches the delivery settings; nil fields keep the
// current value.
type UpdateSettingsRequest struct {
	EnableToasts               *bool `json:"enable_toasts,omitempty"`
	EnableSounds               *bool `json:"enable_sounds,omitempty"`
	AutoMarkRead               *bool `json:"auto_mark_read,omitempty"`
	ToastDurationMs            *int  `json:"toast_duration_ms,omitempty" validate:"omitempty,min=500"`
	MaxToasts                  *int  `json:"max_toasts,omitempty" validate:"omitempty,min=1,max=20"`
	EnableDeadlineReminders    *bool `json:"enable_deadline_reminders,omitempty"`
	EnableTaskNotifications    *bool `json:"enable_task_notifications,omitempty"`
	EnableStatusNotifications  *bool `json:"enable_status_notifications,omitempty"`
	EnableCommentNotifications *bool `json:"enable_comment_notifications,omitempty"`
}

type ParamNotificationID struct {
	ID int `params:"notification_id" validate:"required,min=1"`
}

type ParamToastID struct {
	ID string `params:"toast_id" validate:"required"`
}

func IsValidNotificationType(fl validator.FieldLevel) bool {
	switch entity.NotificationType(fl.Field().String()) {
	case entity.NotifTaskAssigned, entity.NotifTaskCompleted, entity.NotifTaskProgress,
		entity.NotifStatusChanged, entity.NotifDeadlineApproaching, entity.NotifCommentAdded,
		entity.NotifTimeTracking, entity.NotifMemberOnline, entity.NotifMemberOffline,
		entity.NotifPriorityChanged, entity.NotifCategoryChanged, entity.NotifSystemUpdate:
		return true
	default:
		return false
	}
}
