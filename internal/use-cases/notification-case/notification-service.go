package notification_case

import (
	"time"

	notification_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/notification-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	"github.com/rs/zerolog/log"
)

// NotificationService exposes the notification center: the log, the toast
// queue and the delivery settings. Dashboard mutations emit through the
// store directly; this service serves the center's own operations.
type NotificationService struct {
	notifs *store.NotificationStore
}

func NewNotificationService(notifs *store.NotificationStore) NotificationServiceContract {
	return &NotificationService{notifs: notifs}
}

func (s *NotificationService) Add(req *notification_dto.AddNotificationRequest) (*notification_dto.NotificationListResponse, *app_errors.AppError) {
	notif, err := s.notifs.AddNotification(store.NotificationDraft{
		Type:        entity.NotificationType(req.Type),
		Title:       req.Title,
		Message:     req.Message,
		Priority:    entity.TaskPriority(req.Priority),
		RelatedUser: req.RelatedUser,
		RelatedTask: req.RelatedTask,
		ActionURL:   req.ActionURL,
		ShowAsToast: req.ShowAsToast,
		AutoRead:    req.AutoRead,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int("notification_id", notif.ID).Str("type", req.Type).Msg("notification added")

	return &notification_dto.NotificationListResponse{
		Notifications: []*entity.NotificationEntity{notif},
		UnreadCount:   s.notifs.UnreadCount(),
	}, nil
}

func (s *NotificationService) List(unreadOnly bool) *notification_dto.NotificationListResponse {
	var notifications []*entity.NotificationEntity
	if unreadOnly {
		notifications = s.notifs.Unread()
	} else {
		notifications = s.notifs.Notifications()
	}
	return &notification_dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   s.notifs.UnreadCount(),
	}
}

func (s *NotificationService) Toasts() *notification_dto.ToastListResponse {
	return &notification_dto.ToastListResponse{Toasts: s.notifs.Toasts()}
}

func (s *NotificationService) MarkRead(notificationID int) (*notification_dto.BulkResponse, *app_errors.AppError) {
	if err := s.notifs.MarkRead(notificationID); err != nil {
		return nil, err
	}
	return &notification_dto.BulkResponse{Affected: 1, UnreadCount: s.notifs.UnreadCount()}, nil
}

func (s *NotificationService) MarkAllRead() *notification_dto.BulkResponse {
	before := s.notifs.UnreadCount()
	s.notifs.MarkAllRead()
	return &notification_dto.BulkResponse{Affected: before, UnreadCount: 0}
}

func (s *NotificationService) Remove(notificationID int) (*notification_dto.BulkResponse, *app_errors.AppError) {
	if err := s.notifs.Remove(notificationID); err != nil {
		return nil, err
	}
	return &notification_dto.BulkResponse{Affected: 1, UnreadCount: s.notifs.UnreadCount()}, nil
}

func (s *NotificationService) RemoveToast(toastID string) *notification_dto.ToastListResponse {
	s.notifs.RemoveToast(toastID)
	return &notification_dto.ToastListResponse{Toasts: s.notifs.Toasts()}
}

func (s *NotificationService) ClearAll() *notification_dto.BulkResponse {
	removed := len(s.notifs.Notifications())
	s.notifs.ClearAll()

	log.Info().Int("removed", removed).Msg("notification log cleared")

	return &notification_dto.BulkResponse{Affected: removed, UnreadCount: 0}
}

func (s *NotificationService) ClearOld() *notification_dto.BulkResponse {
	removed := s.notifs.ClearOld()
	return &notification_dto.BulkResponse{Affected: removed, UnreadCount: s.notifs.UnreadCount()}
}

func (s *NotificationService) BulkMarkRead(req *notification_dto.BulkRequest) *notification_dto.BulkResponse {
	marked := s.notifs.BulkMarkRead(req.NotificationIDs)
	return &notification_dto.BulkResponse{Affected: marked, UnreadCount: s.notifs.UnreadCount()}
}

func (s *NotificationService) BulkRemove(req *notification_dto.BulkRequest) *notification_dto.BulkResponse {
	removed := s.notifs.BulkRemove(req.NotificationIDs)
	return &notification_dto.BulkResponse{Affected: removed, UnreadCount: s.notifs.UnreadCount()}
}

func (s *NotificationService) Settings() *notification_dto.SettingsResponse {
	return &notification_dto.SettingsResponse{Settings: s.notifs.Settings()}
}

func (s *NotificationService) UpdateSettings(req *notification_dto.UpdateSettingsRequest) *notification_dto.SettingsResponse {
	updated := s.notifs.UpdateSettings(func(settings *entity.NotificationSettings) {
		if req.EnableToasts != nil {
			settings.EnableToasts = *req.EnableToasts
		}
		if req.EnableSounds != nil {
			settings.EnableSounds = *req.EnableSounds
		}
		if req.AutoMarkRead != nil {
			settings.AutoMarkRead = *req.AutoMarkRead
		}
		if req.ToastDurationMs != nil {
			settings.ToastDuration = time.Duration(*req.ToastDurationMs) * time.Millisecond
		}
		if req.MaxToasts != nil {
			settings.MaxToasts = *req.MaxToasts
		}
		if req.EnableDeadlineReminders != nil {
			settings.EnableDeadlineReminders = *req.EnableDeadlineReminders
		}
		if req.EnableTaskNotifications != nil {
			settings.EnableTaskNotifications = *req.EnableTaskNotifications
		}
		if req.EnableStatusNotifications != nil {
			settings.EnableStatusNotifications = *req.EnableStatusNotifications
		}
		if req.EnableCommentNotifications != nil {
			settings.EnableCommentNotifications = *req.EnableCommentNotifications
		}
	})
	return &notification_dto.SettingsResponse{Settings: updated}
}
