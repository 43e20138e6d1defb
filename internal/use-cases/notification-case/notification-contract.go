package notification_case

import (
	notification_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/notification-dto"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
)

type NotificationServiceContract interface {
	Add(req *notification_dto.AddNotificationRequest) (*notification_dto.NotificationListResponse, *app_errors.AppError)
	List(unreadOnly bool) *notification_dto.NotificationListResponse
	Toasts() *notification_dto.ToastListResponse
	MarkRead(notificationID int) (*notification_dto.BulkResponse, *app_errors.AppError)
	MarkAllRead() *notification_dto.BulkResponse
	Remove(notificationID int) (*notification_dto.BulkResponse, *app_errors.AppError)
	RemoveToast(toastID string) *notification_dto.ToastListResponse
	ClearAll() *notification_dto.BulkResponse
	ClearOld() *notification_dto.BulkResponse
	BulkMarkRead(req *notification_dto.BulkRequest) *notification_dto.BulkResponse
	BulkRemove(req *notification_dto.BulkRequest) *notification_dto.BulkResponse
	Settings() *notification_dto.SettingsResponse
	UpdateSettings(req *notification_dto.UpdateSettingsRequest) *notification_dto.SettingsResponse
}
