package notification_dto

import "github.com/Lovkumawat/Versal-Pulse/internal/entity"

type NotificationListResponse struct {
	Notifications []*entity.NotificationEntity `json:"notifications"`
	UnreadCount   int                          `json:"unread_count"`
}

type ToastListResponse struct {
	Toasts []*entity.ToastEntity `json:"toasts"`
}

type BulkResponse struct {
	Affected    int `json:"affected"`
	UnreadCount int `json:"unread_count"`
}

type SettingsResponse struct {
	Settings entity.NotificationSettings `json:"settings"`
}
