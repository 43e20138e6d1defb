package entity

import "time"

type NotificationEntity struct {
	ID          int              `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	IsRead      bool             `json:"is_read"`
	Priority    TaskPriority     `json:"priority"`
	RelatedUser string           `json:"related_user,omitempty"`
	RelatedTask int              `json:"related_task,omitempty"`
	ActionURL   string           `json:"action_url,omitempty"`
	Icon        string           `json:"icon"`
	Color       string           `json:"color"`
}

// ToastEntity is a transient projection of a notification with its own id and
// lifetime. Removing a toast never touches the underlying notification.
type ToastEntity struct {
	NotificationEntity
	ToastID   string    `json:"toast_id"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationType string

const (
	NotifTaskAssigned        NotificationType = "task_assigned"
	NotifTaskCompleted       NotificationType = "task_completed"
	NotifTaskProgress        NotificationType = "task_progress"
	NotifStatusChanged       NotificationType = "status_changed"
	NotifDeadlineApproaching NotificationType = "deadline_approaching"
	NotifCommentAdded        NotificationType = "comment_added"
	NotifTimeTracking        NotificationType = "time_tracking"
	NotifMemberOnline        NotificationType = "member_online"
	NotifMemberOffline       NotificationType = "member_offline"
	NotifPriorityChanged     NotificationType = "priority_changed"
	NotifCategoryChanged     NotificationType = "category_changed"
	NotifSystemUpdate        NotificationType = "system_update"
)

// NotificationIcon and NotificationColor are resolved once at creation time
// and frozen on the notification; later changes to these tables must not
// restyle history.

func NotificationIcon(t NotificationType) string {
	switch t {
	case NotifTaskAssigned:
		return "📋"
	case NotifTaskCompleted:
		return "✅"
	case NotifTaskProgress:
		return "📈"
	case NotifStatusChanged:
		return "🔄"
	case NotifDeadlineApproaching:
		return "⏰"
	case NotifCommentAdded:
		return "💬"
	case NotifTimeTracking:
		return "⏱️"
	case NotifMemberOnline:
		return "🟢"
	case NotifMemberOffline:
		return "🔴"
	case NotifPriorityChanged:
		return "🚨"
	case NotifCategoryChanged:
		return "🏷️"
	case NotifSystemUpdate:
		return "🔔"
	default:
		return "📢"
	}
}

func NotificationColor(t NotificationType, priority TaskPriority) string {
	// Priority takes precedence over the type table.
	switch priority {
	case PriorityUrgent:
		return "red"
	case PriorityHigh:
		return "orange"
	case PriorityLow:
		return "gray"
	}

	switch t {
	case NotifTaskAssigned:
		return "blue"
	case NotifTaskCompleted:
		return "green"
	case NotifTaskProgress:
		return "purple"
	case NotifStatusChanged:
		return "indigo"
	case NotifDeadlineApproaching:
		return "red"
	case NotifCommentAdded:
		return "green"
	case NotifTimeTracking:
		return "yellow"
	case NotifMemberOnline:
		return "green"
	case NotifMemberOffline:
		return "gray"
	case NotifPriorityChanged:
		return "orange"
	case NotifCategoryChanged:
		return "blue"
	case NotifSystemUpdate:
		return "indigo"
	default:
		return "blue"
	}
}

// NotificationSettings is the in-memory delivery configuration. It resets on
// process restart.
type NotificationSettings struct {
	EnableToasts               bool          `json:"enable_toasts"`
	EnableSounds               bool          `json:"enable_sounds"`
	AutoMarkRead               bool          `json:"auto_mark_read"`
	ToastDuration              time.Duration `json:"toast_duration"`
	MaxToasts                  int           `json:"max_toasts"`
	EnableDeadlineReminders    bool          `json:"enable_deadline_reminders"`
	EnableTaskNotifications    bool          `json:"enable_task_notifications"`
	EnableStatusNotifications  bool          `json:"enable_status_notifications"`
	EnableCommentNotifications bool          `json:"enable_comment_notifications"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EnableToasts:               true,
		EnableSounds:               true,
		AutoMarkRead:               true,
		ToastDuration:              5 * time.Second,
		MaxToasts:                  5,
		EnableDeadlineReminders:    true,
		EnableTaskNotifications:    true,
		EnableStatusNotifications:  true,
		EnableCommentNotifications: true,
	}
}
