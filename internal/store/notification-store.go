package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// NotificationStore holds the durable notification log (most recent first),
// the ephemeral toast queue and the delivery settings. The two lists have
// independent lifecycles: removing a toast never removes its notification
// and vice versa.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications []*entity.NotificationEntity
	toasts        []*entity.ToastEntity
	nextID        int
	unreadCount   int
	settings      entity.NotificationSettings
	lastErr       *app_errors.AppError
}

// NotificationDraft is the caller-supplied part of a notification. Icon and
// color are derived from (type, priority) at creation time and frozen.
type NotificationDraft struct {
	Type        entity.NotificationType
	Title       string
	Message     string
	Priority    entity.TaskPriority
	RelatedUser string
	RelatedTask int
	ActionURL   string
	ShowAsToast bool
	AutoRead    bool
}

func NewNotificationStore(settings entity.NotificationSettings, initial []*entity.NotificationEntity) *NotificationStore {
	s := &NotificationStore{
		nextID:   1,
		settings: settings,
	}
	for _, n := range initial {
		notif := *n
		if notif.ID >= s.nextID {
			s.nextID = notif.ID + 1
		}
		if !notif.IsRead {
			s.unreadCount++
		}
		s.notifications = append(s.notifications, &notif)
	}
	return s
}

// AddNotification assigns the next id, stamps the timestamp, prepends to the
// log and, when requested and enabled, enqueues a toast copy with its own id
// and createdAt. The toast queue keeps only the most recent MaxToasts.
func (s *NotificationStore) AddNotification(draft NotificationDraft) (*entity.NotificationEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := draft.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, s.fail(app_errors.InvalidEnumValue("priority", string(priority)))
	}

	now := time.Now()
	notif := &entity.NotificationEntity{
		ID:          s.nextID,
		Type:        draft.Type,
		Title:       draft.Title,
		Message:     draft.Message,
		Timestamp:   now,
		IsRead:      draft.AutoRead,
		Priority:    priority,
		RelatedUser: draft.RelatedUser,
		RelatedTask: draft.RelatedTask,
		ActionURL:   draft.ActionURL,
		Icon:        entity.NotificationIcon(draft.Type),
		Color:       entity.NotificationColor(draft.Type, priority),
	}

	s.notifications = append([]*entity.NotificationEntity{notif}, s.notifications...)

	if draft.ShowAsToast && s.settings.EnableToasts {
		toast := &entity.ToastEntity{
			NotificationEntity: *notif,
			ToastID:            fmt.Sprintf("toast-%d", notif.ID),
			CreatedAt:          now,
		}
		s.toasts = append(s.toasts, toast)
		if excess := len(s.toasts) - s.settings.MaxToasts; excess > 0 {
			s.toasts = s.toasts[excess:]
		}
	}

	if !draft.AutoRead {
		s.unreadCount++
	}

	s.nextID++
	s.lastErr = nil

	out := *notif
	return &out, nil
}

func (s *NotificationStore) MarkRead(notificationID int) *app_errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == notificationID {
			if !n.IsRead {
				n.IsRead = true
				s.decUnread(1)
			}
			return nil
		}
	}
	return s.fail(app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotifNotFound, "errors.notification_not_found", nil))
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		n.IsRead = true
	}
	s.unreadCount = 0
}

func (s *NotificationStore) Remove(notificationID int) *app_errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == notificationID {
			if !n.IsRead {
				s.decUnread(1)
			}
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return s.fail(app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotifNotFound, "errors.notification_not_found", nil))
}

func (s *NotificationStore) RemoveToast(toastID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ToastID != toastID {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

func (s *NotificationStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
	s.unreadCount = 0
}

// ClearOld drops notifications that are both read and strictly older than 30
// days. Unread history is retained regardless of age.
func (s *NotificationStore) ClearOld() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	kept := s.notifications[:0]
	removed := 0
	for _, n := range s.notifications {
		if n.IsRead && n.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	s.notifications = kept
	return removed
}

// BulkMarkRead flips every listed unread notification and applies the unread
// delta once.
func (s *NotificationStore) BulkMarkRead(notificationIDs []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(notificationIDs))
	for _, id := range notificationIDs {
		wanted[id] = true
	}

	marked := 0
	for _, n := range s.notifications {
		if wanted[n.ID] && !n.IsRead {
			n.IsRead = true
			marked++
		}
	}
	s.decUnread(marked)
	return marked
}

func (s *NotificationStore) BulkRemove(notificationIDs []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(notificationIDs))
	for _, id := range notificationIDs {
		wanted[id] = true
	}

	removedUnread := 0
	removed := 0
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if wanted[n.ID] {
			removed++
			if !n.IsRead {
				removedUnread++
			}
			continue
		}
		kept = append(kept, n)
	}
	s.notifications = kept
	s.decUnread(removedUnread)
	return removed
}

// ExpireToasts removes every toast whose own lifetime has elapsed at now,
// measured from that toast's createdAt. Each toast expires on its own
// schedule regardless of when its neighbours were enqueued.
func (s *NotificationStore) ExpireToasts(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.toasts[:0]
	expired := 0
	for _, t := range s.toasts {
		if now.Sub(t.CreatedAt) >= s.settings.ToastDuration {
			expired++
			continue
		}
		kept = append(kept, t)
	}
	s.toasts = kept
	return expired
}

func (s *NotificationStore) UpdateSettings(apply func(*entity.NotificationSettings)) entity.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.settings)
	return s.settings
}

func (s *NotificationStore) Settings() entity.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Notifications returns copies of the log, most recent first.
func (s *NotificationStore) Notifications() []*entity.NotificationEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.NotificationEntity, 0, len(s.notifications))
	for _, n := range s.notifications {
		notif := *n
		out = append(out, &notif)
	}
	return out
}

func (s *NotificationStore) Unread() []*entity.NotificationEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.NotificationEntity
	for _, n := range s.notifications {
		if !n.IsRead {
			notif := *n
			out = append(out, &notif)
		}
	}
	return out
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCount
}

func (s *NotificationStore) Toasts() []*entity.ToastEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ToastEntity, 0, len(s.toasts))
	for _, t := range s.toasts {
		toast := *t
		out = append(out, &toast)
	}
	return out
}

func (s *NotificationStore) Err() *app_errors.AppError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *NotificationStore) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

func (s *NotificationStore) fail(err *app_errors.AppError) *app_errors.AppError {
	s.lastErr = err
	return err
}

func (s *NotificationStore) decUnread(by int) {
	s.unreadCount -= by
	if s.unreadCount < 0 {
		s.unreadCount = 0
	}
}
