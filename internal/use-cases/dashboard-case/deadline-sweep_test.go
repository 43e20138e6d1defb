package dashboard_case

import (
	"testing"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestSweepDeadlineReminders_OneShot(t *testing.T) {
	f := newFixture()

	req := assignRequest("medium")
	req.DueDate = time.Now().Add(6 * time.Hour)
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = false })
	resp, err := f.service.AssignTask(1, req)
	assert.Nil(t, err)
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = true })

	count := f.service.SweepDeadlineReminders()
	assert.Equal(t, 1, count)

	notif := f.notifs.Notifications()[0]
	assert.Equal(t, entity.NotifDeadlineApproaching, notif.Type)
	assert.Equal(t, entity.PriorityUrgent, notif.Priority)
	assert.Equal(t, resp.Task.ID, notif.RelatedTask)

	// second sweep stays quiet for the same task
	count = f.service.SweepDeadlineReminders()
	assert.Equal(t, 0, count)
	assert.Len(t, f.notifs.Notifications(), 1)
}

func TestSweepDeadlineReminders_IgnoresFarAndCompleted(t *testing.T) {
	f := newFixture()
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = false })

	far := assignRequest("medium")
	far.DueDate = time.Now().Add(96 * time.Hour)
	_, err := f.service.AssignTask(1, far)
	assert.Nil(t, err)

	soon := assignRequest("medium")
	soon.DueDate = time.Now().Add(6 * time.Hour)
	resp, err := f.service.AssignTask(1, soon)
	assert.Nil(t, err)

	// completed before the sweep: no reminder
	_, err = f.service.UpdateTaskProgress(1, resp.Task.ID, progressReq(100))
	assert.Nil(t, err)

	count := f.service.SweepDeadlineReminders()
	assert.Equal(t, 0, count)
}

func TestSweepDeadlineReminders_DisabledBySettings(t *testing.T) {
	f := newFixture()

	req := assignRequest("medium")
	req.DueDate = time.Now().Add(6 * time.Hour)
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = false })
	_, err := f.service.AssignTask(1, req)
	assert.Nil(t, err)

	f.notifs.UpdateSettings(func(settings *entity.NotificationSettings) {
		settings.EnableDeadlineReminders = false
	})

	count := f.service.SweepDeadlineReminders()
	assert.Equal(t, 0, count)
	assert.Empty(t, f.notifs.Notifications())
}
