package dashboard_case

import (
	"testing"

	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/stretchr/testify/assert"
)

func progressReq(p int) *team_dto.UpdateProgressRequest {
	return &team_dto.UpdateProgressRequest{Progress: p}
}

func (f *fixture) assignQuiet(memberID int) int {
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = false })
	resp, _ := f.service.AssignTask(memberID, assignRequest("medium"))
	f.notifs.UpdateSettings(func(s *entity.NotificationSettings) { s.EnableTaskNotifications = true })
	return resp.Task.ID
}

// Crossing 50 from below fires the halfway notification exactly once.
func TestUpdateTaskProgress_MilestoneCrossing(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.UpdateTaskProgress(1, taskID, progressReq(60))
	assert.Nil(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, entity.NotifTaskProgress, f.notifs.Notifications()[0].Type)

	// already past the milestone: no refire
	resp, err = f.service.UpdateTaskProgress(1, taskID, progressReq(75))
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)
	assert.Len(t, f.notifs.Notifications(), 1)
}

func TestUpdateTaskProgress_CompletionNotification(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.UpdateTaskProgress(1, taskID, progressReq(100))

	assert.Nil(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, entity.NotifTaskCompleted, f.notifs.Notifications()[0].Type)
	assert.Equal(t, entity.TaskCompleted, resp.Task.Status)
	assert.NotNil(t, resp.Task.CompletedAt)

	// staying at 100 does not refire
	resp, err = f.service.UpdateTaskProgress(1, taskID, progressReq(100))
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)
	assert.Len(t, f.notifs.Notifications(), 1)
}

// Jumping straight to 100 skips the halfway notification.
func TestUpdateTaskProgress_CompletionBeatsMilestone(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.UpdateTaskProgress(1, taskID, progressReq(150))

	assert.Nil(t, err)
	assert.Equal(t, 100, resp.Task.Progress) // clamped
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, entity.NotifTaskCompleted, f.notifs.Notifications()[0].Type)
}

func TestUpdateTaskProgress_ReopenAndComplete(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	_, err := f.service.UpdateTaskProgress(1, taskID, progressReq(100))
	assert.Nil(t, err)

	resp, err := f.service.UpdateTaskProgress(1, taskID, progressReq(40))
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)
	assert.Equal(t, entity.TaskInProgress, resp.Task.Status)
	assert.Nil(t, resp.Task.CompletedAt)

	// crossing to 100 again fires again: the rule compares previous value
	resp, err = f.service.UpdateTaskProgress(1, taskID, progressReq(100))
	assert.Nil(t, err)
	assert.Len(t, resp.Notifications, 1)
}
