package dashboard_case

import (
	"testing"

	team_dto "github.com/Lovkumawat/Versal-Pulse/internal/dtos/team-dto"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/stretchr/testify/assert"
)

// Test Happy path
func TestAddTaskComment_EmitsCommentNotification(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.AddTaskComment(1, taskID, &team_dto.AddCommentRequest{
		Text: "Looks good to me",
		User: "Jane Smith",
	})

	assert.Nil(t, err)
	assert.Equal(t, "Looks good to me", resp.Comment.Text)
	assert.Len(t, resp.Notifications, 1)

	notif := f.notifs.Notifications()[0]
	assert.Equal(t, entity.NotifCommentAdded, notif.Type)
	assert.Equal(t, "Jane Smith", notif.RelatedUser)
	assert.Equal(t, taskID, notif.RelatedTask)
}

func TestAddTaskComment_DisabledCommentNotifications(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)
	f.notifs.UpdateSettings(func(settings *entity.NotificationSettings) {
		settings.EnableCommentNotifications = false
	})

	resp, err := f.service.AddTaskComment(1, taskID, &team_dto.AddCommentRequest{
		Text: "quiet comment",
		User: "Jane Smith",
	})

	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)
	assert.Empty(t, f.notifs.Notifications())
}

func TestAddTaskComment_EmptyTextRejected(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.AddTaskComment(1, taskID, &team_dto.AddCommentRequest{
		Text: "   ",
		User: "Jane Smith",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
}

// Escalations to high or urgent notify; de-escalations stay quiet.
func TestUpdateTaskPriority_EscalationOnly(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1) // medium

	resp, err := f.service.UpdateTaskPriority(1, taskID, &team_dto.UpdatePriorityRequest{Priority: "urgent"})
	assert.Nil(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, entity.NotifPriorityChanged, f.notifs.Notifications()[0].Type)
	assert.Equal(t, entity.PriorityUrgent, f.notifs.Notifications()[0].Priority)

	// urgent -> high is a de-escalation despite high being in the band
	resp, err = f.service.UpdateTaskPriority(1, taskID, &team_dto.UpdatePriorityRequest{Priority: "high"})
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)

	resp, err = f.service.UpdateTaskPriority(1, taskID, &team_dto.UpdatePriorityRequest{Priority: "low"})
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)

	// low -> medium escalates but stays below the notifying band
	resp, err = f.service.UpdateTaskPriority(1, taskID, &team_dto.UpdatePriorityRequest{Priority: "medium"})
	assert.Nil(t, err)
	assert.Empty(t, resp.Notifications)

	assert.Len(t, f.notifs.Notifications(), 1)
}

// Category changes never notify.
func TestUpdateTaskCategory_Silent(t *testing.T) {
	f := newFixture()
	taskID := f.assignQuiet(1)

	resp, err := f.service.UpdateTaskCategory(1, taskID, &team_dto.UpdateCategoryRequest{Category: "review"})

	assert.Nil(t, err)
	assert.Equal(t, entity.CategoryReview, resp.Task.Category)
	assert.Empty(t, resp.Notifications)
	assert.Empty(t, f.notifs.Notifications())
}
