package dashboard_case

import (
	"testing"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/stretchr/testify/assert"
)

// Test Happy path
func TestAssignTask_EmitsAssigneeAndAssignerNotifications(t *testing.T) {
	f := newFixture()

	resp, err := f.service.AssignTask(1, assignRequest("high"))

	assert.Nil(t, err)
	assert.NotNil(t, resp.Task)
	assert.Equal(t, "John Doe", resp.Task.AssignedTo)
	assert.Len(t, resp.Notifications, 2) // assignee + assigner confirmation

	log := f.notifs.Notifications()
	assert.Len(t, log, 2)

	// newest first: the confirmation was emitted second
	confirmation := log[0]
	assert.Equal(t, entity.NotifTaskAssigned, confirmation.Type)
	assert.Equal(t, "Jane Smith", confirmation.RelatedUser)
	assert.Equal(t, entity.PriorityLow, confirmation.Priority)

	assignee := log[1]
	assert.Equal(t, entity.NotifTaskAssigned, assignee.Type)
	assert.Equal(t, "John Doe", assignee.RelatedUser)
	assert.Equal(t, resp.Task.ID, assignee.RelatedTask)
	assert.Equal(t, entity.PriorityHigh, assignee.Priority) // mirrors high task priority
}

// Low and medium tasks notify at medium, only urgent/high pass through.
func TestAssignTask_NotificationPriorityBand(t *testing.T) {
	f := newFixture()

	resp, err := f.service.AssignTask(1, assignRequest("low"))
	assert.Nil(t, err)

	log := f.notifs.Notifications()
	assignee := log[len(log)-1]
	assert.Equal(t, resp.Task.ID, assignee.RelatedTask)
	assert.Equal(t, entity.PriorityMedium, assignee.Priority)
}

func TestAssignTask_SelfAssignmentSkipsConfirmation(t *testing.T) {
	f := newFixture()

	req := assignRequest("medium")
	req.AssignedBy = "John Doe"

	resp, err := f.service.AssignTask(1, req)

	assert.Nil(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Len(t, f.notifs.Notifications(), 1)
}

func TestAssignTask_PastDueDateRejected(t *testing.T) {
	f := newFixture()

	req := assignRequest("medium")
	req.DueDate = time.Now().Add(-48 * time.Hour)

	resp, err := f.service.AssignTask(1, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
	assert.Empty(t, f.notifs.Notifications())

	member, memberErr := f.team.Member(1)
	assert.Nil(t, memberErr)
	assert.Empty(t, member.Tasks)
}

func TestAssignTask_DisabledTaskNotifications(t *testing.T) {
	f := newFixture()
	f.notifs.UpdateSettings(func(settings *entity.NotificationSettings) {
		settings.EnableTaskNotifications = false
	})

	resp, err := f.service.AssignTask(1, assignRequest("urgent"))

	assert.Nil(t, err)
	assert.NotNil(t, resp.Task) // the mutation itself is never gated
	assert.Empty(t, resp.Notifications)
	assert.Empty(t, f.notifs.Notifications())
}

func TestAssignTask_MemberNotFound(t *testing.T) {
	f := newFixture()

	resp, err := f.service.AssignTask(99, assignRequest("medium"))

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrMemberNotFound, err.Type)
}
