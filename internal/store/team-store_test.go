package store

import (
	"testing"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/stretchr/testify/assert"
)

func seedTeam() []*entity.MemberEntity {
	return []*entity.MemberEntity{
		{
			ID:     1,
			Name:   "John Doe",
			Status: entity.StatusWorking,
			Tasks: []*entity.TaskEntity{
				{
					ID:             1,
					Title:          "Existing task",
					Progress:       30,
					Priority:       entity.PriorityMedium,
					Category:       entity.CategoryDevelopment,
					Status:         entity.TaskInProgress,
					EstimatedHours: 4,
					AssignedTo:     "John Doe",
					DueDate:        time.Now().Add(48 * time.Hour),
					CreatedAt:      time.Now().Add(-24 * time.Hour),
					UpdatedAt:      time.Now().Add(-24 * time.Hour),
				},
			},
		},
		{
			ID:     2,
			Name:   "Jane Smith",
			Status: entity.StatusOffline,
			Tasks:  []*entity.TaskEntity{},
		},
	}
}

func validDraft() TaskDraft {
	return TaskDraft{
		Title:          "New task",
		DueDate:        time.Now().Add(72 * time.Hour),
		Priority:       entity.PriorityHigh,
		Category:       entity.CategoryTesting,
		EstimatedHours: 3,
		AssignedBy:     "Sarah Wilson",
	}
}

// Test Happy path
func TestAssignTask_Success(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.AssignTask(2, validDraft())

	assert.Nil(t, err)
	assert.NotNil(t, task)
	assert.Equal(t, 2, task.ID) // id counter seeded past existing task 1
	assert.Equal(t, entity.TaskNotStarted, task.Status)
	assert.Equal(t, 0, task.Progress)
	assert.Equal(t, "Jane Smith", task.AssignedTo)
	assert.False(t, task.TimeTracking.IsActive)

	member, err := s.Member(2)
	assert.Nil(t, err)
	assert.Len(t, member.Tasks, 1)
}

func TestAssignTask_MemberNotFound(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.AssignTask(99, validDraft())

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrMemberNotFound, err.Type)
	assert.Equal(t, err, s.Err())
}

func TestAssignTask_InvalidEstimate(t *testing.T) {
	s := NewTeamStore(seedTeam())

	draft := validDraft()
	draft.EstimatedHours = 0

	task, err := s.AssignTask(1, draft)

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInvalidEstimate, err.Type)

	// failed op left the tree untouched
	member, memberErr := s.Member(1)
	assert.Nil(t, memberErr)
	assert.Len(t, member.Tasks, 1)
}

func TestAssignTask_InvalidPriority(t *testing.T) {
	s := NewTeamStore(seedTeam())

	draft := validDraft()
	draft.Priority = "critical"

	task, err := s.AssignTask(1, draft)

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInvalidEnum, err.Type)
}

// Progress clamps into [0,100] and drives status and completedAt.
func TestUpdateTaskProgress_ClampAndStatus(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.UpdateTaskProgress(1, 1, 150)
	assert.Nil(t, err)
	assert.Equal(t, 100, task.Progress)
	assert.Equal(t, entity.TaskCompleted, task.Status)
	assert.NotNil(t, task.CompletedAt)

	task, err = s.UpdateTaskProgress(1, 1, -10)
	assert.Nil(t, err)
	assert.Equal(t, 0, task.Progress)
	assert.Equal(t, entity.TaskNotStarted, task.Status)
	assert.Nil(t, task.CompletedAt)
}

func TestUpdateTaskProgress_ReopenClearsCompletedAt(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.UpdateTaskProgress(1, 1, 100)
	assert.Nil(t, err)
	assert.NotNil(t, task.CompletedAt)

	task, err = s.UpdateTaskProgress(1, 1, 70)
	assert.Nil(t, err)
	assert.Equal(t, entity.TaskInProgress, task.Status)
	assert.Nil(t, task.CompletedAt)
}

func TestUpdateTaskProgress_CompletionClosesSession(t *testing.T) {
	s := NewTeamStore(seedTeam())

	_, err := s.StartTimeTracking(1, 1)
	assert.Nil(t, err)

	task, err := s.UpdateTaskProgress(1, 1, 100)
	assert.Nil(t, err)
	assert.False(t, task.TimeTracking.IsActive)
	assert.Nil(t, task.TimeTracking.CurrentSessionStart)
	assert.Len(t, task.TimeTracking.Sessions, 1)
}

func TestUpdateTaskProgress_TaskNotFound(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.UpdateTaskProgress(1, 42, 50)

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrTaskNotFound, err.Type)
}

// Test Happy path
func TestStartTimeTracking_Success(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.StartTimeTracking(1, 1)

	assert.Nil(t, err)
	assert.True(t, task.TimeTracking.IsActive)
	assert.NotNil(t, task.TimeTracking.CurrentSessionStart)
}

func TestStartTimeTracking_AlreadyTracking(t *testing.T) {
	s := NewTeamStore(seedTeam())

	_, err := s.StartTimeTracking(1, 1)
	assert.Nil(t, err)

	task, err := s.StartTimeTracking(1, 1)

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrAlreadyTracking, err.Type)
}

// Starting a second task auto-stops the first, one active session per member.
func TestStartTimeTracking_AutoStopsOtherTask(t *testing.T) {
	s := NewTeamStore(seedTeam())

	second, err := s.AssignTask(1, validDraft())
	assert.Nil(t, err)

	_, err = s.StartTimeTracking(1, 1)
	assert.Nil(t, err)

	task, err := s.StartTimeTracking(1, second.ID)
	assert.Nil(t, err)
	assert.True(t, task.TimeTracking.IsActive)

	first, err := s.Task(1, 1)
	assert.Nil(t, err)
	assert.False(t, first.TimeTracking.IsActive)
	assert.Len(t, first.TimeTracking.Sessions, 1)
}

func TestStartTimeTracking_PromotesNotStarted(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.AssignTask(1, validDraft())
	assert.Nil(t, err)
	assert.Equal(t, entity.TaskNotStarted, task.Status)

	task, err = s.StartTimeTracking(1, task.ID)
	assert.Nil(t, err)
	assert.Equal(t, entity.TaskInProgress, task.Status)
	assert.Equal(t, 0, task.Progress)
}

func TestStopTimeTracking_FoldsDuration(t *testing.T) {
	s := NewTeamStore(seedTeam())

	_, err := s.StartTimeTracking(1, 1)
	assert.Nil(t, err)

	task, err := s.StopTimeTracking(1, 1)

	assert.Nil(t, err)
	assert.False(t, task.TimeTracking.IsActive)
	assert.Len(t, task.TimeTracking.Sessions, 1)
	assert.Equal(t, task.TimeTracking.TotalTime.Hours(), task.ActualHours)
}

func TestStopTimeTracking_NotTracking(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.StopTimeTracking(1, 1)

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotTracking, err.Type)
}

// Test Happy path
func TestAddTaskComment_Success(t *testing.T) {
	s := NewTeamStore(seedTeam())

	comment, err := s.AddTaskComment(1, 1, "  looks good  ", "Jane Smith")

	assert.Nil(t, err)
	assert.Equal(t, 1, comment.ID)
	assert.Equal(t, "looks good", comment.Text)
	assert.Equal(t, "Jane Smith", comment.User)

	task, taskErr := s.Task(1, 1)
	assert.Nil(t, taskErr)
	assert.Len(t, task.Comments, 1)
}

func TestAddTaskComment_EmptyText(t *testing.T) {
	s := NewTeamStore(seedTeam())

	comment, err := s.AddTaskComment(1, 1, "   ", "Jane Smith")

	assert.Nil(t, comment)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
}

func TestUpdateTaskPriority_Success(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.UpdateTaskPriority(1, 1, entity.PriorityUrgent)

	assert.Nil(t, err)
	assert.Equal(t, entity.PriorityUrgent, task.Priority)
}

func TestUpdateTaskCategory_InvalidEnum(t *testing.T) {
	s := NewTeamStore(seedTeam())

	task, err := s.UpdateTaskCategory(1, 1, "gardening")

	assert.Nil(t, task)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInvalidEnum, err.Type)
}

// The error slot holds the last failure until explicitly cleared.
func TestErrSlot_OverwriteAndClear(t *testing.T) {
	s := NewTeamStore(seedTeam())

	_, err := s.Task(1, 42)
	assert.NotNil(t, err)
	assert.Nil(t, s.Err()) // plain queries never touch the slot

	_, _ = s.UpdateTaskProgress(99, 1, 50)
	assert.Equal(t, app_errors.ErrMemberNotFound, s.Err().Type)

	_, _ = s.StopTimeTracking(1, 1)
	assert.Equal(t, app_errors.ErrNotTracking, s.Err().Type)

	s.ClearErr()
	assert.Nil(t, s.Err())
}

// Reads hand out deep copies, mutating them never leaks into the store.
func TestMembers_ReturnsClones(t *testing.T) {
	s := NewTeamStore(seedTeam())

	members := s.Members()
	members[0].Tasks[0].Title = "mutated"

	task, err := s.Task(1, 1)
	assert.Nil(t, err)
	assert.Equal(t, "Existing task", task.Title)
}

func TestViewPreferences(t *testing.T) {
	s := NewTeamStore(seedTeam())

	assert.Equal(t, "all", s.StatusFilter())
	assert.Equal(t, "name", s.SortBy())

	s.SetStatusFilter("working")
	s.SetSortBy("tasks")

	assert.Equal(t, "working", s.StatusFilter())
	assert.Equal(t, "tasks", s.SortBy())
}
