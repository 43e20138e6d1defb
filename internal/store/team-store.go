package store

import (
	"strings"
	"sync"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// TeamStore is the authoritative state tree for members and their tasks.
// All mutation goes through its operations; each operation is atomic under
// the lock, and on failure leaves the tree untouched apart from the error
// slot. Construct one with NewTeamStore and hand it to every consumer —
// there is no package-level instance.
type TeamStore struct {
	mu            sync.RWMutex
	members       []*entity.MemberEntity
	nextTaskID    int
	nextCommentID int
	statusFilter  string
	sortBy        string
	lastErr       *app_errors.AppError
}

// TaskDraft carries the caller-supplied fields of a new task. Everything
// else (id, timestamps, tracking state) is allocated by AssignTask.
type TaskDraft struct {
	Title          string
	Description    string
	DueDate        time.Time
	Priority       entity.TaskPriority
	Category       entity.TaskCategory
	EstimatedHours float64
	AssignedBy     string
	Tags           []string
}

func NewTeamStore(initial []*entity.MemberEntity) *TeamStore {
	s := &TeamStore{
		nextTaskID:    1,
		nextCommentID: 1,
		statusFilter:  "all",
		sortBy:        "name",
	}
	for _, m := range initial {
		member := m.Clone()
		for _, t := range member.Tasks {
			if t.ID >= s.nextTaskID {
				s.nextTaskID = t.ID + 1
			}
			for _, c := range t.Comments {
				if c.ID >= s.nextCommentID {
					s.nextCommentID = c.ID + 1
				}
			}
		}
		s.members = append(s.members, member)
	}
	return s
}

// UpdateMemberStatus sets the member's status. No side effects beyond the
// store; notification fan-out belongs to the orchestration layer.
func (s *TeamStore) UpdateMemberStatus(memberID int, status entity.MemberStatus) *app_errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return s.fail(app_errors.InvalidEnumValue("status", string(status)))
	}

	member := s.findMember(memberID)
	if member == nil {
		return s.fail(app_errors.MemberNotFound())
	}

	member.Status = status
	return nil
}

// AssignTask allocates the next task id and appends a fresh task to the
// member's list: not started, zero progress, empty tracking state.
func (s *TeamStore) AssignTask(memberID int, draft TaskDraft) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(draft.Title) == "" {
		return nil, s.fail(app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "title",
			Reason:     "required",
			MessageKey: "validation.required",
		}}))
	}
	if !draft.Priority.IsValid() {
		return nil, s.fail(app_errors.InvalidEnumValue("priority", string(draft.Priority)))
	}
	if !draft.Category.IsValid() {
		return nil, s.fail(app_errors.InvalidEnumValue("category", string(draft.Category)))
	}
	if draft.EstimatedHours <= 0 {
		return nil, s.fail(app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidEstimate, "errors.invalid_estimate", nil))
	}

	member := s.findMember(memberID)
	if member == nil {
		return nil, s.fail(app_errors.MemberNotFound())
	}

	now := time.Now()
	task := &entity.TaskEntity{
		ID:             s.nextTaskID,
		Title:          draft.Title,
		Description:    draft.Description,
		DueDate:        draft.DueDate,
		Progress:       0,
		Priority:       draft.Priority,
		Category:       draft.Category,
		Status:         entity.TaskNotStarted,
		EstimatedHours: draft.EstimatedHours,
		AssignedBy:     draft.AssignedBy,
		AssignedTo:     member.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
		Tags:           draft.Tags,
	}
	s.nextTaskID++
	member.Tasks = append(member.Tasks, task)

	return task.Clone(), nil
}

// UpdateTaskProgress clamps progress into [0,100] and keeps status and
// completedAt consistent with it. Reaching 100 while a tracking session is
// open forcibly closes that session.
func (s *TeamStore) UpdateTaskProgress(memberID, taskID, progress int) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, s.fail(err)
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	now := time.Now()
	task.Progress = progress
	task.UpdatedAt = now

	switch {
	case progress == 100:
		task.Status = entity.TaskCompleted
		if task.CompletedAt == nil {
			completedAt := now
			task.CompletedAt = &completedAt
		}
		if task.TimeTracking.IsActive {
			closeSession(task, now)
		}
	case progress > 0:
		task.Status = entity.TaskInProgress
		task.CompletedAt = nil // re-opened
	default:
		task.Status = entity.TaskNotStarted
		task.CompletedAt = nil
	}

	return task.Clone(), nil
}

// StartTimeTracking opens a session on the task. Any other active session of
// the same member is closed first, so at most one task per member tracks at
// a time.
func (s *TeamStore) StartTimeTracking(memberID, taskID int) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.findMember(memberID)
	if member == nil {
		return nil, s.fail(app_errors.MemberNotFound())
	}

	var task *entity.TaskEntity
	for _, t := range member.Tasks {
		if t.ID == taskID {
			task = t
			break
		}
	}
	if task == nil {
		return nil, s.fail(app_errors.TaskNotFound())
	}

	if task.TimeTracking.IsActive {
		return nil, s.fail(app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrAlreadyTracking, "errors.already_tracking", nil))
	}

	now := time.Now()
	for _, t := range member.Tasks {
		if t.TimeTracking.IsActive {
			closeSession(t, now)
			t.UpdatedAt = now
		}
	}

	start := now
	task.TimeTracking.IsActive = true
	task.TimeTracking.CurrentSessionStart = &start
	if task.Status == entity.TaskNotStarted {
		task.Status = entity.TaskInProgress
	}
	task.UpdatedAt = now

	return task.Clone(), nil
}

// StopTimeTracking closes the open session and folds its duration into
// TotalTime and ActualHours.
func (s *TeamStore) StopTimeTracking(memberID, taskID int) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, s.fail(err)
	}

	if !task.TimeTracking.IsActive {
		return nil, s.fail(app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrNotTracking, "errors.not_tracking", nil))
	}

	now := time.Now()
	closeSession(task, now)
	task.UpdatedAt = now

	return task.Clone(), nil
}

// AddTaskComment appends an immutable comment with a fresh monotonic id.
// Whitespace-only text is rejected.
func (s *TeamStore) AddTaskComment(memberID, taskID int, text, user string) (*entity.CommentEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return nil, s.fail(app_errors.NewValidationError([]app_errors.FieldError{{
			Field:      "text",
			Reason:     "required",
			MessageKey: "validation.required",
		}}))
	}

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, s.fail(err)
	}

	now := time.Now()
	comment := entity.CommentEntity{
		ID:        s.nextCommentID,
		User:      user,
		Text:      strings.TrimSpace(text),
		Timestamp: now,
	}
	s.nextCommentID++
	task.Comments = append(task.Comments, comment)
	task.UpdatedAt = now

	out := comment
	return &out, nil
}

func (s *TeamStore) UpdateTaskPriority(memberID, taskID int, priority entity.TaskPriority) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !priority.IsValid() {
		return nil, s.fail(app_errors.InvalidEnumValue("priority", string(priority)))
	}

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, s.fail(err)
	}

	task.Priority = priority
	task.UpdatedAt = time.Now()

	return task.Clone(), nil
}

func (s *TeamStore) UpdateTaskCategory(memberID, taskID int, category entity.TaskCategory) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.IsValid() {
		return nil, s.fail(app_errors.InvalidEnumValue("category", string(category)))
	}

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, s.fail(err)
	}

	task.Category = category
	task.UpdatedAt = time.Now()

	return task.Clone(), nil
}

// Members returns deep copies of every member, so callers can never mutate
// store state behind the lock's back.
func (s *TeamStore) Members() []*entity.MemberEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.MemberEntity, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m.Clone())
	}
	return out
}

func (s *TeamStore) Member(memberID int) (*entity.MemberEntity, *app_errors.AppError) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member := s.findMember(memberID)
	if member == nil {
		return nil, app_errors.MemberNotFound()
	}
	return member.Clone(), nil
}

func (s *TeamStore) Task(memberID, taskID int) (*entity.TaskEntity, *app_errors.AppError) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, err := s.findTask(memberID, taskID)
	if err != nil {
		return nil, err
	}
	return task.Clone(), nil
}

func (s *TeamStore) SetStatusFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusFilter = filter
}

func (s *TeamStore) SetSortBy(sortBy string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = sortBy
}

func (s *TeamStore) StatusFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusFilter
}

func (s *TeamStore) SortBy() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

// Err returns the last recorded operation error. It is a single slot: the
// next failure overwrites it, and only ClearErr empties it.
func (s *TeamStore) Err() *app_errors.AppError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *TeamStore) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

func (s *TeamStore) fail(err *app_errors.AppError) *app_errors.AppError {
	s.lastErr = err
	return err
}

func (s *TeamStore) findMember(memberID int) *entity.MemberEntity {
	for _, m := range s.members {
		if m.ID == memberID {
			return m
		}
	}
	return nil
}

func (s *TeamStore) findTask(memberID, taskID int) (*entity.TaskEntity, *app_errors.AppError) {
	member := s.findMember(memberID)
	if member == nil {
		return nil, app_errors.MemberNotFound()
	}
	for _, t := range member.Tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return nil, app_errors.TaskNotFound()
}

// closeSession ends the open tracking session at now, appends it to the
// session log and accumulates its duration. TotalTime never decreases.
func closeSession(task *entity.TaskEntity, now time.Time) {
	tt := &task.TimeTracking
	if !tt.IsActive || tt.CurrentSessionStart == nil {
		tt.IsActive = false
		tt.CurrentSessionStart = nil
		return
	}

	duration := now.Sub(*tt.CurrentSessionStart)
	if duration < 0 {
		duration = 0
	}
	tt.Sessions = append(tt.Sessions, entity.TrackingSession{
		Start:    *tt.CurrentSessionStart,
		End:      now,
		Duration: duration,
	})
	tt.TotalTime += duration
	tt.IsActive = false
	tt.CurrentSessionStart = nil
	task.ActualHours = tt.TotalTime.Hours()
}
