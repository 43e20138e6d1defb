package entity

import "time"

type TaskEntity struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	DueDate        time.Time       `json:"due_date"`
	Progress       int             `json:"progress"`
	Priority       TaskPriority    `json:"priority"`
	Category       TaskCategory    `json:"category"`
	Status         TaskStatus      `json:"status"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	AssignedBy     string          `json:"assigned_by"`
	AssignedTo     string          `json:"assigned_to"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	TimeTracking   TimeTracking    `json:"time_tracking"`
	Comments       []CommentEntity `json:"comments"`
	Tags           []string        `json:"tags"`
}

// CompletionBucket derives the status bucket from progress alone, the same
// derivation the analytics admission filter uses.
func (t *TaskEntity) CompletionBucket() TaskStatus {
	switch {
	case t.Progress == 100:
		return TaskCompleted
	case t.Progress > 0:
		return TaskInProgress
	default:
		return TaskNotStarted
	}
}

func (t *TaskEntity) Clone() *TaskEntity {
	out := *t
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		out.CompletedAt = &completedAt
	}
	out.TimeTracking = t.TimeTracking.Clone()
	if t.Comments != nil {
		out.Comments = make([]CommentEntity, len(t.Comments))
		copy(out.Comments, t.Comments)
	}
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	return &out
}

// TimeTracking records the tracking state of a single task. TotalTime only
// ever grows, by the duration of a session when that session is closed.
type TimeTracking struct {
	IsActive            bool              `json:"is_active"`
	CurrentSessionStart *time.Time        `json:"current_session_start,omitempty"`
	TotalTime           time.Duration     `json:"total_time"`
	Sessions            []TrackingSession `json:"sessions"`
}

func (tt TimeTracking) Clone() TimeTracking {
	out := tt
	if tt.CurrentSessionStart != nil {
		start := *tt.CurrentSessionStart
		out.CurrentSessionStart = &start
	}
	if tt.Sessions != nil {
		out.Sessions = make([]TrackingSession, len(tt.Sessions))
		copy(out.Sessions, tt.Sessions)
	}
	return out
}

// TrackingSession is one contiguous interval of active work, bounded by the
// start and stop events that created it.
type TrackingSession struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// CommentEntity is immutable once created and ordered by insertion.
type CommentEntity struct {
	ID        int       `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}

	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// Rank orders priorities so escalation checks can compare them.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}

	return 0
}

type TaskCategory string

const (
	CategoryDevelopment   TaskCategory = "development"
	CategoryDesign        TaskCategory = "design"
	CategoryMeeting       TaskCategory = "meeting"
	CategoryResearch      TaskCategory = "research"
	CategoryTesting       TaskCategory = "testing"
	CategoryDocumentation TaskCategory = "documentation"
	CategoryReview        TaskCategory = "review"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryDevelopment, CategoryDesign, CategoryMeeting, CategoryResearch,
		CategoryTesting, CategoryDocumentation, CategoryReview:
		return true
	}

	return false
}

// TaskCategories lists every valid category, in display order.
func TaskCategories() []TaskCategory {
	return []TaskCategory{
		CategoryDevelopment, CategoryDesign, CategoryMeeting, CategoryResearch,
		CategoryTesting, CategoryDocumentation, CategoryReview,
	}
}

// TaskPriorities lists every valid priority, lowest first.
func TaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}
