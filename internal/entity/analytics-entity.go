package entity

import "time"

// DateRange bounds the analytics report, inclusive on both ends.
type DateRange struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Preset string    `json:"preset"` // thisWeek, thisMonth, lastMonth, last3Months, custom
}

// Contains reports whether ts falls inside the range. Zero timestamps never
// match, so tasks with missing dates fall out of the report instead of
// aborting it.
func (r DateRange) Contains(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// AnalyticsFilters narrows which members and tasks a report admits. Empty
// allow-lists admit everything.
type AnalyticsFilters struct {
	SelectedMembers    []int          `json:"selected_members"`
	SelectedCategories []TaskCategory `json:"selected_categories"`
	SelectedPriorities []TaskPriority `json:"selected_priorities"`
	IncludeCompleted   bool           `json:"include_completed"`
	IncludeInProgress  bool           `json:"include_in_progress"`
	IncludeNotStarted  bool           `json:"include_not_started"`
}

func DefaultAnalyticsFilters() AnalyticsFilters {
	return AnalyticsFilters{
		IncludeCompleted:  true,
		IncludeInProgress: true,
		IncludeNotStarted: true,
	}
}

// ViewSettings carries report presentation preferences, including the
// auto-refresh cadence used by the scheduler.
type ViewSettings struct {
	ChartType       string        `json:"chart_type"` // bar, line, pie, mixed
	ShowComparisons bool          `json:"show_comparisons"`
	ShowTrends      bool          `json:"show_trends"`
	RefreshInterval time.Duration `json:"refresh_interval"`
	ExportFormat    string        `json:"export_format"` // json, csv
}

func DefaultViewSettings() ViewSettings {
	return ViewSettings{
		ChartType:       "mixed",
		ShowComparisons: true,
		ShowTrends:      true,
		RefreshInterval: 5 * time.Minute,
		ExportFormat:    "json",
	}
}

type TeamOverview struct {
	TotalTasks            int     `json:"total_tasks"`
	CompletedTasks        int     `json:"completed_tasks"`
	InProgressTasks       int     `json:"in_progress_tasks"`
	OverdueTasks          int     `json:"overdue_tasks"`
	TotalTimeTracked      float64 `json:"total_time_tracked"`      // hours
	AverageCompletionTime float64 `json:"average_completion_time"` // days
	ProductivityScore     int     `json:"productivity_score"`
}

type MemberMetrics struct {
	Name              string  `json:"name"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	InProgressTasks   int     `json:"in_progress_tasks"`
	OverdueTasks      int     `json:"overdue_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageProgress   float64 `json:"average_progress"`
	HoursTracked      float64 `json:"hours_tracked"`
	ProductivityScore int     `json:"productivity_score"`
}

type CategoryMetrics struct {
	TotalTasks     int           `json:"total_tasks"`
	CompletedTasks int           `json:"completed_tasks"`
	CompletionRate float64       `json:"completion_rate"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"` // per completed task
}

type PriorityMetrics struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OnTime         int `json:"on_time"`
	Overdue        int `json:"overdue"`
}

type DeadlineAnalytics struct {
	OnTimeCompletion  float64 `json:"on_time_completion"` // percent
	AverageDelayDays  float64 `json:"average_delay_days"`
	UpcomingDeadlines int     `json:"upcoming_deadlines"` // due within 7 days, incomplete
}

// AnalyticsSnapshot is a fully derived report. It carries no independent
// lifecycle; the engine recomputes it whenever range, filters or the
// underlying entities change.
type AnalyticsSnapshot struct {
	TeamOverview      TeamOverview                     `json:"team_overview"`
	MemberMetrics     map[int]MemberMetrics            `json:"member_metrics"`
	CategoryMetrics   map[TaskCategory]CategoryMetrics `json:"category_metrics"`
	PriorityMetrics   map[TaskPriority]PriorityMetrics `json:"priority_metrics"`
	DeadlineAnalytics DeadlineAnalytics                `json:"deadline_analytics"`
}

// ChartSeries is one labelled dataset of a chart.
type ChartSeries struct {
	Label string    `json:"label,omitempty"`
	Data  []float64 `json:"data"`
}

type Chart struct {
	Labels   []string      `json:"labels"`
	Datasets []ChartSeries `json:"datasets"`
}

type ChartData struct {
	TaskCompletionTrend  Chart `json:"task_completion_trend"`
	MemberProductivity   Chart `json:"member_productivity"`
	CategoryDistribution Chart `json:"category_distribution"`
	TimeTrackingAnalysis Chart `json:"time_tracking_analysis"`
	DeadlinePerformance  Chart `json:"deadline_performance"`
	WorkloadDistribution Chart `json:"workload_distribution"`
}
