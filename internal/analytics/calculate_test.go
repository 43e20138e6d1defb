package analytics

import (
	"testing"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func januaryRange() entity.DateRange {
	return entity.DateRange{
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
		Preset: PresetCustom,
	}
}

func analyticsFixture() []*entity.MemberEntity {
	completedAt := time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC)

	return []*entity.MemberEntity{
		{
			ID:     1,
			Name:   "John Doe",
			Status: entity.StatusWorking,
			Tasks: []*entity.TaskEntity{
				{
					ID:             1,
					Title:          "Completed on time",
					Progress:       100,
					Priority:       entity.PriorityHigh,
					Category:       entity.CategoryDevelopment,
					Status:         entity.TaskCompleted,
					EstimatedHours: 8,
					ActualHours:    5,
					DueDate:        time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
					CreatedAt:      time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC),
					UpdatedAt:      completedAt,
					CompletedAt:    &completedAt,
					TimeTracking:   entity.TimeTracking{TotalTime: 5 * time.Hour},
				},
				{
					ID:             2,
					Title:          "Overdue",
					Progress:       50,
					Priority:       entity.PriorityUrgent,
					Category:       entity.CategoryDevelopment,
					Status:         entity.TaskInProgress,
					EstimatedHours: 4,
					DueDate:        time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
					CreatedAt:      time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
					UpdatedAt:      time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:     2,
			Name:   "Jane Smith",
			Status: entity.StatusMeeting,
			Tasks: []*entity.TaskEntity{
				{
					ID:             3,
					Title:          "Due soon",
					Progress:       40,
					Priority:       entity.PriorityMedium,
					Category:       entity.CategoryDesign,
					Status:         entity.TaskInProgress,
					EstimatedHours: 6,
					DueDate:        time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
					CreatedAt:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
					UpdatedAt:      time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}
}

func TestCalculate_TeamOverview(t *testing.T) {
	snapshot := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	overview := snapshot.TeamOverview
	assert.Equal(t, 3, overview.TotalTasks)
	assert.Equal(t, 1, overview.CompletedTasks)
	assert.Equal(t, 2, overview.InProgressTasks)
	assert.Equal(t, 1, overview.OverdueTasks)
	assert.InDelta(t, 5.0, overview.TotalTimeTracked, 0.001)
	assert.InDelta(t, 2.0, overview.AverageCompletionTime, 0.001)

	// completionRate 33.33 * 0.5 + overdueImpact 33.33 * 0.3 + efficiency 100 * 0.2
	assert.Equal(t, 47, overview.ProductivityScore)
}

func TestCalculate_MemberMetrics(t *testing.T) {
	snapshot := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	john := snapshot.MemberMetrics[1]
	assert.Equal(t, "John Doe", john.Name)
	assert.Equal(t, 2, john.TotalTasks)
	assert.Equal(t, 1, john.CompletedTasks)
	assert.Equal(t, 1, john.InProgressTasks)
	assert.Equal(t, 1, john.OverdueTasks)
	assert.InDelta(t, 50.0, john.CompletionRate, 0.001)
	assert.InDelta(t, 75.0, john.AverageProgress, 0.001)
	assert.InDelta(t, 5.0, john.HoursTracked, 0.001)
	// 50*0.4 + 75*0.3 + onTime 100*0.2 + efficiency 100*0.1 = 72.5
	assert.Equal(t, 73, john.ProductivityScore)

	jane := snapshot.MemberMetrics[2]
	assert.Equal(t, 0, jane.CompletedTasks)
	assert.InDelta(t, 0.0, jane.CompletionRate, 0.001)
	// 0*0.4 + 40*0.3 + 100*0.2 + 100*0.1 = 42
	assert.Equal(t, 42, jane.ProductivityScore)
}

func TestCalculate_CategoryAndPriorityMetrics(t *testing.T) {
	snapshot := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	dev := snapshot.CategoryMetrics[entity.CategoryDevelopment]
	assert.Equal(t, 2, dev.TotalTasks)
	assert.Equal(t, 1, dev.CompletedTasks)
	assert.InDelta(t, 50.0, dev.CompletionRate, 0.001)
	assert.Equal(t, 5*time.Hour, dev.AverageTime)

	design := snapshot.CategoryMetrics[entity.CategoryDesign]
	assert.Equal(t, 1, design.TotalTasks)
	assert.Equal(t, time.Duration(0), design.AverageTime)

	urgent := snapshot.PriorityMetrics[entity.PriorityUrgent]
	assert.Equal(t, 1, urgent.TotalTasks)
	assert.Equal(t, 1, urgent.Overdue)

	high := snapshot.PriorityMetrics[entity.PriorityHigh]
	assert.Equal(t, 1, high.CompletedTasks)
	assert.Equal(t, 1, high.OnTime)
}

func TestCalculate_DeadlineAnalytics(t *testing.T) {
	snapshot := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	deadline := snapshot.DeadlineAnalytics
	assert.InDelta(t, 100.0, deadline.OnTimeCompletion, 0.001)
	assert.Equal(t, 1, deadline.UpcomingDeadlines) // "Due soon" inside the next 7 days
	assert.InDelta(t, 0.0, deadline.AverageDelayDays, 0.001)
}

// Empty input: rates fall to 0, never NaN.
func TestCalculate_EmptyTeam(t *testing.T) {
	snapshot := Calculate(nil, januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	overview := snapshot.TeamOverview
	assert.Equal(t, 0, overview.TotalTasks)
	// 0*0.5 + overdueImpact 100*0.3 + efficiency 100*0.2 = 50
	assert.Equal(t, 50, overview.ProductivityScore)
	assert.InDelta(t, 100.0, snapshot.DeadlineAnalytics.OnTimeCompletion, 0.001)
}

// A task is admitted when any of its timestamps falls in range.
func TestCalculate_AdmissionByTimestampUnion(t *testing.T) {
	members := analyticsFixture()
	rng := entity.DateRange{
		Start:  time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 13, 23, 59, 59, 0, time.UTC),
		Preset: PresetCustom,
	}

	snapshot := Calculate(members, rng, entity.DefaultAnalyticsFilters(), testNow)

	// only task 1 touches Jan 13 (via updatedAt and completedAt)
	assert.Equal(t, 1, snapshot.TeamOverview.TotalTasks)
	assert.Equal(t, 1, snapshot.MemberMetrics[1].TotalTasks)
	assert.Equal(t, 0, snapshot.MemberMetrics[2].TotalTasks)
}

func TestCalculate_MemberAllowList(t *testing.T) {
	filters := entity.DefaultAnalyticsFilters()
	filters.SelectedMembers = []int{2}

	snapshot := Calculate(analyticsFixture(), januaryRange(), filters, testNow)

	assert.Equal(t, 1, snapshot.TeamOverview.TotalTasks)
	_, hasJohn := snapshot.MemberMetrics[1]
	assert.False(t, hasJohn)
}

func TestCalculate_CategoryAllowList(t *testing.T) {
	filters := entity.DefaultAnalyticsFilters()
	filters.SelectedCategories = []entity.TaskCategory{entity.CategoryDesign}

	snapshot := Calculate(analyticsFixture(), januaryRange(), filters, testNow)

	assert.Equal(t, 1, snapshot.TeamOverview.TotalTasks)
	assert.Equal(t, 0, snapshot.MemberMetrics[1].TotalTasks)
	assert.Equal(t, 1, snapshot.MemberMetrics[2].TotalTasks)
}

func TestCalculate_BucketFlags(t *testing.T) {
	filters := entity.DefaultAnalyticsFilters()
	filters.IncludeInProgress = false

	snapshot := Calculate(analyticsFixture(), januaryRange(), filters, testNow)

	assert.Equal(t, 1, snapshot.TeamOverview.TotalTasks)
	assert.Equal(t, 1, snapshot.TeamOverview.CompletedTasks)
	assert.Equal(t, 0, snapshot.TeamOverview.InProgressTasks)
}

// Deadline analytics ignores task-level admission: narrowing the report by
// category leaves the deadline panel unchanged.
func TestCalculate_DeadlineIgnoresTaskAdmission(t *testing.T) {
	filters := entity.DefaultAnalyticsFilters()
	filters.SelectedCategories = []entity.TaskCategory{entity.CategoryDesign}

	snapshot := Calculate(analyticsFixture(), januaryRange(), filters, testNow)

	assert.InDelta(t, 100.0, snapshot.DeadlineAnalytics.OnTimeCompletion, 0.001)
	assert.Equal(t, 1, snapshot.DeadlineAnalytics.UpcomingDeadlines)
}

// Identical inputs always yield identical reports.
func TestCalculate_Deterministic(t *testing.T) {
	first := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)
	second := Calculate(analyticsFixture(), januaryRange(), entity.DefaultAnalyticsFilters(), testNow)

	assert.Equal(t, first, second)
}

func TestRangeForPreset(t *testing.T) {
	rng, ok := RangeForPreset(PresetThisMonth, testNow)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.January, rng.End.Month())

	rng, ok = RangeForPreset(PresetLastMonth, testNow)
	assert.True(t, ok)
	assert.Equal(t, time.December, rng.Start.Month())
	assert.Equal(t, 2024, rng.Start.Year())

	_, ok = RangeForPreset("lastYear", testNow)
	assert.False(t, ok)

	_, ok = RangeForPreset(PresetCustom, testNow)
	assert.False(t, ok)
}

func TestStartOfWeek_Sunday(t *testing.T) {
	// Jan 15 2025 is a Wednesday; the week starts Sunday Jan 12.
	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), startOfWeek(testNow))
}
