package analytics

import (
	"math"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
)

// Calculate aggregates a member snapshot into an AnalyticsSnapshot. It is a
// pure function of its inputs: identical (members, rng, filters, now) always
// produce an identical report. Wall-clock dependence is confined to the
// explicit now argument (overdue and upcoming-deadline checks).
//
// Admission: a task contributes iff any of createdAt/updatedAt/completedAt
// falls inside the range (union semantics), its category and priority pass
// the allow-lists (empty list admits all) and its progress bucket is enabled.
// Tasks with malformed (zero) dates simply fall out of the affected checks
// instead of aborting the report.
func Calculate(members []*entity.MemberEntity, rng entity.DateRange, filters entity.AnalyticsFilters, now time.Time) *entity.AnalyticsSnapshot {
	admitted := make([]*entity.MemberEntity, 0, len(members))
	for _, m := range members {
		if memberAdmitted(m, filters) {
			admitted = append(admitted, m)
		}
	}

	snapshot := &entity.AnalyticsSnapshot{
		MemberMetrics:   make(map[int]entity.MemberMetrics),
		CategoryMetrics: make(map[entity.TaskCategory]entity.CategoryMetrics),
		PriorityMetrics: make(map[entity.TaskPriority]entity.PriorityMetrics),
	}

	var (
		totalTasks          int
		completedTasks      int
		inProgressTasks     int
		overdueTasks        int
		totalTimeTracked    time.Duration
		totalCompletionTime time.Duration
		completedWithTime   int
	)

	for _, member := range admitted {
		tasks := admittedTasks(member, rng, filters)

		var (
			memberCompleted  int
			memberInProgress int
			memberOverdue    int
			memberTracked    time.Duration
			progressSum      int
		)

		for _, t := range tasks {
			progressSum += t.Progress
			memberTracked += t.TimeTracking.TotalTime

			switch {
			case t.Progress == 100:
				memberCompleted++
			case t.Progress > 0:
				memberInProgress++
			}
			if isOverdue(t, now) {
				memberOverdue++
			}

			if t.Progress == 100 && t.CompletedAt != nil && !t.CreatedAt.IsZero() {
				totalCompletionTime += t.CompletedAt.Sub(t.CreatedAt)
				completedWithTime++
			}

			accumulateCategory(snapshot.CategoryMetrics, t)
			accumulatePriority(snapshot.PriorityMetrics, t, now)
		}

		totalTasks += len(tasks)
		completedTasks += memberCompleted
		inProgressTasks += memberInProgress
		overdueTasks += memberOverdue
		totalTimeTracked += memberTracked

		snapshot.MemberMetrics[member.ID] = entity.MemberMetrics{
			Name:              member.Name,
			TotalTasks:        len(tasks),
			CompletedTasks:    memberCompleted,
			InProgressTasks:   memberInProgress,
			OverdueTasks:      memberOverdue,
			CompletionRate:    rate(memberCompleted, len(tasks)),
			AverageProgress:   average(progressSum, len(tasks)),
			HoursTracked:      memberTracked.Hours(),
			ProductivityScore: memberProductivityScore(tasks, memberTracked, now),
		}
	}

	finalizeCategories(snapshot.CategoryMetrics)

	snapshot.TeamOverview = entity.TeamOverview{
		TotalTasks:            totalTasks,
		CompletedTasks:        completedTasks,
		InProgressTasks:       inProgressTasks,
		OverdueTasks:          overdueTasks,
		TotalTimeTracked:      totalTimeTracked.Hours(),
		AverageCompletionTime: averageCompletionDays(totalCompletionTime, completedWithTime),
		ProductivityScore: teamProductivityScore(
			rate(completedTasks, totalTasks),
			rate(overdueTasks, totalTasks),
			teamTimeEfficiency(admitted),
		),
	}

	snapshot.DeadlineAnalytics = deadlineAnalytics(admitted, now)

	return snapshot
}

func memberAdmitted(m *entity.MemberEntity, filters entity.AnalyticsFilters) bool {
	if len(filters.SelectedMembers) == 0 {
		return true
	}
	for _, id := range filters.SelectedMembers {
		if id == m.ID {
			return true
		}
	}
	return false
}

func admittedTasks(m *entity.MemberEntity, rng entity.DateRange, filters entity.AnalyticsFilters) []*entity.TaskEntity {
	var out []*entity.TaskEntity
	for _, t := range m.Tasks {
		inRange := rng.Contains(t.CreatedAt) || rng.Contains(t.UpdatedAt) ||
			(t.CompletedAt != nil && rng.Contains(*t.CompletedAt))
		if !inRange {
			continue
		}
		if len(filters.SelectedCategories) > 0 && !containsCategory(filters.SelectedCategories, t.Category) {
			continue
		}
		if len(filters.SelectedPriorities) > 0 && !containsPriority(filters.SelectedPriorities, t.Priority) {
			continue
		}
		switch t.CompletionBucket() {
		case entity.TaskCompleted:
			if !filters.IncludeCompleted {
				continue
			}
		case entity.TaskInProgress:
			if !filters.IncludeInProgress {
				continue
			}
		default:
			if !filters.IncludeNotStarted {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func containsCategory(list []entity.TaskCategory, c entity.TaskCategory) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

func containsPriority(list []entity.TaskPriority, p entity.TaskPriority) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

func isOverdue(t *entity.TaskEntity, now time.Time) bool {
	if t.Progress == 100 || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(now)
}

func accumulateCategory(metrics map[entity.TaskCategory]entity.CategoryMetrics, t *entity.TaskEntity) {
	m := metrics[t.Category]
	m.TotalTasks++
	if t.Progress == 100 {
		m.CompletedTasks++
	}
	m.TotalTime += t.TimeTracking.TotalTime
	metrics[t.Category] = m
}

func accumulatePriority(metrics map[entity.TaskPriority]entity.PriorityMetrics, t *entity.TaskEntity, now time.Time) {
	m := metrics[t.Priority]
	m.TotalTasks++
	if t.Progress == 100 {
		m.CompletedTasks++
		if completedOnTime(t) {
			m.OnTime++
		}
	} else if isOverdue(t, now) {
		m.Overdue++
	}
	metrics[t.Priority] = m
}

func completedOnTime(t *entity.TaskEntity) bool {
	if t.CompletedAt == nil || t.DueDate.IsZero() {
		return false
	}
	return !t.CompletedAt.After(t.DueDate)
}

func finalizeCategories(metrics map[entity.TaskCategory]entity.CategoryMetrics) {
	for category, m := range metrics {
		m.CompletionRate = rate(m.CompletedTasks, m.TotalTasks)
		if m.CompletedTasks > 0 {
			m.AverageTime = m.TotalTime / time.Duration(m.CompletedTasks)
		}
		metrics[category] = m
	}
}

// memberProductivityScore weighs completion rate 40%, average progress 30%,
// on-time rate 20% and time efficiency 10%.
func memberProductivityScore(tasks []*entity.TaskEntity, tracked time.Duration, now time.Time) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	progressSum := 0
	estimatedSum := 0.0
	for _, t := range tasks {
		progressSum += t.Progress
		estimatedSum += t.EstimatedHours
		if t.Progress == 100 {
			completed++
		}
	}

	completionRate := rate(completed, len(tasks))
	averageProgress := average(progressSum, len(tasks))
	onTime := onTimeRate(tasks)
	efficiency := taskTimeEfficiency(estimatedSum, tracked)

	return int(math.Round(completionRate*0.4 + averageProgress*0.3 + onTime*0.2 + efficiency*0.1))
}

// teamProductivityScore weighs completion rate 50%, overdue impact 30% and
// time efficiency 20%. Overdue tasks hurt the score at double their rate.
func teamProductivityScore(completionRate, overdueRate, timeEfficiency float64) int {
	overdueImpact := math.Max(0, 100-overdueRate*2)
	return int(math.Round(completionRate*0.5 + overdueImpact*0.3 + timeEfficiency*0.2))
}

// onTimeRate is the share of completed tasks finished by their due date.
// No completed tasks means 100: nothing has been late yet.
func onTimeRate(tasks []*entity.TaskEntity) float64 {
	completed := 0
	onTime := 0
	for _, t := range tasks {
		if t.Progress == 100 && t.CompletedAt != nil {
			completed++
			if completedOnTime(t) {
				onTime++
			}
		}
	}
	if completed == 0 {
		return 100
	}
	return float64(onTime) / float64(completed) * 100
}

// taskTimeEfficiency compares estimated hours against tracked hours, capped
// at 100. No tracked time means fully efficient by policy.
func taskTimeEfficiency(estimatedHours float64, tracked time.Duration) float64 {
	actual := tracked.Hours()
	if actual == 0 {
		return 100
	}
	return math.Min(100, estimatedHours/actual*100)
}

// teamTimeEfficiency sums estimates against recorded actuals over every task
// of the admitted members that carries both, regardless of task admission.
func teamTimeEfficiency(members []*entity.MemberEntity) float64 {
	totalEstimated := 0.0
	totalActual := 0.0
	for _, m := range members {
		for _, t := range m.Tasks {
			if t.EstimatedHours > 0 && t.ActualHours > 0 {
				totalEstimated += t.EstimatedHours
				totalActual += t.ActualHours
			}
		}
	}
	if totalActual == 0 {
		return 100
	}
	return math.Min(100, totalEstimated/totalActual*100)
}

// deadlineAnalytics runs over every task of the admitted members, ignoring
// task admission. The deadline panel always shows the full picture even when
// the report is narrowed.
func deadlineAnalytics(members []*entity.MemberEntity, now time.Time) entity.DeadlineAnalytics {
	completed := 0
	onTime := 0
	totalDelay := 0.0
	upcoming := 0
	nextWeek := now.Add(7 * 24 * time.Hour)

	for _, m := range members {
		for _, t := range m.Tasks {
			if t.Progress == 100 && t.CompletedAt != nil {
				if t.DueDate.IsZero() {
					continue
				}
				completed++
				if completedOnTime(t) {
					onTime++
				} else {
					totalDelay += t.CompletedAt.Sub(t.DueDate).Hours() / 24
				}
				continue
			}
			if t.Progress < 100 && !t.DueDate.IsZero() &&
				!t.DueDate.Before(now) && !t.DueDate.After(nextWeek) {
				upcoming++
			}
		}
	}

	out := entity.DeadlineAnalytics{
		OnTimeCompletion:  100,
		UpcomingDeadlines: upcoming,
	}
	if completed > 0 {
		out.OnTimeCompletion = float64(onTime) / float64(completed) * 100
	}
	if late := completed - onTime; late > 0 {
		out.AverageDelayDays = totalDelay / float64(late)
	}
	return out
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func average(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func averageCompletionDays(total time.Duration, count int) float64 {
	if count == 0 {
		return 0
	}
	return (total / time.Duration(count)).Hours() / 24
}
