package analytics

import (
	"sort"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
)

// Charts renders the cached report into chart-ready series. Labels are
// ordered deterministically (members by id, categories and priorities in
// their canonical order) so repeated calls on an unchanged report match.
func (e *Engine) Charts() *entity.ChartData {
	snapshot, _ := e.Snapshot()
	members := e.team.Members()

	e.mu.RLock()
	rng := e.dateRange
	e.mu.RUnlock()

	return &entity.ChartData{
		TaskCompletionTrend:  completionTrendChart(members, rng),
		MemberProductivity:   memberProductivityChart(snapshot.MemberMetrics),
		CategoryDistribution: categoryDistributionChart(snapshot.CategoryMetrics),
		TimeTrackingAnalysis: timeTrackingChart(snapshot.MemberMetrics),
		DeadlinePerformance:  deadlinePerformanceChart(snapshot.DeadlineAnalytics),
		WorkloadDistribution: workloadDistributionChart(snapshot.MemberMetrics),
	}
}

func sortedMemberIDs(metrics map[int]entity.MemberMetrics) []int {
	ids := make([]int, 0, len(metrics))
	for id := range metrics {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func memberProductivityChart(metrics map[int]entity.MemberMetrics) entity.Chart {
	chart := entity.Chart{Datasets: []entity.ChartSeries{{Label: "Productivity Score"}}}
	for _, id := range sortedMemberIDs(metrics) {
		m := metrics[id]
		chart.Labels = append(chart.Labels, m.Name)
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, float64(m.ProductivityScore))
	}
	return chart
}

func categoryDistributionChart(metrics map[entity.TaskCategory]entity.CategoryMetrics) entity.Chart {
	chart := entity.Chart{Datasets: []entity.ChartSeries{{}}}
	for _, category := range entity.TaskCategories() {
		m, ok := metrics[category]
		if !ok {
			continue
		}
		chart.Labels = append(chart.Labels, string(category))
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, float64(m.TotalTasks))
	}
	return chart
}

func timeTrackingChart(metrics map[int]entity.MemberMetrics) entity.Chart {
	chart := entity.Chart{Datasets: []entity.ChartSeries{{Label: "Hours Tracked"}}}
	for _, id := range sortedMemberIDs(metrics) {
		m := metrics[id]
		chart.Labels = append(chart.Labels, m.Name)
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, m.HoursTracked)
	}
	return chart
}

func deadlinePerformanceChart(d entity.DeadlineAnalytics) entity.Chart {
	return entity.Chart{
		Labels: []string{"On Time", "Delayed"},
		Datasets: []entity.ChartSeries{{
			Data: []float64{d.OnTimeCompletion, 100 - d.OnTimeCompletion},
		}},
	}
}

func workloadDistributionChart(metrics map[int]entity.MemberMetrics) entity.Chart {
	chart := entity.Chart{Datasets: []entity.ChartSeries{
		{Label: "Completed Tasks"},
		{Label: "In Progress Tasks"},
	}}
	for _, id := range sortedMemberIDs(metrics) {
		m := metrics[id]
		chart.Labels = append(chart.Labels, m.Name)
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, float64(m.CompletedTasks))
		chart.Datasets[1].Data = append(chart.Datasets[1].Data, float64(m.InProgressTasks))
	}
	return chart
}

// completionTrendChart buckets completions by week across the active range.
func completionTrendChart(members []*entity.MemberEntity, rng entity.DateRange) entity.Chart {
	chart := entity.Chart{Datasets: []entity.ChartSeries{{Label: "Tasks Completed"}}}
	if rng.Start.IsZero() || rng.End.Before(rng.Start) {
		return chart
	}

	type bucket struct {
		start time.Time
		count int
	}
	var buckets []bucket
	for cursor := startOfWeek(rng.Start); !cursor.After(rng.End); cursor = cursor.AddDate(0, 0, 7) {
		buckets = append(buckets, bucket{start: cursor})
	}

	for _, m := range members {
		for _, t := range m.Tasks {
			if t.CompletedAt == nil || !rng.Contains(*t.CompletedAt) {
				continue
			}
			for i := range buckets {
				weekEnd := buckets[i].start.AddDate(0, 0, 7)
				if !t.CompletedAt.Before(buckets[i].start) && t.CompletedAt.Before(weekEnd) {
					buckets[i].count++
					break
				}
			}
		}
	}

	for _, b := range buckets {
		chart.Labels = append(chart.Labels, b.start.Format("Jan 02"))
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, float64(b.count))
	}
	return chart
}
