package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	app_errors "github.com/Lovkumawat/Versal-Pulse/internal/errors"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type exportEnvelope struct {
	ExportID    string                    `json:"export_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	DateRange   entity.DateRange          `json:"date_range"`
	Filters     entity.AnalyticsFilters   `json:"filters"`
	Report      *entity.AnalyticsSnapshot `json:"report"`
}

// Export renders the current report as a downloadable artifact. Supported
// formats are "json" and "csv".
func (e *Engine) Export(format string) (string, []byte, *app_errors.AppError) {
	snapshot, _ := e.Snapshot()

	exportID := uuid.NewString()
	filename := fmt.Sprintf("analytics-export-%s.%s", exportID, format)

	switch format {
	case "json":
		envelope := exportEnvelope{
			ExportID:    exportID,
			GeneratedAt: time.Now(),
			DateRange:   e.DateRange(),
			Filters:     e.Filters(),
			Report:      snapshot,
		}
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return "", nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "errors.export_failed", err)
		}
		return filename, data, nil

	case "csv":
		data, err := exportCSV(snapshot)
		if err != nil {
			return "", nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "errors.export_failed", err)
		}
		return filename, data, nil
	}

	return "", nil, app_errors.InvalidEnumValue("format", format)
}

func exportCSV(snapshot *entity.AnalyticsSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	overview := snapshot.TeamOverview
	rows := [][]string{
		{"section", "metric", "value"},
		{"team", "total_tasks", strconv.Itoa(overview.TotalTasks)},
		{"team", "completed_tasks", strconv.Itoa(overview.CompletedTasks)},
		{"team", "in_progress_tasks", strconv.Itoa(overview.InProgressTasks)},
		{"team", "overdue_tasks", strconv.Itoa(overview.OverdueTasks)},
		{"team", "total_time_tracked_hours", formatFloat(overview.TotalTimeTracked)},
		{"team", "average_completion_days", formatFloat(overview.AverageCompletionTime)},
		{"team", "productivity_score", strconv.Itoa(overview.ProductivityScore)},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	for _, id := range sortedMemberIDs(snapshot.MemberMetrics) {
		m := snapshot.MemberMetrics[id]
		record := []string{
			"member:" + m.Name,
			"completion_rate=" + formatFloat(m.CompletionRate),
			"productivity_score=" + strconv.Itoa(m.ProductivityScore),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
