package analytics_dto

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
)

type SnapshotResponse struct {
	Snapshot       *entity.AnalyticsSnapshot `json:"snapshot"`
	DateRange      entity.DateRange          `json:"date_range"`
	Filters        entity.AnalyticsFilters   `json:"filters"`
	LastCalculated time.Time                 `json:"last_calculated"`
}

type ChartsResponse struct {
	Charts *entity.ChartData `json:"charts"`
}

type ExportResponse struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}
