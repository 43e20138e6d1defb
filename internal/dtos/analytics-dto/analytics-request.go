package analytics_dto

import "time"

type SetDateRangeRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

type SetPresetRequest struct {
	Preset string `json:"preset" validate:"required,oneof=thisWeek thisMonth lastMonth last3Months"`
}

// UpdateFiltersRequest patches the report filters; nil fields keep the
// current value, empty allow-lists admit everything.
type UpdateFiltersRequest struct {
	SelectedMembers    *[]int    `json:"selected_members,omitempty"`
	SelectedCategories *[]string `json:"selected_categories,omitempty" validate:"omitempty,dive,taskCategory"`
	SelectedPriorities *[]string `json:"selected_priorities,omitempty" validate:"omitempty,dive,taskPriority"`
	IncludeCompleted   *bool     `json:"include_completed,omitempty"`
	IncludeInProgress  *bool     `json:"include_in_progress,omitempty"`
	IncludeNotStarted  *bool     `json:"include_not_started,omitempty"`
}

type UpdateViewSettingsRequest struct {
	ChartType         *string `json:"chart_type,omitempty" validate:"omitempty,oneof=bar line pie mixed"`
	ShowComparisons   *bool   `json:"show_comparisons,omitempty"`
	ShowTrends        *bool   `json:"show_trends,omitempty"`
	RefreshIntervalMs *int    `json:"refresh_interval_ms,omitempty" validate:"omitempty,min=5000"`
	ExportFormat      *string `json:"export_format,omitempty" validate:"omitempty,oneof=json csv"`
}

type ExportRequest struct {
	Format string `json:"format" validate:"required,oneof=json csv"`
}
