package analytics

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
)

const (
	PresetThisWeek    = "thisWeek"
	PresetThisMonth   = "thisMonth"
	PresetLastMonth   = "lastMonth"
	PresetLast3Months = "last3Months"
	PresetCustom      = "custom"
)

// RangeForPreset resolves a named preset at the given instant. Unknown
// presets (including "custom") report false and leave the range to the
// caller.
func RangeForPreset(preset string, now time.Time) (entity.DateRange, bool) {
	switch preset {
	case PresetThisWeek:
		return entity.DateRange{Start: startOfWeek(now), End: endOfWeek(now), Preset: preset}, true
	case PresetThisMonth:
		return entity.DateRange{Start: startOfMonth(now), End: endOfMonth(now), Preset: preset}, true
	case PresetLastMonth:
		lastMonth := startOfMonth(now).AddDate(0, 0, -1)
		return entity.DateRange{Start: startOfMonth(lastMonth), End: endOfMonth(lastMonth), Preset: preset}, true
	case PresetLast3Months:
		return entity.DateRange{Start: startOfMonth(now).AddDate(0, 0, -90), End: endOfMonth(now), Preset: preset}, true
	}
	return entity.DateRange{}, false
}

// Weeks run Sunday through Saturday.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
