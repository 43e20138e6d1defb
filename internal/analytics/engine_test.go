package analytics

import (
	"testing"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	"github.com/stretchr/testify/assert"
)

func newEngineFixture() (*Engine, *store.TeamStore) {
	team := store.NewTeamStore(analyticsFixture())
	return NewEngine(team), team
}

func TestEngine_SnapshotLazyRecompute(t *testing.T) {
	engine, _ := newEngineFixture()

	first, calculatedAt := engine.Snapshot()
	assert.NotNil(t, first)
	assert.False(t, calculatedAt.IsZero())

	// cached: same pointer until invalidated
	second, _ := engine.Snapshot()
	assert.Same(t, first, second)
}

func TestEngine_InvalidateDropsCache(t *testing.T) {
	engine, team := newEngineFixture()
	engine.SetDateRange(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	first, _ := engine.Snapshot()

	_, err := team.UpdateTaskProgress(2, 3, 100)
	assert.Nil(t, err)
	engine.Invalidate()

	second, _ := engine.Snapshot()
	assert.NotSame(t, first, second)
	assert.Equal(t, first.TeamOverview.CompletedTasks+1, second.TeamOverview.CompletedTasks)
}

func TestEngine_DefaultRangeIsThisMonth(t *testing.T) {
	engine, _ := newEngineFixture()

	assert.Equal(t, PresetThisMonth, engine.DateRange().Preset)
}

func TestEngine_SetDateRange(t *testing.T) {
	engine, _ := newEngineFixture()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	rng := engine.SetDateRange(start, end)

	assert.Equal(t, PresetCustom, rng.Preset)
	assert.Equal(t, start, rng.Start)
	assert.Equal(t, end, rng.End)
	assert.Equal(t, rng, engine.DateRange())
}

func TestEngine_SetPreset(t *testing.T) {
	engine, _ := newEngineFixture()

	rng, ok := engine.SetPreset(PresetThisWeek)
	assert.True(t, ok)
	assert.Equal(t, PresetThisWeek, rng.Preset)

	// unknown preset: reports false, range untouched
	unchanged, ok := engine.SetPreset("lastYear")
	assert.False(t, ok)
	assert.Equal(t, PresetThisWeek, unchanged.Preset)
}

func TestEngine_SetFiltersInvalidates(t *testing.T) {
	engine, _ := newEngineFixture()

	first, _ := engine.Snapshot()

	filters := engine.Filters()
	filters.SelectedMembers = []int{1}
	engine.SetFilters(filters)

	second, _ := engine.Snapshot()
	assert.NotSame(t, first, second)
	_, hasJane := second.MemberMetrics[2]
	assert.False(t, hasJane)
}

func TestEngine_UpdateViewSettings(t *testing.T) {
	engine, _ := newEngineFixture()

	view := engine.UpdateViewSettings(func(view *entity.ViewSettings) {
		view.ChartType = "line"
		view.RefreshInterval = time.Minute
	})

	assert.Equal(t, "line", view.ChartType)
	assert.Equal(t, time.Minute, engine.ViewSettings().RefreshInterval)
}
