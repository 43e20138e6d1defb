package analytics

import (
	"sync"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	"github.com/rs/zerolog/log"
)

// Engine caches the derived report for a TeamStore. There is no implicit
// reactive graph: mutations call Invalidate, readers call Snapshot (which
// recomputes lazily) and the scheduler calls Recompute on its cadence.
type Engine struct {
	mu             sync.RWMutex
	team           *store.TeamStore
	dateRange      entity.DateRange
	filters        entity.AnalyticsFilters
	view           entity.ViewSettings
	cached         *entity.AnalyticsSnapshot
	lastCalculated time.Time
}

func NewEngine(team *store.TeamStore) *Engine {
	rng, _ := RangeForPreset(PresetThisMonth, time.Now())
	return &Engine{
		team:      team,
		dateRange: rng,
		filters:   entity.DefaultAnalyticsFilters(),
		view:      entity.DefaultViewSettings(),
	}
}

// Invalidate drops the cached report. The next Snapshot call recomputes.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cached = nil
}

// Recompute rebuilds the report from a fresh store snapshot and caches it.
func (e *Engine) Recompute() *entity.AnalyticsSnapshot {
	members := e.team.Members()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cached = Calculate(members, e.dateRange, e.filters, time.Now())
	e.lastCalculated = time.Now()
	log.Debug().
		Int("members", len(members)).
		Int("total_tasks", e.cached.TeamOverview.TotalTasks).
		Msg("analytics recomputed")
	return e.cached
}

// Snapshot returns the cached report, recomputing first when the cache is
// invalid, along with the time it was calculated.
func (e *Engine) Snapshot() (*entity.AnalyticsSnapshot, time.Time) {
	e.mu.RLock()
	cached, calculatedAt := e.cached, e.lastCalculated
	e.mu.RUnlock()

	if cached != nil {
		return cached, calculatedAt
	}
	snapshot := e.Recompute()

	e.mu.RLock()
	defer e.mu.RUnlock()
	return snapshot, e.lastCalculated
}

// SetDateRange switches to a custom range and invalidates the cache.
func (e *Engine) SetDateRange(start, end time.Time) entity.DateRange {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dateRange = entity.DateRange{Start: start, End: end, Preset: PresetCustom}
	e.cached = nil
	return e.dateRange
}

// SetPreset resolves a named preset against the current clock. Unknown
// presets leave the range untouched.
func (e *Engine) SetPreset(preset string) (entity.DateRange, bool) {
	rng, ok := RangeForPreset(preset, time.Now())
	if !ok {
		e.mu.RLock()
		defer e.mu.RUnlock()
		return e.dateRange, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.dateRange = rng
	e.cached = nil
	return rng, true
}

func (e *Engine) SetFilters(filters entity.AnalyticsFilters) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = filters
	e.cached = nil
}

func (e *Engine) UpdateViewSettings(apply func(*entity.ViewSettings)) entity.ViewSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	apply(&e.view)
	return e.view
}

func (e *Engine) DateRange() entity.DateRange {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dateRange
}

func (e *Engine) Filters() entity.AnalyticsFilters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filters
}

func (e *Engine) ViewSettings() entity.ViewSettings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view
}
