package scheduler

import (
	"context"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	"github.com/rs/zerolog/log"
)

const (
	toastExpiryTick   = time.Second
	deadlineSweepTick = time.Minute
)

// Scheduler owns the background loops: toast expiry, analytics auto-refresh
// and the deadline reminder sweep. Every loop re-reads live store state on
// each tick and stops when the context is canceled.
type Scheduler struct {
	notifs    *store.NotificationStore
	engine    *analytics.Engine
	dashboard dashboard_case.DashboardServiceContract
}

func New(notifs *store.NotificationStore, engine *analytics.Engine, dashboard dashboard_case.DashboardServiceContract) *Scheduler {
	return &Scheduler{
		notifs:    notifs,
		engine:    engine,
		dashboard: dashboard,
	}
}

// Start launches all loops. It returns immediately; the loops run until ctx
// is done.
func (s *Scheduler) Start(ctx context.Context) {
	go s.toastExpiryLoop(ctx)
	go s.analyticsRefreshLoop(ctx)
	go s.deadlineSweepLoop(ctx)
	log.Info().Msg("background scheduler started")
}

func (s *Scheduler) toastExpiryLoop(ctx context.Context) {
	ticker := time.NewTicker(toastExpiryTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if expired := s.notifs.ExpireToasts(now); expired > 0 {
				log.Debug().Int("expired", expired).Msg("toasts expired")
			}
		}
	}
}

// analyticsRefreshLoop recomputes the snapshot on the interval from the live
// view settings, so settings changes take effect on the next tick.
func (s *Scheduler) analyticsRefreshLoop(ctx context.Context) {
	for {
		interval := s.engine.ViewSettings().RefreshInterval
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.engine.Recompute()
		}
	}
}

func (s *Scheduler) deadlineSweepLoop(ctx context.Context) {
	ticker := time.NewTicker(deadlineSweepTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dashboard.SweepDeadlineReminders()
		}
	}
}
