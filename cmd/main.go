package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/analytics"
	"github.com/Lovkumawat/Versal-Pulse/internal/config"
	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/Lovkumawat/Versal-Pulse/internal/i18n"
	"github.com/Lovkumawat/Versal-Pulse/internal/middleware"
	"github.com/Lovkumawat/Versal-Pulse/internal/routers"
	"github.com/Lovkumawat/Versal-Pulse/internal/scheduler"
	"github.com/Lovkumawat/Versal-Pulse/internal/seed"
	"github.com/Lovkumawat/Versal-Pulse/internal/store"
	dashboard_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/dashboard-case"
	notification_case "github.com/Lovkumawat/Versal-Pulse/internal/use-cases/notification-case"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()

	now := time.Now()
	team := store.NewTeamStore(seed.Members(now))
	notifs := store.NewNotificationStore(cfg.NotificationSettings(), seed.Notifications(now))
	engine := analytics.NewEngine(team)
	if interval := cfg.AnalyticsRefreshInterval(); interval > 0 {
		engine.UpdateViewSettings(func(view *entity.ViewSettings) {
			view.RefreshInterval = interval
		})
	}

	dashboard := dashboard_case.NewDashboardService(team, notifs, engine)
	notifications := notification_case.NewNotificationService(notifs)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	routers.SetupRoutes(app, dashboard, notifications, team, notifs, engine, i18nSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler.New(notifs, engine, dashboard).Start(ctx)

	go func() {
		log.Info().Msgf("starting %s on port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("server shut down cleanly")
			} else {
				log.Fatal().Err(err).Msgf("server failed to start, %v", err)
			}
		}
	}()

	<-ctx.Done()
	stop()
	log.Warn().Msg("shutdown signal received, preparing to stop")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("error during shutdown: %v", err)
	}
	log.Info().Msg("server shut down cleanly")
}
