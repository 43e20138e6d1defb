package config

import (
	"time"

	"github.com/Lovkumawat/Versal-Pulse/internal/entity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	NOTIFICATIONS struct {
		EnableToasts               *bool `mapstructure:"ENABLE_TOASTS"`
		EnableSounds               *bool `mapstructure:"ENABLE_SOUNDS"`
		AutoMarkRead               *bool `mapstructure:"AUTO_MARK_READ"`
		ToastDurationMs            int   `mapstructure:"TOAST_DURATION_MS"`
		MaxToasts                  int   `mapstructure:"MAX_TOASTS"`
		EnableDeadlineReminders    *bool `mapstructure:"ENABLE_DEADLINE_REMINDERS"`
		EnableTaskNotifications    *bool `mapstructure:"ENABLE_TASK_NOTIFICATIONS"`
		EnableStatusNotifications  *bool `mapstructure:"ENABLE_STATUS_NOTIFICATIONS"`
		EnableCommentNotifications *bool `mapstructure:"ENABLE_COMMENT_NOTIFICATIONS"`
	}

	ANALYTICS struct {
		RefreshIntervalMs int `mapstructure:"REFRESH_INTERVAL_MS"`
	}
}

// LoadConfig reads application.yaml from the working directory. A missing
// file is not fatal: every setting has a sensible default.
func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	var config AppConfig

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("no config file found, using defaults")
	} else if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config, using defaults")
		config = AppConfig{}
	}

	if config.APP.Name == "" {
		config.APP.Name = "versal-pulse"
	}
	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}
	if config.APP.State == "" {
		config.APP.State = "development"
	}

	log.Info().Str("app", config.APP.Name).Str("state", config.APP.State).Msg("config loaded")
	return &config
}

// NotificationSettings merges the config file over the built-in defaults.
func (c *AppConfig) NotificationSettings() entity.NotificationSettings {
	settings := entity.DefaultNotificationSettings()

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&settings.EnableToasts, c.NOTIFICATIONS.EnableToasts)
	apply(&settings.EnableSounds, c.NOTIFICATIONS.EnableSounds)
	apply(&settings.AutoMarkRead, c.NOTIFICATIONS.AutoMarkRead)
	apply(&settings.EnableDeadlineReminders, c.NOTIFICATIONS.EnableDeadlineReminders)
	apply(&settings.EnableTaskNotifications, c.NOTIFICATIONS.EnableTaskNotifications)
	apply(&settings.EnableStatusNotifications, c.NOTIFICATIONS.EnableStatusNotifications)
	apply(&settings.EnableCommentNotifications, c.NOTIFICATIONS.EnableCommentNotifications)

	if c.NOTIFICATIONS.ToastDurationMs > 0 {
		settings.ToastDuration = time.Duration(c.NOTIFICATIONS.ToastDurationMs) * time.Millisecond
	}
	if c.NOTIFICATIONS.MaxToasts > 0 {
		settings.MaxToasts = c.NOTIFICATIONS.MaxToasts
	}

	return settings
}

// AnalyticsRefreshInterval returns the configured auto-refresh interval, or
// zero when the default from ViewSettings should be kept.
func (c *AppConfig) AnalyticsRefreshInterval() time.Duration {
	if c.ANALYTICS.RefreshIntervalMs <= 0 {
		return 0
	}
	return time.Duration(c.ANALYTICS.RefreshIntervalMs) * time.Millisecond
}
