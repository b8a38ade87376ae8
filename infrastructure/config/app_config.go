package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

// TimeFormatMode selects how the header clock is rendered
type TimeFormatMode string

const (
	// TimeFormat12Hour renders the clock with a 12-hour dial and AM/PM
	TimeFormat12Hour TimeFormatMode = "12h"

	// TimeFormat24Hour renders the clock with a 24-hour dial
	TimeFormat24Hour TimeFormatMode = "24h"

	// TimeFormatCustom renders the clock with a user-supplied strftime pattern
	TimeFormatCustom TimeFormatMode = "custom"
)

// ClockConfig holds header clock formatting configuration
type ClockConfig struct {
	// TimeFormat is the clock rendering mode: 12h, 24h or custom
	TimeFormat string `json:"time_format,omitempty" env:"DATETIME_CLOCK_TIME_FORMAT"`

	// ShowSeconds includes seconds in the header clock
	ShowSeconds bool `json:"show_seconds,omitempty" env:"DATETIME_CLOCK_SHOW_SECONDS"`

	// ShowDay includes the abbreviated weekday in the header clock
	ShowDay bool `json:"show_day,omitempty" env:"DATETIME_CLOCK_SHOW_DAY"`

	// ShowDate includes the month and day in the header clock
	ShowDate bool `json:"show_date,omitempty" env:"DATETIME_CLOCK_SHOW_DATE"`

	// ShowYear includes the year in the header clock (requires ShowDate)
	ShowYear bool `json:"show_year,omitempty" env:"DATETIME_CLOCK_SHOW_YEAR"`

	// CustomFormat is the strftime pattern used when TimeFormat is "custom"
	CustomFormat string `json:"custom_format,omitempty" env:"DATETIME_CLOCK_CUSTOM_FORMAT"`
}

// TimezoneConfig holds timezone resolution configuration
type TimezoneConfig struct {
	// Name is an IANA timezone override; empty means detect the system zone
	Name string `json:"name,omitempty" env:"DATETIME_TIMEZONE"`
}

// PlannerConfig holds appointment planner configuration
type PlannerConfig struct {
	// DatabasePath is the path to the appointments SQLite database;
	// empty means the default under the config directory
	DatabasePath string `json:"database_path,omitempty" env:"DATETIME_PLANNER_DB_PATH"`

	// LookaheadDays is how many days ahead the indicator lists appointments
	LookaheadDays int `json:"lookahead_days,omitempty" env:"DATETIME_PLANNER_LOOKAHEAD_DAYS"`
}

// DaemonConfig holds daemon mode configuration
type DaemonConfig struct {
	// Enabled indicates whether daemon mode is enabled by default
	Enabled bool `json:"enabled,omitempty" env:"DATETIME_DAEMON_ENABLED"`

	// PidFile is the path for the daemon PID file
	PidFile string `json:"pid_file,omitempty" env:"DATETIME_DAEMON_PID_FILE"`
}

// PromtailConfig holds Promtail logging configuration
type PromtailConfig struct {
	// URL is the Promtail push endpoint URL
	URL string `json:"url,omitempty" env:"DATETIME_LOKI_URL"`

	// Username is the username for basic authentication
	Username string `json:"username,omitempty" env:"DATETIME_LOKI_USERNAME"`

	// Password is the password for basic authentication
	Password string `json:"password,omitempty" env:"DATETIME_LOKI_PASSWORD"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty" env:"DATETIME_LOG_LEVEL"`

	// Debug enables debug mode with stdout logging
	Debug bool `json:"debug,omitempty" env:"DATETIME_LOG_DEBUG"`

	// Promtail holds Promtail configuration; nil disables log shipping
	Promtail *PromtailConfig `json:"promtail,omitempty"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// Clock holds header clock formatting configuration
	Clock *ClockConfig `json:"clock,omitempty"`

	// Timezone holds timezone resolution configuration
	Timezone *TimezoneConfig `json:"timezone,omitempty"`

	// Planner holds appointment planner configuration
	Planner *PlannerConfig `json:"planner,omitempty"`

	// Daemon holds daemon mode configuration
	Daemon *DaemonConfig `json:"daemon,omitempty"`

	// Logging holds logging configuration
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Clock: &ClockConfig{
			TimeFormat:  string(TimeFormat24Hour),
			ShowSeconds: false,
			ShowDay:     true,
			ShowDate:    true,
			ShowYear:    false,
		},
		Timezone: &TimezoneConfig{},
		Planner: &PlannerConfig{
			LookaheadDays: 7,
		},
		Daemon: &DaemonConfig{},
		Logging: &LoggingConfig{
			Level: "info",
		},
	}
}

// ApplyEnvironment overrides fields from DATETIME_* environment variables.
// Variables that are not set leave the current values untouched, so the
// precedence is defaults < config file < environment.
func (c *AppConfig) ApplyEnvironment() error {
	c.ensureSections()
	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return fmt.Errorf("failed to read environment configuration: %w", err)
	}
	return nil
}

// ensureSections allocates nil sections so env unmarshalling and callers
// never have to nil-check them.
func (c *AppConfig) ensureSections() {
	if c.Clock == nil {
		c.Clock = &ClockConfig{}
	}
	if c.Timezone == nil {
		c.Timezone = &TimezoneConfig{}
	}
	if c.Planner == nil {
		c.Planner = &PlannerConfig{}
	}
	if c.Daemon == nil {
		c.Daemon = &DaemonConfig{}
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
}

// Validate checks the configuration for inconsistencies
func (c *AppConfig) Validate() error {
	c.ensureSections()

	switch TimeFormatMode(c.Clock.TimeFormat) {
	case TimeFormat12Hour, TimeFormat24Hour:
	case TimeFormatCustom:
		if c.Clock.CustomFormat == "" {
			return fmt.Errorf("clock.custom_format is required when clock.time_format is %q", TimeFormatCustom)
		}
	default:
		return fmt.Errorf("clock.time_format must be one of 12h, 24h, custom; got %q", c.Clock.TimeFormat)
	}

	if c.Planner.LookaheadDays < 0 {
		return fmt.Errorf("planner.lookahead_days cannot be negative; got %d", c.Planner.LookaheadDays)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	return nil
}
