package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg.Clock)
	assert.Equal(t, string(TimeFormat24Hour), cfg.Clock.TimeFormat)
	assert.True(t, cfg.Clock.ShowDay)
	assert.True(t, cfg.Clock.ShowDate)
	assert.False(t, cfg.Clock.ShowSeconds)

	require.NotNil(t, cfg.Planner)
	assert.Equal(t, 7, cfg.Planner.LookaheadDays)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv("DATETIME_CLOCK_TIME_FORMAT", "12h")
	t.Setenv("DATETIME_CLOCK_SHOW_SECONDS", "true")
	t.Setenv("DATETIME_TIMEZONE", "Europe/Budapest")
	t.Setenv("DATETIME_PLANNER_LOOKAHEAD_DAYS", "14")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnvironment())

	assert.Equal(t, "12h", cfg.Clock.TimeFormat)
	assert.True(t, cfg.Clock.ShowSeconds)
	assert.Equal(t, "Europe/Budapest", cfg.Timezone.Name)
	assert.Equal(t, 14, cfg.Planner.LookaheadDays)

	// untouched values keep their defaults
	assert.True(t, cfg.Clock.ShowDay)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyEnvironmentAllocatesSections(t *testing.T) {
	t.Setenv("DATETIME_CLOCK_TIME_FORMAT", "24h")

	cfg := &AppConfig{}
	require.NoError(t, cfg.ApplyEnvironment())

	require.NotNil(t, cfg.Clock)
	assert.Equal(t, "24h", cfg.Clock.TimeFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*AppConfig) {},
			wantErr: false,
		},
		{
			name: "custom format mode with pattern",
			mutate: func(c *AppConfig) {
				c.Clock.TimeFormat = "custom"
				c.Clock.CustomFormat = "%H:%M"
			},
			wantErr: false,
		},
		{
			name: "custom format mode without pattern",
			mutate: func(c *AppConfig) {
				c.Clock.TimeFormat = "custom"
			},
			wantErr: true,
		},
		{
			name: "unknown time format",
			mutate: func(c *AppConfig) {
				c.Clock.TimeFormat = "metric"
			},
			wantErr: true,
		},
		{
			name: "negative lookahead",
			mutate: func(c *AppConfig) {
				c.Planner.LookaheadDays = -1
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			mutate: func(c *AppConfig) {
				c.Logging.Level = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
