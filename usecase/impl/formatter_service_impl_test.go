package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

func TestHeaderPattern(t *testing.T) {
	tests := []struct {
		name  string
		clock config.ClockConfig
		want  string
	}{
		{
			name:  "bare 24h clock",
			clock: config.ClockConfig{TimeFormat: "24h"},
			want:  "%H:%M",
		},
		{
			name:  "24h with seconds",
			clock: config.ClockConfig{TimeFormat: "24h", ShowSeconds: true},
			want:  "%H:%M:%S",
		},
		{
			name:  "12h clock",
			clock: config.ClockConfig{TimeFormat: "12h"},
			want:  "%I:%M %p",
		},
		{
			name:  "day and date",
			clock: config.ClockConfig{TimeFormat: "24h", ShowDay: true, ShowDate: true},
			want:  "%a %b %e %H:%M",
		},
		{
			name:  "full header with year",
			clock: config.ClockConfig{TimeFormat: "24h", ShowDay: true, ShowDate: true, ShowYear: true},
			want:  "%a %b %e %Y %H:%M",
		},
		{
			name:  "year without date is ignored",
			clock: config.ClockConfig{TimeFormat: "24h", ShowYear: true},
			want:  "%H:%M",
		},
		{
			name:  "custom pattern wins",
			clock: config.ClockConfig{TimeFormat: "custom", CustomFormat: "%Y-%m-%dT%H:%M", ShowDay: true},
			want:  "%Y-%m-%dT%H:%M",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := tt.clock
			formatter := NewFormatterServiceImpl(&clock)
			assert.Equal(t, tt.want, formatter.HeaderPattern())
		})
	}
}

func TestFormatHeader(t *testing.T) {
	// 2020-03-01 was a Sunday
	dt := valueobject.Local(2020, 3, 1, 10, 30, 0)

	formatter := NewFormatterServiceImpl(&config.ClockConfig{
		TimeFormat: "24h",
		ShowDay:    true,
		ShowDate:   true,
	})
	assert.Equal(t, "Sun Mar  1 10:30", formatter.FormatHeader(dt))

	twelveHour := NewFormatterServiceImpl(&config.ClockConfig{
		TimeFormat:  "12h",
		ShowSeconds: true,
	})
	assert.Equal(t, "10:30:00 AM", twelveHour.FormatHeader(dt))
}

func TestFormatRelative(t *testing.T) {
	formatter := NewFormatterServiceImpl(&config.ClockConfig{TimeFormat: "24h"})
	now := valueobject.Local(2020, 3, 1, 8, 0, 0)

	tests := []struct {
		name string
		dt   valueobject.DateTime
		want string
	}{
		{
			name: "same day shows time only",
			dt:   valueobject.Local(2020, 3, 1, 14, 0, 0),
			want: "14:00",
		},
		{
			name: "next day",
			dt:   valueobject.Local(2020, 3, 2, 9, 30, 0),
			want: "Tomorrow 09:30",
		},
		{
			name: "within a week shows weekday",
			dt:   valueobject.Local(2020, 3, 4, 18, 0, 0),
			want: "Wed 18:00",
		},
		{
			name: "beyond a week shows the date",
			dt:   valueobject.Local(2020, 3, 20, 7, 0, 0),
			want: "Mar 20 07:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatRelative(tt.dt, now))
		})
	}

	var unset valueobject.DateTime
	assert.Equal(t, "", formatter.FormatRelative(unset, now))
	assert.Equal(t, "", formatter.FormatRelative(now, unset))
}
