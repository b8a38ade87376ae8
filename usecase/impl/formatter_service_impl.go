package impl

import (
	"strings"

	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// FormatterServiceImpl implements the FormatterService interface
type FormatterServiceImpl struct {
	clock *config.ClockConfig
}

// NewFormatterServiceImpl creates a new instance of FormatterServiceImpl
func NewFormatterServiceImpl(clock *config.ClockConfig) *FormatterServiceImpl {
	if clock == nil {
		clock = config.DefaultConfig().Clock
	}
	return &FormatterServiceImpl{clock: clock}
}

// HeaderPattern returns the strftime pattern for the header clock
func (f *FormatterServiceImpl) HeaderPattern() string {
	if config.TimeFormatMode(f.clock.TimeFormat) == config.TimeFormatCustom {
		return f.clock.CustomFormat
	}

	var parts []string
	if f.clock.ShowDay {
		parts = append(parts, "%a")
	}
	if f.clock.ShowDate {
		parts = append(parts, "%b %e")
		if f.clock.ShowYear {
			parts = append(parts, "%Y")
		}
	}
	parts = append(parts, f.timePattern())

	return strings.Join(parts, " ")
}

// FormatHeader renders the header clock label for the given instant
func (f *FormatterServiceImpl) FormatHeader(dt valueobject.DateTime) string {
	return dt.Format(f.HeaderPattern())
}

// FormatRelative renders an instant relative to now
func (f *FormatterServiceImpl) FormatRelative(dt, now valueobject.DateTime) string {
	if !dt.IsSet() || !now.IsSet() {
		return ""
	}

	timeOfDay := dt.Format(f.timePattern())

	switch {
	case valueobject.IsSameDay(dt, now):
		return timeOfDay
	case valueobject.IsSameDay(dt, now.AddDays(1)):
		return "Tomorrow " + timeOfDay
	case dt.Before(now.AddDays(7)) && now.Before(dt):
		return dt.Format("%a") + " " + timeOfDay
	default:
		return dt.Format("%b %e") + " " + timeOfDay
	}
}

// timePattern is the time-of-day part of the header, honoring the
// 12h/24h mode and the show-seconds switch
func (f *FormatterServiceImpl) timePattern() string {
	if config.TimeFormatMode(f.clock.TimeFormat) == config.TimeFormat12Hour {
		if f.clock.ShowSeconds {
			return "%I:%M:%S %p"
		}
		return "%I:%M %p"
	}
	if f.clock.ShowSeconds {
		return "%H:%M:%S"
	}
	return "%H:%M"
}
