package usecase

import (
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// FormatterService renders DateTimes for the indicator surfaces: the
// header clock pattern derived from the clock settings, and relative
// phrases for appointment times.
type FormatterService interface {
	// HeaderPattern returns the strftime pattern for the header clock,
	// derived from the configured format mode and show-* switches
	HeaderPattern() string

	// FormatHeader renders the header clock label for the given instant
	FormatHeader(dt valueobject.DateTime) string

	// FormatRelative renders an instant relative to now: time-of-day for
	// today, "Tomorrow", the weekday within a week, the date otherwise
	FormatRelative(dt, now valueobject.DateTime) string
}
