package repository

import (
	"time"

	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// TimezoneService defines the interface for timezone resolution
type TimezoneService interface {
	// SystemTimezone returns the detected system timezone
	SystemTimezone() (*time.Location, error)

	// EffectiveTimezone returns the configured timezone override when one
	// is set, otherwise the detected system timezone
	EffectiveTimezone() (*time.Location, error)

	// Resolve loads a timezone by IANA name
	Resolve(name string) (*time.Location, error)

	// Now returns the current instant in the effective timezone
	Now() valueobject.DateTime

	// Info returns timezone information for logging and display
	Info() TimezoneInfo
}

// TimezoneInfo contains timezone information for logging and display
type TimezoneInfo struct {
	// Name is the timezone name (e.g., "Europe/Budapest", "America/New_York")
	Name string

	// Offset is the UTC offset in the format "+01:00" or "-05:00"
	Offset string

	// OffsetSeconds is the offset from UTC in seconds
	OffsetSeconds int

	// IsDST indicates whether daylight saving time is currently active
	IsDST bool

	// DetectionMethod indicates how the timezone was determined
	// Values: "system", "config", "fallback"
	DetectionMethod string
}
