package usecase

import (
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// ClockService is the live clock behind the indicator. It exposes the
// current local time and notifies listeners whenever the wall-clock
// minute changes, resynchronizing after suspend or clock skew.
type ClockService interface {
	// Localtime returns the current instant in the effective timezone
	Localtime() valueobject.DateTime

	// MinuteChanged returns the channel receiving a DateTime on every
	// wall-clock minute boundary while the clock is running. Stop closes
	// the channel and a later Start replaces it, so callers must fetch
	// it again after restarting the clock.
	MinuteChanged() <-chan valueobject.DateTime

	// Start begins emitting minute-change notifications
	Start() error

	// Stop halts the clock and closes the notification channel
	Stop() error
}
