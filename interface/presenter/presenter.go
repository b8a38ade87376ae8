package presenter

import (
	"github.com/farkasdvd/indicator-datetime/domain/repository"
)

// AppointmentView is a display-ready appointment row. The controllers
// render the When column through the formatter before handing rows over.
type AppointmentView struct {
	UID      string
	Summary  string
	When     string
	AllDay   bool
	HasAlarm bool
}

// ConsolePresenter handles console output formatting
type ConsolePresenter interface {
	PrintVersion()
	PrintError(err error)

	// PrintClock prints the formatted header clock label
	PrintClock(label string) error

	// PrintTimezoneInfo prints the effective timezone details
	PrintTimezoneInfo(info repository.TimezoneInfo) error

	// PrintAppointments prints upcoming appointments as a table
	PrintAppointments(views []AppointmentView) error
}

// JSONPresenter handles JSON output formatting
type JSONPresenter interface {
	// PrintClock prints the formatted clock label with its unix instant
	PrintClock(label string, unix int64) error

	// PrintTimezoneInfo prints the effective timezone details
	PrintTimezoneInfo(info repository.TimezoneInfo) error

	// PrintAppointments prints upcoming appointments
	PrintAppointments(views []AppointmentView) error
}
