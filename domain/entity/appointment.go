package entity

import (
	"fmt"

	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// Appointment represents a calendar appointment shown by the indicator
type Appointment struct {
	uid      string
	summary  string
	begins   valueobject.DateTime
	ends     valueobject.DateTime
	allDay   bool
	hasAlarm bool
	color    string
}

// NewAppointment creates a new Appointment entity with validation
func NewAppointment(
	uid string,
	summary string,
	begins valueobject.DateTime,
	ends valueobject.DateTime,
	allDay bool,
	hasAlarm bool,
	color string,
) (*Appointment, error) {
	if uid == "" {
		return nil, fmt.Errorf("appointment UID cannot be empty")
	}
	if summary == "" {
		return nil, fmt.Errorf("appointment summary cannot be empty")
	}
	if !begins.IsSet() {
		return nil, fmt.Errorf("appointment begin time must be set")
	}
	if !ends.IsSet() {
		return nil, fmt.Errorf("appointment end time must be set")
	}
	if ends.Before(begins) {
		return nil, fmt.Errorf("appointment cannot end before it begins")
	}

	return &Appointment{
		uid:      uid,
		summary:  summary,
		begins:   begins,
		ends:     ends,
		allDay:   allDay,
		hasAlarm: hasAlarm,
		color:    color,
	}, nil
}

// UID returns the appointment UID
func (a *Appointment) UID() string {
	return a.uid
}

// Summary returns the appointment summary
func (a *Appointment) Summary() string {
	return a.summary
}

// Begins returns the appointment start time
func (a *Appointment) Begins() valueobject.DateTime {
	return a.begins
}

// Ends returns the appointment end time
func (a *Appointment) Ends() valueobject.DateTime {
	return a.ends
}

// IsAllDay returns whether the appointment spans the whole day
func (a *Appointment) IsAllDay() bool {
	return a.allDay
}

// HasAlarm returns whether the appointment carries an alarm
func (a *Appointment) HasAlarm() bool {
	return a.hasAlarm
}

// Color returns the calendar color associated with the appointment
func (a *Appointment) Color() string {
	return a.color
}

// OverlapsDay reports whether any part of the appointment falls on the
// same calendar day as the given DateTime.
func (a *Appointment) OverlapsDay(day valueobject.DateTime) bool {
	if !day.IsSet() {
		return false
	}
	start := day.StartOfDay()
	end := start.AddDays(1)
	return a.begins.Before(end) && start.BeforeOrEqual(a.ends)
}
