package repository

import (
	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// AppointmentRepository manages persisted calendar appointments
type AppointmentRepository interface {
	// FindBetween returns appointments overlapping the [begin, end) window,
	// ordered by start time
	FindBetween(begin, end valueobject.DateTime) ([]*entity.Appointment, error)

	// Save inserts or replaces an appointment by UID
	Save(appointment *entity.Appointment) error

	// Delete removes an appointment by UID
	Delete(uid string) error

	// Close releases the underlying store
	Close() error
}
