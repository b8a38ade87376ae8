package usecase

import (
	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// PlannerService lists and maintains the appointments the indicator shows
type PlannerService interface {
	// Upcoming returns appointments from now through the configured
	// lookahead window, ordered by start time
	Upcoming() ([]*entity.Appointment, error)

	// Between returns appointments overlapping the [begin, end) window
	Between(begin, end valueobject.DateTime) ([]*entity.Appointment, error)

	// Add stores an appointment
	Add(appointment *entity.Appointment) error

	// Remove deletes an appointment by UID
	Remove(uid string) error
}
