package impl

import (
	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// PlannerServiceImpl implements the PlannerService interface
type PlannerServiceImpl struct {
	appointmentRepo repository.AppointmentRepository
	timezoneService repository.TimezoneService
	lookaheadDays   int
}

// NewPlannerServiceImpl creates a new instance of PlannerServiceImpl
func NewPlannerServiceImpl(
	appointmentRepo repository.AppointmentRepository,
	timezoneService repository.TimezoneService,
	lookaheadDays int,
) *PlannerServiceImpl {
	if lookaheadDays <= 0 {
		lookaheadDays = 7
	}
	return &PlannerServiceImpl{
		appointmentRepo: appointmentRepo,
		timezoneService: timezoneService,
		lookaheadDays:   lookaheadDays,
	}
}

// Upcoming returns appointments from now through the lookahead window
func (p *PlannerServiceImpl) Upcoming() ([]*entity.Appointment, error) {
	now := p.timezoneService.Now()
	return p.Between(now, now.AddDays(p.lookaheadDays))
}

// Between returns appointments overlapping the [begin, end) window
func (p *PlannerServiceImpl) Between(begin, end valueobject.DateTime) ([]*entity.Appointment, error) {
	if !begin.IsSet() || !end.IsSet() {
		return nil, domain.ErrInvalidInput("window", "begin and end must be set")
	}
	if end.Before(begin) {
		return nil, domain.ErrPlanner("Between", "window ends before it begins")
	}

	appointments, err := p.appointmentRepo.FindBetween(begin, end)
	if err != nil {
		return nil, domain.ErrPlannerWithCause("Between", err)
	}
	return appointments, nil
}

// Add stores an appointment
func (p *PlannerServiceImpl) Add(appointment *entity.Appointment) error {
	if appointment == nil {
		return domain.ErrInvalidInput("appointment", "cannot be nil")
	}
	if err := p.appointmentRepo.Save(appointment); err != nil {
		return domain.ErrPlannerWithCause("Add", err)
	}
	return nil
}

// Remove deletes an appointment by UID
func (p *PlannerServiceImpl) Remove(uid string) error {
	if uid == "" {
		return domain.ErrInvalidInput("uid", "cannot be empty")
	}
	if err := p.appointmentRepo.Delete(uid); err != nil {
		return domain.ErrPlannerWithCause("Remove", err)
	}
	return nil
}
