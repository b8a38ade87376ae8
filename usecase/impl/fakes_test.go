package impl

import (
	"time"

	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// fakeTimezoneService pins the timezone and optionally the current instant.
type fakeTimezoneService struct {
	loc   *time.Location
	fixed valueobject.DateTime
}

func newFakeTimezoneService() *fakeTimezoneService {
	return &fakeTimezoneService{loc: time.UTC}
}

func (f *fakeTimezoneService) SystemTimezone() (*time.Location, error)    { return f.loc, nil }
func (f *fakeTimezoneService) EffectiveTimezone() (*time.Location, error) { return f.loc, nil }

func (f *fakeTimezoneService) Resolve(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

func (f *fakeTimezoneService) Now() valueobject.DateTime {
	if f.fixed.IsSet() {
		return f.fixed
	}
	t := time.Now().In(f.loc)
	return valueobject.NewDateTime(f.loc, &t)
}

func (f *fakeTimezoneService) Info() repository.TimezoneInfo {
	return repository.TimezoneInfo{Name: f.loc.String(), DetectionMethod: "system"}
}

// fakeAppointmentRepository records calls and serves canned appointments.
type fakeAppointmentRepository struct {
	appointments []*entity.Appointment
	findErr      error

	lastBegin valueobject.DateTime
	lastEnd   valueobject.DateTime
	saved     []*entity.Appointment
	deleted   []string
}

func (f *fakeAppointmentRepository) FindBetween(begin, end valueobject.DateTime) ([]*entity.Appointment, error) {
	f.lastBegin = begin
	f.lastEnd = end
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.appointments, nil
}

func (f *fakeAppointmentRepository) Save(appointment *entity.Appointment) error {
	f.saved = append(f.saved, appointment)
	return nil
}

func (f *fakeAppointmentRepository) Delete(uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

func (f *fakeAppointmentRepository) Close() error { return nil }
