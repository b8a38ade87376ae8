package controller

import (
	"context"
	"fmt"

	"github.com/getlantern/systray"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
	usecase "github.com/farkasdvd/indicator-datetime/usecase/interface"
)

// maxAppointmentItems is how many upcoming appointments the menu lists.
// systray cannot remove menu items, so a fixed set is created up front
// and hidden when unused.
const maxAppointmentItems = 5

// SystrayController manages the indicator menu: the tray title is the
// formatted clock, refreshed on every minute change
type SystrayController struct {
	clockService     usecase.ClockService
	formatterService usecase.FormatterService
	plannerService   usecase.PlannerService
	timezoneService  repository.TimezoneService
	logger           domain.Logger

	// Menu items
	dateItem         *systray.MenuItem
	timezoneItem     *systray.MenuItem
	appointmentItems []*systray.MenuItem
	quitItem         *systray.MenuItem

	stopChan chan struct{}
}

// NewSystrayController creates a new system tray controller
func NewSystrayController(
	clockService usecase.ClockService,
	formatterService usecase.FormatterService,
	plannerService usecase.PlannerService,
	timezoneService repository.TimezoneService,
	logger domain.Logger,
) *SystrayController {
	return &SystrayController{
		clockService:     clockService,
		formatterService: formatterService,
		plannerService:   plannerService,
		timezoneService:  timezoneService,
		logger:           logger,
		stopChan:         make(chan struct{}),
	}
}

// OnReady is called when the system tray is ready
func (s *SystrayController) OnReady() {
	now := s.clockService.Localtime()

	systray.SetTitle(s.formatterService.FormatHeader(now))
	systray.SetTooltip("indicator-datetime")

	s.dateItem = systray.AddMenuItem(s.dateLabel(now), "Today's date")
	s.dateItem.Disable()

	info := s.timezoneService.Info()
	s.timezoneItem = systray.AddMenuItem(s.timezoneLabel(info), "Effective timezone")
	s.timezoneItem.Disable()

	systray.AddSeparator()
	s.appointmentItems = make([]*systray.MenuItem, maxAppointmentItems)
	for i := range s.appointmentItems {
		s.appointmentItems[i] = systray.AddMenuItem("", "Upcoming appointment")
		s.appointmentItems[i].Disable()
		s.appointmentItems[i].Hide()
	}
	s.refreshAppointments(now)

	systray.AddSeparator()
	s.quitItem = systray.AddMenuItem("Quit", "Quit the indicator")

	go s.watchClock(now)
	go s.handleMenuClicks()
}

// OnExit is called when the system tray is exiting
func (s *SystrayController) OnExit() {
	close(s.stopChan)
}

// watchClock keeps the tray title and menu in sync with the clock
func (s *SystrayController) watchClock(last valueobject.DateTime) {
	for {
		select {
		case now, ok := <-s.clockService.MinuteChanged():
			if !ok {
				return
			}
			systray.SetTitle(s.formatterService.FormatHeader(now))

			if !valueobject.IsSameDay(last, now) {
				s.dateItem.SetTitle(s.dateLabel(now))
				s.timezoneItem.SetTitle(s.timezoneLabel(s.timezoneService.Info()))
				s.refreshAppointments(now)
			}
			last = now
		case <-s.stopChan:
			return
		}
	}
}

// refreshAppointments repopulates the appointment menu items
func (s *SystrayController) refreshAppointments(now valueobject.DateTime) {
	appointments, err := s.plannerService.Upcoming()
	if err != nil {
		s.logger.Error(context.Background(), "Failed to load upcoming appointments",
			domain.NewField("error", err.Error()))
		appointments = nil
	}

	for i, item := range s.appointmentItems {
		if i >= len(appointments) {
			item.Hide()
			continue
		}
		appointment := appointments[i]
		when := s.formatterService.FormatRelative(appointment.Begins(), now)
		item.SetTitle(fmt.Sprintf("%s  %s", when, appointment.Summary()))
		item.Show()
	}
}

func (s *SystrayController) handleMenuClicks() {
	for {
		select {
		case <-s.quitItem.ClickedCh:
			systray.Quit()
			return
		case <-s.stopChan:
			return
		}
	}
}

func (s *SystrayController) dateLabel(now valueobject.DateTime) string {
	return now.Format("%A, %B %e %Y")
}

func (s *SystrayController) timezoneLabel(info repository.TimezoneInfo) string {
	return fmt.Sprintf("%s (UTC%s)", info.Name, info.Offset)
}
