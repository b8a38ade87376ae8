package cli

import (
	"fmt"

	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
	"github.com/farkasdvd/indicator-datetime/interface/presenter"
	usecase "github.com/farkasdvd/indicator-datetime/usecase/interface"
)

// CLIController handles one-shot command-line operations
type CLIController struct {
	clockService     usecase.ClockService
	formatterService usecase.FormatterService
	plannerService   usecase.PlannerService
	timezoneService  repository.TimezoneService
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter
	jsonOutput       bool
}

// NewCLIController creates a new CLI controller
func NewCLIController(
	clockService usecase.ClockService,
	formatterService usecase.FormatterService,
	plannerService usecase.PlannerService,
	timezoneService repository.TimezoneService,
	consolePresenter presenter.ConsolePresenter,
	jsonPresenter presenter.JSONPresenter,
) *CLIController {
	return &CLIController{
		clockService:     clockService,
		formatterService: formatterService,
		plannerService:   plannerService,
		timezoneService:  timezoneService,
		consolePresenter: consolePresenter,
		jsonPresenter:    jsonPresenter,
	}
}

// SetJSONOutput switches output to the JSON presenter
func (c *CLIController) SetJSONOutput(enabled bool) {
	c.jsonOutput = enabled
}

// ShowClock prints the current local time using the configured header format
func (c *CLIController) ShowClock() error {
	now := c.clockService.Localtime()
	label := c.formatterService.FormatHeader(now)

	if c.jsonOutput {
		return c.jsonPresenter.PrintClock(label, now.ToUnix())
	}
	return c.consolePresenter.PrintClock(label)
}

// ShowTimezone prints the effective timezone details
func (c *CLIController) ShowTimezone() error {
	info := c.timezoneService.Info()

	if c.jsonOutput {
		return c.jsonPresenter.PrintTimezoneInfo(info)
	}
	return c.consolePresenter.PrintTimezoneInfo(info)
}

// ShowUpcoming prints appointments in the configured lookahead window
func (c *CLIController) ShowUpcoming() error {
	appointments, err := c.plannerService.Upcoming()
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	now := c.clockService.Localtime()
	views := c.buildViews(appointments, now)

	if c.jsonOutput {
		return c.jsonPresenter.PrintAppointments(views)
	}
	return c.consolePresenter.PrintAppointments(views)
}

func (c *CLIController) buildViews(appointments []*entity.Appointment, now valueobject.DateTime) []presenter.AppointmentView {
	views := make([]presenter.AppointmentView, len(appointments))
	for i, appointment := range appointments {
		views[i] = presenter.AppointmentView{
			UID:      appointment.UID(),
			Summary:  appointment.Summary(),
			When:     c.formatterService.FormatRelative(appointment.Begins(), now),
			AllDay:   appointment.IsAllDay(),
			HasAlarm: appointment.HasAlarm(),
		}
	}
	return views
}
