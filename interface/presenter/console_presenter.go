package presenter

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/farkasdvd/indicator-datetime/domain/repository"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct {
	writer io.Writer
}

// NewConsolePresenter creates a new console presenter
func NewConsolePresenter() *ConsolePresenterImpl {
	return &ConsolePresenterImpl{
		writer: os.Stdout,
	}
}

// PrintVersion prints version information
func (p *ConsolePresenterImpl) PrintVersion() {
	_, _ = fmt.Fprintln(p.writer, "indicator-datetime version 1.0.0")
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintClock prints the formatted header clock label
func (p *ConsolePresenterImpl) PrintClock(label string) error {
	_, _ = fmt.Fprintln(p.writer, label)
	return nil
}

// PrintTimezoneInfo prints the effective timezone details
func (p *ConsolePresenterImpl) PrintTimezoneInfo(info repository.TimezoneInfo) error {
	_, _ = fmt.Fprintf(p.writer, "Timezone: %s\n", info.Name)
	_, _ = fmt.Fprintf(p.writer, "UTC Offset: %s\n", info.Offset)
	_, _ = fmt.Fprintf(p.writer, "DST Active: %t\n", info.IsDST)
	_, _ = fmt.Fprintf(p.writer, "Detected Via: %s\n", info.DetectionMethod)
	return nil
}

// PrintAppointments prints upcoming appointments as a table
func (p *ConsolePresenterImpl) PrintAppointments(views []AppointmentView) error {
	if len(views) == 0 {
		_, _ = fmt.Fprintln(p.writer, "No upcoming appointments")
		return nil
	}

	w := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tSUMMARY\tFLAGS")
	for _, view := range views {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", view.When, view.Summary, p.formatFlags(view))
	}
	return w.Flush()
}

func (p *ConsolePresenterImpl) formatFlags(view AppointmentView) string {
	switch {
	case view.AllDay && view.HasAlarm:
		return "all-day, alarm"
	case view.AllDay:
		return "all-day"
	case view.HasAlarm:
		return "alarm"
	default:
		return "-"
	}
}
