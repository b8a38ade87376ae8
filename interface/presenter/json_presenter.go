package presenter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/farkasdvd/indicator-datetime/domain/repository"
)

// JSONPresenterImpl implements JSONPresenter for JSON output
type JSONPresenterImpl struct {
	writer  io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter
func NewJSONPresenter() *JSONPresenterImpl {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return &JSONPresenterImpl{
		writer:  os.Stdout,
		encoder: encoder,
	}
}

// PrintClock prints the formatted clock label with its unix instant
func (p *JSONPresenterImpl) PrintClock(label string, unix int64) error {
	data := map[string]interface{}{
		"clock": label,
		"unix":  unix,
	}
	return p.encoder.Encode(data)
}

// PrintTimezoneInfo prints the effective timezone details as JSON
func (p *JSONPresenterImpl) PrintTimezoneInfo(info repository.TimezoneInfo) error {
	data := map[string]interface{}{
		"name":            info.Name,
		"offset":          info.Offset,
		"offsetSeconds":   info.OffsetSeconds,
		"isDst":           info.IsDST,
		"detectionMethod": info.DetectionMethod,
	}
	return p.encoder.Encode(data)
}

// PrintAppointments prints upcoming appointments as JSON
func (p *JSONPresenterImpl) PrintAppointments(views []AppointmentView) error {
	items := make([]map[string]interface{}, len(views))
	for i, view := range views {
		items[i] = map[string]interface{}{
			"uid":      view.UID,
			"summary":  view.Summary,
			"when":     view.When,
			"allDay":   view.AllDay,
			"hasAlarm": view.HasAlarm,
		}
	}
	return p.encoder.Encode(map[string]interface{}{
		"appointments": items,
	})
}
