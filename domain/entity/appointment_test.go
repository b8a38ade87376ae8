package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

func TestNewAppointment(t *testing.T) {
	begins := valueobject.Local(2020, 3, 1, 10, 30, 0)
	ends := valueobject.Local(2020, 3, 1, 11, 0, 0)
	var unset valueobject.DateTime

	tests := []struct {
		name    string
		uid     string
		summary string
		begins  valueobject.DateTime
		ends    valueobject.DateTime
		wantErr bool
	}{
		{
			name:    "valid appointment",
			uid:     "apt-1",
			summary: "Standup",
			begins:  begins,
			ends:    ends,
			wantErr: false,
		},
		{
			name:    "empty UID",
			uid:     "",
			summary: "Standup",
			begins:  begins,
			ends:    ends,
			wantErr: true,
		},
		{
			name:    "empty summary",
			uid:     "apt-1",
			summary: "",
			begins:  begins,
			ends:    ends,
			wantErr: true,
		},
		{
			name:    "unset begin time",
			uid:     "apt-1",
			summary: "Standup",
			begins:  unset,
			ends:    ends,
			wantErr: true,
		},
		{
			name:    "unset end time",
			uid:     "apt-1",
			summary: "Standup",
			begins:  begins,
			ends:    unset,
			wantErr: true,
		},
		{
			name:    "ends before it begins",
			uid:     "apt-1",
			summary: "Standup",
			begins:  ends,
			ends:    begins,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt, err := NewAppointment(tt.uid, tt.summary, tt.begins, tt.ends, false, false, "#0000ff")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, apt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.uid, apt.UID())
			assert.Equal(t, tt.summary, apt.Summary())
			assert.True(t, apt.Begins().Equal(tt.begins))
			assert.True(t, apt.Ends().Equal(tt.ends))
			assert.False(t, apt.IsAllDay())
			assert.False(t, apt.HasAlarm())
			assert.Equal(t, "#0000ff", apt.Color())
		})
	}
}

func TestAppointmentOverlapsDay(t *testing.T) {
	begins := valueobject.Local(2020, 3, 1, 22, 0, 0)
	ends := valueobject.Local(2020, 3, 2, 2, 0, 0)

	apt, err := NewAppointment("apt-1", "Overnight", begins, ends, false, false, "")
	require.NoError(t, err)

	assert.True(t, apt.OverlapsDay(valueobject.Local(2020, 3, 1, 8, 0, 0)))
	assert.True(t, apt.OverlapsDay(valueobject.Local(2020, 3, 2, 8, 0, 0)))
	assert.False(t, apt.OverlapsDay(valueobject.Local(2020, 3, 3, 8, 0, 0)))

	var unset valueobject.DateTime
	assert.False(t, apt.OverlapsDay(unset))
}
