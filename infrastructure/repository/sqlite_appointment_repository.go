package repository

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/entity"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

const appointmentSchema = `
CREATE TABLE IF NOT EXISTS appointments (
	uid         TEXT PRIMARY KEY,
	summary     TEXT NOT NULL,
	begins_unix INTEGER NOT NULL,
	ends_unix   INTEGER NOT NULL,
	timezone    TEXT NOT NULL,
	all_day     INTEGER NOT NULL DEFAULT 0,
	has_alarm   INTEGER NOT NULL DEFAULT 0,
	color       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_appointments_begins ON appointments(begins_unix);
`

// SQLiteAppointmentRepository implements the AppointmentRepository
// interface on a local SQLite database. Instants are stored as Unix
// seconds together with the IANA zone they were expressed in, so loaded
// appointments keep their original wall-clock rendering.
type SQLiteAppointmentRepository struct {
	db *sql.DB
}

// NewSQLiteAppointmentRepository opens (and if needed bootstraps) the
// appointment database at the given path.
func NewSQLiteAppointmentRepository(dbPath string) (*SQLiteAppointmentRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, domain.ErrRepository("Open", err).WithDetails("path", dbPath)
	}

	if _, err := db.Exec(appointmentSchema); err != nil {
		_ = db.Close()
		return nil, domain.ErrRepository("Bootstrap", err).WithDetails("path", dbPath)
	}

	return &SQLiteAppointmentRepository{db: db}, nil
}

// FindBetween returns appointments overlapping the [begin, end) window,
// ordered by start time
func (r *SQLiteAppointmentRepository) FindBetween(begin, end valueobject.DateTime) ([]*entity.Appointment, error) {
	if !begin.IsSet() || !end.IsSet() {
		return nil, domain.ErrInvalidInput("window", "begin and end must be set")
	}

	rows, err := r.db.Query(`
		SELECT uid, summary, begins_unix, ends_unix, timezone, all_day, has_alarm, color
		FROM appointments
		WHERE begins_unix < ? AND ends_unix >= ?
		ORDER BY begins_unix`,
		end.ToUnix(), begin.ToUnix())
	if err != nil {
		return nil, domain.ErrRepository("FindBetween", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var appointments []*entity.Appointment
	for rows.Next() {
		var (
			uid, summary, zone, color string
			beginsUnix, endsUnix      int64
			allDay, hasAlarm          bool
		)
		if err := rows.Scan(&uid, &summary, &beginsUnix, &endsUnix, &zone, &allDay, &hasAlarm, &color); err != nil {
			return nil, domain.ErrRepository("FindBetween", err)
		}

		loc, err := time.LoadLocation(zone)
		if err != nil {
			// a zone removed from the system database still yields a
			// usable appointment, just rendered in UTC
			loc = time.UTC
		}
		beginsAt := time.Unix(beginsUnix, 0).In(loc)
		endsAt := time.Unix(endsUnix, 0).In(loc)

		appointment, err := entity.NewAppointment(
			uid, summary,
			valueobject.NewDateTime(loc, &beginsAt),
			valueobject.NewDateTime(loc, &endsAt),
			allDay, hasAlarm, color,
		)
		if err != nil {
			return nil, domain.ErrRepository("FindBetween", err).WithDetails("uid", uid)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrRepository("FindBetween", err)
	}

	return appointments, nil
}

// Save inserts or replaces an appointment by UID
func (r *SQLiteAppointmentRepository) Save(appointment *entity.Appointment) error {
	if appointment == nil {
		return domain.ErrInvalidInput("appointment", "cannot be nil")
	}

	zone := "UTC"
	if loc := appointment.Begins().Location(); loc != nil {
		zone = loc.String()
	}

	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO appointments
			(uid, summary, begins_unix, ends_unix, timezone, all_day, has_alarm, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		appointment.UID(),
		appointment.Summary(),
		appointment.Begins().ToUnix(),
		appointment.Ends().ToUnix(),
		zone,
		appointment.IsAllDay(),
		appointment.HasAlarm(),
		appointment.Color(),
	)
	if err != nil {
		return domain.ErrRepository("Save", err).WithDetails("uid", appointment.UID())
	}
	return nil
}

// Delete removes an appointment by UID
func (r *SQLiteAppointmentRepository) Delete(uid string) error {
	if uid == "" {
		return domain.ErrInvalidInput("uid", "cannot be empty")
	}
	if _, err := r.db.Exec("DELETE FROM appointments WHERE uid = ?", uid); err != nil {
		return domain.ErrRepository("Delete", err).WithDetails("uid", uid)
	}
	return nil
}

// Close releases the underlying database handle
func (r *SQLiteAppointmentRepository) Close() error {
	return r.db.Close()
}
