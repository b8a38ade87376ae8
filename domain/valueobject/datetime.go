package valueobject

import (
	"time"

	"github.com/lestrrat-go/strftime"
)

// DateTime pairs a timezone with the instant it expresses. Both handles
// are either present ("set") or absent ("unset"); no partially-set state
// exists. Copies share the underlying handles, which are never mutated
// after construction, so concurrent readers need no synchronization.
// Derived-value methods always build a new DateTime and leave the
// receiver untouched.
type DateTime struct {
	loc *time.Location
	t   *time.Time
}

// NewDateTime creates a DateTime from a timezone and an instant. The two
// must be supplied together or not at all; anything else is a programmer
// error and panics.
func NewDateTime(loc *time.Location, t *time.Time) DateTime {
	var dt DateTime
	dt.Reset(loc, t)
	return dt
}

// FromUnix creates a DateTime for the given Unix timestamp (seconds since
// epoch) expressed in the local timezone.
func FromUnix(sec int64) DateTime {
	loc := time.Local
	t := time.Unix(sec, 0).In(loc)
	return NewDateTime(loc, &t)
}

// NowLocal creates a DateTime for the current instant in the local timezone.
func NowLocal() DateTime {
	loc := time.Local
	t := time.Now().In(loc)
	return NewDateTime(loc, &t)
}

// Local creates a DateTime from explicit calendar fields in the local
// timezone. Out-of-range fields normalize the way time.Date normalizes
// them (October 32 becomes November 1).
func Local(year, month, day, hour, minute int, seconds float64) DateTime {
	loc := time.Local
	sec, nsec := splitSeconds(seconds)
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)
	return NewDateTime(loc, &t)
}

// Reset replaces both handles atomically. Like NewDateTime, it requires
// the timezone and the instant to be supplied together or not at all.
func (d *DateTime) Reset(loc *time.Location, t *time.Time) {
	if (loc == nil) != (t == nil) {
		panic("valueobject: DateTime timezone and instant must both be set or both be nil")
	}
	d.loc = loc
	d.t = t
}

// IsSet reports whether the DateTime carries a timezone and an instant.
func (d DateTime) IsSet() bool {
	return d.t != nil
}

// Location returns the timezone handle, or nil when unset.
func (d DateTime) Location() *time.Location {
	return d.loc
}

// get returns the instant. Calling it on an unset DateTime is a
// precondition violation, mirrored as a panic.
func (d DateTime) get() time.Time {
	if d.t == nil {
		panic("valueobject: operation on unset DateTime")
	}
	return *d.t
}

// ToTimezone re-expresses the same instant under the named IANA timezone.
// Unresolvable names fall back to UTC rather than failing, matching the
// forgiving zone construction of the original engine.
func (d DateTime) ToTimezone(zone string) DateTime {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	t := d.get().In(loc)
	return NewDateTime(loc, &t)
}

// StartOfDay returns the same calendar date with the time-of-day reset to
// 00:00:00, in the same timezone. Panics when unset.
func (d DateTime) StartOfDay() DateTime {
	year, month, day := d.get().Date()
	t := time.Date(year, month, day, 0, 0, 0, 0, d.loc)
	return NewDateTime(d.loc, &t)
}

// StartOfMinute returns the same date, hour and minute with seconds (and
// sub-second precision) reset to zero, in the same timezone. Panics when
// unset.
func (d DateTime) StartOfMinute() DateTime {
	cur := d.get()
	year, month, day := cur.Date()
	t := time.Date(year, month, day, cur.Hour(), cur.Minute(), 0, 0, d.loc)
	return NewDateTime(d.loc, &t)
}

// AddFull returns a DateTime offset by the given calendar amounts. Year,
// month and day offsets use calendar-aware addition (time.AddDate), so
// month-end overflow normalizes forward: Jan 31 plus one month lands on
// Mar 2 in a leap year. Hour, minute and fractional-second offsets are
// applied as an absolute duration afterwards, which is where DST shifts
// surface.
func (d DateTime) AddFull(years, months, days, hours, minutes int, seconds float64) DateTime {
	t := d.get().AddDate(years, months, days).
		Add(time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds*float64(time.Second)))
	return NewDateTime(d.loc, &t)
}

// AddDays returns a DateTime offset by the given number of calendar days.
func (d DateTime) AddDays(days int) DateTime {
	return d.AddFull(0, 0, days, 0, 0, 0)
}

// Ymd decomposes the instant into its year, month and day. Panics when
// unset.
func (d DateTime) Ymd() (year, month, day int) {
	y, m, dom := d.get().Date()
	return y, int(m), dom
}

// DayOfMonth returns the day of the month (1..31).
func (d DateTime) DayOfMonth() int {
	return d.get().Day()
}

// Hour returns the hour of the day (0..23).
func (d DateTime) Hour() int {
	return d.get().Hour()
}

// Minute returns the minute of the hour (0..59).
func (d DateTime) Minute() int {
	return d.get().Minute()
}

// Seconds returns the seconds of the minute including the fractional part.
func (d DateTime) Seconds() float64 {
	t := d.get()
	return float64(t.Second()) + float64(t.Nanosecond())/float64(time.Second)
}

// ToUnix returns the instant as seconds since the Unix epoch.
func (d DateTime) ToUnix() int64 {
	return d.get().Unix()
}

// Format renders the instant using a strftime pattern. A pattern the
// engine rejects yields an empty string; formatting is the one operation
// that degrades silently instead of failing.
func (d DateTime) Format(pattern string) string {
	out, err := strftime.Format(pattern, d.get())
	if err != nil {
		return ""
	}
	return out
}

// Compare three-way compares the instants: -1 when d is earlier than
// that, 0 when identical, +1 when later. Both operands must be set.
func (d DateTime) Compare(that DateTime) int {
	return d.get().Compare(that.get())
}

// Before reports whether d is strictly earlier than that.
func (d DateTime) Before(that DateTime) bool {
	return d.Compare(that) < 0
}

// BeforeOrEqual reports whether d is earlier than or the same instant as
// that.
func (d DateTime) BeforeOrEqual(that DateTime) bool {
	return d.Compare(that) <= 0
}

// Equal reports whether both DateTimes denote the same instant. Two unset
// DateTimes are equal; a set and an unset one are not. Inequality is the
// strict negation of Equal.
func (d DateTime) Equal(that DateTime) bool {
	if d.t == nil && that.t == nil {
		return true
	}
	if d.t == nil || that.t == nil {
		return false
	}
	return d.Compare(that) == 0
}

// Sub returns the signed elapsed time from that to d. Both operands must
// be set.
func (d DateTime) Sub(that DateTime) time.Duration {
	return d.get().Sub(that.get())
}

// IsSameDay reports whether a and b fall on the same calendar day in
// their respective timezones. Unset operands are never on the same day.
func IsSameDay(a, b DateTime) bool {
	// comparing uninitialized dates is meaningless
	if !a.IsSet() || !b.IsSet() {
		return false
	}

	at, bt := a.get(), b.get()
	return at.Year() == bt.Year() && at.YearDay() == bt.YearDay()
}

// IsSameMinute reports whether a and b fall within the same calendar
// minute.
func IsSameMinute(a, b DateTime) bool {
	if !IsSameDay(a, b) {
		return false
	}

	at, bt := a.get(), b.get()
	return at.Hour() == bt.Hour() && at.Minute() == bt.Minute()
}

// splitSeconds separates fractional seconds into whole seconds and
// nanoseconds for time.Date.
func splitSeconds(seconds float64) (sec, nsec int) {
	sec = int(seconds)
	nsec = int((seconds - float64(sec)) * float64(time.Second))
	return sec, nsec
}
