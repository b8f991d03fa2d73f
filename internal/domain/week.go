package domain

import "time"

// DateLayout is the civil-date format used by the record store.
const DateLayout = "2006-01-02"

// CivilDate truncates t to midnight UTC. All record dates are civil
// dates; time-of-day never participates in comparisons.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the most recent Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := CivilDate(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns the Saturday closing the week that starts at weekStart.
func EndOfWeek(weekStart time.Time) time.Time {
	return CivilDate(weekStart).AddDate(0, 0, 6)
}

// IsEndOfWeek reports whether t falls on the designated end-of-week
// day. Weekly bonuses are evaluated on Sundays.
func IsEndOfWeek(t time.Time) bool {
	return t.UTC().Weekday() == time.Sunday
}

// FormatDate renders t as a store-compatible civil date.
func FormatDate(t time.Time) string {
	return CivilDate(t).Format(DateLayout)
}

// ParseDate parses a store civil date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
