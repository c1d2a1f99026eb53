// Package timeutil provides calendar-day keys and display formatting for
// the stint application.
package timeutil

import "time"

// DayLayout is the layout of the calendar-day keys used in the daily log.
const DayLayout = "2006-01-02"

// DayKey returns the calendar-day key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDayKey parses a calendar-day key into a local midnight time.
func ParseDayKey(day string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, time.Local)
}

// FormatDayLabel formats a day key as a human-readable label, e.g.
// "Mon, Mar 10, 2026". Returns the key unchanged if it does not parse.
func FormatDayLabel(day string) string {
	t, err := ParseDayKey(day)
	if err != nil {
		return day
	}
	return t.Format("Mon, Jan 2, 2006")
}
