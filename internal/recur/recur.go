// Package recur computes the next occurrence of a recurring task.
package recur

import (
	"strings"
	"time"

	"github.com/taskline/taskline/internal/task"
)

// Next advances a due value by one recurrence unit, anchored to the value
// itself rather than to the current time so the cadence never drifts. The
// value may be date-only (YYYY-MM-DD) or date+time (YYYY-MM-DD HH:MM);
// the result keeps the input format. Returns false when the rule is NONE,
// the value is empty, or the value does not parse.
func Next(value string, r task.Recurrence) (string, bool) {
	if value == "" || r == task.RecurrenceNone {
		return "", false
	}

	layout := task.DateLayout
	if strings.Contains(value, " ") {
		layout = task.DateTimeLayout
	}
	dt, err := time.Parse(layout, value)
	if err != nil {
		return "", false
	}

	var next time.Time
	switch r {
	case task.RecurrenceDaily:
		next = dt.AddDate(0, 0, 1)
	case task.RecurrenceWeekly:
		next = dt.AddDate(0, 0, 7)
	case task.RecurrenceMonthly:
		next = addMonthClamped(dt)
	default:
		return "", false
	}

	return next.Format(layout), true
}

// addMonthClamped adds one calendar month, clamping the day to the end of
// the target month (Jan 31 -> Feb 28). time.AddDate would normalize the
// overflow into the following month instead.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	last := daysIn(year, month+1, t.Location())
	if day > last {
		day = last
	}
	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the (possibly unnormalized) month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
