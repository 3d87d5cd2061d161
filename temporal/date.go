package temporal

import (
	"fmt"
	"time"
)

// PlainDate is a calendar date with no time-of-day or timezone component.
type PlainDate struct {
	Year, Month, Day int
}

func (d PlainDate) String() string {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%04d-%02d-%02d %s", d.Year, d.Month, d.Day, t.Format("Mon"))
}

// Weekday returns the day of week for d.
func (d PlainDate) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth returns the number of days in the given calendar month,
// accounting for leap years.
func DaysInMonth(year, month int) int {
	// day 0 of next month is the last day of this month.
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// AddCalendarMonths applies a fixed calendar addition order: add years,
// add months, then clamp the day to the resulting month's last day.
// This is the step that makes "Jan 31 + 1 month" land on Feb 28/29 instead
// of rolling into March.
func AddCalendarMonths(d PlainDate, years, months int64) PlainDate {
	totalMonths := (d.Year)*12 + (d.Month - 1) + int(years)*12 + int(months)
	newYear := floorDiv(totalMonths, 12)
	newMonth0 := floorMod(totalMonths, 12)
	newMonth := newMonth0 + 1

	day := d.Day
	if max := DaysInMonth(newYear, newMonth); day > max {
		day = max
	}
	return PlainDate{Year: newYear, Month: newMonth, Day: day}
}

// AddDays shifts d by whole days using ordinary calendar normalization
// (no clamping needed at the day/week level).
func AddDays(d PlainDate, days int64) PlainDate {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(days))
	return PlainDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// CompareDate reports -1, 0, or 1 as a is before, equal to, or after b.
func CompareDate(a, b PlainDate) int {
	at := time.Date(a.Year, time.Month(a.Month), a.Day, 0, 0, 0, 0, time.UTC)
	bt := time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}
