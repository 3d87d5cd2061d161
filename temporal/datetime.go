package temporal

import (
	"fmt"
	"time"
)

// PlainDateTime combines a calendar date and a time-of-day, with no
// timezone.
type PlainDateTime struct {
	Date PlainDate
	Time PlainTime
}

func (dt PlainDateTime) String() string {
	return fmt.Sprintf("%s %s", dt.Date, dt.Time)
}

func (dt PlainDateTime) toGoTime() time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Millisecond*1_000_000, time.UTC)
}

func fromGoTime(t time.Time) PlainDateTime {
	return PlainDateTime{
		Date: PlainDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: PlainTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Millisecond: t.Nanosecond() / 1_000_000},
	}
}

// AddDateTimeDuration implements a fixed addition order: years, then
// months (clamping the day to the new month's last day), then
// weeks*7+days and the time-of-day fields, both of which use ordinary
// calendar-overflow normalization since they no longer involve month
// ambiguity.
func AddDateTimeDuration(dt PlainDateTime, d Duration) PlainDateTime {
	clamped := AddCalendarMonths(dt.Date, d.Years, d.Months)
	base := PlainDateTime{Date: clamped, Time: dt.Time}
	t := base.toGoTime()
	t = t.AddDate(0, 0, int(d.Weeks*7+d.Days))
	t = t.Add(time.Duration(d.Hours) * time.Hour)
	t = t.Add(time.Duration(d.Minutes) * time.Minute)
	t = t.Add(time.Duration(d.Seconds) * time.Second)
	t = t.Add(time.Duration(d.Millis) * time.Millisecond)
	return fromGoTime(t)
}

// SubtractDateTime computes the exact elapsed duration between two
// date-times as a calendar-field-free Duration (day/time fields only,
// reduced to the greatest unit with integer components), so that
// a + (b - a) == b exactly.
func SubtractDateTime(a, b PlainDateTime) Duration {
	diff := b.toGoTime().Sub(a.toGoTime())
	return millisToDuration(diff.Milliseconds())
}

func millisToDuration(totalMs int64) Duration {
	neg := totalMs < 0
	if neg {
		totalMs = -totalMs
	}
	days := totalMs / 86_400_000
	rem := totalMs % 86_400_000
	d := Duration{Days: days}
	d = Add(d, Reduce(Duration{Millis: rem}))
	if neg {
		d = d.Negate()
	}
	return d
}

// CompareDateTime reports -1, 0, or 1 as a is before, equal to, or after b.
func CompareDateTime(a, b PlainDateTime) int {
	at, bt := a.toGoTime(), b.toGoTime()
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}

// CombineDateAndTime builds a PlainDateTime from a Date + Time operation.
func CombineDateAndTime(d PlainDate, t PlainTime) PlainDateTime {
	return PlainDateTime{Date: d, Time: t}
}

// AddTimeDuration adds a Duration with no date fields to a PlainTime,
// returning either a wrapped PlainTime (|delta| keeps it within the same
// day) or, when it doesn't, the widened PlainDateTime anchored at
// referenceDate, per the Time+Duration rule.
func AddTimeDuration(t PlainTime, d Duration, referenceDate PlainDate) (PlainTime, *PlainDateTime) {
	if d.HasCalendarFields() {
		dt := AddDateTimeDuration(PlainDateTime{Date: referenceDate, Time: t}, d)
		return PlainTime{}, &dt
	}
	deltaMs := ((d.Hours*60+d.Minutes)*60+d.Seconds)*1000 + d.Millis
	total := t.MillisOfDay() + deltaMs
	const day = 86_400_000
	if total >= 0 && total < day {
		return TimeFromMillis(total), nil
	}
	dayOffset := total / day
	if total%day < 0 {
		dayOffset--
	}
	dt := PlainDateTime{Date: AddDays(referenceDate, int64(dayOffset)), Time: TimeFromMillis(total)}
	return PlainTime{}, &dt
}
