// Package temporal implements calendar-aware date/time arithmetic across
// six value shapes: PlainDate, PlainTime, PlainDateTime, Instant,
// ZonedDateTime, and Duration.
//
// Timezone offsets are not resolved from a real IANA database (spec
// non-goal); ZonedDateTime treats every zone as UTC-equivalent, which keeps
// the arithmetic exact while leaving room for a real offset table later.
package temporal

import "github.com/shopspring/decimal"

// Duration is the two-register calendar/time value: calendar fields
// (Years, Months, Weeks, Days) are not reducible to a fixed number of
// milliseconds because month/year length varies, so they are kept
// separate from the time-of-day fields (Hours, Minutes, Seconds, Millis).
type Duration struct {
	Years, Months, Weeks, Days       int64
	Hours, Minutes, Seconds, Millis int64
}

// HasCalendarFields reports whether d carries any year/month/week/day
// component.
func (d Duration) HasCalendarFields() bool {
	return d.Years != 0 || d.Months != 0 || d.Weeks != 0 || d.Days != 0
}

// IsZero reports whether every field of d is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Negate flips the sign of every field.
func (d Duration) Negate() Duration {
	return Duration{
		Years: -d.Years, Months: -d.Months, Weeks: -d.Weeks, Days: -d.Days,
		Hours: -d.Hours, Minutes: -d.Minutes, Seconds: -d.Seconds, Millis: -d.Millis,
	}
}

// Add combines two durations field-wise.
func Add(a, b Duration) Duration {
	return Duration{
		Years: a.Years + b.Years, Months: a.Months + b.Months,
		Weeks: a.Weeks + b.Weeks, Days: a.Days + b.Days,
		Hours: a.Hours + b.Hours, Minutes: a.Minutes + b.Minutes,
		Seconds: a.Seconds + b.Seconds, Millis: a.Millis + b.Millis,
	}
}

// Sub subtracts b from a field-wise.
func Sub(a, b Duration) Duration { return Add(a, b.Negate()) }

// Scale multiplies every field by a scalar (used by Duration * Number and
// Duration / Number).
func Scale(d Duration, factor decimal.Decimal) Duration {
	scale := func(v int64) int64 {
		return decimal.NewFromInt(v).Mul(factor).Round(0).IntPart()
	}
	return Duration{
		Years: scale(d.Years), Months: scale(d.Months),
		Weeks: scale(d.Weeks), Days: scale(d.Days),
		Hours: scale(d.Hours), Minutes: scale(d.Minutes),
		Seconds: scale(d.Seconds), Millis: scale(d.Millis),
	}
}

// FractionalMonths builds a Duration for a non-integer month count,
// reducing the fractional remainder to days using a fixed 365.25/12
// day-equivalence.
func FractionalMonths(months decimal.Decimal) Duration {
	whole := months.Truncate(0)
	frac := months.Sub(whole)
	dayEquivalence := decimal.NewFromFloat(365.25).Div(decimal.NewFromInt(12))
	extraDays := frac.Mul(dayEquivalence)
	return reduceFractionalDays(whole.IntPart(), extraDays)
}

// FractionalYears is FractionalMonths' year analogue, using 365.25
// days/year.
func FractionalYears(years decimal.Decimal) Duration {
	whole := years.Truncate(0)
	frac := years.Sub(whole)
	extraDays := frac.Mul(decimal.NewFromFloat(365.25))
	d := reduceFractionalDays(0, extraDays)
	d.Years = whole.IntPart()
	return d
}

func reduceFractionalDays(wholeMonths int64, extraDays decimal.Decimal) Duration {
	days := extraDays.Truncate(0)
	remainderDays := extraDays.Sub(days)
	ms := remainderDays.Mul(decimal.NewFromInt(86_400_000)).Round(0)
	return normalizeMillis(Duration{Months: wholeMonths, Days: days.IntPart()}, ms.IntPart())
}

func normalizeMillis(d Duration, millis int64) Duration {
	d.Millis += millis
	return Reduce(d)
}

// Reduce renormalizes a duration with no calendar fields to the greatest
// time unit that keeps every remaining component an integer (a
// "minimum-level reduction"), e.g. 90000 ms -> 1 min 30 s. Durations with
// calendar fields are returned unchanged, since they must stay anchored to
// a date.
func Reduce(d Duration) Duration {
	if d.HasCalendarFields() {
		return d
	}
	totalMillis := ((d.Hours*60+d.Minutes)*60+d.Seconds)*1000 + d.Millis
	neg := totalMillis < 0
	if neg {
		totalMillis = -totalMillis
	}
	ms := totalMillis % 1000
	totalSeconds := totalMillis / 1000
	s := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	m := totalMinutes % 60
	h := totalMinutes / 60
	out := Duration{Hours: h, Minutes: m, Seconds: s, Millis: ms}
	if neg {
		out = out.Negate()
	}
	return out
}
