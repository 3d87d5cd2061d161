package temporal

import "fmt"

// ZonedDateTime pairs a local date-time with a named timezone. Full IANA
// offset calculation is out of scope, so the offset is treated as 0
// (UTC-equivalent) unless a real offset table is supplied by the caller;
// OffsetMinutes lets a future data source override that.
type ZonedDateTime struct {
	DateTime      PlainDateTime
	Timezone      string
	OffsetMinutes int
}

func (z ZonedDateTime) String() string {
	return fmt.Sprintf("%s %s", z.DateTime, z.Timezone)
}

// ToInstant converts a ZonedDateTime to an absolute Instant by applying
// its offset.
func ToInstant(z ZonedDateTime) Instant {
	base := FromDateTimeUTC(z.DateTime)
	return Instant{Millis: base.Millis - int64(z.OffsetMinutes)*60_000}
}

// FromInstant builds a ZonedDateTime in the given timezone/offset from an
// Instant.
func FromInstant(i Instant, timezone string, offsetMinutes int) ZonedDateTime {
	local := Instant{Millis: i.Millis + int64(offsetMinutes)*60_000}
	return ZonedDateTime{DateTime: ToDateTimeUTC(local), Timezone: timezone, OffsetMinutes: offsetMinutes}
}

// AddZonedDuration adds a Duration to a ZonedDateTime via its Instant:
// ZonedDateTime + Duration -> ZonedDateTime, routed through Instant.
func AddZonedDuration(z ZonedDateTime, d Duration) ZonedDateTime {
	// Calendar fields must stay anchored to the local calendar, not the
	// instant, or "add 1 month" would silently depend on the zone offset.
	// Apply calendar fields locally, then route the remaining time fields
	// through the instant so zone offset is respected for elapsed-time math.
	localDateAdjusted := AddDateTimeDuration(z.DateTime, Duration{Years: d.Years, Months: d.Months})
	withCalendar := ZonedDateTime{DateTime: localDateAdjusted, Timezone: z.Timezone, OffsetMinutes: z.OffsetMinutes}

	rest := Duration{Weeks: d.Weeks, Days: d.Days, Hours: d.Hours, Minutes: d.Minutes, Seconds: d.Seconds, Millis: d.Millis}
	instant := AddInstantDuration(ToInstant(withCalendar), rest)
	return FromInstant(instant, z.Timezone, z.OffsetMinutes)
}

// SubtractZoned computes the elapsed Duration between two ZonedDateTimes
// by going via their Instants.
func SubtractZoned(a, b ZonedDateTime) Duration {
	return SubtractInstant(ToInstant(a), ToInstant(b))
}
