package temporal

import (
	"fmt"
	"time"
)

// Instant is an absolute point in time, stored as integer milliseconds
// since the Unix epoch.
type Instant struct {
	Millis int64
}

func (i Instant) String() string {
	t := time.UnixMilli(i.Millis).UTC()
	return t.Format("2006-01-02T15:04:05.000Z")
}

// ToDateTimeUTC widens an Instant into a UTC PlainDateTime.
func ToDateTimeUTC(i Instant) PlainDateTime {
	return fromGoTime(time.UnixMilli(i.Millis).UTC())
}

// FromDateTimeUTC narrows a UTC PlainDateTime into an Instant.
func FromDateTimeUTC(dt PlainDateTime) Instant {
	return Instant{Millis: dt.toGoTime().UnixMilli()}
}

// AddInstantDuration adds a Duration to an Instant by widening to a
// PlainDateTime, applying the calendar-aware addition, and narrowing back.
func AddInstantDuration(i Instant, d Duration) Instant {
	return FromDateTimeUTC(AddDateTimeDuration(ToDateTimeUTC(i), d))
}

// SubtractInstant computes the exact elapsed Duration between two
// instants.
func SubtractInstant(a, b Instant) Duration {
	return millisToDuration(b.Millis - a.Millis)
}

// FromUnixSeconds builds an Instant from a Unix timestamp in seconds.
func FromUnixSeconds(seconds int64) Instant { return Instant{Millis: seconds * 1000} }

// FromUnixMillis builds an Instant from Unix milliseconds.
func FromUnixMillis(ms int64) Instant { return Instant{Millis: ms} }
