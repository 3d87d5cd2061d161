package temporal

import "fmt"

// PlainTime is a time-of-day with no calendar date or timezone component.
type PlainTime struct {
	Hour, Minute, Second, Millisecond int
}

func (t PlainTime) String() string {
	if t.Millisecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MillisOfDay returns t's offset from midnight in milliseconds.
func (t PlainTime) MillisOfDay() int64 {
	return int64(((t.Hour*60+t.Minute)*60+t.Second)*1000 + t.Millisecond)
}

// TimeFromMillis builds a PlainTime from a milliseconds-of-day offset,
// wrapping modulo 24h.
func TimeFromMillis(ms int64) PlainTime {
	const day = 86_400_000
	ms %= day
	if ms < 0 {
		ms += day
	}
	millis := ms % 1000
	totalSeconds := ms / 1000
	s := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	m := totalMinutes % 60
	h := totalMinutes / 60
	return PlainTime{Hour: int(h), Minute: int(m), Second: int(s), Millisecond: int(millis)}
}

// CombineAmPm folds a 1-12 hour literal and an am/pm marker into a 0-23
// hour PlainTime, per the "AM/PM combining" rule.
func CombineAmPm(t PlainTime, pm bool) PlainTime {
	h := t.Hour % 12
	if pm {
		h += 12
	}
	t.Hour = h
	return t
}
