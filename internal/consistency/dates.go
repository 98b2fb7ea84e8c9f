package consistency

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// StartOfDay returns the first instant of t's calendar day in loc. That is
// midnight except in zones whose DST change skips midnight, where it is the
// first wall-clock time after the gap.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return dayStart(y, m, d, loc)
}

// AddDays returns the start of the calendar day n days after t's, in t's
// location. Unlike AddDate it never carries a shifted clock time forward.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d+n, t.Location())
}

// dayStart normalizes y/m/d like time.Date does. When midnight falls in a
// DST gap, time.Date may resolve it to the previous evening, so step forward
// until the instant lands on the wanted day.
func dayStart(y int, m time.Month, d int, loc *time.Location) time.Time {
	want := keyOf(time.Date(y, m, d, 12, 0, 0, 0, loc))
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	for i := 0; keyOf(t) != want && i < 48; i++ {
		t = t.Add(30 * time.Minute)
	}
	return t
}

// SameDay compares calendar days. b is viewed in a's location so the
// comparison happens in the caller's local zone.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfWeek rolls back to the most recent Monday (or the same day on a
// Monday) and zeroes the time of day.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t, t.Location())
	return AddDays(day, -int(domain.WeekdayOf(day)))
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// DaysBetween counts calendar days from a to b, each read in its own
// location. It is negative when b's day comes first.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
