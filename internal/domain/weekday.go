package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWeekday is returned when a weekday name does not match one of
// the seven canonical English names.
var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday is a Monday-first day of the week. Monday is 0 and Sunday is 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of keys every WeeklyPlan carries.
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// AllWeekdays returns Monday..Sunday in order.
func AllWeekdays() []Weekday {
	out := make([]Weekday, DaysPerWeek)
	for i := range out {
		out[i] = Weekday(i)
	}
	return out
}

// String returns the full English name used as the plan key.
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// WeekdayOf maps a calendar date to its Weekday. It reads the date's own
// location, so callers normalize to the user's zone first.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysPerWeek)
}

// ParseWeekday matches the exact, case-sensitive plan key ("Monday").
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// ParseWeekdayFold accepts user input such as "mon", "MONDAY" or "Tue".
// Prefixes must be at least three letters to stay unambiguous.
func ParseWeekdayFold(input string) (Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) >= 3 {
		for i, n := range weekdayNames {
			if strings.HasPrefix(strings.ToLower(n), s) {
				return Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, input)
}
