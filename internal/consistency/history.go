package consistency

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// DefaultLookbackDays is how far back history starts when nothing has been
// logged yet. The window is inclusive of today, so it spans 29 days.
const DefaultLookbackDays = 28

// ErrInvalidDate marks a session whose date was never set.
var ErrInvalidDate = errors.New("invalid session date")

// EntryKind says whether a history entry was logged or synthesized.
type EntryKind string

const (
	// EntryLogged is a real session with exercises.
	EntryLogged EntryKind = "logged"
	// EntryMissed is a past planned day with nothing logged.
	EntryMissed EntryKind = "missed"
	// EntryPending is today's plan, not yet logged.
	EntryPending EntryKind = "pending"
)

// DayEntry is one resolved day of history: a real session or a stand-in
// synthesized from the plan.
type DayEntry struct {
	Date      time.Time
	Kind      EntryKind
	Title     string
	Exercises []domain.LoggedExercise
	// Session is set for logged entries only.
	Session *domain.Session
}

func (e DayEntry) IsMissed() bool  { return e.Kind == EntryMissed }
func (e DayEntry) IsPending() bool { return e.Kind == EntryPending }
func (e DayEntry) IsLogged() bool  { return e.Kind == EntryLogged }

// SynthesizeHistory walks every calendar day from the earliest session (or
// DefaultLookbackDays before today) through today and emits at most one
// entry per day: the logged session, a missed stand-in for a past planned
// day, or a pending stand-in for today's plan. Rest days and days without
// exercises emit nothing.
//
// today fixes both the end of the range and the zone calendar days are
// computed in. Inputs are never modified.
func SynthesizeHistory(sessions []*domain.Session, plan *domain.WeeklyPlan, today time.Time) ([]DayEntry, error) {
	loc := today.Location()
	end := StartOfDay(today, loc)

	start, err := historyStart(sessions, end)
	if err != nil {
		return nil, err
	}

	var out []DayEntry
	for d := start; !d.After(end); d = AddDays(d, 1) {
		if s := FindSession(d, sessions); s.HasExercises() {
			logged := s.Clone()
			out = append(out, DayEntry{
				Date:      d,
				Kind:      EntryLogged,
				Title:     logged.Title,
				Exercises: logged.Exercises,
				Session:   logged,
			})
			continue
		}

		day, ok := ResolvePlan(d, plan)
		if !ok {
			continue
		}

		kind := EntryMissed
		if keyOf(d) == keyOf(end) {
			kind = EntryPending
		}
		out = append(out, DayEntry{
			Date:      d,
			Kind:      kind,
			Title:     day.Title,
			Exercises: plannedAsIncomplete(day.Exercises),
		})
	}
	return out, nil
}

func historyStart(sessions []*domain.Session, today time.Time) (time.Time, error) {
	var earliest time.Time
	found := false
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if s.Date.IsZero() {
			return time.Time{}, fmt.Errorf("%w: session %q", ErrInvalidDate, s.ID)
		}
		day := StartOfDay(s.Date, today.Location())
		if day.After(today) {
			continue
		}
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}
	if !found {
		return AddDays(today, -DefaultLookbackDays), nil
	}
	return earliest, nil
}

func plannedAsIncomplete(planned []domain.PlannedExercise) []domain.LoggedExercise {
	out := make([]domain.LoggedExercise, len(planned))
	for i, p := range planned {
		out[i] = domain.LoggedFromPlanned("", p, false)
	}
	return out
}
