package consistency

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// testToday is a Wednesday.
var testToday = time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func planWith(days map[domain.Weekday]domain.DayPlan) *domain.WeeklyPlan {
	p := domain.NewWeeklyPlan("u1")
	for d, dp := range days {
		p.SetDay(d, dp, testToday)
	}
	return p
}

func pushDay() domain.DayPlan {
	return domain.DayPlan{
		Title:     "Push Day",
		Exercises: []domain.PlannedExercise{domain.NewPlannedExercise("Bench Press", 4, 8, 60)},
	}
}

func legDay() domain.DayPlan {
	return domain.DayPlan{
		Title: "Leg Day",
		Exercises: []domain.PlannedExercise{
			domain.NewPlannedExercise("Back Squat", 5, 5, 100),
			domain.NewPlannedExercise("Leg Curl", 3, 12, 40),
		},
	}
}

func logged(name string, sets, reps int, completed *bool) domain.LoggedExercise {
	return domain.LoggedExercise{ID: name, Name: name, Sets: sets, Reps: reps, Completed: completed}
}

func done(name string) domain.LoggedExercise {
	return logged(name, 3, 10, domain.BoolPtr(true))
}

func notDone(name string) domain.LoggedExercise {
	return logged(name, 3, 10, domain.BoolPtr(false))
}

func session(id string, at time.Time, exercises ...domain.LoggedExercise) *domain.Session {
	return &domain.Session{ID: id, UserID: "u1", Date: at, Title: "Workout " + id, Exercises: exercises}
}

func entryOn(entries []DayEntry, d time.Time) (DayEntry, bool) {
	for _, e := range entries {
		if SameDay(d, e.Date) {
			return e, true
		}
	}
	return DayEntry{}, false
}
