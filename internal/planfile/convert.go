package planfile

import (
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ToWeeklyPlan validates f and builds the user's plan from it. Muscle groups
// are derived from exercise names.
func ToWeeklyPlan(f *PlanFile, userID string, now time.Time) (*domain.WeeklyPlan, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	plan := domain.NewWeeklyPlan(userID)
	for i, slot := range f.days() {
		day := *slot
		if day == nil || day.Rest {
			plan.SetDay(domain.Weekday(i), domain.RestDay(), now)
			continue
		}
		dp := domain.DayPlan{Title: day.Title}
		for _, ex := range day.Exercises {
			dp.Exercises = append(dp.Exercises,
				domain.NewPlannedExercise(strings.TrimSpace(ex.Name), ex.Sets, ex.Reps, ex.Weight))
		}
		plan.SetDay(domain.Weekday(i), dp, now)
	}
	return plan, nil
}

// FromWeeklyPlan renders every day of p, rest days included, so an export
// documents the whole week.
func FromWeeklyPlan(p *domain.WeeklyPlan) *PlanFile {
	var f PlanFile
	for i, slot := range f.days() {
		*slot = dayImportFrom(p.Day(domain.Weekday(i)))
	}
	return &f
}

func dayImportFrom(day domain.DayPlan) *DayImport {
	imp := &DayImport{Title: day.Title, Rest: day.IsRestDay}
	for _, ex := range day.Exercises {
		imp.Exercises = append(imp.Exercises, ExerciseImport{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.WeightKg,
		})
	}
	return imp
}
