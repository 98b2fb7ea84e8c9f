package consistency

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// PlanOutcome says why a date does or does not have work scheduled.
type PlanOutcome int

const (
	// PlanAbsent means there is no plan to consult.
	PlanAbsent PlanOutcome = iota
	// PlanRest marks a scheduled rest day.
	PlanRest
	// PlanEmpty is a training day with no exercises listed.
	PlanEmpty
	// PlanActionable has at least one exercise to do.
	PlanActionable
)

func (o PlanOutcome) String() string {
	switch o {
	case PlanRest:
		return "rest"
	case PlanEmpty:
		return "empty"
	case PlanActionable:
		return "actionable"
	default:
		return "absent"
	}
}

// ResolveDay looks up the day plan for date's weekday and classifies it.
// The returned plan is a copy.
func ResolveDay(date time.Time, plan *domain.WeeklyPlan) (domain.DayPlan, PlanOutcome) {
	if plan == nil {
		return domain.DayPlan{}, PlanAbsent
	}
	day := plan.Day(domain.WeekdayOf(date))
	switch {
	case day.IsRestDay:
		return day.Clone(), PlanRest
	case len(day.Exercises) == 0:
		return day.Clone(), PlanEmpty
	default:
		return day.Clone(), PlanActionable
	}
}

// ResolvePlan returns the scheduled day plan for date, or false when the
// weekday is absent, a rest day, or has no exercises.
func ResolvePlan(date time.Time, plan *domain.WeeklyPlan) (domain.DayPlan, bool) {
	day, outcome := ResolveDay(date, plan)
	if outcome != PlanActionable {
		return domain.DayPlan{}, false
	}
	return day, true
}
