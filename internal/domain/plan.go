package domain

import (
	"strings"
	"time"
)

type PlannedExercise struct {
	Name        string
	Sets        int
	Reps        int
	WeightKg    float64
	MuscleGroup MuscleGroup
}

// NewPlannedExercise builds a planned exercise with its muscle group derived
// from the name.
func NewPlannedExercise(name string, sets, reps int, weightKg float64) PlannedExercise {
	e := PlannedExercise{Sets: sets, Reps: reps, WeightKg: weightKg}
	e.Rename(name)
	return e
}

// Rename changes the name and keeps MuscleGroup in step with it.
func (e *PlannedExercise) Rename(name string) {
	e.Name = strings.TrimSpace(name)
	e.MuscleGroup = Classify(e.Name)
}

type DayPlan struct {
	Title     string
	Exercises []PlannedExercise
	IsRestDay bool
}

// RestDay is the default entry for every weekday of a fresh plan.
func RestDay() DayPlan {
	return DayPlan{IsRestDay: true}
}

// Actionable reports whether the day has work scheduled. A non-rest day
// with no exercises is equivalent to nothing scheduled.
func (d DayPlan) Actionable() bool {
	return !d.IsRestDay && len(d.Exercises) > 0
}

// Clone returns a deep copy so callers can edit exercises freely.
func (d DayPlan) Clone() DayPlan {
	out := d
	if d.Exercises != nil {
		out.Exercises = make([]PlannedExercise, len(d.Exercises))
		copy(out.Exercises, d.Exercises)
	}
	return out
}

// WeeklyPlan is the recurring 7-day template. The fixed-size array keeps
// every weekday present.
type WeeklyPlan struct {
	UserID    string
	Days      [DaysPerWeek]DayPlan
	UpdatedAt time.Time
}

// NewWeeklyPlan returns a plan with every day set to rest.
func NewWeeklyPlan(userID string) *WeeklyPlan {
	p := &WeeklyPlan{UserID: userID}
	for i := range p.Days {
		p.Days[i] = RestDay()
	}
	return p
}

// Day returns the plan for a weekday. Invalid weekdays read as rest.
func (p *WeeklyPlan) Day(d Weekday) DayPlan {
	if p == nil || !d.Valid() {
		return RestDay()
	}
	return p.Days[d]
}

// SetDay replaces a weekday's plan, re-deriving each exercise's muscle group.
func (p *WeeklyPlan) SetDay(d Weekday, plan DayPlan, now time.Time) {
	if !d.Valid() {
		return
	}
	plan = plan.Clone()
	plan.Title = strings.TrimSpace(plan.Title)
	for i := range plan.Exercises {
		plan.Exercises[i].Rename(plan.Exercises[i].Name)
	}
	p.Days[d] = plan
	p.UpdatedAt = now
}

// Clone returns a deep copy of the plan.
func (p *WeeklyPlan) Clone() *WeeklyPlan {
	if p == nil {
		return nil
	}
	out := *p
	for i := range p.Days {
		out.Days[i] = p.Days[i].Clone()
	}
	return &out
}
