package testutil

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

const TestUserID = "test-user"

// Session options
type SessionOption func(*domain.Session)

func WithUser(id string) SessionOption {
	return func(s *domain.Session) {
		s.UserID = id
	}
}

func WithTitle(title string) SessionOption {
	return func(s *domain.Session) {
		s.Title = title
	}
}

func WithExercises(exs ...domain.LoggedExercise) SessionOption {
	return func(s *domain.Session) {
		s.Exercises = append(s.Exercises, exs...)
	}
}

func NewTestSession(date time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Date:      date,
		Title:     "Workout",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestExercise builds a logged exercise. A nil completed leaves the flag
// absent, which counts as completed.
func NewTestExercise(name string, sets, reps int, completed *bool) domain.LoggedExercise {
	return domain.LoggedExercise{
		ID:        uuid.New().String(),
		Name:      name,
		Sets:      sets,
		Reps:      reps,
		Completed: completed,
	}
}

// Plan options
type PlanOption func(*domain.WeeklyPlan)

func WithDay(d domain.Weekday, title string, exs ...domain.PlannedExercise) PlanOption {
	return func(p *domain.WeeklyPlan) {
		p.SetDay(d, domain.DayPlan{Title: title, Exercises: exs}, p.UpdatedAt)
	}
}

func NewTestPlan(opts ...PlanOption) *domain.WeeklyPlan {
	p := domain.NewWeeklyPlan(TestUserID)
	p.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Food options
type FoodOption func(*domain.FoodLog)

func WithItems(items ...domain.FoodItem) FoodOption {
	return func(f *domain.FoodLog) {
		f.Items = append(f.Items, items...)
		f.Total = f.ItemTotal()
	}
}

func WithSource(src domain.FoodSource) FoodOption {
	return func(f *domain.FoodLog) {
		f.Source = src
	}
}

func NewTestFoodLog(at time.Time, description string, opts ...FoodOption) *domain.FoodLog {
	f := &domain.FoodLog{
		ID:          uuid.New().String(),
		UserID:      TestUserID,
		LoggedAt:    at,
		Description: description,
		Source:      domain.FoodSourceManual,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
