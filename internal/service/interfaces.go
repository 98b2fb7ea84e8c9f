package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
)

var (
	// ErrNothingPlanned is returned when a session is requested for a day
	// whose plan has no actionable work.
	ErrNothingPlanned  = errors.New("nothing planned for this day")
	// ErrVisionDisabled is returned by nutrition analysis when no vision
	// client is configured.
	ErrVisionDisabled  = errors.New("vision analysis is disabled")
	ErrInvalidFood     = errors.New("invalid food log")
	ErrInvalidExercise = errors.New("invalid exercise")
)

type PlanService interface {
	Get(ctx context.Context, userID string) (*domain.WeeklyPlan, error)
	SetDay(ctx context.Context, userID string, day domain.Weekday, plan domain.DayPlan) (*domain.WeeklyPlan, error)
	ClearDay(ctx context.Context, userID string, day domain.Weekday) (*domain.WeeklyPlan, error)
	Import(ctx context.Context, userID string, r io.Reader) (*domain.WeeklyPlan, error)
	ImportFile(ctx context.Context, userID, path string) (*domain.WeeklyPlan, error)
	Export(ctx context.Context, userID string, w io.Writer) error
}

type SessionService interface {
	app.StartSessionUseCase
	MarkDayComplete(ctx context.Context, userID string, date time.Time) (*domain.Session, error)
	SetExerciseCompleted(ctx context.Context, sessionID, exerciseID string, completed bool) (*domain.Session, error)
	AddExercise(ctx context.Context, sessionID string, ex domain.LoggedExercise) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, userID string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type ConsistencyService interface {
	app.ConsistencyUseCase
}

type NutritionService interface {
	app.AnalyzeFoodUseCase
	EstimateText(ctx context.Context, userID, description string, at time.Time) (*domain.FoodLog, error)
	LogManual(ctx context.Context, req app.ManualFoodRequest) (*domain.FoodLog, error)
	ListDay(ctx context.Context, userID string, date time.Time) ([]*domain.FoodLog, error)
	DailyTotals(ctx context.Context, userID string, date time.Time) (*app.DailyNutrition, error)
	Delete(ctx context.Context, id string) error
}
