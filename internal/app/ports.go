package app

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ConsistencyUseCase interface {
	History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error)
	Weeks(ctx context.Context, req ConsistencyRequest) (*WeeksResponse, error)
	Exercises(ctx context.Context, req ExercisesRequest) (*ExercisesResponse, error)
	Calendar(ctx context.Context, req CalendarRequest) (*CalendarResponse, error)
	Summary(ctx context.Context, req ConsistencyRequest) (*SummaryResponse, error)
}

type StartSessionUseCase interface {
	StartFromPlan(ctx context.Context, userID string, date time.Time) (*domain.Session, error)
}

type AnalyzeFoodUseCase interface {
	AnalyzePhoto(ctx context.Context, req PhotoFoodRequest) (*domain.FoodLog, error)
}
