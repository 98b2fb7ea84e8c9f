package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	// Get always returns a plan with all seven days; a user who never saved
	// one gets an all-rest plan.
	Get(ctx context.Context, userID string) (*domain.WeeklyPlan, error)
	Save(ctx context.Context, p *domain.WeeklyPlan) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// ListByUser returns sessions in store order: by date, then creation.
	ListByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type FoodLogRepo interface {
	Create(ctx context.Context, f *domain.FoodLog) error
	GetByID(ctx context.Context, id string) (*domain.FoodLog, error)
	// ListBetween returns logs with from <= logged_at < to, oldest first.
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.FoodLog, error)
	Delete(ctx context.Context, id string) error
}
