package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday.
var testNow = time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	plans    *repository.SQLitePlanRepo
	sessions *repository.SQLiteSessionRepo
	foods    *repository.SQLiteFoodLogRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		plans:    repository.NewSQLitePlanRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
		foods:    repository.NewSQLiteFoodLogRepo(database),
	}
}

// seedPushLegsPlan saves Monday push and Wednesday legs for the test user.
func (e *testEnv) seedPushLegsPlan(t *testing.T) *domain.WeeklyPlan {
	t.Helper()
	plan := testutil.NewTestPlan(
		testutil.WithDay(domain.Monday, "Push",
			domain.NewPlannedExercise("Bench Press", 4, 8, 60),
			domain.NewPlannedExercise("Overhead Press", 3, 10, 40),
		),
		testutil.WithDay(domain.Wednesday, "Legs",
			domain.NewPlannedExercise("Squat", 5, 5, 100),
		),
	)
	require.NoError(t, e.plans.Save(context.Background(), plan))
	return plan
}

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.events)
	return c.events[len(c.events)-1]
}
