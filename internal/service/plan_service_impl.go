package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/planfile"
	"github.com/alexanderramin/cadence/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return &planService{
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Get(ctx context.Context, userID string) (*domain.WeeklyPlan, error) {
	plan, err := s.plans.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading weekly plan: %w", err)
	}
	return plan, nil
}

func (s *planService) SetDay(ctx context.Context, userID string, day domain.Weekday, dp domain.DayPlan) (plan *domain.WeeklyPlan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan_set_day",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"weekday":   day.String(),
				"exercises": len(dp.Exercises),
			},
		})
	}()

	if !day.Valid() {
		return nil, fmt.Errorf("weekday %d: %w", int(day), domain.ErrUnknownWeekday)
	}
	if err := planfile.ValidateDay(day, dp); err != nil {
		return nil, err
	}
	if dp.IsRestDay {
		dp = domain.RestDay()
	}
	return s.update(ctx, userID, func(p *domain.WeeklyPlan, now time.Time) {
		p.SetDay(day, dp, now)
	})
}

func (s *planService) ClearDay(ctx context.Context, userID string, day domain.Weekday) (*domain.WeeklyPlan, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("weekday %d: %w", int(day), domain.ErrUnknownWeekday)
	}
	return s.update(ctx, userID, func(p *domain.WeeklyPlan, now time.Time) {
		p.SetDay(day, domain.RestDay(), now)
	})
}

// update reads and writes the plan inside one transaction.
func (s *planService) update(ctx context.Context, userID string, edit func(*domain.WeeklyPlan, time.Time)) (*domain.WeeklyPlan, error) {
	var result *domain.WeeklyPlan
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		p, err := plans.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading weekly plan: %w", err)
		}
		edit(p, time.Now().UTC())
		if err := plans.Save(ctx, p); err != nil {
			return fmt.Errorf("saving weekly plan: %w", err)
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *planService) Import(ctx context.Context, userID string, r io.Reader) (*domain.WeeklyPlan, error) {
	f, err := planfile.Decode(r)
	if err != nil {
		return nil, err
	}
	return s.replace(ctx, userID, f)
}

func (s *planService) ImportFile(ctx context.Context, userID, path string) (*domain.WeeklyPlan, error) {
	f, err := planfile.Load(path)
	if err != nil {
		return nil, err
	}
	return s.replace(ctx, userID, f)
}

// replace overwrites all seven days with the contents of f.
func (s *planService) replace(ctx context.Context, userID string, f *planfile.PlanFile) (plan *domain.WeeklyPlan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan_import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user_id": userID},
		})
	}()

	plan, err = planfile.ToWeeklyPlan(f, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Save(ctx, plan); err != nil {
			return fmt.Errorf("saving weekly plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Export(ctx context.Context, userID string, w io.Writer) error {
	plan, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	return planfile.Encode(w, planfile.FromWeeklyPlan(plan))
}
