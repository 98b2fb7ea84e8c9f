package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// StartFromPlan opens the workout for date's calendar day (in date's
// location). An existing session with exercises is returned unchanged;
// otherwise the day's plan is copied in with every exercise not yet done.
func (s *sessionService) StartFromPlan(ctx context.Context, userID string, date time.Time) (session *domain.Session, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "session_start",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    sessionFields(userID, date, session),
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		session, txErr = fillFromPlan(ctx, tx, userID, date, false)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// MarkDayComplete records date as fully done. A session that already has
// exercises gets every one marked complete; otherwise the plan is copied in
// already completed.
func (s *sessionService) MarkDayComplete(ctx context.Context, userID string, date time.Time) (session *domain.Session, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "session_mark_complete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    sessionFields(userID, date, session),
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		existing, err := sessionOnDay(ctx, sessions, userID, date)
		if err != nil {
			return err
		}
		if !existing.HasExercises() {
			session, err = fillFromPlan(ctx, tx, userID, date, true)
			return err
		}
		for i := range existing.Exercises {
			existing.Exercises[i].SetCompleted(true)
		}
		if err := sessions.Update(ctx, existing); err != nil {
			return fmt.Errorf("updating session: %w", err)
		}
		session = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// fillFromPlan returns the day's session, creating it from the plan when it
// is missing or empty. An empty session keeps its ID and is filled in.
func fillFromPlan(ctx context.Context, tx db.DBTX, userID string, date time.Time, completed bool) (*domain.Session, error) {
	sessions := repository.NewSQLiteSessionRepo(tx)
	existing, err := sessionOnDay(ctx, sessions, userID, date)
	if err != nil {
		return nil, err
	}
	if existing.HasExercises() {
		return existing, nil
	}

	plan, err := repository.NewSQLitePlanRepo(tx).Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading weekly plan: %w", err)
	}
	day := consistency.StartOfDay(date, date.Location())
	dp, ok := consistency.ResolvePlan(day, plan)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", day.Format("2006-01-02"), domain.WeekdayOf(day), ErrNothingPlanned)
	}

	exercises := make([]domain.LoggedExercise, len(dp.Exercises))
	for i, p := range dp.Exercises {
		exercises[i] = domain.LoggedFromPlanned(uuid.New().String(), p, completed)
	}
	title := domain.CoalesceStr(dp.Title, domain.WeekdayOf(day).String()+" Workout")

	if existing != nil {
		existing.Title = domain.CoalesceStr(existing.Title, title)
		existing.Exercises = exercises
		if err := sessions.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("updating session: %w", err)
		}
		return existing, nil
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      day,
		Title:     title,
		Exercises: exercises,
		CreatedAt: time.Now().UTC(),
	}
	if err := sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func sessionOnDay(ctx context.Context, sessions repository.SessionRepo, userID string, date time.Time) (*domain.Session, error) {
	day := consistency.StartOfDay(date, date.Location())
	found, err := sessions.ListBetween(ctx, userID, day, consistency.AddDays(day, 1))
	if err != nil {
		return nil, fmt.Errorf("finding session for %s: %w", day.Format("2006-01-02"), err)
	}
	return consistency.FindSession(day, found), nil
}

func (s *sessionService) SetExerciseCompleted(ctx context.Context, sessionID, exerciseID string, completed bool) (session *domain.Session, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "session_set_completed",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"session_id":  sessionID,
				"exercise_id": exerciseID,
				"completed":   completed,
			},
		})
	}()

	return s.edit(ctx, sessionID, func(sess *domain.Session) error {
		ex := sess.Exercise(exerciseID)
		if ex == nil {
			return fmt.Errorf("exercise %s: %w", exerciseID, repository.ErrNotFound)
		}
		ex.SetCompleted(completed)
		return nil
	})
}

func (s *sessionService) AddExercise(ctx context.Context, sessionID string, ex domain.LoggedExercise) (*domain.Session, error) {
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return nil, fmt.Errorf("exercise name is required: %w", ErrInvalidExercise)
	}
	if ex.Sets < 0 || ex.Reps < 0 || ex.WeightKg < 0 {
		return nil, fmt.Errorf("exercise %q: sets, reps and weight must be >= 0: %w", ex.Name, ErrInvalidExercise)
	}
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	return s.edit(ctx, sessionID, func(sess *domain.Session) error {
		sess.Exercises = append(sess.Exercises, ex)
		return nil
	})
}

// edit loads, modifies and rewrites a session in one transaction.
func (s *sessionService) edit(ctx context.Context, sessionID string, fn func(*domain.Session) error) (*domain.Session, error) {
	var result *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		sess, err := sessions.GetByID(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("loading session: %w", err)
		}
		if err := fn(sess); err != nil {
			return err
		}
		if err := sessions.Update(ctx, sess); err != nil {
			return fmt.Errorf("updating session: %w", err)
		}
		result = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) List(ctx context.Context, userID string) ([]*domain.Session, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSessionRepo(tx).Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		return nil
	})
}

func sessionFields(userID string, date time.Time, session *domain.Session) map[string]any {
	fields := map[string]any{
		"user_id": userID,
		"date":    date.Format("2006-01-02"),
	}
	if session != nil {
		fields["session_id"] = session.ID
		fields["exercises"] = len(session.Exercises)
	}
	return fields
}
