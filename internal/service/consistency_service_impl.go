package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type consistencyService struct {
	plans    repository.PlanRepo
	sessions repository.SessionRepo
	loc      *time.Location
	observer UseCaseObserver
}

// NewConsistencyService builds the read side over the plan and session
// stores. loc is the zone calendar days are counted in when a request
// carries no Now; nil means time.Local.
func NewConsistencyService(plans repository.PlanRepo, sessions repository.SessionRepo, loc *time.Location, observers ...UseCaseObserver) ConsistencyService {
	if loc == nil {
		loc = time.Local
	}
	return &consistencyService{
		plans:    plans,
		sessions: sessions,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

// snapshot is everything one request reads, taken once at the boundary.
type snapshot struct {
	now     time.Time
	entries []consistency.DayEntry
}

func (s *consistencyService) load(ctx context.Context, req app.ConsistencyRequest) (*snapshot, error) {
	now := time.Now().In(s.loc)
	if req.Now != nil {
		now = *req.Now
	}

	plan, err := s.plans.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading weekly plan: %w", err)
	}
	sessions, err := s.sessions.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	entries, err := consistency.SynthesizeHistory(sessions, plan, now)
	if err != nil {
		return nil, fmt.Errorf("synthesizing history: %w", err)
	}
	return &snapshot{now: now, entries: entries}, nil
}

func (s *consistencyService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *consistencyService) History(ctx context.Context, req app.HistoryRequest) (resp *app.HistoryResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": req.UserID, "days": req.Days}
	defer func() { s.observe(ctx, "consistency_history", startedAt, err, fields) }()

	if req.Days < 0 {
		return nil, &app.ConsistencyError{
			Code:    app.ConsistencyErrInvalidDays,
			Message: fmt.Sprintf("days must be >= 0, got %d", req.Days),
		}
	}
	snap, err := s.load(ctx, req.ConsistencyRequest)
	if err != nil {
		return nil, err
	}

	entries := snap.entries
	if req.Days > 0 {
		cutoff := consistency.AddDays(consistency.StartOfDay(snap.now, snap.now.Location()), -(req.Days - 1))
		i := sort.Search(len(entries), func(i int) bool {
			return !entries[i].Date.Before(cutoff)
		})
		entries = entries[i:]
	}
	fields["entries"] = len(entries)

	return &app.HistoryResponse{GeneratedAt: snap.now, Entries: entries}, nil
}

func (s *consistencyService) Weeks(ctx context.Context, req app.ConsistencyRequest) (resp *app.WeeksResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": req.UserID}
	defer func() { s.observe(ctx, "consistency_weeks", startedAt, err, fields) }()

	snap, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	weeks := consistency.AggregateByWeek(snap.entries)
	fields["weeks"] = len(weeks)
	return &app.WeeksResponse{GeneratedAt: snap.now, Weeks: weeks}, nil
}

// Exercises lists every exercise name in the history, with stats summed
// over all weeks.
func (s *consistencyService) Exercises(ctx context.Context, req app.ExercisesRequest) (resp *app.ExercisesResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": req.UserID, "muscle": string(req.Muscle)}
	defer func() { s.observe(ctx, "consistency_exercises", startedAt, err, fields) }()

	snap, err := s.load(ctx, req.ConsistencyRequest)
	if err != nil {
		return nil, err
	}
	weeks := consistency.AggregateByWeek(snap.entries)
	names := consistency.ExerciseIndex(weeks, req.Muscle)

	summaries := make([]app.ExerciseSummary, len(names))
	for i, name := range names {
		sum := app.ExerciseSummary{Name: name, MuscleGroup: domain.Classify(name)}
		for _, w := range weeks {
			st, ok := w.Stats(name)
			if !ok {
				continue
			}
			sum.Count += st.Count
			sum.TimesCompleted += st.TimesCompleted
			sum.MissedCount += st.MissedCount
		}
		sum.CompletionRate = consistency.ExerciseStats{
			TimesCompleted: sum.TimesCompleted,
			Count:          sum.Count,
		}.CompletionRate()
		summaries[i] = sum
	}
	fields["exercises"] = len(names)

	return &app.ExercisesResponse{GeneratedAt: snap.now, Names: names, Exercises: summaries}, nil
}

func (s *consistencyService) Calendar(ctx context.Context, req app.CalendarRequest) (resp *app.CalendarResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": req.UserID, "year": req.Year, "month": int(req.Month)}
	defer func() { s.observe(ctx, "consistency_calendar", startedAt, err, fields) }()

	if req.Month < 0 || req.Month > time.December {
		return nil, &app.ConsistencyError{
			Code:    app.ConsistencyErrInvalidMonth,
			Message: fmt.Sprintf("month must be 1-12, got %d", int(req.Month)),
		}
	}

	// The grid is computed per visible day and does not need the full
	// history synthesis.
	now := time.Now().In(s.loc)
	if req.Now != nil {
		now = *req.Now
	}
	plan, err := s.plans.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading weekly plan: %w", err)
	}
	sessions, err := s.sessions.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	year, month := req.Year, req.Month
	if year == 0 || month == 0 {
		year, month, _ = now.Date()
	}
	cells := consistency.MonthCalendar(year, month, sessions, plan, now)
	fields["year"], fields["month"] = year, int(month)

	return &app.CalendarResponse{
		GeneratedAt: now,
		Year:        year,
		Month:       month,
		Today:       consistency.StartOfDay(now, now.Location()),
		Cells:       cells,
	}, nil
}

func (s *consistencyService) Summary(ctx context.Context, req app.ConsistencyRequest) (resp *app.SummaryResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": req.UserID}
	defer func() { s.observe(ctx, "consistency_summary", startedAt, err, fields) }()

	snap, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	sum := consistency.Summarize(snap.entries, consistency.AggregateByWeek(snap.entries))
	fields["score"] = sum.Score
	return &app.SummaryResponse{GeneratedAt: snap.now, Summary: sum}, nil
}
