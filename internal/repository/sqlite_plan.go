package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context, userID string) (*domain.WeeklyPlan, error) {
	plan := domain.NewWeeklyPlan(userID)

	rows, err := r.db.QueryContext(ctx,
		`SELECT weekday, title, is_rest_day, updated_at FROM weekly_plans WHERE user_id = ? ORDER BY weekday`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying weekly plan: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday, rest int
			title, upd    string
		)
		if err := rows.Scan(&weekday, &title, &rest, &upd); err != nil {
			return nil, fmt.Errorf("scanning plan day: %w", err)
		}
		d := domain.Weekday(weekday)
		if !d.Valid() {
			return nil, fmt.Errorf("plan day %d: %w", weekday, domain.ErrUnknownWeekday)
		}
		plan.Days[d] = domain.DayPlan{Title: title, IsRestDay: intToBool(rest)}
		updatedAt, err := parseTime("plan updated_at", upd)
		if err != nil {
			return nil, err
		}
		if updatedAt.After(plan.UpdatedAt) {
			plan.UpdatedAt = updatedAt
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan days: %w", err)
	}
	rows.Close()

	if err := r.loadExercises(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *SQLitePlanRepo) loadExercises(ctx context.Context, plan *domain.WeeklyPlan) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT weekday, name, sets, reps, weight_kg, muscle_group
		FROM plan_exercises WHERE user_id = ? ORDER BY weekday, position`, plan.UserID)
	if err != nil {
		return fmt.Errorf("querying plan exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday int
			muscle  string
			ex      domain.PlannedExercise
		)
		if err := rows.Scan(&weekday, &ex.Name, &ex.Sets, &ex.Reps, &ex.WeightKg, &muscle); err != nil {
			return fmt.Errorf("scanning plan exercise: %w", err)
		}
		ex.MuscleGroup = domain.MuscleGroup(muscle)
		if ex.MuscleGroup == "" {
			ex.MuscleGroup = domain.Classify(ex.Name)
		}
		d := domain.Weekday(weekday)
		if !d.Valid() {
			continue
		}
		plan.Days[d].Exercises = append(plan.Days[d].Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating plan exercises: %w", err)
	}
	return nil
}

// Save replaces the stored plan for p.UserID with all seven days of p.
// Run it inside a UnitOfWork so a failure leaves the previous plan intact.
func (r *SQLitePlanRepo) Save(ctx context.Context, p *domain.WeeklyPlan) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_exercises WHERE user_id = ?`, p.UserID); err != nil {
		return fmt.Errorf("clearing plan exercises: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM weekly_plans WHERE user_id = ?`, p.UserID); err != nil {
		return fmt.Errorf("clearing weekly plan: %w", err)
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	for _, d := range domain.AllWeekdays() {
		day := p.Days[d]
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO weekly_plans (user_id, weekday, title, is_rest_day, updated_at) VALUES (?, ?, ?, ?, ?)`,
			p.UserID, int(d), day.Title, boolToInt(day.IsRestDay), utcString(updatedAt),
		); err != nil {
			return fmt.Errorf("inserting plan day %s: %w", d, err)
		}
		for i, ex := range day.Exercises {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO plan_exercises (user_id, weekday, position, name, sets, reps, weight_kg, muscle_group)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.UserID, int(d), i, ex.Name, ex.Sets, ex.Reps, ex.WeightKg, string(ex.MuscleGroup),
			); err != nil {
				return fmt.Errorf("inserting plan exercise %q: %w", ex.Name, err)
			}
		}
	}
	return nil
}
