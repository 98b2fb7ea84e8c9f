package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, user_id, date, title, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, date, title, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, utcString(s.Date), s.Title, utcString(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return r.insertExercises(ctx, s)
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}
	byID := map[string]*domain.Session{s.ID: s}
	if err := r.loadExercises(ctx, `WHERE session_id = ?`, byID, id); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? ORDER BY date, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	return sessions, r.attachExercises(ctx, sessions,
		`WHERE session_id IN (SELECT id FROM sessions WHERE user_id = ?)`, userID)
}

// ListBetween returns the user's sessions dated from <= date < to.
func (r *SQLiteSessionRepo) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions
		WHERE user_id = ? AND date >= ? AND date < ? ORDER BY date, created_at`,
		userID, utcString(from), utcString(to))
	if err != nil {
		return nil, fmt.Errorf("listing sessions between: %w", err)
	}
	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	return sessions, r.attachExercises(ctx, sessions,
		`WHERE session_id IN (SELECT id FROM sessions WHERE user_id = ? AND date >= ? AND date < ?)`,
		userID, utcString(from), utcString(to))
}

// Update rewrites the session row and replaces its exercises.
// Run it inside a UnitOfWork.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET date = ?, title = ? WHERE id = ?`,
		utcString(s.Date), s.Title, s.ID)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_exercises WHERE session_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing session exercises: %w", err)
	}
	return r.insertExercises(ctx, s)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_exercises WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("deleting session exercises: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) insertExercises(ctx context.Context, s *domain.Session) error {
	for i := range s.Exercises {
		ex := &s.Exercises[i]
		if ex.ID == "" {
			ex.ID = uuid.New().String()
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO session_exercises (id, session_id, position, name, sets, reps, weight_kg, completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID, s.ID, i, ex.Name, ex.Sets, ex.Reps, ex.WeightKg, nullableBool(ex.Completed),
		)
		if err != nil {
			return fmt.Errorf("inserting session exercise %q: %w", ex.Name, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) attachExercises(ctx context.Context, sessions []*domain.Session, where string, args ...any) error {
	if len(sessions) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Session, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}
	return r.loadExercises(ctx, where, byID, args...)
}

func (r *SQLiteSessionRepo) loadExercises(ctx context.Context, where string, byID map[string]*domain.Session, args ...any) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, name, sets, reps, weight_kg, completed
		FROM session_exercises `+where+` ORDER BY session_id, position`, args...)
	if err != nil {
		return fmt.Errorf("querying session exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ex        domain.LoggedExercise
			sessionID string
			completed sql.NullInt64
		)
		if err := rows.Scan(&ex.ID, &sessionID, &ex.Name, &ex.Sets, &ex.Reps, &ex.WeightKg, &completed); err != nil {
			return fmt.Errorf("scanning session exercise: %w", err)
		}
		ex.Completed = boolFromNull(completed)
		if s, ok := byID[sessionID]; ok {
			s.Exercises = append(s.Exercises, ex)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session exercises: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var dateStr, createdStr string
	if err := row.Scan(&s.ID, &s.UserID, &dateStr, &s.Title, &createdStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return populateSession(&s, dateStr, createdStr)
}

// scanSessions drains and closes rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	defer rows.Close()
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var dateStr, createdStr string
		if err := rows.Scan(&s.ID, &s.UserID, &dateStr, &s.Title, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, dateStr, createdStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func populateSession(s *domain.Session, dateStr, createdStr string) (*domain.Session, error) {
	var err error
	if s.Date, err = parseTime("session date", dateStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("session created_at", createdStr); err != nil {
		return nil, err
	}
	return s, nil
}
