package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

type SQLiteFoodLogRepo struct {
	db db.DBTX
}

func NewSQLiteFoodLogRepo(conn db.DBTX) *SQLiteFoodLogRepo {
	return &SQLiteFoodLogRepo{db: conn}
}

const foodLogColumns = `id, user_id, logged_at, description, photo_path, source, calories, protein_g, carbs_g, fat_g, created_at`

func (r *SQLiteFoodLogRepo) Create(ctx context.Context, f *domain.FoodLog) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	if f.Source == "" {
		f.Source = domain.FoodSourceManual
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO food_logs (`+foodLogColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.UserID, utcString(f.LoggedAt), f.Description, f.PhotoPath, string(f.Source),
		f.Total.Calories, f.Total.ProteinG, f.Total.CarbsG, f.Total.FatG, utcString(f.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting food log: %w", err)
	}
	for i, it := range f.Items {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO food_items (food_log_id, position, name, quantity, calories, protein_g, carbs_g, fat_g)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, i, it.Name, it.Quantity, it.Calories, it.ProteinG, it.CarbsG, it.FatG,
		)
		if err != nil {
			return fmt.Errorf("inserting food item %q: %w", it.Name, err)
		}
	}
	return nil
}

func (r *SQLiteFoodLogRepo) GetByID(ctx context.Context, id string) (*domain.FoodLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+foodLogColumns+` FROM food_logs WHERE id = ?`, id)
	f, err := scanFoodLog(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food log: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadItems(ctx, map[string]*domain.FoodLog{f.ID: f}, `WHERE food_log_id = ?`, id); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *SQLiteFoodLogRepo) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.FoodLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+foodLogColumns+` FROM food_logs
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ? ORDER BY logged_at, created_at`,
		userID, utcString(from), utcString(to))
	if err != nil {
		return nil, fmt.Errorf("listing food logs: %w", err)
	}

	var logs []*domain.FoodLog
	byID := make(map[string]*domain.FoodLog)
	for rows.Next() {
		f, err := scanFoodLog(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		logs = append(logs, f)
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating food logs: %w", err)
	}
	rows.Close()

	if len(logs) == 0 {
		return nil, nil
	}
	err = r.loadItems(ctx, byID,
		`WHERE food_log_id IN (SELECT id FROM food_logs WHERE user_id = ? AND logged_at >= ? AND logged_at < ?)`,
		userID, utcString(from), utcString(to))
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *SQLiteFoodLogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM food_items WHERE food_log_id = ?`, id); err != nil {
		return fmt.Errorf("deleting food items: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting food log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("food log %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteFoodLogRepo) loadItems(ctx context.Context, byID map[string]*domain.FoodLog, where string, args ...any) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT food_log_id, name, quantity, calories, protein_g, carbs_g, fat_g
		FROM food_items `+where+` ORDER BY food_log_id, position`, args...)
	if err != nil {
		return fmt.Errorf("querying food items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var logID string
		var it domain.FoodItem
		if err := rows.Scan(&logID, &it.Name, &it.Quantity, &it.Calories, &it.ProteinG, &it.CarbsG, &it.FatG); err != nil {
			return fmt.Errorf("scanning food item: %w", err)
		}
		if f, ok := byID[logID]; ok {
			f.Items = append(f.Items, it)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating food items: %w", err)
	}
	return nil
}

func scanFoodLog(scan func(dest ...any) error) (*domain.FoodLog, error) {
	var (
		f                     domain.FoodLog
		source                string
		loggedStr, createdStr string
	)
	err := scan(&f.ID, &f.UserID, &loggedStr, &f.Description, &f.PhotoPath, &source,
		&f.Total.Calories, &f.Total.ProteinG, &f.Total.CarbsG, &f.Total.FatG, &createdStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning food log: %w", err)
	}
	f.Source = domain.FoodSource(source)
	if f.LoggedAt, err = parseTime("food logged_at", loggedStr); err != nil {
		return nil, err
	}
	if f.CreatedAt, err = parseTime("food created_at", createdStr); err != nil {
		return nil, err
	}
	return &f, nil
}
