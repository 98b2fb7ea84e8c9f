package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS weekly_plans (
		user_id     TEXT NOT NULL,
		weekday     INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		title       TEXT NOT NULL DEFAULT '',
		is_rest_day INTEGER NOT NULL DEFAULT 1 CHECK(is_rest_day IN (0,1)),
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, weekday)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_exercises (
		user_id      TEXT NOT NULL,
		weekday      INTEGER NOT NULL,
		position     INTEGER NOT NULL,
		name         TEXT NOT NULL,
		sets         INTEGER NOT NULL DEFAULT 0 CHECK(sets >= 0),
		reps         INTEGER NOT NULL DEFAULT 0 CHECK(reps >= 0),
		weight_kg    REAL NOT NULL DEFAULT 0 CHECK(weight_kg >= 0),
		muscle_group TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_id, weekday, position),
		FOREIGN KEY (user_id, weekday) REFERENCES weekly_plans(user_id, weekday) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON sessions(user_id, date)`,

	`CREATE TABLE IF NOT EXISTS session_exercises (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		name       TEXT NOT NULL,
		sets       INTEGER NOT NULL DEFAULT 0 CHECK(sets >= 0),
		reps       INTEGER NOT NULL DEFAULT 0 CHECK(reps >= 0),
		weight_kg  REAL NOT NULL DEFAULT 0 CHECK(weight_kg >= 0),
		completed  INTEGER CHECK(completed IS NULL OR completed IN (0,1))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_exercises_session ON session_exercises(session_id, position)`,

	`CREATE TABLE IF NOT EXISTS food_logs (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		logged_at   TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL DEFAULT 'manual' CHECK(source IN ('manual','ai_photo','ai_text')),
		calories    REAL NOT NULL DEFAULT 0,
		protein_g   REAL NOT NULL DEFAULT 0,
		carbs_g     REAL NOT NULL DEFAULT 0,
		fat_g       REAL NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_food_logs_user_logged ON food_logs(user_id, logged_at)`,

	`CREATE TABLE IF NOT EXISTS food_items (
		food_log_id TEXT NOT NULL REFERENCES food_logs(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		quantity    TEXT NOT NULL DEFAULT '',
		calories    REAL NOT NULL DEFAULT 0,
		protein_g   REAL NOT NULL DEFAULT 0,
		carbs_g     REAL NOT NULL DEFAULT 0,
		fat_g       REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (food_log_id, position)
	)`,

	// Photo analysis arrived after manual logging.
	`ALTER TABLE food_logs ADD COLUMN photo_path TEXT NOT NULL DEFAULT ''`,
}
