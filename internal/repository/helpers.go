package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// nullableBool maps the tri-state completed flag onto a nullable column.
func nullableBool(b *bool) any {
	if b == nil {
		return nil
	}
	return boolToInt(*b)
}

func boolFromNull(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	return domain.BoolPtr(v.Int64 != 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// utcString formats t for columns compared as text in range queries.
func utcString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
