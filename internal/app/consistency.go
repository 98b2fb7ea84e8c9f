package app

import (
	"time"

	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/alexanderramin/cadence/internal/domain"
)

// ConsistencyRequest selects whose history to read and which day counts as
// today. A nil Now means the wall clock in the configured zone.
type ConsistencyRequest struct {
	UserID string
	Now    *time.Time
}

type HistoryRequest struct {
	ConsistencyRequest
	// Days keeps only the most recent N calendar days; 0 keeps everything.
	Days int
}

type HistoryResponse struct {
	GeneratedAt time.Time
	Entries     []consistency.DayEntry
}

type WeeksResponse struct {
	GeneratedAt time.Time
	// Weeks are newest first.
	Weeks []consistency.WeekBucket
}

type ExercisesRequest struct {
	ConsistencyRequest
	// Muscle filters by group; empty means every group.
	Muscle domain.MuscleGroup
}

// ExerciseSummary rolls one exercise's weekly stats up over all weeks.
type ExerciseSummary struct {
	Name           string
	MuscleGroup    domain.MuscleGroup
	Count          int
	TimesCompleted int
	MissedCount    int
	CompletionRate int
}

type ExercisesResponse struct {
	GeneratedAt time.Time
	Names       []string
	Exercises   []ExerciseSummary
}

type CalendarRequest struct {
	ConsistencyRequest
	// Zero Year or Month means the month containing today.
	Year  int
	Month time.Month
}

type CalendarResponse struct {
	GeneratedAt time.Time
	Year        int
	Month       time.Month
	Today       time.Time
	Cells       []consistency.DayCell
}

type SummaryResponse struct {
	GeneratedAt time.Time
	consistency.Summary
}

type ConsistencyErrorCode string

const (
	ConsistencyErrInvalidMonth ConsistencyErrorCode = "INVALID_MONTH"
	ConsistencyErrInvalidDays  ConsistencyErrorCode = "INVALID_DAYS"
)

type ConsistencyError struct {
	Code    ConsistencyErrorCode
	Message string
}

func (e *ConsistencyError) Error() string {
	return string(e.Code) + ": " + e.Message
}
