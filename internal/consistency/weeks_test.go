package consistency

import (
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByWeek_AbsentCompletedCountsAsDone(t *testing.T) {
	s := session("s", day(2024, 1, 16), logged("Row", 3, 10, nil))
	entries, err := SynthesizeHistory([]*domain.Session{s}, nil, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	assert.Equal(t, 1, weeks[0].TotalExercises)
	assert.Equal(t, 1, weeks[0].CompletedExercises)
	assert.Equal(t, 100, weeks[0].ConsistencyScore())
}

func TestAggregateByWeek_MissedWeeksScoreZero(t *testing.T) {
	plan := planWith(map[domain.Weekday]domain.DayPlan{domain.Monday: pushDay()})
	entries, err := SynthesizeHistory(nil, plan, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 4)
	for _, w := range weeks {
		assert.Equal(t, 1, w.TotalExercises)
		assert.Equal(t, 0, w.CompletedExercises)
		assert.Equal(t, 0, w.ConsistencyScore())

		st, ok := w.Stats("Bench Press")
		require.True(t, ok)
		assert.Equal(t, 1, st.Count)
		assert.Equal(t, 1, st.MissedCount)
		assert.Equal(t, 0, st.TimesCompleted)
		assert.Equal(t, domain.MuscleChest, st.MuscleGroup)
	}
}

func TestAggregateByWeek_NewestFirstWithNumbers(t *testing.T) {
	plan := planWith(map[domain.Weekday]domain.DayPlan{domain.Monday: pushDay()})
	entries, err := SynthesizeHistory(nil, plan, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 4)
	assert.Equal(t, day(2024, 1, 15), weeks[0].Start)
	assert.Equal(t, 4, weeks[0].Number)
	assert.Equal(t, day(2023, 12, 25), weeks[3].Start)
	assert.Equal(t, 1, weeks[3].Number)
	assert.Equal(t, day(2023, 12, 31), weeks[3].End())
	assert.True(t, weeks[0].Contains(testToday))
	assert.False(t, weeks[1].Contains(testToday))
}

func TestAggregateByWeek_PendingContributesNames(t *testing.T) {
	plan := planWith(map[domain.Weekday]domain.DayPlan{domain.Wednesday: legDay()})
	s := session("s", day(2024, 1, 15), done("Plank"))
	entries, err := SynthesizeHistory([]*domain.Session{s}, plan, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	w := weeks[0]
	assert.Equal(t, 1, w.TotalExercises, "pending day adds no slots")
	assert.Equal(t, 1, w.CompletedExercises)

	st, ok := w.Stats("Back Squat")
	require.True(t, ok, "pending exercises are still indexed")
	assert.Equal(t, 0, st.Count)
	assert.Equal(t, 0, st.CompletionRate())
	assert.Equal(t, domain.MuscleLegs, st.MuscleGroup)
}

func TestAggregateByWeek_LoggedStats(t *testing.T) {
	mon := session("mon", day(2024, 1, 15), logged("Bench Press", 4, 8, domain.BoolPtr(true)))
	tue := session("tue", day(2024, 1, 16),
		logged("Bench Press", 4, 6, domain.BoolPtr(false)),
		logged("  Bench Press  ", 3, 5, nil),
	)
	entries, err := SynthesizeHistory([]*domain.Session{mon, tue}, nil, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	w := weeks[0]
	assert.Equal(t, 3, w.TotalExercises)
	assert.Equal(t, 2, w.CompletedExercises)
	assert.Equal(t, 67, w.ConsistencyScore())

	require.Len(t, w.Exercises, 1, "names are trimmed before grouping")
	st := w.Exercises[0]
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 2, st.TimesCompleted)
	assert.Equal(t, 11, st.PlannedSets)
	assert.Equal(t, 19, st.PlannedReps)
	assert.Equal(t, 7, st.CompletedSets)
	assert.Equal(t, 13, st.CompletedReps)
	assert.Equal(t, 67, st.CompletionRate())
}

func TestAggregateByWeek_BlankNamesCountTowardTotals(t *testing.T) {
	s := session("s", day(2024, 1, 16), logged("   ", 3, 10, nil), done("Plank"))
	entries, err := SynthesizeHistory([]*domain.Session{s}, nil, testToday)
	require.NoError(t, err)

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2, weeks[0].TotalExercises)
	assert.Equal(t, 2, weeks[0].CompletedExercises)
	require.Len(t, weeks[0].Exercises, 1)
	assert.Equal(t, "Plank", weeks[0].Exercises[0].Name)

	_, ok := weeks[0].Stats("")
	assert.False(t, ok)
}

func TestAggregateByWeek_DaysSortedWithinWeek(t *testing.T) {
	entries := []DayEntry{
		{Date: day(2024, 1, 12), Kind: EntryMissed},
		{Date: day(2024, 1, 9), Kind: EntryMissed},
		{Date: day(2024, 1, 10), Kind: EntryMissed},
	}
	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].Days, 3)
	assert.Equal(t, day(2024, 1, 9), weeks[0].Days[0].Date)
	assert.Equal(t, day(2024, 1, 12), weeks[0].Days[2].Date)
	assert.Equal(t, 0, weeks[0].ConsistencyScore(), "nothing planned scores zero")
}

func TestAggregateByWeek_Empty(t *testing.T) {
	assert.Empty(t, AggregateByWeek(nil))
}

func TestWeekBucket_StatsWithoutIndex(t *testing.T) {
	w := WeekBucket{Exercises: []ExerciseStats{{Name: "Plank", Count: 2}}}
	st, ok := w.Stats("Plank")
	require.True(t, ok)
	assert.Equal(t, 2, st.Count)
	_, ok = w.Stats("Row")
	assert.False(t, ok)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{-1, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
		{5, 3, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percent(tt.n, tt.d), "percent(%d, %d)", tt.n, tt.d)
	}
}

func TestAggregateByWeek_WeekStartsMondayInCallerZone(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*3600)
	sunday := time.Date(2024, 1, 21, 0, 30, 0, 0, zone)
	entries := []DayEntry{{Date: StartOfDay(sunday, zone), Kind: EntryLogged, Exercises: []domain.LoggedExercise{done("Plank")}}}

	weeks := AggregateByWeek(entries)
	require.Len(t, weeks, 1)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, zone), weeks[0].Start)
}
