package consistency

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyNames = []string{"Bench Press", "Back Squat", "Pull-Up", "Plank", "Barbell Curl", "Dips", "  "}

func randomPlan(rng *rand.Rand) *domain.WeeklyPlan {
	if rng.Intn(5) == 0 {
		return nil
	}
	p := domain.NewWeeklyPlan("u1")
	for _, d := range domain.AllWeekdays() {
		switch rng.Intn(3) {
		case 0:
			continue // rest
		case 1:
			p.SetDay(d, domain.DayPlan{Title: "Empty"}, testToday)
		default:
			var exs []domain.PlannedExercise
			for n := rng.Intn(4) + 1; n > 0; n-- {
				name := propertyNames[rng.Intn(len(propertyNames))]
				exs = append(exs, domain.NewPlannedExercise(name, rng.Intn(5)+1, rng.Intn(12)+1, 20))
			}
			p.SetDay(d, domain.DayPlan{Title: d.String(), Exercises: exs}, testToday)
		}
	}
	return p
}

func randomSessions(rng *rand.Rand) []*domain.Session {
	var out []*domain.Session
	for i := rng.Intn(10); i > 0; i-- {
		at := testToday.AddDate(0, 0, -rng.Intn(60)+rng.Intn(3)).Add(time.Duration(rng.Intn(20)-10) * time.Hour)
		var exs []domain.LoggedExercise
		for n := rng.Intn(4); n > 0; n-- {
			name := propertyNames[rng.Intn(len(propertyNames))]
			var completed *bool
			switch rng.Intn(3) {
			case 1:
				completed = domain.BoolPtr(true)
			case 2:
				completed = domain.BoolPtr(false)
			}
			exs = append(exs, logged(name, rng.Intn(5)+1, rng.Intn(12)+1, completed))
		}
		out = append(out, session(fmt.Sprintf("s%d", i), at, exs...))
	}
	return out
}

// TestConsistency_Invariants property-tests history synthesis and weekly
// aggregation over random plans and session logs.
func TestConsistency_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	today := StartOfDay(testToday, time.UTC)

	for trial := 0; trial < 200; trial++ {
		plan := randomPlan(rng)
		sessions := randomSessions(rng)

		entries, err := SynthesizeHistory(sessions, plan, testToday)
		require.NoError(t, err, "trial %d", trial)

		again, err := SynthesizeHistory(sessions, plan, testToday)
		require.NoError(t, err)
		assert.Equal(t, entries, again, "trial %d: synthesis must be repeatable", trial)

		seen := make(map[time.Time]bool)
		for _, e := range entries {
			assert.False(t, e.Date.After(today), "trial %d: entry after today", trial)
			assert.False(t, seen[e.Date], "trial %d: two entries on %s", trial, e.Date)
			seen[e.Date] = true

			if e.Date.Equal(today) {
				assert.False(t, e.IsMissed(), "trial %d: today is never missed", trial)
			}
			if plan == nil {
				assert.True(t, e.IsLogged(), "trial %d: without a plan only sessions appear", trial)
			}
			if !e.IsLogged() {
				_, ok := ResolvePlan(e.Date, plan)
				assert.True(t, ok, "trial %d: synthesized entry on unplanned day", trial)
				assert.False(t, FindSession(e.Date, sessions).HasExercises(),
					"trial %d: synthesized entry shadows a logged session", trial)
			}
		}

		weeks := AggregateByWeek(entries)
		for i, w := range weeks {
			assert.LessOrEqual(t, w.CompletedExercises, w.TotalExercises, "trial %d", trial)
			score := w.ConsistencyScore()
			assert.GreaterOrEqual(t, score, 0, "trial %d", trial)
			assert.LessOrEqual(t, score, 100, "trial %d", trial)
			assert.Equal(t, len(weeks)-i, w.Number, "trial %d: weeks are newest first", trial)
			assert.Equal(t, domain.Monday, domain.WeekdayOf(w.Start), "trial %d", trial)
			for _, st := range w.Exercises {
				assert.LessOrEqual(t, st.TimesCompleted, st.Count, "trial %d", trial)
				assert.LessOrEqual(t, st.MissedCount, st.Count, "trial %d", trial)
			}
		}

		sum := Summarize(entries, weeks)
		assert.LessOrEqual(t, sum.Score, 100, "trial %d", trial)
		assert.LessOrEqual(t, sum.CompletedExercises, sum.TotalExercises, "trial %d", trial)
	}
}
