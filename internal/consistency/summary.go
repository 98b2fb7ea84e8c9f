package consistency

// Summary rolls the week buckets up into overall figures.
type Summary struct {
	Weeks              int
	TotalExercises     int
	CompletedExercises int
	Score              int
	BestWeekNumber     int
	BestWeekScore      int
	// CurrentStreak counts the most recent consecutive planned days that
	// were logged with every exercise completed. Today's pending entry
	// neither extends nor breaks it.
	CurrentStreak int
}

// Summarize computes overall consistency from synthesized entries and the
// weeks aggregated from them.
func Summarize(entries []DayEntry, weeks []WeekBucket) Summary {
	s := Summary{Weeks: len(weeks)}
	for _, w := range weeks {
		s.TotalExercises += w.TotalExercises
		s.CompletedExercises += w.CompletedExercises
		score := w.ConsistencyScore()
		if w.TotalExercises > 0 && (s.BestWeekNumber == 0 || score > s.BestWeekScore) {
			s.BestWeekNumber = w.Number
			s.BestWeekScore = score
		}
	}
	s.Score = percent(s.CompletedExercises, s.TotalExercises)
	s.CurrentStreak = currentStreak(entries)
	return s
}

func currentStreak(entries []DayEntry) int {
	streak := 0
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsPending() {
			continue
		}
		if !e.IsLogged() || e.Session.CompletedCount() < len(e.Exercises) {
			break
		}
		streak++
	}
	return streak
}
